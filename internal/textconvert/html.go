// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package textconvert

import (
	"strings"

	"golang.org/x/net/html"
)

// HTMLToText returns the text content of an HTML document or fragment with
// all tags, attributes and comments removed and entities decoded. Text
// nodes are concatenated in document order without added separators, so
// "<p>Hi <b>there</b></p>" yields "Hi there".
//
// Whitespace follows the HTML5 parsing rules rather than the raw source:
// whitespace before the first element or text is dropped, as is the newline
// directly after <pre> or <textarea>. "  Hi there" yields "Hi there".
//
// Malformed markup never fails: the HTML5 parser repairs what it can, and
// if parsing is aborted the tokens read so far are returned.
func HTMLToText(s string) string {
	doc, err := html.Parse(strings.NewReader(s))
	if err != nil {
		return tokenText(s)
	}

	var b strings.Builder
	collectText(&b, doc)
	return b.String()
}

// collectText appends the data of every text node under n to b.
func collectText(b *strings.Builder, n *html.Node) {
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(b, c)
	}
}

// tokenText is the fallback extractor: it streams tokens and keeps text
// tokens until the input ends or the tokenizer gives up.
func tokenText(s string) string {
	var b strings.Builder
	z := html.NewTokenizer(strings.NewReader(s))
	for {
		switch z.Next() {
		case html.ErrorToken:
			// io.EOF or a read failure; either way keep what was collected.
			return b.String()
		case html.TextToken:
			b.Write(z.Text())
		}
	}
}
