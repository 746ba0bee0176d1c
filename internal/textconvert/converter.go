// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package textconvert

import (
	"crypto/sha256"
	"encoding/hex"
	"net/url"
	"strings"

	"github.com/pdiddy/quote-context/pkg/types"
)

// hashSeparator joins the escaped parts of a quote hash key.
const hashSeparator = "|"

// Converter applies one escape policy. Build it once from the loaded
// configuration and share it; it is read-only after New.
type Converter struct {
	textCodePoints RuneSet
	specialChars   []string
	urlCodePoints  RuneSet
}

// New returns a Converter for cfg. cfg is copied; later changes to it do
// not affect the Converter.
func New(cfg types.EscapeConfig) *Converter {
	return &Converter{
		textCodePoints: NewRuneSet(cfg.TextEscapeCodePoints...),
		specialChars:   append([]string(nil), cfg.EscapeSpecialChars...),
		urlCodePoints:  NewRuneSet(cfg.URLEscapeCodePoints...),
	}
}

// EscapeText applies the text policy to s.
func (c *Converter) EscapeText(s string) string {
	return EscapeText(s, c.textCodePoints, c.specialChars)
}

// EscapeURL applies the URL policy to s.
func (c *Converter) EscapeURL(s string) string {
	return EscapeURL(s, c.urlCodePoints)
}

// HashKey returns the string a quote hash is computed over:
// the escaped quote, the escaped citing URL and the escaped cited URL,
// joined by "|".
func (c *Converter) HashKey(quote, citingURL, citedURL string) string {
	return strings.Join([]string{
		c.EscapeText(quote),
		c.EscapeURL(citingURL),
		c.EscapeURL(citedURL),
	}, hashSeparator)
}

// QuoteHash returns the lowercase hex SHA-256 of HashKey. Two quotes that
// differ only in escaped characters share a hash.
func (c *Converter) QuoteHash(quote, citingURL, citedURL string) string {
	sum := sha256.Sum256([]byte(c.HashKey(quote, citingURL, citedURL)))
	return hex.EncodeToString(sum[:])
}

// NewQuote builds the published record for a quote. citedQuote is the
// matching passage found on the cited page and may be empty when it was not
// located.
func (c *Converter) NewQuote(citingQuote, citedQuote, citingURL, citedURL string, qc types.QuoteContext) types.Quote {
	return types.Quote{
		CitingQuote:         citingQuote,
		SHA256:              c.QuoteHash(citingQuote, citingURL, citedURL),
		CitingURL:           citingURL,
		CitedURL:            citedURL,
		CitingContextBefore: qc.CitingBefore,
		CitedContextBefore:  qc.CitedBefore,
		CitingContextAfter:  qc.CitingAfter,
		CitedContextAfter:   qc.CitedAfter,
		CitedQuote:          citedQuote,
	}
}

// IsURL reports whether s is an absolute URL with a scheme and host.
func IsURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}
