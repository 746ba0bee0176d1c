// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the configuration and record types shared across
// quote-context packages.
package types

// Quote is the record published for one citation: the quote as it appears on
// the citing page, the matching passage on the cited page, and the text
// surrounding each. SHA256 identifies the quote and is derived from the
// escaped citing quote and both escaped URLs.
type Quote struct {
	CitingQuote         string `json:"citing_quote" yaml:"citing_quote"`
	SHA256              string `json:"sha256" yaml:"sha256"`
	CitingURL           string `json:"citing_url" yaml:"citing_url"`
	CitedURL            string `json:"cited_url" yaml:"cited_url"`
	CitingContextBefore string `json:"citing_context_before" yaml:"citing_context_before"`
	CitedContextBefore  string `json:"cited_context_before" yaml:"cited_context_before"`
	CitingContextAfter  string `json:"citing_context_after" yaml:"citing_context_after"`
	CitedContextAfter   string `json:"cited_context_after" yaml:"cited_context_after"`
	CitedQuote          string `json:"cited_quote" yaml:"cited_quote"`
}

// QuoteContext carries the surrounding text for a quote. Empty fields are
// allowed.
type QuoteContext struct {
	CitingBefore string
	CitingAfter  string
	CitedBefore  string
	CitedAfter   string
}
