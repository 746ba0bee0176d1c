// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package textconvert normalises and compares quote text.
//
// Escaping strips configured code points and substrings so that a quote and
// the URLs it links hash the same way regardless of how a page typesets
// them. HTMLToText flattens markup to plain text. LevenshteinDistance and
// ShowDiff compare a quote found on a cited page against the quote as
// written on the citing page.
//
// Every function is pure and safe for concurrent use. The escape policy is
// passed in explicitly, either as arguments or bound to a Converter.
package textconvert
