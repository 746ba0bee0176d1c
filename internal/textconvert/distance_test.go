// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package textconvert

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevenshteinDistance(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want int
	}{
		{name: "kitten to sitting", a: "kitten", b: "sitting", want: 3},
		{name: "empty to abc", a: "", b: "abc", want: 3},
		{name: "abc to empty", a: "abc", b: "", want: 3},
		{name: "both empty", a: "", b: "", want: 0},
		{name: "identical", a: "quote", b: "quote", want: 0},
		{name: "case insensitive", a: "Hello", b: "hELLO", want: 0},
		{name: "flaw to lawn", a: "flaw", b: "lawn", want: 2},
		{name: "single substitution", a: "gray", b: "grey", want: 1},
		{name: "accent counts as one rune", a: "café", b: "cafe", want: 1},
		{name: "unicode case folding", a: "ÉCOLE", b: "école", want: 0},
		{name: "final sigma lower-cased at word end", a: "ΟΔΟΣ", b: "οδος", want: 0},
		{name: "medial sigma differs from final", a: "ΟΔΟΣ", b: "οδοσ", want: 1},
		{name: "transposition costs two", a: "ab", b: "ba", want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LevenshteinDistance(tt.a, tt.b))
		})
	}
}

func TestLevenshteinDistance_Properties(t *testing.T) {
	words := []string{
		"", "a", "abc", "kitten", "sitting", "Saturday", "Sunday",
		"the quick brown fox", "The Quick Brown Fox", "naïve", "“quoted”",
	}

	for _, a := range words {
		assert.Equal(t, 0, LevenshteinDistance(a, a), "distance(%q, %q)", a, a)
		for _, b := range words {
			ab := LevenshteinDistance(a, b)
			ba := LevenshteinDistance(b, a)
			assert.Equal(t, ab, ba, "distance(%q, %q) is not symmetric", a, b)
			assert.GreaterOrEqual(t, ab, 0)
		}
	}
}
