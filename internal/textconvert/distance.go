// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package textconvert

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// LevenshteinDistance returns the minimum number of single-rune insertions,
// deletions and substitutions needed to turn a into b. The comparison is
// case-insensitive: both strings are lower-cased with full Unicode case
// mapping first. Context-dependent mappings such as the Greek final sigma
// follow golang.org/x/text/cases, whose word-boundary rules can differ from
// other libraries, so such input may score one edit apart from them.
//
// Time and memory are O(len(a)·len(b)) and O(len(b)); callers comparing
// whole pages should bound their inputs.
func LevenshteinDistance(a, b string) int {
	// A Caser keeps state and must not be shared across goroutines.
	lower := cases.Lower(language.Und)
	ra := []rune(lower.String(a))
	rb := []rune(lower.String(b))

	// prev holds row i-1 of the distance table, cur row i.
	prev := make([]int, len(rb)+1)
	cur := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		cur[0] = i
		for j := 1; j <= len(rb); j++ {
			sub := prev[j-1]
			if ra[i-1] != rb[j-1] {
				sub++
			}
			cur[j] = min(prev[j]+1, sub, cur[j-1]+1)
		}
		prev, cur = cur, prev
	}
	return prev[len(rb)]
}
