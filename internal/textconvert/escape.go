// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package textconvert

import (
	"strings"
	"unicode/utf8"
)

// RuneSet is a set of code points to exclude.
type RuneSet map[rune]struct{}

// NewRuneSet builds a RuneSet from integer code points. Values outside
// 0..utf8.MaxRune are skipped; no rune could match them.
func NewRuneSet(codePoints ...int) RuneSet {
	set := make(RuneSet, len(codePoints))
	for _, cp := range codePoints {
		if cp < 0 || cp > utf8.MaxRune {
			continue
		}
		set[rune(cp)] = struct{}{}
	}
	return set
}

// Contains reports whether r is in the set.
func (s RuneSet) Contains(r rune) bool {
	_, ok := s[r]
	return ok
}

// EscapeText removes every rune of s whose code point is in exclude, then
// removes every occurrence of each substring in chars, in order. With both
// sets empty s is returned unchanged. Bytes that are not valid UTF-8 are
// kept as they are and never match an excluded code point.
func EscapeText(s string, exclude RuneSet, chars []string) string {
	out := filterRunes(s, exclude)
	for _, c := range chars {
		if c == "" {
			continue
		}
		out = strings.ReplaceAll(out, c, "")
	}
	return out
}

// EscapeURL removes every rune of s whose code point is in exclude.
func EscapeURL(s string, exclude RuneSet) string {
	return filterRunes(s, exclude)
}

func filterRunes(s string, exclude RuneSet) string {
	if len(exclude) == 0 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		// An invalid byte decodes as RuneError with size 1.
		invalid := r == utf8.RuneError && size == 1
		if invalid || !exclude.Contains(r) {
			b.WriteString(s[i : i+size])
		}
		i += size
	}
	return b.String()
}
