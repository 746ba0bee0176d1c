// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package textconvert

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeText(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		exclude RuneSet
		chars   []string
		want    string
	}{
		{
			name:  "empty sets return input unchanged",
			input: "Hello, World!",
			want:  "Hello, World!",
		},
		{
			name:    "removes excluded code point",
			input:   "abc",
			exclude: NewRuneSet(97),
			want:    "bc",
		},
		{
			name:    "removes every occurrence",
			input:   "banana",
			exclude: NewRuneSet('a'),
			want:    "bnn",
		},
		{
			name:    "empty input",
			input:   "",
			exclude: NewRuneSet(' '),
			chars:   []string{"x"},
			want:    "",
		},
		{
			name:    "multibyte code points",
			input:   "“quoted” — text",
			exclude: NewRuneSet(0x201c, 0x201d, 0x2014, ' '),
			want:    "quotedtext",
		},
		{
			name:  "removes special substrings",
			input: "Tom&nbsp;and&nbsp;Jerry",
			chars: []string{"&nbsp;"},
			want:  "TomandJerry",
		},
		{
			name:  "special substrings removed in order",
			input: "abc",
			chars: []string{"bc", "ab"},
			want:  "a",
		},
		{
			name:  "special substrings removed in reverse order",
			input: "abc",
			chars: []string{"ab", "bc"},
			want:  "c",
		},
		{
			name:  "removal does not rescan joined text",
			input: "aabb",
			chars: []string{"ab"},
			want:  "ab",
		},
		{
			name:    "code points filtered before substrings",
			input:   "a-b-c",
			exclude: NewRuneSet('-'),
			chars:   []string{"a-b"},
			want:    "abc",
		},
		{
			name:    "invalid utf-8 kept when filtering",
			input:   "a\xffb",
			exclude: NewRuneSet('a'),
			want:    "\xffb",
		},
		{
			name:  "invalid utf-8 kept without filter",
			input: "a\xffb",
			want:  "a\xffb",
		},
		{
			name:    "replacement character excluded but invalid byte kept",
			input:   "\ufffd\xff",
			exclude: NewRuneSet(0xfffd),
			want:    "\xff",
		},
		{
			name:  "empty special entry ignored",
			input: "abc",
			chars: []string{""},
			want:  "abc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EscapeText(tt.input, tt.exclude, tt.chars))
		})
	}
}

func TestEscapeURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		exclude RuneSet
		want    string
	}{
		{
			name:  "empty set returns input unchanged",
			input: "https://example.com/a b",
			want:  "https://example.com/a b",
		},
		{
			name:    "strips whitespace",
			input:   "https://example.com/a b\n",
			exclude: NewRuneSet(' ', '\n'),
			want:    "https://example.com/ab",
		},
		{
			name:    "strips zero width space",
			input:   "https://exa\u200bmple.com",
			exclude: NewRuneSet(0x200b),
			want:    "https://example.com",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EscapeURL(tt.input, tt.exclude))
		})
	}
}

func TestRuneSet(t *testing.T) {
	set := NewRuneSet(97, 0x2019)
	assert.True(t, set.Contains('a'))
	assert.True(t, set.Contains('’'))
	assert.False(t, set.Contains('b'))
	assert.False(t, RuneSet(nil).Contains('a'))
}

func TestNewRuneSet_SkipsOutOfRange(t *testing.T) {
	set := NewRuneSet(-1, 0x110000, 'b')
	if strconv.IntSize == 64 {
		// Truncates to 'a' if converted blindly.
		wide := int(int64(1)<<32 + 'a')
		set = NewRuneSet(-1, 0x110000, wide, 'b')
	}
	assert.Len(t, set, 1)
	assert.True(t, set.Contains('b'))
	assert.False(t, set.Contains('a'))
	assert.Equal(t, "ac", EscapeText("abc", set, nil))
}
