// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package textconvert

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// OpTag labels an alignment span.
type OpTag string

const (
	OpEqual   OpTag = "equal"
	OpInsert  OpTag = "insert"
	OpDelete  OpTag = "delete"
	OpReplace OpTag = "replace"
)

// Opcode describes how Original[I1:I2] becomes Modified[J1:J2]. Offsets
// count runes, not bytes.
type Opcode struct {
	Tag    OpTag  `json:"tag" yaml:"tag"`
	I1     int    `json:"i1" yaml:"i1"`
	I2     int    `json:"i2" yaml:"i2"`
	J1     int    `json:"j1" yaml:"j1"`
	J2     int    `json:"j2" yaml:"j2"`
	Before string `json:"before" yaml:"before"`
	After  string `json:"after" yaml:"after"`
}

var opTags = map[byte]OpTag{
	'e': OpEqual,
	'i': OpInsert,
	'd': OpDelete,
	'r': OpReplace,
}

// Opcodes aligns original and modified rune by rune using longest matching
// blocks (Ratcliff/Obershelp) and returns the spans covering both strings
// in order.
func Opcodes(original, modified string) []Opcode {
	a := splitRunes(original)
	b := splitRunes(modified)

	m := difflib.NewMatcher(a, b)
	raw := m.GetOpCodes()
	ops := make([]Opcode, 0, len(raw))
	for _, op := range raw {
		ops = append(ops, Opcode{
			Tag:    opTags[op.Tag],
			I1:     op.I1,
			I2:     op.I2,
			J1:     op.J1,
			J2:     op.J2,
			Before: strings.Join(a[op.I1:op.I2], ""),
			After:  strings.Join(b[op.J1:op.J2], ""),
		})
	}
	return ops
}

// ShowDiff returns what changed between original and modified: the new text
// of every inserted or replaced span and the old text of every deleted span,
// concatenated in order. Unchanged text is left out, so identical inputs
// give "". The result is meant for display and cannot be applied as a patch.
func ShowDiff(original, modified string) string {
	var b strings.Builder
	for _, op := range Opcodes(original, modified) {
		switch op.Tag {
		case OpInsert, OpReplace:
			b.WriteString(op.After)
		case OpDelete:
			b.WriteString(op.Before)
		}
	}
	return b.String()
}

// splitRunes turns s into one element per rune for the matcher.
func splitRunes(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}
