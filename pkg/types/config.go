// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"go.yaml.in/yaml/v3"
)

var (
	// ErrInvalidCodePoint is returned when a configured code point is not a
	// Unicode scalar value.
	ErrInvalidCodePoint = errors.New("invalid code point")

	// ErrEmptySpecialChar is returned when a special-character entry is empty.
	ErrEmptySpecialChar = errors.New("empty special character")
)

// EscapeConfig holds the character sets removed when normalising quotes and
// URLs before hashing. It is loaded once and treated as read-only.
type EscapeConfig struct {
	// TextEscapeCodePoints lists code points removed from quote text.
	TextEscapeCodePoints []int `json:"text_escape_code_points" yaml:"text_escape_code_points" mapstructure:"text_escape_code_points"`

	// EscapeSpecialChars lists literal substrings removed from quote text
	// after the code-point filter. Order matters: entries are removed one
	// after another.
	EscapeSpecialChars []string `json:"escape_special_chars" yaml:"escape_special_chars" mapstructure:"escape_special_chars"`

	// URLEscapeCodePoints lists code points removed from URLs.
	URLEscapeCodePoints []int `json:"url_escape_code_points" yaml:"url_escape_code_points" mapstructure:"url_escape_code_points"`
}

// DefaultEscapeConfig returns the escape policy used when no configuration
// file overrides it. Text escaping drops whitespace, ASCII punctuation and
// typographic quotes/dashes so that the same quote hashes identically no
// matter how a page typesets it. URL escaping only drops whitespace.
func DefaultEscapeConfig() EscapeConfig {
	text := []int{
		9, 10, 11, 12, 13, 32, // ASCII whitespace
		33, 34, 36, 37, 39, 40, 41, 42, 43, 44, 45, 46, 47, // entity delimiters stay for EscapeSpecialChars
		58, 60, 61, 62, 63, 64,
		91, 92, 93, 94, 95, 96,
		123, 124, 125, 126,
		160,                                // no-break space
		173,                                // soft hyphen
		8203,                               // zero width space
		8208, 8209, 8210, 8211, 8212, 8213, // hyphens and dashes
		8216, 8217, 8218, 8219, 8220, 8221, 8222, 8223, // curly quotes
		8226,  // bullet
		8230,  // ellipsis
		8239,  // narrow no-break space
		65279, // byte order mark
	}
	return EscapeConfig{
		TextEscapeCodePoints: text,
		EscapeSpecialChars:   []string{"&nbsp;", "&amp;", "&quot;", "&#39;"},
		URLEscapeCodePoints:  []int{9, 10, 11, 12, 13, 32, 160, 8203, 65279},
	}
}

// Validate checks that every code point is a Unicode scalar value and every
// special character is non-empty.
func (c EscapeConfig) Validate() error {
	if err := validateCodePoints("text_escape_code_points", c.TextEscapeCodePoints); err != nil {
		return err
	}
	if err := validateCodePoints("url_escape_code_points", c.URLEscapeCodePoints); err != nil {
		return err
	}
	for i, s := range c.EscapeSpecialChars {
		if s == "" {
			return fmt.Errorf("escape_special_chars[%d]: %w", i, ErrEmptySpecialChar)
		}
	}
	return nil
}

func validateCodePoints(field string, cps []int) error {
	for i, cp := range cps {
		if cp > utf8.MaxRune || !utf8.ValidRune(rune(cp)) {
			return fmt.Errorf("%s[%d] = %d: %w", field, i, cp, ErrInvalidCodePoint)
		}
	}
	return nil
}

// LoadEscapeConfig reads an EscapeConfig from a YAML file. Unknown keys are
// rejected. Fields absent from the file keep their DefaultEscapeConfig
// values; an explicit empty list clears a set.
func LoadEscapeConfig(path string) (EscapeConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return EscapeConfig{}, fmt.Errorf("reading escape config %s: %w", path, err)
	}

	cfg := DefaultEscapeConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return EscapeConfig{}, fmt.Errorf("parsing escape config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return EscapeConfig{}, fmt.Errorf("validating escape config %s: %w", path, err)
	}
	return cfg, nil
}
