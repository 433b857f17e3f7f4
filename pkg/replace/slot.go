package replace

import (
	"github.com/acorn-io/strsub/pkg/errors"
	"github.com/acorn-io/strsub/pkg/escape"
)

// Slot owns a single text value that is swapped for a new one only when a
// replacement succeeds. A Slot must not be mutated from multiple goroutines.
type Slot struct {
	text string
}

// NewSlot returns a Slot holding s.
func NewSlot(s string) *Slot {
	return &Slot{text: s}
}

// String returns the current text, or "" for a nil Slot.
func (s *Slot) String() string {
	if s == nil {
		return ""
	}
	return s.text
}

// Set replaces the current text. Unlike the other methods it requires a
// non-nil Slot and panics otherwise.
func (s *Slot) Set(text string) {
	s.text = text
}

// ReplaceAll replaces every occurrence of pattern in the slot's text. On
// failure the slot keeps its previous text, which is returned alongside the
// error.
func (s *Slot) ReplaceAll(pattern, with string) (string, error) {
	if s == nil {
		return "", errors.ErrNoSource
	}
	result, err := ReplaceAll(s.text, pattern, with)
	if err != nil {
		return s.text, err
	}
	s.text = result
	return s.text, nil
}

// ReplaceAllEscaped is ReplaceAll with with escaped for use inside a JSON
// string value.
func (s *Slot) ReplaceAllEscaped(pattern, with string) (string, error) {
	return s.ReplaceAll(pattern, escape.JSONString(with))
}
