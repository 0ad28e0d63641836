// Package limit parses the summary limit grammar: a bare positive integer
// is a character ceiling, a positive integer with a trailing "p" is a
// paragraph count (e.g. "800", "3p", "002p").
package limit

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrInvalidLimit indicates a malformed limit string (empty, non-digit,
	// or non-positive value).
	ErrInvalidLimit = errors.New("invalid limit")

	// ErrInvalidParagraphs indicates a non-positive paragraph count.
	ErrInvalidParagraphs = errors.New("paragraphs must be a positive integer")
)

// DefaultParagraphs is used when neither a limit nor a paragraph count is given.
const DefaultParagraphs = 3

// Constraint is the target shape of the summary. Exactly one of Paragraphs
// or Characters is positive; the other is zero.
type Constraint struct {
	Paragraphs int
	Characters int
}

// ByParagraphs builds a paragraph-count constraint.
func ByParagraphs(n int) (Constraint, error) {
	if n <= 0 {
		return Constraint{}, ErrInvalidParagraphs
	}
	return Constraint{Paragraphs: n}, nil
}

// Default is the three-paragraph constraint.
func Default() Constraint {
	return Constraint{Paragraphs: DefaultParagraphs}
}

// Parse parses a raw limit string into a Constraint.
//
//	"1000" -> 1000 characters
//	"2p"   -> 2 paragraphs
//	"002p" -> 2 paragraphs
func Parse(raw string) (Constraint, error) {
	lv := strings.ToLower(strings.TrimSpace(raw))
	if lv == "" {
		return Constraint{}, invalidf("limit cannot be empty")
	}

	if strings.HasSuffix(lv, "p") {
		num := strings.TrimSuffix(lv, "p")
		if !allDigits(num) {
			return Constraint{}, invalidf("bad paragraph limit %q, use e.g. 3p", raw)
		}
		p, err := strconv.Atoi(num)
		if err != nil || p <= 0 {
			return Constraint{}, invalidf("paragraph limit must be positive, got %q", raw)
		}
		return Constraint{Paragraphs: p}, nil
	}

	if !allDigits(lv) {
		return Constraint{}, invalidf("bad character limit %q, use a number or Np for paragraphs", raw)
	}
	chars, err := strconv.Atoi(lv)
	if err != nil || chars <= 0 {
		return Constraint{}, invalidf("character limit must be positive, got %q", raw)
	}
	return Constraint{Characters: chars}, nil
}

func invalidf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidLimit, fmt.Sprintf(format, args...))
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
