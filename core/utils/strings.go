package utils

import (
	"unicode"

	"golang.org/x/text/cases"
)

// IsDigits reports whether s is non-empty and every rune in it is a decimal
// digit (Unicode category Nd). Superscripts and circled numbers such as "²"
// or "①" are not digits here.
func IsDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// FoldCase returns the case-folded form of s, suitable for caseless comparison.
// A new Caser is built per call since Casers are stateful.
func FoldCase(s string) string {
	return cases.Fold().String(s)
}
