package names

import (
	"strings"

	"golang.org/x/text/cases"
)

// Fold returns the canonical comparison key for name: its Unicode case
// folding. Two names are the same location iff their folded forms are
// equal; Compare and Equal are both defined on this key.
func Fold(name string) string {
	// A Caser is stateful and must not be shared between goroutines.
	return cases.Fold().String(name)
}

// Compare orders a and b case-insensitively.
// It returns -1 if a < b, 0 if a and b name the same location, +1 otherwise.
func Compare(a, b string) int {
	return strings.Compare(Fold(a), Fold(b))
}

// Equal reports whether a and b name the same location.
func Equal(a, b string) bool {
	return Fold(a) == Fold(b)
}

// Normalize trims the surrounding whitespace an input layer typically
// leaves on a name. Inner spaces are part of the name.
func Normalize(name string) string {
	return strings.TrimSpace(name)
}
