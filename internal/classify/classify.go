// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package classify derives debounce timing from query shape. Short queries
// are low-signal and debounced hard; identifier-shaped queries (ISBNs) are
// dispatched near-immediately since the user has finished typing or pasted.
package classify

import (
	"strings"
	"time"
)

// Debounce delays by query class.
const (
	IdentifierDelay = 100 * time.Millisecond
	ShortDelay      = 800 * time.Millisecond
	MediumDelay     = 500 * time.Millisecond
	LongDelay       = 300 * time.Millisecond
)

// Classify returns the debounce delay for the given trimmed query text and
// whether the text is identifier-shaped (ISBN-10 or ISBN-13 after stripping
// separators). Empty input is handled by the caller before classification.
func Classify(text string) (delay time.Duration, isIdentifier bool) {
	if isISBNShaped(text) {
		return IdentifierDelay, true
	}
	switch n := len(text); {
	case n <= 3:
		return ShortDelay, false
	case n <= 6:
		return MediumDelay, false
	default:
		return LongDelay, false
	}
}

// isISBNShaped strips everything but digits and the ISBN-10 check character
// X and tests for the two valid ISBN lengths.
func isISBNShaped(text string) bool {
	var b strings.Builder
	for _, r := range text {
		if (r >= '0' && r <= '9') || r == 'X' || r == 'x' {
			b.WriteRune(r)
		}
	}
	n := b.Len()
	return n == 10 || n == 13
}
