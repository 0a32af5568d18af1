// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package classify

import (
	"testing"
	"time"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name         string
		text         string
		wantDelay    time.Duration
		wantIdentity bool
	}{
		{"two chars", "12", ShortDelay, false},
		{"three chars", "abc", ShortDelay, false},
		{"six chars", "abcdef", MediumDelay, false},
		{"seven chars", "abcdefg", LongDelay, false},
		{"long title", "the left hand of darkness", LongDelay, false},
		{"isbn13", "9780553418026", IdentifierDelay, true},
		{"isbn13 hyphenated", "978-0-553-41802-6", IdentifierDelay, true},
		{"isbn10", "0345391802", IdentifierDelay, true},
		{"isbn10 check X", "080442957X", IdentifierDelay, true},
		{"isbn10 lowercase x", "080442957x", IdentifierDelay, true},
		// Length 11 is not ISBN-shaped; plain length rules apply.
		{"eleven digits not isbn", "12345678901", LongDelay, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			delay, ident := Classify(tt.text)
			if delay != tt.wantDelay {
				t.Errorf("Classify(%q) delay = %v, want %v", tt.text, delay, tt.wantDelay)
			}
			if ident != tt.wantIdentity {
				t.Errorf("Classify(%q) identifier = %v, want %v", tt.text, ident, tt.wantIdentity)
			}
		})
	}
}

func TestClassifyDigitsInsideText(t *testing.T) {
	// A title containing exactly 10 scattered digits still classifies as
	// identifier-shaped; the classifier only looks at the stripped form.
	delay, ident := Classify("catch 2222222222")
	if !ident {
		t.Error("scattered 10 digits should classify as identifier-shaped")
	}
	if delay != IdentifierDelay {
		t.Errorf("delay = %v, want %v", delay, IdentifierDelay)
	}
}
