// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package suggest

import (
	"strings"
	"testing"
)

func TestForEmptyQuery(t *testing.T) {
	recent := []string{"the martian", "dune", "hyperion", "ubik"}

	got := For("", recent)

	if len(got) != 8 {
		t.Fatalf("len = %d, want 3 recent + 5 popular", len(got))
	}
	for i, want := range []string{"the martian", "dune", "hyperion"} {
		if got[i] != want {
			t.Errorf("got[%d] = %q, want %q (history first)", i, got[i], want)
		}
	}
	// "dune" is already shown from history; the popular list must skip it
	// and still contribute 5 entries.
	for _, s := range got[3:] {
		if strings.EqualFold(s, "dune") {
			t.Errorf("popular section repeats a history entry: %v", got)
		}
	}
}

func TestForEmptyQueryNoHistory(t *testing.T) {
	got := For("", nil)
	if len(got) != 5 {
		t.Fatalf("len = %d, want 5 popular entries", len(got))
	}
	if got[0] != "Dune" {
		t.Errorf("got[0] = %q, want popularity order preserved", got[0])
	}
}

func TestForMatchingQuery(t *testing.T) {
	recent := []string{"dune messiah", "dune", "the martian"}

	got := For("dune", recent)

	// Up to 2 history matches first; the popular "Dune" is a duplicate of
	// the chosen history entry and must be dropped.
	if len(got) != 2 {
		t.Fatalf("got %v, want exactly the two history matches", got)
	}
	if got[0] != "dune messiah" || got[1] != "dune" {
		t.Errorf("history matches first, got %v", got)
	}
}

func TestForPatternCompletions(t *testing.T) {
	got := For("tolkien books", nil)

	found := false
	for _, s := range got {
		if s == "J.R.R. Tolkien" {
			found = true
		}
	}
	if !found {
		t.Errorf("substring trigger should map to the canonical author, got %v", got)
	}
}

func TestForCapsAtSix(t *testing.T) {
	recent := []string{"science of cooking", "science fair", "science history"}

	got := For("sci", recent)
	if len(got) > 6 {
		t.Errorf("len = %d, want at most 6: %v", len(got), got)
	}
}

func TestForNoMatches(t *testing.T) {
	got := For("zzzzqqq", nil)
	if len(got) != 0 {
		t.Errorf("got %v, want none", got)
	}
}
