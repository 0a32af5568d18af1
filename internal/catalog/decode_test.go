// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"encoding/json"
	"testing"
)

func TestDecodeUnknownFormatFallsBackToLegacy(t *testing.T) {
	body := `{
		"format": "some_future_format_v9",
		"items": [
			{"volumeInfo": {"title": "Hyperion", "authors": ["Dan Simmons"], "publishedDate": "1989"}}
		]
	}`
	var env envelope
	if err := json.Unmarshal([]byte(body), &env); err != nil {
		t.Fatal(err)
	}

	items, err := decodeItems(env, "catalog")
	if err != nil {
		t.Fatalf("decodeItems() error = %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("len = %d, want 1", len(items))
	}
	if items[0].Work.Title() != "Hyperion" {
		t.Errorf("title = %q", items[0].Work.Title())
	}
	if items[0].Work.Year() != 1989 {
		t.Errorf("year = %d, want 1989", items[0].Work.Year())
	}
}

func TestDecodeRelevanceScores(t *testing.T) {
	body := `{"items": [
		{"volumeInfo": {"title": "A"}},
		{"volumeInfo": {"title": "B"}},
		{"volumeInfo": {"title": "C"}}
	]}`
	var env envelope
	if err := json.Unmarshal([]byte(body), &env); err != nil {
		t.Fatal(err)
	}

	items, err := decodeItems(env, "catalog")
	if err != nil {
		t.Fatal(err)
	}
	if items[0].RelevanceScore != 1.0 {
		t.Errorf("first score = %f, want 1.0", items[0].RelevanceScore)
	}
	for i := 1; i < len(items); i++ {
		if items[i].RelevanceScore >= items[i-1].RelevanceScore {
			t.Errorf("scores not strictly decreasing at %d", i)
		}
	}
	if last := items[len(items)-1].RelevanceScore; last < 0.09 || last > 0.11 {
		t.Errorf("last score = %f, want ~0.1", last)
	}
}

func TestDecodeEnhancedWithoutEdition(t *testing.T) {
	// An enhanced item missing its edition object keeps the legacy-derived
	// edition rather than dropping edition data entirely.
	body := `{
		"format": "enhanced_work_edition_v1",
		"items": [
			{"volumeInfo": {
				"title": "Dune",
				"publisher": "Ace",
				"industryIdentifiers": [{"type": "ISBN_13", "identifier": "9780441013593"}]
			}}
		]
	}`
	var env envelope
	if err := json.Unmarshal([]byte(body), &env); err != nil {
		t.Fatal(err)
	}

	items, err := decodeItems(env, "catalog")
	if err != nil {
		t.Fatal(err)
	}
	if len(items[0].Editions) != 1 {
		t.Fatalf("len(editions) = %d, want 1", len(items[0].Editions))
	}
	if items[0].Editions[0].ISBN() != "9780441013593" {
		t.Errorf("isbn = %q", items[0].Editions[0].ISBN())
	}
}

func TestYearOf(t *testing.T) {
	tests := []struct {
		date string
		want int
	}{
		{"2015-02-10", 2015},
		{"2015-02", 2015},
		{"2015", 2015},
		{"", 0},
		{"n.d.", 0},
		{"19", 0},
	}
	for _, tt := range tests {
		if got := yearOf(tt.date); got != tt.want {
			t.Errorf("yearOf(%q) = %d, want %d", tt.date, got, tt.want)
		}
	}
}

func TestPickISBN(t *testing.T) {
	ids := []industryIdentifier{
		{Type: "OTHER", Identifier: "OCLC123"},
		{Type: "ISBN_10", Identifier: "0441013597"},
	}
	if got := pickISBN(ids); got != "0441013597" {
		t.Errorf("pickISBN = %q, want the ISBN-10", got)
	}
	if got := pickISBN(nil); got != "" {
		t.Errorf("pickISBN(nil) = %q, want empty", got)
	}
}
