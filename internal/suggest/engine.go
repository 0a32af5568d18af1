// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package suggest combines recent searches, a static popularity list, and
// pattern-based completions into a short suggestion list.
package suggest

import "strings"

// Limits per source. An empty query shows a browse list (recent then
// popular); a non-empty query shows matches capped at totalLimit.
const (
	emptyRecentLimit  = 3
	emptyPopularLimit = 5
	matchRecentLimit  = 2
	matchPopularLimit = 3
	totalLimit        = 6
)

// popular is the static popularity list, ordered.
var popular = []string{
	"Dune",
	"Project Hail Mary",
	"The Midnight Library",
	"Atomic Habits",
	"The Martian",
	"Educated",
	"The Name of the Wind",
	"A Gentleman in Moscow",
}

// completion maps a query substring to a canonical author, title, or
// genre suggestion.
type completion struct {
	trigger    string
	suggestion string
}

var completions = []completion{
	{"tolk", "J.R.R. Tolkien"},
	{"rowl", "J.K. Rowling"},
	{"king", "Stephen King"},
	{"agath", "Agatha Christie"},
	{"sander", "Brandon Sanderson"},
	{"harry", "Harry Potter"},
	{"lord", "The Lord of the Rings"},
	{"sci", "Science Fiction"},
	{"fanta", "Fantasy"},
	{"myst", "Mystery"},
	{"thrill", "Thriller"},
	{"roman", "Romance"},
}

// For returns suggestions for the given query text. recent is the search
// history, most recent first. Ordering is recent, then popular, then
// completions; duplicates (case-insensitive) are dropped.
func For(queryText string, recent []string) []string {
	queryText = strings.TrimSpace(queryText)
	if queryText == "" {
		return browse(recent)
	}
	return matches(queryText, recent)
}

// browse is the empty-query list: up to 3 recent entries followed by up to
// 5 popular titles.
func browse(recent []string) []string {
	var out []string
	seen := make(map[string]struct{})

	for _, r := range recent {
		if len(out) >= emptyRecentLimit {
			break
		}
		out = appendUnique(out, seen, r)
	}
	taken := 0
	for _, p := range popular {
		if taken >= emptyPopularLimit {
			break
		}
		before := len(out)
		out = appendUnique(out, seen, p)
		if len(out) > before {
			taken++
		}
	}
	return out
}

func matches(queryText string, recent []string) []string {
	q := strings.ToLower(queryText)
	var out []string
	seen := make(map[string]struct{})

	taken := 0
	for _, r := range recent {
		if taken >= matchRecentLimit {
			break
		}
		if strings.Contains(strings.ToLower(r), q) {
			before := len(out)
			out = appendUnique(out, seen, r)
			if len(out) > before {
				taken++
			}
		}
	}

	taken = 0
	for _, p := range popular {
		if taken >= matchPopularLimit {
			break
		}
		if strings.Contains(strings.ToLower(p), q) {
			before := len(out)
			out = appendUnique(out, seen, p)
			if len(out) > before {
				taken++
			}
		}
	}

	for _, c := range completions {
		if len(out) >= totalLimit {
			break
		}
		if strings.Contains(q, c.trigger) {
			out = appendUnique(out, seen, c.suggestion)
		}
	}

	if len(out) > totalLimit {
		out = out[:totalLimit]
	}
	return out
}

func appendUnique(out []string, seen map[string]struct{}, s string) []string {
	key := strings.ToLower(strings.TrimSpace(s))
	if key == "" {
		return out
	}
	if _, ok := seen[key]; ok {
		return out
	}
	seen[key] = struct{}{}
	return append(out, s)
}
