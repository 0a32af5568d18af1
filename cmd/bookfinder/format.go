// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/bookfinder/internal/savedsearch"
	"github.com/pdiddy/bookfinder/pkg/types"
)

// renderTable writes results as a human-readable table to w.
func renderTable(w io.Writer, items []types.SearchResultItem) {
	if len(items) == 0 {
		fmt.Fprintln(w, "No results found.")
		return
	}

	fmt.Fprintf(w, "%-4s  %-50s  %-24s  %-4s  %-6s  %s\n",
		"Rank", "Title", "Authors", "Year", "Score", "Provider")
	fmt.Fprintln(w, strings.Repeat("-", 104))

	for i, r := range items {
		title := truncate(r.Work.Title(), 50)
		authors := formatAuthors(r.Work.AuthorNames())
		year := ""
		if r.Work.Year() > 0 {
			year = fmt.Sprintf("%d", r.Work.Year())
		}
		fmt.Fprintf(w, "%-4d  %-50s  %-24s  %-4s  %-6.2f  %s\n",
			i+1, title, authors, year, r.RelevanceScore, r.Provider)
	}

	fmt.Fprintf(w, "\n%d results\n", len(items))
}

// renderJSON writes results as indented JSON to w.
func renderJSON(w io.Writer, items []types.SearchResultItem) error {
	out := make([]savedsearch.Result, 0, len(items))
	for _, item := range items {
		out = append(out, savedsearch.FromItem(item))
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func formatAuthors(authors []string) string {
	switch len(authors) {
	case 0:
		return ""
	case 1:
		return truncate(authors[0], 24)
	default:
		return truncate(authors[0], 18) + " et al."
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
