// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"strings"

	"github.com/pdiddy/bookfinder/pkg/types"
)

// FilterByScope narrows raw catalog results to the requested scope. The
// server is trusted to have scoped All and ISBN queries, so those pass
// through unchanged; Title and Author apply a case-insensitive substring
// check as a defense-in-depth layer on top of the server's filtering.
func FilterByScope(items []types.SearchResultItem, scope types.Scope, queryText string) []types.SearchResultItem {
	switch scope {
	case types.ScopeTitle:
		return keep(items, func(r types.SearchResultItem) bool {
			return containsFold(r.Work.Title(), queryText)
		})
	case types.ScopeAuthor:
		return keep(items, func(r types.SearchResultItem) bool {
			return containsFold(r.AuthorDisplay(), queryText)
		})
	default:
		return items
	}
}

func keep(items []types.SearchResultItem, match func(types.SearchResultItem) bool) []types.SearchResultItem {
	filtered := make([]types.SearchResultItem, 0, len(items))
	for _, r := range items {
		if match(r) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
