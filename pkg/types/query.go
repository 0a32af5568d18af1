// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the bookfinder search core.
package types

import "strings"

// Scope selects which catalog field set a query targets.
type Scope string

const (
	ScopeAll    Scope = "all"
	ScopeTitle  Scope = "title"
	ScopeAuthor Scope = "author"
	ScopeISBN   Scope = "isbn"
)

// ParseScope converts a user-supplied scope string into a Scope.
// Unknown values fall back to ScopeAll.
func ParseScope(s string) Scope {
	switch Scope(strings.ToLower(strings.TrimSpace(s))) {
	case ScopeTitle:
		return ScopeTitle
	case ScopeAuthor:
		return ScopeAuthor
	case ScopeISBN:
		return ScopeISBN
	default:
		return ScopeAll
	}
}

// SearchQuery is an immutable description of one catalog search. A new value
// is created per keystroke or page fetch and superseded by the next.
type SearchQuery struct {
	// Text is the trimmed query text.
	Text string `json:"text" yaml:"text"`

	// Scope is the field set the query targets.
	Scope Scope `json:"scope" yaml:"scope"`

	// Page is the zero-based pagination cursor.
	Page int `json:"page" yaml:"page"`
}

// IsEmpty reports whether the query has no searchable text.
func (q SearchQuery) IsEmpty() bool {
	return strings.TrimSpace(q.Text) == ""
}

// NextPage returns a copy of the query advanced to the next page.
func (q SearchQuery) NextPage() SearchQuery {
	q.Page++
	return q
}
