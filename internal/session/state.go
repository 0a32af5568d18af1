// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package session

import "github.com/pdiddy/bookfinder/pkg/types"

// StateKind enumerates the session's observable phases. Exactly one holds
// at any time.
type StateKind int

const (
	// StateInitial is the empty-query resting state.
	StateInitial StateKind = iota

	// StateSearching means a debounced query is being fetched.
	StateSearching

	// StateResults means the last fetch returned items.
	StateResults

	// StateNoResults means the last fetch succeeded with zero items.
	StateNoResults

	// StateError means the last fetch failed terminally.
	StateError
)

// String returns the kind's label for logs and tests.
func (k StateKind) String() string {
	switch k {
	case StateInitial:
		return "initial"
	case StateSearching:
		return "searching"
	case StateResults:
		return "results"
	case StateNoResults:
		return "no_results"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// State is the session's observable value. Items and HasMore are populated
// only for StateResults; Message only for StateError. Items must be
// treated as immutable by observers.
type State struct {
	Kind    StateKind
	Items   []types.SearchResultItem
	HasMore bool
	Message string
}
