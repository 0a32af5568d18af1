// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history maintains the bounded, deduplicated recent-search list.
package history

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

// DefaultCapacity bounds the list when the caller passes 0.
const DefaultCapacity = 10

// Entry is one recorded search, most-recent-first in the store.
type Entry struct {
	Text       string    `json:"text"`
	InsertedAt time.Time `json:"inserted_at"`
}

// Persister saves and restores the full entry list. The store tolerates a
// nil Persister (memory-only) and persist failures (logged, not fatal).
type Persister interface {
	Save(entries []Entry) error
	Load() ([]Entry, error)
}

// Store is the recent-search list: bounded, most-recent-first, and unique
// under case/whitespace folding. Safe for concurrent use.
type Store struct {
	mu        sync.Mutex
	entries   []Entry
	capacity  int
	persister Persister
	logw      io.Writer
}

// NewStore builds a store and restores persisted entries. A load failure
// starts the store empty with a warning rather than failing the caller.
func NewStore(capacity int, persister Persister, logw io.Writer) *Store {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if logw == nil {
		logw = io.Discard
	}
	s := &Store{capacity: capacity, persister: persister, logw: logw}

	if persister != nil {
		entries, err := persister.Load()
		if err != nil {
			fmt.Fprintf(logw, "warning: could not load recent searches: %v\n", err)
		} else {
			if len(entries) > capacity {
				entries = entries[:capacity]
			}
			s.entries = entries
		}
	}
	return s
}

// Add records text at the front of the list, replacing any entry that
// differs only by case or whitespace. Empty text is ignored.
func (s *Store) Add(text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	key := fold(text)

	s.mu.Lock()
	kept := make([]Entry, 0, len(s.entries)+1)
	kept = append(kept, Entry{Text: text, InsertedAt: time.Now()})
	for _, e := range s.entries {
		if fold(e.Text) == key {
			continue
		}
		kept = append(kept, e)
	}
	if len(kept) > s.capacity {
		kept = kept[:s.capacity]
	}
	s.entries = kept
	s.persistLocked()
	s.mu.Unlock()
}

// Entries returns a copy of the list, most recent first.
func (s *Store) Entries() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Entry(nil), s.entries...)
}

// Texts returns just the query texts, most recent first.
func (s *Store) Texts() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	texts := make([]string, len(s.entries))
	for i, e := range s.entries {
		texts[i] = e.Text
	}
	return texts
}

// Clear empties the list.
func (s *Store) Clear() {
	s.mu.Lock()
	s.entries = nil
	s.persistLocked()
	s.mu.Unlock()
}

func (s *Store) persistLocked() {
	if s.persister == nil {
		return
	}
	if err := s.persister.Save(append([]Entry(nil), s.entries...)); err != nil {
		fmt.Fprintf(s.logw, "warning: could not persist recent searches: %v\n", err)
	}
}

// fold normalizes text for uniqueness: lowercased with whitespace runs
// collapsed, so "Dune" and "dune " are the same entry.
func fold(text string) string {
	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}
