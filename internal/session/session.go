// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package session orchestrates catalog searches: it debounces query
// changes, cancels superseded work, retries transient failures, filters
// and paginates results, and exposes a single observable state machine.
//
// The session is the only writer of its own state. Every attempt is tagged
// with a generation number at issuance; a result is applied only while its
// generation is still current, so a stale response can never overwrite a
// newer query's state regardless of network ordering.
package session

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/pdiddy/bookfinder/internal/catalog"
	"github.com/pdiddy/bookfinder/internal/classify"
	"github.com/pdiddy/bookfinder/pkg/types"
)

// Searcher performs one catalog request. *catalog.Client implements it;
// tests substitute fakes.
type Searcher interface {
	Search(ctx context.Context, query types.SearchQuery, maxResults int) (catalog.Result, error)
}

// Recorder receives successful query texts for the recent-search history.
type Recorder interface {
	Add(text string)
}

// Config wires a session's collaborators. All fields are optional except
// none; zero values give a 20-item page, no history, and no callbacks.
type Config struct {
	// PageSize is the per-fetch result cap (default 20). It also drives
	// the has-more heuristic: a full page implies more pages.
	PageSize int

	// History, when set, records page-1 successful query texts.
	History Recorder

	// LogWriter receives raw-error warning lines (default io.Discard).
	// Only category-level messages reach the observable state.
	LogWriter io.Writer

	// OnStateChange is invoked after every state transition.
	OnStateChange func(State)

	// OnSearchSucceeded is invoked after a page-1 search completes
	// successfully.
	OnSearchSucceeded func(types.SearchQuery)

	// Classify overrides debounce classification (default classify.Classify).
	// Tests use this to avoid real debounce waits.
	Classify func(text string) (time.Duration, bool)
}

// Stats counts catalog responses and cache hits across a session.
type Stats struct {
	Requests  uint64
	CacheHits uint64
}

// CacheHitRate returns the fraction of responses served from the remote
// cache, 0.0 when nothing has been fetched.
func (st Stats) CacheHitRate() float64 {
	if st.Requests == 0 {
		return 0
	}
	return float64(st.CacheHits) / float64(st.Requests)
}

// Session is the stateful search orchestrator. Safe for concurrent use.
type Session struct {
	searcher          Searcher
	history           Recorder
	pageSize          int
	logw              io.Writer
	onStateChange     func(State)
	onSearchSucceeded func(types.SearchQuery)
	classifyFn        func(string) (time.Duration, bool)

	mu     sync.Mutex
	state  State
	query  types.SearchQuery
	gen    uint64
	cancel context.CancelFunc
	busy   bool
	stats  Stats
}

// New builds a session around a searcher.
func New(searcher Searcher, cfg Config) *Session {
	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = catalog.DefaultMaxResults
	}
	logw := cfg.LogWriter
	if logw == nil {
		logw = io.Discard
	}
	classifyFn := cfg.Classify
	if classifyFn == nil {
		classifyFn = classify.Classify
	}
	return &Session{
		searcher:          searcher,
		history:           cfg.History,
		pageSize:          pageSize,
		logw:              logw,
		onStateChange:     cfg.OnStateChange,
		onSearchSucceeded: cfg.OnSearchSucceeded,
		classifyFn:        classifyFn,
		state:             State{Kind: StateInitial},
	}
}

// State returns the current observable state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Query returns the query the session currently owns.
func (s *Session) Query() types.SearchQuery {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.query
}

// Stats returns the request/cache-hit counters.
func (s *Session) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats
}

// Update replaces the session's query text and scope. Any pending debounce
// timer and in-flight attempt are cancelled first. Empty text resets the
// session to Initial without classification.
func (s *Session) Update(text string, scope types.Scope) {
	text = strings.TrimSpace(text)

	s.mu.Lock()
	s.cancelLocked()
	if text == "" {
		s.query = types.SearchQuery{}
		st := State{Kind: StateInitial}
		s.state = st
		cb := s.onStateChange
		s.mu.Unlock()
		if cb != nil {
			cb(st)
		}
		return
	}

	delay, _ := s.classifyFn(text)
	q := types.SearchQuery{Text: text, Scope: scope}
	s.query = q
	s.launchLocked(q, delay, false)
	s.mu.Unlock()
}

// Clear resets the session to Initial and cancels outstanding work.
func (s *Session) Clear() {
	s.Update("", types.ScopeAll)
}

// Retry re-issues the current query after a terminal failure, with a fresh
// retry budget and no debounce. No-op outside the Error state.
func (s *Session) Retry() {
	s.mu.Lock()
	if s.state.Kind != StateError || s.query.IsEmpty() {
		s.mu.Unlock()
		return
	}
	s.cancelLocked()
	s.launchLocked(s.query, 0, false)
	s.mu.Unlock()
}

// LoadMore fetches the next page and appends to the shown results. No-op
// unless results are shown, more pages are implied, and nothing is in
// flight (including a pending debounce).
func (s *Session) LoadMore() {
	s.mu.Lock()
	if s.state.Kind != StateResults || !s.state.HasMore || s.busy {
		s.mu.Unlock()
		return
	}
	s.query = s.query.NextPage()
	s.launchLocked(s.query, 0, true)
	s.mu.Unlock()
}

// Close cancels any outstanding work. The session may be reused afterwards.
func (s *Session) Close() {
	s.mu.Lock()
	s.cancelLocked()
	s.mu.Unlock()
}

// launchLocked starts a new tagged attempt. Caller holds mu and has
// cancelled the previous attempt.
func (s *Session) launchLocked(q types.SearchQuery, delay time.Duration, loadMore bool) {
	s.gen++
	gen := s.gen
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.busy = true
	go func() {
		defer cancel()
		s.run(ctx, gen, q, delay, loadMore)
	}()
}

// cancelLocked cancels the pending debounce timer or in-flight attempt.
func (s *Session) cancelLocked() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.busy = false
}

// run is one attempt's lifecycle: debounce wait, Searching transition,
// fetch with retries, and a generation-checked state write.
func (s *Session) run(ctx context.Context, gen uint64, q types.SearchQuery, delay time.Duration, loadMore bool) {
	if delay > 0 {
		select {
		case <-ctx.Done():
			return
		case <-time.After(delay):
		}
	}

	// Page fetches keep the current results visible; fresh queries show
	// the Searching state once the debounce has elapsed.
	var prevItems []types.SearchResultItem
	if loadMore {
		s.mu.Lock()
		if gen != s.gen {
			s.mu.Unlock()
			return
		}
		prevItems = s.state.Items
		s.mu.Unlock()
	} else if !s.apply(gen, State{Kind: StateSearching}) {
		return
	}

	res, err := s.fetch(ctx, q)

	s.mu.Lock()
	if gen != s.gen || ctx.Err() != nil {
		// Superseded: discard silently.
		s.mu.Unlock()
		return
	}
	s.busy = false
	s.cancel = nil

	if err != nil {
		fmt.Fprintf(s.logw, "warning: search %q (page %d) failed: %v\n", q.Text, q.Page, err)
		if loadMore {
			// The state machine has no Results→Error edge; a failed page
			// fetch keeps the shown results and rewinds the cursor.
			s.query.Page--
			s.mu.Unlock()
			return
		}
		st := State{Kind: StateError, Message: messageFor(err)}
		s.state = st
		cb := s.onStateChange
		s.mu.Unlock()
		if cb != nil {
			cb(st)
		}
		return
	}

	s.stats.Requests++
	if res.CacheHit {
		s.stats.CacheHits++
	}

	items := catalog.FilterByScope(res.Items, q.Scope, q.Text)
	hasMore := len(res.Items) >= s.pageSize

	var st State
	switch {
	case loadMore:
		st = State{Kind: StateResults, Items: appendNew(prevItems, items), HasMore: hasMore}
	case len(items) == 0:
		st = State{Kind: StateNoResults}
	default:
		st = State{Kind: StateResults, Items: items, HasMore: hasMore}
	}
	s.state = st

	cbState := s.onStateChange
	var cbOK func(types.SearchQuery)
	var record Recorder
	if !loadMore {
		record = s.history
		cbOK = s.onSearchSucceeded
	}
	s.mu.Unlock()

	if record != nil {
		record.Add(q.Text)
	}
	if cbState != nil {
		cbState(st)
	}
	if cbOK != nil {
		cbOK(q)
	}
}

// fetch performs the attempt chain for one logical search: up to 2 retries
// with exponential backoff on transient failures. The context interrupts
// both the request and the backoff waits, so cancellation cuts a retry
// sequence short.
func (s *Session) fetch(ctx context.Context, q types.SearchQuery) (catalog.Result, error) {
	for attempt := 0; ; attempt++ {
		res, err := s.searcher.Search(ctx, q, s.pageSize)
		if err == nil {
			return res, nil
		}
		wait, retry := Backoff(err, attempt)
		if !retry {
			return catalog.Result{}, err
		}
		fmt.Fprintf(s.logw, "warning: attempt %d for %q failed, retrying in %v: %v\n", attempt+1, q.Text, wait, err)
		select {
		case <-ctx.Done():
			return catalog.Result{}, err
		case <-time.After(wait):
		}
	}
}

// apply installs st if gen is still current. Returns false when superseded.
func (s *Session) apply(gen uint64, st State) bool {
	s.mu.Lock()
	if gen != s.gen {
		s.mu.Unlock()
		return false
	}
	s.state = st
	cb := s.onStateChange
	s.mu.Unlock()
	if cb != nil {
		cb(st)
	}
	return true
}

// appendNew appends items not already present, keyed by edition ISBN when
// available and by title+authors otherwise, so overlapping pages never
// duplicate entries.
func appendNew(existing, incoming []types.SearchResultItem) []types.SearchResultItem {
	seen := make(map[string]struct{}, len(existing))
	for _, r := range existing {
		seen[dedupKey(r)] = struct{}{}
	}
	merged := existing
	for _, r := range incoming {
		key := dedupKey(r)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		merged = append(merged, r)
	}
	return merged
}

func dedupKey(r types.SearchResultItem) string {
	if len(r.Editions) > 0 && r.Editions[0].ISBN() != "" {
		return "isbn:" + r.Editions[0].ISBN()
	}
	return "work:" + strings.ToLower(r.Work.Title()) + "|" + strings.ToLower(r.AuthorDisplay())
}

// messageFor maps an error to its user-facing message by category. The raw
// error goes to the log writer only.
func messageFor(err error) string {
	kind, ok := catalog.KindOf(err)
	if !ok {
		return "Something went wrong. Please try again."
	}
	switch kind {
	case catalog.KindNetwork:
		return "Could not reach the catalog. Check your connection and try again."
	case catalog.KindInvalidQuery:
		return "Please enter a valid search term."
	case catalog.KindHTTP, catalog.KindInvalidResponse:
		if catalog.Retryable(err) {
			return "The catalog service is unavailable. Please try again."
		}
		return "Something went wrong. Please try again."
	default:
		return "Something went wrong. Please try again."
	}
}
