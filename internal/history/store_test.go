// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package history

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/bookfinder/pkg/types"
)

func TestAddDedupCaseAndWhitespace(t *testing.T) {
	s := NewStore(10, nil, nil)

	s.Add("Dune")
	s.Add("dune ")

	texts := s.Texts()
	require.Len(t, texts, 1, "case/whitespace variants are one entry")
	assert.Equal(t, "dune", texts[0], "the newest variant wins")
}

func TestAddMostRecentFirst(t *testing.T) {
	s := NewStore(10, nil, nil)

	s.Add("first")
	s.Add("second")
	s.Add("first")

	assert.Equal(t, []string{"first", "second"}, s.Texts(), "re-adding moves an entry to the front")
}

func TestCapacityEnforced(t *testing.T) {
	s := NewStore(10, nil, nil)

	for i := 0; i < 15; i++ {
		s.Add(fmt.Sprintf("query %d", i))
	}

	texts := s.Texts()
	require.Len(t, texts, 10)
	assert.Equal(t, "query 14", texts[0])
	assert.Equal(t, "query 5", texts[9], "oldest entries fall off")
}

func TestAddIgnoresEmpty(t *testing.T) {
	s := NewStore(10, nil, nil)
	s.Add("   ")
	assert.Empty(t, s.Texts())
}

func TestClear(t *testing.T) {
	s := NewStore(10, nil, nil)
	s.Add("dune")
	s.Clear()
	assert.Empty(t, s.Texts())
}

func TestSQLitePersistRoundTrip(t *testing.T) {
	cfg := types.HistoryConfig{DataDir: t.TempDir(), Capacity: 10}

	p, err := OpenSQLite(cfg)
	require.NoError(t, err)

	s := NewStore(cfg.Capacity, p, nil)
	s.Add("the martian")
	s.Add("dune")
	require.NoError(t, p.Close())

	// Reopen: the store restores most-recent-first order.
	p2, err := OpenSQLite(cfg)
	require.NoError(t, err)
	defer p2.Close()

	restored := NewStore(cfg.Capacity, p2, nil)
	assert.Equal(t, []string{"dune", "the martian"}, restored.Texts())
}

func TestSQLiteLoadEmpty(t *testing.T) {
	p, err := OpenSQLite(types.HistoryConfig{DataDir: t.TempDir()})
	require.NoError(t, err)
	defer p.Close()

	entries, err := p.Load()
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestLoadTruncatesToCapacity(t *testing.T) {
	p, err := OpenSQLite(types.HistoryConfig{DataDir: t.TempDir()})
	require.NoError(t, err)
	defer p.Close()

	big := NewStore(20, p, nil)
	for i := 0; i < 15; i++ {
		big.Add(fmt.Sprintf("query %d", i))
	}

	small := NewStore(10, p, nil)
	assert.Len(t, small.Texts(), 10, "restore honors the configured capacity")
}
