// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package savedsearch saves a query and its results to a YAML file so a
// search can be exported and reloaded without re-querying the catalog.
package savedsearch

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/bookfinder/pkg/types"
)

// File is the on-disk representation of a search and its results.
type File struct {
	Query   types.SearchQuery `yaml:"query"`
	Results []Result          `yaml:"results"`
	Summary Summary           `yaml:"summary"`
}

// Result is a search hit in serializable form.
type Result struct {
	Title          string   `json:"title" yaml:"title"`
	Authors        []string `json:"authors,omitempty" yaml:"authors,omitempty"`
	Year           int      `json:"year,omitempty" yaml:"year,omitempty"`
	Language       string   `json:"language,omitempty" yaml:"language,omitempty"`
	Tags           []string `json:"tags,omitempty" yaml:"tags,omitempty"`
	ISBN           string   `json:"isbn,omitempty" yaml:"isbn,omitempty"`
	Publisher      string   `json:"publisher,omitempty" yaml:"publisher,omitempty"`
	PageCount      int      `json:"page_count,omitempty" yaml:"page_count,omitempty"`
	CoverURL       string   `json:"cover_url,omitempty" yaml:"cover_url,omitempty"`
	RelevanceScore float64  `json:"relevance_score" yaml:"relevance_score"`
	Provider       string   `json:"provider" yaml:"provider"`
}

// Summary stores result statistics and a timestamp.
type Summary struct {
	Total     int       `yaml:"total"`
	CacheHit  bool      `yaml:"cache_hit"`
	Timestamp time.Time `yaml:"timestamp"`
}

// FromItem converts a search hit into its serializable form. Only the
// first edition's details are exported.
func FromItem(item types.SearchResultItem) Result {
	r := Result{
		Title:          item.Work.Title(),
		Authors:        item.Work.AuthorNames(),
		Year:           item.Work.Year(),
		Language:       item.Work.Language(),
		Tags:           item.Work.Tags(),
		RelevanceScore: item.RelevanceScore,
		Provider:       item.Provider,
	}
	if len(item.Editions) > 0 {
		ed := item.Editions[0]
		r.ISBN = ed.ISBN()
		r.Publisher = ed.Publisher()
		r.PageCount = ed.PageCount()
		r.CoverURL = ed.CoverURL()
	}
	return r
}

// Write saves a query and its results to path.
func Write(path string, query types.SearchQuery, items []types.SearchResultItem, cacheHit bool) error {
	f := File{
		Query: query,
		Summary: Summary{
			Total:     len(items),
			CacheHit:  cacheHit,
			Timestamp: time.Now(),
		},
	}
	for _, item := range items {
		f.Results = append(f.Results, FromItem(item))
	}

	data, err := yaml.Marshal(&f)
	if err != nil {
		return fmt.Errorf("marshaling saved search: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Read loads a previously saved search from path.
func Read(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading saved search: %w", err)
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing saved search: %w", err)
	}
	return &f, nil
}
