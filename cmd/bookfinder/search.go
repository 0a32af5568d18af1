// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/bookfinder/internal/catalog"
	"github.com/pdiddy/bookfinder/internal/history"
	"github.com/pdiddy/bookfinder/internal/savedsearch"
	"github.com/pdiddy/bookfinder/internal/session"
	"github.com/pdiddy/bookfinder/pkg/types"
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the catalog for books",
	Long: `Search queries the remote book catalog. The scope flag routes the query
to the title, author, or ISBN endpoint; the default scope searches by
title. The author/title/isbn flags together use the multi-field endpoint
instead.`,
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().String("scope", "all", "query scope: all, title, author, or isbn")
	searchCmd.Flags().Int("max-results", 0, "page size requested from the catalog")
	searchCmd.Flags().Int("pages", 1, "number of result pages to fetch")
	searchCmd.Flags().Bool("json", false, "output results as JSON")
	searchCmd.Flags().String("save", "", "save the query and results to a YAML file")
	searchCmd.Flags().Bool("auto", false, "use the legacy unified endpoint")
	searchCmd.Flags().String("author", "", "multi-field search: author")
	searchCmd.Flags().String("title", "", "multi-field search: title")
	searchCmd.Flags().String("isbn", "", "multi-field search: ISBN")

	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	if cfg.Catalog.BaseURL == "" {
		return fmt.Errorf("no catalog base URL configured: set catalog.base_url or --base-url")
	}
	client := catalog.NewClient(cfg.Catalog)

	maxResults, _ := cmd.Flags().GetInt("max-results")
	if maxResults <= 0 {
		maxResults = cfg.Catalog.MaxResults
	}

	author, _ := cmd.Flags().GetString("author")
	title, _ := cmd.Flags().GetString("title")
	isbn, _ := cmd.Flags().GetString("isbn")
	if author != "" || title != "" || isbn != "" {
		res, err := client.SearchAdvanced(cmd.Context(), author, title, isbn, maxResults)
		if err != nil {
			return err
		}
		return render(cmd, types.SearchQuery{Scope: types.ScopeAll}, res.Items, res.CacheHit, -1)
	}

	text := strings.TrimSpace(strings.Join(args, " "))
	if text == "" {
		return fmt.Errorf("query is empty: provide a search term")
	}

	if auto, _ := cmd.Flags().GetBool("auto"); auto {
		res, err := client.SearchAuto(cmd.Context(), text, maxResults)
		if err != nil {
			return err
		}
		return render(cmd, types.SearchQuery{Text: text}, res.Items, res.CacheHit, -1)
	}

	scopeFlag, _ := cmd.Flags().GetString("scope")
	scope := types.ParseScope(scopeFlag)
	pages, _ := cmd.Flags().GetInt("pages")

	store, closeStore := openHistory(cfg.History)
	defer closeStore()

	states := make(chan session.State, 16)
	sess := session.New(client, session.Config{
		PageSize:      maxResults,
		History:       store,
		LogWriter:     os.Stderr,
		OnStateChange: func(st session.State) { states <- st },
	})
	defer sess.Close()

	sess.Update(text, scope)
	st, err := awaitSettled(cmd.Context(), states)
	if err != nil {
		return err
	}
	if st.Kind == session.StateError {
		return fmt.Errorf("%s", st.Message)
	}

	for page := 1; page < pages && st.HasMore; page++ {
		sess.LoadMore()
		st, err = awaitSettled(cmd.Context(), states)
		if err != nil {
			return err
		}
	}

	stats := sess.Stats()
	return render(cmd, sess.Query(), st.Items, stats.CacheHits > 0, stats.CacheHitRate())
}

// awaitSettled drains session states until a terminal one arrives.
func awaitSettled(ctx context.Context, states chan session.State) (session.State, error) {
	for {
		select {
		case st := <-states:
			switch st.Kind {
			case session.StateResults, session.StateNoResults, session.StateError:
				return st, nil
			}
		case <-ctx.Done():
			return session.State{}, ctx.Err()
		case <-time.After(2 * time.Minute):
			return session.State{}, fmt.Errorf("search timed out")
		}
	}
}

// openHistory opens the SQLite-backed store, falling back to memory-only
// history when the database cannot be opened.
func openHistory(cfg types.HistoryConfig) (*history.Store, func()) {
	persister, err := history.OpenSQLite(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: recent searches will not persist: %v\n", err)
		return history.NewStore(cfg.Capacity, nil, os.Stderr), func() {}
	}
	store := history.NewStore(cfg.Capacity, persister, os.Stderr)
	return store, func() { persister.Close() }
}

// render writes results as a table or JSON, then the save file if requested.
// A negative cacheHitRate suppresses the rate line (direct endpoint calls
// bypass the session's stats).
func render(cmd *cobra.Command, query types.SearchQuery, items []types.SearchResultItem, cacheHit bool, cacheHitRate float64) error {
	asJSON, _ := cmd.Flags().GetBool("json")
	if asJSON {
		if err := renderJSON(cmd.OutOrStdout(), items); err != nil {
			return err
		}
	} else {
		renderTable(cmd.OutOrStdout(), items)
		if cacheHitRate >= 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "Cache hit rate: %.2f\n", cacheHitRate)
		}
	}

	if path, _ := cmd.Flags().GetString("save"); path != "" {
		if err := savedsearch.Write(path, query, items, cacheHit); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Saved to %s\n", path)
	}
	return nil
}
