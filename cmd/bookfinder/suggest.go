// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/bookfinder/internal/suggest"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest [prefix]",
	Short: "Show search suggestions",
	Long: `Suggest combines recent searches, a static popularity list, and
pattern-based completions. With no prefix it shows the browse list.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		store, closeStore := openHistory(cfg.History)
		defer closeStore()

		prefix := strings.TrimSpace(strings.Join(args, " "))
		suggestions := suggest.For(prefix, store.Texts())
		if len(suggestions) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No suggestions.")
			return nil
		}
		for _, s := range suggestions {
			fmt.Fprintln(cmd.OutOrStdout(), s)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(suggestCmd)
}
