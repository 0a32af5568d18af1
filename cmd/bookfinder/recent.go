// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var recentCmd = &cobra.Command{
	Use:   "recent",
	Short: "List or clear the recent-search history",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		store, closeStore := openHistory(cfg.History)
		defer closeStore()

		if clear, _ := cmd.Flags().GetBool("clear"); clear {
			store.Clear()
			fmt.Fprintln(cmd.OutOrStdout(), "Recent searches cleared.")
			return nil
		}

		entries := store.Entries()
		if len(entries) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No recent searches.")
			return nil
		}
		for i, e := range entries {
			fmt.Fprintf(cmd.OutOrStdout(), "%2d  %-40s  %s\n", i+1, e.Text, e.InsertedAt.Format("2006-01-02 15:04"))
		}
		return nil
	},
}

func init() {
	recentCmd.Flags().Bool("clear", false, "remove all recent searches")

	rootCmd.AddCommand(recentCmd)
}
