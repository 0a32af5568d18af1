// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the bookfinder CLI, the search
// surface of the personal library tracker. Subcommands cover catalog
// search, recent-search history, and suggestions.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/bookfinder/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the bookfinder CLI.
var rootCmd = &cobra.Command{
	Use:   "bookfinder",
	Short: "Search a remote book catalog",
	Long: `bookfinder is the search core of the personal library tracker. It queries
a remote book catalog with scope-aware routing (title, author, ISBN),
retries transient failures with backoff, and keeps a bounded history of
recent searches.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./bookfinder.yaml or ~/.config/bookfinder/config.yaml)")
	rootCmd.PersistentFlags().String("base-url", "", "catalog service origin (overrides config)")
	viper.BindPFlag("catalog.base_url", rootCmd.PersistentFlags().Lookup("base-url"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("bookfinder")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "bookfinder"))
		}
	}

	viper.SetEnvPrefix("BOOKFINDER")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig merges file/env/flag settings over the built-in defaults.
func loadConfig() types.Config {
	cfg := types.Defaults()
	if v := viper.GetString("catalog.base_url"); v != "" {
		cfg.Catalog.BaseURL = v
	}
	if v := viper.GetDuration("catalog.request_timeout"); v > 0 {
		cfg.Catalog.RequestTimeout = v
	}
	if v := viper.GetDuration("catalog.resource_timeout"); v > 0 {
		cfg.Catalog.ResourceTimeout = v
	}
	if v := viper.GetString("catalog.user_agent"); v != "" {
		cfg.Catalog.UserAgent = v
	}
	if v := viper.GetInt("catalog.max_results"); v > 0 {
		cfg.Catalog.MaxResults = v
	}
	if v := viper.GetString("history.data_dir"); v != "" {
		cfg.History.DataDir = v
	}
	if v := viper.GetInt("history.capacity"); v > 0 {
		cfg.History.Capacity = v
	}
	return cfg
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
