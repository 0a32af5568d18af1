// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings for components that make network requests.
type HTTPConfig struct {
	// RequestTimeout bounds a single request/response exchange (default 10s).
	RequestTimeout time.Duration `json:"request_timeout" yaml:"request_timeout"`

	// ResourceTimeout bounds the full transfer including the body (default 30s).
	ResourceTimeout time.Duration `json:"resource_timeout" yaml:"resource_timeout"`

	// UserAgent is the User-Agent header sent with requests (e.g. "bookfinder/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// CatalogConfig holds settings for the remote catalog client.
type CatalogConfig struct {
	HTTPConfig `yaml:",inline"`

	// BaseURL is the catalog service origin (e.g. "https://books.example.com").
	BaseURL string `json:"base_url" yaml:"base_url"`

	// MaxResults is the page size requested from the catalog (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// HistoryConfig holds settings for the recent-search store.
type HistoryConfig struct {
	// DataDir is the directory holding the history database (default ".").
	DataDir string `json:"data_dir" yaml:"data_dir"`

	// Capacity is the maximum number of retained entries (default 10).
	Capacity int `json:"capacity" yaml:"capacity"`
}

// Config groups all bookfinder settings.
type Config struct {
	Catalog CatalogConfig `json:"catalog" yaml:"catalog"`
	History HistoryConfig `json:"history" yaml:"history"`
}

// Defaults returns the built-in configuration used when no file or
// environment overrides are present.
func Defaults() Config {
	return Config{
		Catalog: CatalogConfig{
			HTTPConfig: HTTPConfig{
				RequestTimeout:  10 * time.Second,
				ResourceTimeout: 30 * time.Second,
				UserAgent:       "bookfinder/0.1",
			},
			MaxResults: 20,
		},
		History: HistoryConfig{
			DataDir:  ".",
			Capacity: 10,
		},
	}
}
