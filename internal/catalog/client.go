// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog implements the HTTP client for the remote book catalog.
// The client performs exactly one request/response cycle per call; retry
// and backoff are owned by the caller so that cancellation can interrupt a
// retry sequence cleanly.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
	"unicode/utf8"

	"github.com/pdiddy/bookfinder/pkg/types"
)

// DefaultMaxResults is the page size requested when the caller passes 0.
const DefaultMaxResults = 20

// The catalog sets X-Cache to "HIT" on cache hits; any other value,
// including absent, is a miss.
const (
	cacheHeader    = "X-Cache"
	providerHeader = "X-Provider"
)

// Result is one decoded catalog response.
type Result struct {
	// Items are the decoded results, provider-agnostic regardless of the
	// payload schema the catalog used.
	Items []types.SearchResultItem

	// CacheHit reports whether the catalog served the response from its
	// cache layer.
	CacheHit bool

	// Provider is the upstream provider label echoed by the catalog.
	Provider string

	// TotalItems is the catalog's reported total, 0 when not sent.
	TotalItems int
}

// Client issues search requests against a fixed catalog origin. The
// embedded http.Client is stateless apart from its connection pool and is
// safe for concurrent use by multiple sessions.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	userAgent      string
	requestTimeout time.Duration
}

// NewClient builds a catalog client from configuration. The http.Client
// timeout bounds the full transfer; the per-request timeout is applied via
// context in Search.
func NewClient(cfg types.CatalogConfig) *Client {
	resourceTimeout := cfg.ResourceTimeout
	if resourceTimeout <= 0 {
		resourceTimeout = 30 * time.Second
	}
	requestTimeout := cfg.RequestTimeout
	if requestTimeout <= 0 {
		requestTimeout = 10 * time.Second
	}
	return &Client{
		httpClient:     &http.Client{Timeout: resourceTimeout},
		baseURL:        cfg.BaseURL,
		userAgent:      cfg.UserAgent,
		requestTimeout: requestTimeout,
	}
}

// endpointFor routes a scope to its catalog path. ScopeAll deliberately
// routes to the title endpoint even for identifier-shaped text: title
// search handles identifiers adequately and gives broader coverage than
// the ISBN endpoint. Do not "fix" this without product sign-off.
func endpointFor(scope types.Scope) string {
	switch scope {
	case types.ScopeAuthor:
		return "/search/author"
	case types.ScopeISBN:
		return "/search/isbn"
	default:
		return "/search/title"
	}
}

// Search performs one catalog request for the query. No internal retry.
func (c *Client) Search(ctx context.Context, query types.SearchQuery, maxResults int) (Result, error) {
	if query.IsEmpty() || !utf8.ValidString(query.Text) {
		return Result{}, newError(KindInvalidQuery, fmt.Errorf("unencodable query %q", query.Text))
	}

	params := url.Values{"q": {query.Text}}
	if query.Page > 0 {
		params.Set("page", fmt.Sprintf("%d", query.Page))
	}
	return c.get(ctx, endpointFor(query.Scope), params, maxResults)
}

// SearchAdvanced queries the multi-field endpoint with any subset of the
// three identity parameters.
func (c *Client) SearchAdvanced(ctx context.Context, author, title, isbn string, maxResults int) (Result, error) {
	if author == "" && title == "" && isbn == "" {
		return Result{}, newError(KindInvalidQuery, fmt.Errorf("advanced search needs at least one of author, title, isbn"))
	}

	params := url.Values{}
	if author != "" {
		params.Set("author", author)
	}
	if title != "" {
		params.Set("title", title)
	}
	if isbn != "" {
		params.Set("isbn", isbn)
	}
	return c.get(ctx, "/search/advanced", params, maxResults)
}

// SearchAuto queries the legacy unified endpoint, which scopes the query
// server-side.
func (c *Client) SearchAuto(ctx context.Context, text string, maxResults int) (Result, error) {
	if text == "" || !utf8.ValidString(text) {
		return Result{}, newError(KindInvalidQuery, fmt.Errorf("unencodable query %q", text))
	}
	return c.get(ctx, "/search/auto", url.Values{"q": {text}}, maxResults)
}

// get executes one GET against path and decodes the response envelope.
func (c *Client) get(ctx context.Context, path string, params url.Values, maxResults int) (Result, error) {
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}
	params.Set("maxResults", fmt.Sprintf("%d", maxResults))

	base, err := url.Parse(c.baseURL)
	if err != nil || base.Host == "" {
		return Result{}, newError(KindInvalidURL, fmt.Errorf("catalog base URL %q: %v", c.baseURL, err))
	}
	reqURL := base.JoinPath(path)
	reqURL.RawQuery = params.Encode()

	ctx, cancel := context.WithTimeout(ctx, c.requestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return Result{}, newError(KindInvalidURL, err)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Result{}, newError(KindNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Result{}, newHTTPError(resp.StatusCode)
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return Result{}, newError(KindInvalidResponse, fmt.Errorf("malformed envelope: %w", err))
	}

	provider := resp.Header.Get(providerHeader)
	if provider == "" {
		provider = env.Provider
	}
	if provider == "" {
		provider = "catalog"
	}

	items, err := decodeItems(env, provider)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Items:      items,
		CacheHit:   resp.Header.Get(cacheHeader) == "HIT",
		Provider:   provider,
		TotalItems: env.TotalItems,
	}, nil
}
