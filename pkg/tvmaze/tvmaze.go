// Package tvmaze wraps the TVMaze catalog behind a durable response cache.
// Every lookup goes through the cache first (24h TTL); remote failures
// degrade to stale rows, and structurally empty cached payloads are treated
// as poison and refetched rather than trusted.
package tvmaze

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"context"

	mhttp "github.com/dvrz/dvrz/pkg/http"
	"github.com/dvrz/dvrz/pkg/logger"
	"github.com/dvrz/dvrz/pkg/storage"
)

const DefaultBaseURL = "https://api.tvmaze.com"

// cacheTTL bounds how long a cached catalog response is considered fresh.
const cacheTTL = 24 * time.Hour

type Client struct {
	baseURL string
	http    mhttp.HTTPClient
	cache   storage.MetadataCacheStorage
	now     func() time.Time
}

type Option func(*Client)

func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

func WithHTTPClient(client mhttp.HTTPClient) Option {
	return func(c *Client) {
		c.http = client
	}
}

// New creates a catalog client persisting responses through cache.
func New(cache storage.MetadataCacheStorage, opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		http:    mhttp.NewRateLimitedClient(),
		cache:   cache,
		now:     time.Now,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Search looks up shows by name. A cached result list in which no entry
// passes the structural validity check (a nested show with a real id) is
// treated as poisoned and refetched live before giving up.
func (c *Client) Search(ctx context.Context, query string) ([]SearchResult, error) {
	endpoint := "/search/shows?q=" + url.QueryEscape(query)

	data, err := c.fetchCached(ctx, endpoint, false)
	if err != nil {
		return nil, err
	}

	results, err := decodeResults(data)
	if err != nil {
		return nil, err
	}

	if len(results) > 0 && !anyValidResult(results) {
		logger.FromCtx(ctx).Warnw("cached search results are structurally invalid, refetching", "query", query)
		data, err = c.fetchCached(ctx, endpoint, true)
		if err != nil {
			return nil, err
		}
		return decodeResults(data)
	}

	return results, nil
}

// GetShow fetches a show by catalog id with its episodes embedded. On
// success the search cache for the show's own name is pre-answered, so a
// later name search resolves without touching the remote catalog.
func (c *Client) GetShow(ctx context.Context, id string) (*Show, error) {
	endpoint := fmt.Sprintf("/shows/%s?embed=episodes", url.PathEscape(id))

	data, err := c.fetchCached(ctx, endpoint, false)
	if err != nil {
		return nil, err
	}

	var s Show
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to decode show %s: %w", id, err)
	}

	if s.ID != 0 && s.Name != "" {
		c.SeedSearch(ctx, s.Name, &s)
	}

	return &s, nil
}

// Lookup resolves a show by external identifier (imdb preferred, then
// thetvdb). Returns nil when neither id is provided.
func (c *Client) Lookup(ctx context.Context, imdb string, thetvdb int) (*Show, error) {
	var endpoint string
	switch {
	case imdb != "":
		endpoint = "/lookup/shows?imdb=" + url.QueryEscape(imdb)
	case thetvdb != 0:
		endpoint = fmt.Sprintf("/lookup/shows?thetvdb=%d", thetvdb)
	default:
		return nil, nil
	}

	data, err := c.fetchCached(ctx, endpoint, false)
	if err != nil {
		return nil, err
	}

	var s Show
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to decode looked-up show: %w", err)
	}

	return &s, nil
}

// SeedSearch pre-populates the search cache for name with a single
// synthetic result wrapping s. The remote search and get-by-id endpoints
// are otherwise never implicitly linked, so this is what lets an
// already-resolved show answer future name searches from cache.
func (c *Client) SeedSearch(ctx context.Context, name string, s *Show) {
	if s == nil || name == "" {
		return
	}

	payload, err := json.Marshal([]SearchResult{{Score: 1, Show: s}})
	if err != nil {
		return
	}

	endpoint := "/search/shows?q=" + url.QueryEscape(name)
	if err := c.cache.SetCacheRow(ctx, endpoint, payload, c.now()); err != nil {
		logger.FromCtx(ctx).Warnw("failed to seed search cache", "name", name, "error", err)
	}
}

// fetchCached serves endpoint from the durable cache when fresh, refetching
// on expiry or poison. When the live call fails and any cached row exists,
// even an expired one, its payload is returned as a degraded success.
func (c *Client) fetchCached(ctx context.Context, endpoint string, skipCache bool) ([]byte, error) {
	log := logger.FromCtx(ctx)

	var cached *storage.CacheRow
	row, err := c.cache.GetCacheRow(ctx, endpoint)
	if err == nil {
		cached = row
	} else if !errors.Is(err, storage.ErrNotFound) {
		log.Warnw("failed to read catalog cache", "endpoint", endpoint, "error", err)
	}

	if cached != nil && !skipCache && c.now().Sub(cached.UpdatedAt) < cacheTTL {
		if payloadValid(cached.Data) {
			return cached.Data, nil
		}
		log.Warnw("cached catalog payload is empty, refetching", "endpoint", endpoint)
	}

	data, err := c.fetch(ctx, endpoint)
	if err != nil {
		if cached != nil && payloadValid(cached.Data) {
			log.Warnw("catalog fetch failed, returning stale cache", "endpoint", endpoint, "error", err)
			return cached.Data, nil
		}
		return nil, err
	}

	if payloadValid(data) {
		if err := c.cache.SetCacheRow(ctx, endpoint, data, c.now()); err != nil {
			log.Warnw("failed to write catalog cache", "endpoint", endpoint, "error", err)
		}
	} else {
		log.Warnw("fetched catalog payload is empty, not caching", "endpoint", endpoint)
	}

	return data, nil
}

func (c *Client) fetch(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("catalog request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog returned %s for %s", resp.Status, endpoint)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog response: %w", err)
	}

	return data, nil
}

// payloadValid reports whether data holds parseable, non-null JSON. An
// empty list still counts as valid; emptiness of search results is judged
// separately by the search-specific poison check.
func payloadValid(data []byte) bool {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return false
	}
	return json.Valid(trimmed)
}

func decodeResults(data []byte) ([]SearchResult, error) {
	var results []SearchResult
	if err := json.Unmarshal(data, &results); err != nil {
		return nil, fmt.Errorf("failed to decode search results: %w", err)
	}
	return results, nil
}

func anyValidResult(results []SearchResult) bool {
	for _, r := range results {
		if r.Show != nil && r.Show.ID > 0 {
			return true
		}
	}
	return false
}
