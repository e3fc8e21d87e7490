// Package pokeapi fetches live detail data from a PokeAPI-compatible REST
// service.
package pokeapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/GiuseppeVizzari/pokedex2022-applicazioni-web/internal/logging"
)

// DefaultBaseURL is the public PokeAPI v2 endpoint.
const DefaultBaseURL = "https://pokeapi.co/api/v2"

const (
	// Resource names used in URLs, cache keys and log fields.
	ResourcePokemon = "pokemon"
	ResourceSpecies = "pokemon-species"

	maxBodyBytes = 4 << 20
)

// ErrNotFound is matched by a StatusError carrying HTTP 404.
var ErrNotFound = errors.New("resource not found")

// StatusError is returned for any non-2xx response.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: unexpected status %d %s", e.URL, e.StatusCode, http.StatusText(e.StatusCode))
}

// Is reports whether target is ErrNotFound and the status was 404.
func (e *StatusError) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == http.StatusNotFound
}

// Config configures a Client.
type Config struct {
	BaseURL string
	// Timeout bounds a single request. Zero means no client-side timeout.
	Timeout time.Duration
	// CacheTTL enables an in-memory response cache when positive.
	CacheTTL time.Duration
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client. The configured
// Timeout is applied to it when non-zero.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// Client is safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
	cache      *cache.Cache
}

// NewClient builds a Client from cfg.
func NewClient(cfg Config, opts ...Option) *Client {
	base := strings.TrimRight(cfg.BaseURL, "/")
	if base == "" {
		base = DefaultBaseURL
	}

	c := &Client{
		baseURL:    base,
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	if cfg.Timeout > 0 {
		hc := *c.httpClient
		hc.Timeout = cfg.Timeout
		c.httpClient = &hc
	}
	if cfg.CacheTTL > 0 {
		c.cache = cache.New(cfg.CacheTTL, cfg.CacheTTL*2) //nolint:mnd // cleanup interval
	}
	return c
}

// BaseURL returns the normalized API root.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// ResourceURL returns the URL for resource/id, with the trailing slash the
// API uses.
func (c *Client) ResourceURL(resource string, id int) string {
	return fmt.Sprintf("%s/%s/%d/", c.baseURL, resource, id)
}

// Pokemon fetches /pokemon/{id}/.
func (c *Client) Pokemon(ctx context.Context, id int) (*Pokemon, error) {
	key := cacheKey(ResourcePokemon, id)
	if p, ok := c.cached(key).(*Pokemon); ok {
		return p, nil
	}

	var resp pokemonResponse
	if err := c.getJSON(ctx, ResourcePokemon, id, &resp); err != nil {
		return nil, err
	}
	p := resp.toPokemon()
	c.store(key, p)
	return p, nil
}

// Species fetches /pokemon-species/{id}/.
func (c *Client) Species(ctx context.Context, id int) (*Species, error) {
	key := cacheKey(ResourceSpecies, id)
	if s, ok := c.cached(key).(*Species); ok {
		return s, nil
	}

	var resp speciesResponse
	if err := c.getJSON(ctx, ResourceSpecies, id, &resp); err != nil {
		return nil, err
	}
	s := resp.toSpecies()
	c.store(key, s)
	return s, nil
}

func cacheKey(resource string, id int) string {
	return fmt.Sprintf("%s:%d", resource, id)
}

func (c *Client) cached(key string) any {
	if c.cache == nil {
		return nil
	}
	v, found := c.cache.Get(key)
	if !found {
		return nil
	}
	return v
}

func (c *Client) store(key string, v any) {
	if c.cache != nil {
		c.cache.Set(key, v, cache.DefaultExpiration)
	}
}

func (c *Client) getJSON(ctx context.Context, resource string, id int, out any) error {
	log := logging.FromContext(ctx)
	url := c.ResourceURL(resource, id)
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("fetching %s %d: %w", resource, id, err)
	}
	defer resp.Body.Close()

	log.Debug().Ctx(ctx).
		Str("component", "pokeapi").
		Str("resource", resource).
		Int("pokemon_id", id).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("api request completed")

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return &StatusError{URL: url, StatusCode: resp.StatusCode}
	}

	if err = json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(out); err != nil {
		return fmt.Errorf("decoding %s %d: %w", resource, id, err)
	}
	return nil
}
