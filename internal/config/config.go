// Package config loads the pokedex YAML configuration.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Environment variables that override the configuration file.
const (
	EnvConfigPath = "POKEDEX_CONFIG"
	EnvLogLevel   = "POKEDEX_LOG_LEVEL"
	EnvAPIBaseURL = "POKEDEX_API_BASE_URL"
)

// Display modes accepted by catalog.default_mode.
const (
	ModeGrid  = "grid"
	ModeTable = "table"
)

const (
	configDirName  = ".pokedex"
	configFileName = "config.yaml"

	defaultAPIBaseURL     = "https://pokeapi.co/api/v2"
	defaultArtworkBaseURL = "https://raw.githubusercontent.com/HybridShivam/Pokemon/master/assets/images"
	defaultArtworkWidth   = 32
)

// Common configuration errors.
var (
	ErrInvalidColumns = errors.New("column counts must be positive")
	ErrInvalidMode    = errors.New("unknown display mode")
)

// Config is the complete pokedex configuration.
type Config struct {
	API     APIConfig     `yaml:"api"`
	Artwork ArtworkConfig `yaml:"artwork"`
	Catalog CatalogConfig `yaml:"catalog"`
	Home    HomeConfig    `yaml:"home"`
	Auth    AuthConfig    `yaml:"auth"`
	Logging LoggingConfig `yaml:"logging"`
}

// APIConfig configures the remote PokeAPI client.
type APIConfig struct {
	BaseURL string `yaml:"base_url"`
	// Timeout bounds each request. Zero means no timeout.
	Timeout time.Duration `yaml:"timeout"`
	// CacheTTL keeps successful responses in memory. Zero disables the cache.
	CacheTTL time.Duration `yaml:"cache_ttl"`
}

// ArtworkConfig configures the artwork URL template and rendering.
type ArtworkConfig struct {
	BaseURL string `yaml:"base_url"`
	// Width is the rendered art width in terminal cells.
	Width int `yaml:"width"`
}

// Columns holds a column count per width breakpoint.
type Columns struct {
	XS int `yaml:"xs"`
	SM int `yaml:"sm"`
	MD int `yaml:"md"`
	LG int `yaml:"lg"`
	XL int `yaml:"xl"`
}

// Validate reports whether every breakpoint has at least one column.
func (c Columns) Validate() error {
	for _, n := range []int{c.XS, c.SM, c.MD, c.LG, c.XL} {
		if n < 1 {
			return fmt.Errorf("%w: %+v", ErrInvalidColumns, c)
		}
	}
	return nil
}

// CatalogConfig configures the /pokedex listing.
type CatalogConfig struct {
	DefaultMode string  `yaml:"default_mode"`
	Columns     Columns `yaml:"columns"`
}

// HomeConfig configures the landing page.
type HomeConfig struct {
	Featured []int   `yaml:"featured"`
	Columns  Columns `yaml:"columns"`
}

// AuthConfig configures the in-memory session.
type AuthConfig struct {
	// User starts the session signed in as this user when set.
	User string `yaml:"user"`
	// Users restricts who may sign in. Empty accepts any non-empty name.
	Users []UserEntry `yaml:"users"`
}

// UserEntry is an allow-listed user.
type UserEntry struct {
	Name     string `yaml:"name"`
	Nickname string `yaml:"nickname,omitempty"`
	Email    string `yaml:"email,omitempty"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		API: APIConfig{
			BaseURL: defaultAPIBaseURL,
		},
		Artwork: ArtworkConfig{
			BaseURL: defaultArtworkBaseURL,
			Width:   defaultArtworkWidth,
		},
		Catalog: CatalogConfig{
			DefaultMode: ModeGrid,
			Columns:     Columns{XS: 1, SM: 2, MD: 3, LG: 4, XL: 5},
		},
		Home: HomeConfig{
			Featured: []int{1, 4, 7},
			Columns:  Columns{XS: 1, SM: 1, MD: 3, LG: 3, XL: 3},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Dir returns the pokedex configuration directory (~/.pokedex).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return configDirName
	}
	return filepath.Join(home, configDirName)
}

// DefaultPath returns the configuration file path, honouring POKEDEX_CONFIG.
func DefaultPath() string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}
	return filepath.Join(Dir(), configFileName)
}

// Load reads the configuration at path on top of the defaults, applies
// environment overrides and validates the result. A missing file is not an
// error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	default:
		if err = cfg.decode(data); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	cfg.applyEnv(os.LookupEnv)

	if err = cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) decode(data []byte) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	return dec.Decode(c)
}

// applyEnv applies POKEDEX_* overrides.
func (c *Config) applyEnv(lookupEnv func(string) (string, bool)) {
	if v, ok := lookupEnv(EnvLogLevel); ok && v != "" {
		c.Logging.Level = v
	}
	if v, ok := lookupEnv(EnvAPIBaseURL); ok && v != "" {
		c.API.BaseURL = v
	}
}

// Validate checks the configuration for values the application cannot use.
func (c *Config) Validate() error {
	var errs []error

	if strings.TrimSpace(c.API.BaseURL) == "" {
		errs = append(errs, errors.New("api.base_url is required"))
	}
	if c.API.Timeout < 0 {
		errs = append(errs, fmt.Errorf("api.timeout must be >= 0, got %s", c.API.Timeout))
	}
	if c.API.CacheTTL < 0 {
		errs = append(errs, fmt.Errorf("api.cache_ttl must be >= 0, got %s", c.API.CacheTTL))
	}
	if strings.TrimSpace(c.Artwork.BaseURL) == "" {
		errs = append(errs, errors.New("artwork.base_url is required"))
	}
	if c.Artwork.Width < 1 {
		errs = append(errs, fmt.Errorf("artwork.width must be positive, got %d", c.Artwork.Width))
	}
	switch c.Catalog.DefaultMode {
	case ModeGrid, ModeTable:
	default:
		errs = append(errs, fmt.Errorf("catalog.default_mode: %w %q", ErrInvalidMode, c.Catalog.DefaultMode))
	}
	if err := c.Catalog.Columns.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("catalog.columns: %w", err))
	}
	if err := c.Home.Columns.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("home.columns: %w", err))
	}
	for _, id := range c.Home.Featured {
		if id < 1 {
			errs = append(errs, fmt.Errorf("home.featured: invalid id %d", id))
		}
	}
	for i, u := range c.Auth.Users {
		if strings.TrimSpace(u.Name) == "" {
			errs = append(errs, fmt.Errorf("auth.users[%d]: name is required", i))
		}
	}

	return errors.Join(errs...)
}

// Save writes the configuration as YAML, creating the parent directory.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err = os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config %s: %w", path, err)
	}
	return nil
}
