// Package config holds the service configuration of the maritime map server.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
)

const (
	// DefaultConfigPath is where `maritimestyle serve` looks for its config.
	DefaultConfigPath = "/etc/maritimemap/config.toml"

	DefaultListen         = ":8089"
	DefaultArchivePath    = "./public/maritime.pmtiles"
	DefaultGlyphsUpstream = "https://fonts.openmaptiles.org"
	DefaultGlyphsDir      = "./public/fonts"

	defaultCacheNumCounters = 1e5
	defaultCacheMaxCost     = 64 << 20
	defaultCacheTTLSec      = 3600
	defaultGlyphRetryMax    = 3
	defaultGlyphTimeoutSec  = 10
)

type Config struct {
	// Listen is the HTTP listen address.
	Listen string `toml:"listen"`

	// ArchivePath is the .pmtiles file served at /maritime.pmtiles.
	ArchivePath string `toml:"archive_path"`

	// StyleConfigPath optionally points at a partial style config (json,
	// yaml or toml) applied to GET /style.json.
	StyleConfigPath string `toml:"style_config_path"`

	Glyphs   GlyphsConfig   `toml:"glyphs"`
	Cache    CacheConfig    `toml:"cache"`
	Database DatabaseConfig `toml:"database"`
}

type GlyphsConfig struct {
	// Upstream is the glyph server queried on a local miss.
	Upstream string `toml:"upstream"`

	// Dir caches fetched glyph ranges on disk.
	Dir string `toml:"dir"`

	RetryMax   int   `toml:"retry_max"`
	TimeoutSec int64 `toml:"timeout_sec"`
}

type CacheConfig struct {
	NumCounters int64 `toml:"num_counters"`
	MaxCost     int64 `toml:"max_cost"`
	TTLSec      int64 `toml:"ttl_sec"`
}

// TTL returns the cache entry lifetime.
func (c CacheConfig) TTL() time.Duration {
	return time.Duration(c.TTLSec) * time.Second
}

type DatabaseConfig struct {
	// DSN is a Postgres connection string. Presets are disabled when empty.
	DSN     string `toml:"dsn"`
	Migrate bool   `toml:"migrate"`
	Seed    bool   `toml:"seed"`
}

// NewConfig returns a Config with every default applied.
func NewConfig() *Config {
	return &Config{
		Listen:      DefaultListen,
		ArchivePath: DefaultArchivePath,
		Glyphs: GlyphsConfig{
			Upstream:   DefaultGlyphsUpstream,
			Dir:        DefaultGlyphsDir,
			RetryMax:   defaultGlyphRetryMax,
			TimeoutSec: defaultGlyphTimeoutSec,
		},
		Cache: CacheConfig{
			NumCounters: defaultCacheNumCounters,
			MaxCost:     defaultCacheMaxCost,
			TTLSec:      defaultCacheTTLSec,
		},
	}
}

// Load reads the TOML file at path over the defaults. Keys missing from the
// file keep their default value.
func Load(path string) (*Config, error) {
	cfg := NewConfig()

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file %q: %w", path, err)
	}
	defer f.Close()

	if err := toml.NewDecoder(f).DisallowUnknownFields().Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %q: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Listen == "" {
		return fmt.Errorf("listen address must not be empty")
	}
	if c.Glyphs.RetryMax < 0 {
		return fmt.Errorf("glyphs.retry_max must not be negative, got %d", c.Glyphs.RetryMax)
	}
	if c.Cache.MaxCost <= 0 || c.Cache.NumCounters <= 0 {
		return fmt.Errorf("cache.max_cost and cache.num_counters must be positive")
	}
	return nil
}
