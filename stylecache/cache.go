// Package stylecache memoizes encoded style documents by configuration.
package stylecache

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/dgraph-io/ristretto"

	"github.com/khankhulgun/maritimemap/mapstyle"
)

// Cache holds encoded styles. Values are JSON bytes so callers can never
// modify a cached document.
type Cache struct {
	cache *ristretto.Cache
	ttl   time.Duration
}

func New(numCounters, maxCost int64, ttl time.Duration) (*Cache, error) {
	c, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: numCounters,
		MaxCost:     maxCost,
		BufferItems: 64, // number of keys per Get buffer
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize style cache: %w", err)
	}
	return &Cache{cache: c, ttl: ttl}, nil
}

// ErrUnencodable is returned for configs JSON cannot represent, such as
// NaN or infinite numbers.
var ErrUnencodable = errors.New("style config is not JSON encodable")

// Key hashes the canonical JSON form of cfg. Map keys are sorted by the
// encoder, so equal configs hash equally.
func Key(cfg mapstyle.Config) (uint64, error) {
	data, err := json.Marshal(cfg)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrUnencodable, err)
	}
	return xxhash.Sum64(data), nil
}

// Get returns the encoded style for cfg, building and storing it on a miss.
// The key is taken from the merged config, so shape errors surface before
// any lookup and equivalent partial configs share one entry.
func (c *Cache) Get(cfg mapstyle.Config) (data []byte, hit bool, err error) {
	merged, err := mapstyle.Merge(cfg)
	if err != nil {
		return nil, false, err
	}
	key, err := Key(merged)
	if err != nil {
		return nil, false, err
	}

	if cached, found := c.cache.Get(key); found {
		if data, ok := cached.([]byte); ok {
			return data, true, nil
		}
	}

	style := mapstyle.Assemble(merged)
	data, err = json.Marshal(style)
	if err != nil {
		return nil, false, fmt.Errorf("failed to encode style: %w: %w", ErrUnencodable, err)
	}

	c.cache.SetWithTTL(key, data, int64(len(data)), c.ttl)
	c.cache.Wait()

	return data, false, nil
}

// Close stops the cache's background goroutines.
func (c *Cache) Close() {
	c.cache.Close()
}
