package stylecache

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khankhulgun/maritimemap/mapstyle"
)

func newCache(t *testing.T) *Cache {
	t.Helper()
	c, err := New(1000, 1<<20, time.Minute)
	require.NoError(t, err)
	t.Cleanup(c.Close)
	return c
}

func TestKeyIsStable(t *testing.T) {
	a, err := Key(mapstyle.Config{
		mapstyle.Water:      mapstyle.Section{mapstyle.OptFill: "#000", mapstyle.OptOpacity: 1},
		mapstyle.Background: "#fff",
	})
	require.NoError(t, err)

	b, err := Key(mapstyle.Config{
		mapstyle.Background: "#fff",
		mapstyle.Water:      map[string]any{mapstyle.OptOpacity: 1, mapstyle.OptFill: "#000"},
	})
	require.NoError(t, err)
	assert.Equal(t, a, b)

	c, err := Key(mapstyle.Config{mapstyle.Background: "#ffe"})
	require.NoError(t, err)
	assert.NotEqual(t, a, c)
}

func TestKeyUnencodable(t *testing.T) {
	_, err := Key(mapstyle.Config{"fn": func() {}})
	assert.ErrorIs(t, err, ErrUnencodable)
}

func TestGet(t *testing.T) {
	c := newCache(t)
	cfg := mapstyle.Config{mapstyle.Water: mapstyle.Section{mapstyle.OptFill: "#123456"}}

	first, hit, err := c.Get(cfg)
	require.NoError(t, err)
	assert.False(t, hit)

	second, hit, err := c.Get(cfg)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, first, second)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(first, &doc))
	assert.Equal(t, "Maritime Map", doc["name"])
	assert.Len(t, doc["layers"], len(mapstyle.LayerIDs()))
}

func TestGetInvalidShape(t *testing.T) {
	c := newCache(t)
	_, _, err := c.Get(mapstyle.Config{mapstyle.Water: "blue"})
	assert.ErrorIs(t, err, mapstyle.ErrInvalidConfigurationShape)
}

func TestGetChecksShapeBeforeLookup(t *testing.T) {
	c := newCache(t)

	_, _, err := c.Get(mapstyle.Config{mapstyle.Water: map[string]string{"1": "#000000"}})
	require.NoError(t, err)

	// Encodes to the same JSON as the config above but is not a valid section.
	_, hit, err := c.Get(mapstyle.Config{mapstyle.Water: map[int]string{1: "#000000"}})
	assert.ErrorIs(t, err, mapstyle.ErrInvalidConfigurationShape)
	assert.False(t, hit)
}

func TestGetSharesEquivalentConfigs(t *testing.T) {
	c := newCache(t)

	_, _, err := c.Get(nil)
	require.NoError(t, err)

	_, hit, err := c.Get(mapstyle.Config{mapstyle.Water: mapstyle.Section{mapstyle.OptFill: "#a8d1e0"}})
	require.NoError(t, err)
	assert.True(t, hit, "override equal to the default builds the same style")
}

func TestGetNonFiniteNumber(t *testing.T) {
	c := newCache(t)

	_, _, err := c.Get(mapstyle.Config{mapstyle.Water: mapstyle.Section{mapstyle.OptOpacity: math.NaN()}})
	assert.ErrorIs(t, err, ErrUnencodable)
}
