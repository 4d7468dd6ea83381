package memcache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrendCacheSetGet(t *testing.T) {
	cache := NewTrendCache()

	payload := map[string]interface{}{"destinations": []string{"AlUla", "Dubai"}}
	cache.Set("Middle East", payload, time.Minute)

	got, ok := cache.Get("Middle East")
	require.True(t, ok)
	assert.Equal(t, payload, got)

	_, ok = cache.Get("Asia")
	assert.False(t, ok)
}

func TestTrendCacheExpiry(t *testing.T) {
	cache := NewTrendCache()

	cache.Set("Europe", map[string]interface{}{"x": 1}, 10*time.Millisecond)
	time.Sleep(25 * time.Millisecond)

	_, ok := cache.Get("Europe")
	assert.False(t, ok)
}

func TestTrendCacheOverwrite(t *testing.T) {
	cache := NewTrendCache()

	cache.Set("Asia", map[string]interface{}{"v": 1}, time.Minute)
	cache.Set("Asia", map[string]interface{}{"v": 2}, time.Minute)

	got, ok := cache.Get("Asia")
	require.True(t, ok)
	assert.Equal(t, map[string]interface{}{"v": 2}, got)
}
