package memcache

import (
	"sync"
	"time"
)

// TrendCache holds trend-analysis payloads keyed by region so repeated
// /trending calls don't hit the generation service inside the TTL window.
// Planning runs never touch this cache; it only fronts advisory content.
type TrendCacheStore interface {
	Set(region string, payload map[string]interface{}, ttl time.Duration)

	// Get returns the cached payload for region if not expired.
	Get(region string) (map[string]interface{}, bool)
}

type entry struct {
	payload   map[string]interface{}
	expiresAt time.Time
}

type TrendCache struct {
	mu   sync.RWMutex
	data map[string]entry
}

func NewTrendCache() *TrendCache {
	return &TrendCache{
		data: make(map[string]entry),
	}
}

func (s *TrendCache) Set(region string, payload map[string]interface{}, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[region] = entry{
		payload:   payload,
		expiresAt: time.Now().Add(ttl),
	}
}

func (s *TrendCache) Get(region string) (map[string]interface{}, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.data[region]
	if !ok || time.Now().After(e.expiresAt) {
		return nil, false
	}
	return e.payload, true
}
