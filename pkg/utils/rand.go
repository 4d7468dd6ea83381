package utils

import (
	"math/rand"
	"sync"
	"time"
)

// RandSource is the injectable randomness used by the mock providers. A fixed
// seed pins every generated price and selection, which is how the tests keep
// provider output deterministic. The mutex lets concurrent planning runs share
// one source safely.
type RandSource struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewRandSource seeds a source; seed 0 means time-based (production default).
func NewRandSource(seed int64) *RandSource {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &RandSource{r: rand.New(rand.NewSource(seed))}
}

// IntN returns a value in [0, n).
func (s *RandSource) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Intn(n)
}

// IntBetween returns a value in [min, max] inclusive.
func (s *RandSource) IntBetween(min, max int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return min + s.r.Intn(max-min+1)
}

// FloatBetween returns a value in [min, max).
func (s *RandSource) FloatBetween(min, max float64) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return min + s.r.Float64()*(max-min)
}

// Bool returns true with probability 1/2.
func (s *RandSource) Bool() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Intn(2) == 0
}
