package random

import (
	"math/rand/v2"
	"sync"
	"time"
)

// Source is a goroutine-safe operation.Rand. A zero seed picks one from the
// clock.
type Source struct {
	mu   sync.Mutex
	seed uint64
	rng  *rand.Rand
}

func NewSource(seed uint64) *Source {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Source{seed: seed, rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *Source) Seed() uint64 {
	return s.seed
}

func (s *Source) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64()
}

func (s *Source) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.IntN(n)
}
