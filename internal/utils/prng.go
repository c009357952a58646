// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"
)

// PRNGService wraps Go's random generator so every random decision in the
// game flows through one seedable source instead of the ambient global one.
type PRNGService struct {
	rng *rand.Rand
}

// NewPRNGService creates a service with the given seed. A zero seed falls
// back to the current time, for normal play.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{rng: rand.New(rand.NewSource(seed))}
}

// Intn returns a random int in [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 returns a random float in [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}
