// Package dice provides the seedable random source behind every roll and computer choice.
package dice

import (
	"math/rand"
	"time"
)

// Roller provides dice rolling functionality.
type Roller struct {
	random *rand.Rand
}

// Config for dice roller
type Config struct {
	// Optional seed for reproducible games. 0 seeds from the clock.
	Seed int64
}

// New creates a new dice roller
func New(cfg *Config) *Roller {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	return &Roller{
		random: rand.New(rand.NewSource(seed)),
	}
}

// Roll rolls a die with the given number of faces, returning a value in [1, sides].
func (r *Roller) Roll(sides int) int {
	if sides < 1 {
		sides = 6 // Default to 6-sided die
	}
	return r.random.Intn(sides) + 1
}

// Intn returns a value in [0, n).
func (r *Roller) Intn(n int) int {
	return r.random.Intn(n)
}

// Pick returns a uniformly random element of options, or "" when there are none.
func (r *Roller) Pick(options []string) string {
	if len(options) == 0 {
		return ""
	}
	return options[r.random.Intn(len(options))]
}
