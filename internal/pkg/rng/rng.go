// Package rng abstracts the random draws the battle engine depends on, so
// hit checks and target selection can be made deterministic in tests.
package rng

import "math/rand"

// Roller is the source of randomness injected into the battle engine.
type Roller interface {
	// Float64 returns a uniform draw in [0, 1).
	Float64() float64
	// Intn returns a uniform draw in [0, n). Panics if n <= 0.
	Intn(n int) int
}

type source struct {
	r *rand.Rand
}

// New returns a Roller seeded from the given value.
func New(seed int64) Roller {
	return &source{r: rand.New(rand.NewSource(seed))}
}

func (s *source) Float64() float64 { return s.r.Float64() }
func (s *source) Intn(n int) int   { return s.r.Intn(n) }

// Fixed returns a Roller whose every Float64 draw is f. Intn scales the
// same draw onto [0, n). Useful for forcing hit or miss outcomes.
func Fixed(f float64) Roller {
	return &fixed{f: f}
}

type fixed struct {
	f float64
}

func (r *fixed) Float64() float64 { return r.f }

func (r *fixed) Intn(n int) int {
	if n <= 0 {
		panic("rng: Intn with non-positive n")
	}
	i := int(r.f * float64(n))
	if i >= n {
		i = n - 1
	}
	return i
}

// Sequence returns a Roller that yields the given draws in order, cycling
// when exhausted. Intn scales the next draw onto [0, n).
func Sequence(draws ...float64) Roller {
	if len(draws) == 0 {
		panic("rng: Sequence needs at least one draw")
	}
	return &sequence{draws: draws}
}

type sequence struct {
	draws []float64
	next  int
}

func (r *sequence) Float64() float64 {
	f := r.draws[r.next%len(r.draws)]
	r.next++
	return f
}

func (r *sequence) Intn(n int) int {
	if n <= 0 {
		panic("rng: Intn with non-positive n")
	}
	i := int(r.Float64() * float64(n))
	if i >= n {
		i = n - 1
	}
	return i
}
