package rng_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mudforge/battle-api/internal/pkg/rng"
)

func TestFixed(t *testing.T) {
	r := rng.Fixed(0.5)
	assert.Equal(t, 0.5, r.Float64())
	assert.Equal(t, 0.5, r.Float64())
	assert.Equal(t, 2, r.Intn(4))
	assert.Equal(t, 0, rng.Fixed(0.0).Intn(3))
	// a draw of 1.0 still stays inside [0, n)
	assert.Equal(t, 2, rng.Fixed(1.0).Intn(3))
}

func TestSequenceCycles(t *testing.T) {
	r := rng.Sequence(0.1, 0.9)
	assert.Equal(t, 0.1, r.Float64())
	assert.Equal(t, 0.9, r.Float64())
	assert.Equal(t, 0.1, r.Float64())
}

func TestSeededIsDeterministic(t *testing.T) {
	a := rng.New(42)
	b := rng.New(42)
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Float64(), b.Float64())
		assert.Equal(t, a.Intn(100), b.Intn(100))
	}
}
