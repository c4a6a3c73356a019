package battle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mudforge/battle-api/internal/errors"
	"github.com/mudforge/battle-api/internal/pkg/rng"
)

func sumCounts(t *tally) int {
	sum := 0
	for _, c := range t.counts {
		sum += c
	}
	return sum
}

func TestTallyTotalTracksSum(t *testing.T) {
	tl := newTally()
	assert.Equal(t, 0, tl.Total())

	tl.Record("asha")
	tl.Record("asha")
	tl.Record("bren")
	assert.Equal(t, 3, tl.Total())
	assert.Equal(t, sumCounts(tl), tl.Total())
	assert.Equal(t, 2, tl.Count("asha"))

	tl.Drop("asha")
	assert.Equal(t, 1, tl.Total())
	assert.Equal(t, sumCounts(tl), tl.Total())
	assert.Equal(t, 0, tl.Count("asha"))

	// Dropping an unknown player is a no-op.
	tl.Drop("ghost")
	assert.Equal(t, 1, tl.Total())
	assert.Equal(t, sumCounts(tl), tl.Total())
}

func TestTallyPickBoundaries(t *testing.T) {
	tl := newTally()
	for i := 0; i < 3; i++ {
		tl.Record("asha")
	}
	tl.Record("bren")

	// Sorted walk: asha occupies [0, 0.75], bren the rest.
	for draw, want := range map[float64]string{
		0.0:  "asha",
		0.74: "asha",
		0.75: "asha",
		0.76: "bren",
		0.99: "bren",
	} {
		got, err := tl.Pick(draw)
		require.NoError(t, err)
		assert.Equal(t, want, got, "draw %v", draw)
	}
}

func TestTallyPickEmptyIsPreconditionViolation(t *testing.T) {
	tl := newTally()

	_, err := tl.Pick(0.5)
	require.Error(t, err)
	assert.True(t, errors.IsFailedPrecondition(err))
}

func TestTallyPickDistribution(t *testing.T) {
	// With counts {asha: 3, bren: 1} selection must approach 75/25.
	tl := newTally()
	for i := 0; i < 3; i++ {
		tl.Record("asha")
	}
	tl.Record("bren")

	roller := rng.New(7)
	const trials = 10000
	picks := make(map[string]int)
	for i := 0; i < trials; i++ {
		id, err := tl.Pick(roller.Float64())
		require.NoError(t, err)
		picks[id]++
	}

	asha := float64(picks["asha"]) / trials
	assert.InDelta(t, 0.75, asha, 0.02)
	assert.InDelta(t, 0.25, float64(picks["bren"])/trials, 0.02)
}
