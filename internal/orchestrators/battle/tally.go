package battle

import (
	"sort"

	"github.com/mudforge/battle-api/internal/errors"
)

// tally tracks attack attempts per player together with their running
// total. Increment and removal go through a single method pair so the
// total can never drift from the true sum of the per-player counts.
type tally struct {
	counts map[string]int
	total  int
}

func newTally() *tally {
	return &tally{counts: make(map[string]int)}
}

// Record notes one attack attempt by the given player.
func (t *tally) Record(playerID string) {
	t.counts[playerID]++
	t.total++
}

// Drop removes a player's entry entirely, subtracting their count from the
// total. Dropped players exert no further targeting weight.
func (t *tally) Drop(playerID string) {
	t.total -= t.counts[playerID]
	delete(t.counts, playerID)
}

// Count returns the recorded attempts for one player.
func (t *tally) Count(playerID string) int {
	return t.counts[playerID]
}

// Total returns the sum of all recorded attempts.
func (t *tally) Total() int {
	return t.total
}

// Pick runs roulette-wheel selection over the recorded players: each
// player's probability is count/total, and the first player whose
// cumulative mass reaches the draw wins. Players are walked in sorted id
// order so a given draw always lands on the same player.
//
// Picking from an empty tally is a caller-protocol violation: strike-backs
// must not be triggered before any attack has been recorded.
func (t *tally) Pick(draw float64) (string, error) {
	if t.total == 0 {
		return "", errors.FailedPrecondition("weighted target selection with no recorded attacks")
	}

	ids := make([]string, 0, len(t.counts))
	for id := range t.counts {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var cumulative float64
	for _, id := range ids {
		cumulative += float64(t.counts[id]) / float64(t.total)
		if cumulative >= draw {
			return id, nil
		}
	}

	// Floating point shortfall on the last slice.
	return ids[len(ids)-1], nil
}
