package battle

import (
	"github.com/mudforge/battle-api/internal/entities"
)

// Sink receives complete, ready-to-display narration strings. The engine
// calls it at most once per logical event: once from the attack path, once
// from the dodge path, once from the strike-back path.
type Sink interface {
	Narrate(text string)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(text string)

// Narrate implements Sink.
func (f SinkFunc) Narrate(text string) {
	f(text)
}

// PlayerSource resolves live player state by id. The caller owns player
// state; the engine looks players up when a monster strike resolves.
type PlayerSource interface {
	Player(id string) (*entities.Player, bool)
}

// Chances holds the named hit probabilities of the engine. Each is the
// threshold a uniform [0,1) draw must stay under for the attack to land.
type Chances struct {
	// PlayerHit is the chance a player attack connects.
	PlayerHit float64
	// MonsterHit is the chance a monster strike connects against a player
	// who is not dodging.
	MonsterHit float64
	// MonsterHitDodging is the chance against a dodging player. Dodging
	// sharply reduces, but does not eliminate, the hit chance.
	MonsterHitDodging float64
}

// DefaultChances are the stock probabilities.
var DefaultChances = Chances{
	PlayerHit:         0.9,
	MonsterHit:        0.9,
	MonsterHitDodging: 0.1,
}

// DefaultStrikeBackInterval is the number of qualifying player actions
// between monster retaliations when none is configured.
const DefaultStrikeBackInterval = 1

// ExecuteInput defines one player turn fed to the engine
type ExecuteInput struct {
	// Text is the raw player command.
	Text string
	// Player is the acting player's live state.
	Player *entities.Player
	// Sink receives the narration for this turn.
	Sink Sink
}

// ExecuteOutput defines the result of one player turn
type ExecuteOutput struct {
	// Over is true iff no monsters remain.
	Over bool
}
