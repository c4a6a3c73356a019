package game

// Defaults applied to players that start or join without explicit stats.
const (
	DefaultPlayerHitPoints = 10
	DefaultPlayerWound     = "1d4"
)

// StartBattleInput defines the request for starting a battle
type StartBattleInput struct {
	// PlayerID is optional; one is generated when empty.
	PlayerID   string
	PlayerName string
	// PlayerHitPoints defaults to DefaultPlayerHitPoints when zero.
	PlayerHitPoints int
	// PlayerWound defaults to DefaultPlayerWound when empty.
	PlayerWound string
	// Monsters maps template ids to instance counts.
	Monsters map[string]int
	// StrikeBackInterval defaults to the engine default when zero.
	StrikeBackInterval int
}

// StartBattleOutput defines the response for starting a battle
type StartBattleOutput struct {
	BattleID string
	PlayerID string
	// Opening is the roster description shown before the first turn.
	Opening string
}

// JoinBattleInput defines the request for joining a battle
type JoinBattleInput struct {
	BattleID        string
	PlayerName      string
	PlayerHitPoints int
	PlayerWound     string
}

// JoinBattleOutput defines the response for joining a battle
type JoinBattleOutput struct {
	PlayerID string
}

// CommandInput defines one player turn
type CommandInput struct {
	BattleID string
	PlayerID string
	Text     string
}

// CommandOutput defines the result of one player turn
type CommandOutput struct {
	// Narration holds the engine's output, one entry per logical event.
	Narration []string
	// Over is true once no monsters remain; the session is gone.
	Over bool
}

// StatusInput defines the request for a battle status
type StatusInput struct {
	BattleID string
}

// StatusOutput defines the response for a battle status
type StatusOutput struct {
	Description       string
	MonstersRemaining int
}
