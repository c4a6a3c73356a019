// Package game coordinates battle sessions: it owns the live players and
// battles, routes player commands into the engine, and records narration
// to the transcript store.
package game

import (
	"context"
	"log/slog"
	"sync"

	"github.com/mudforge/battle-api/internal/commands"
	"github.com/mudforge/battle-api/internal/entities"
	"github.com/mudforge/battle-api/internal/errors"
	"github.com/mudforge/battle-api/internal/orchestrators/battle"
	"github.com/mudforge/battle-api/internal/pkg/idgen"
	"github.com/mudforge/battle-api/internal/pkg/rng"
	"github.com/mudforge/battle-api/internal/repositories/monsters"
	"github.com/mudforge/battle-api/internal/repositories/transcripts"
)

// Service defines the interface for battle session operations
type Service interface {
	// StartBattle creates a new battle session for a player
	StartBattle(ctx context.Context, input *StartBattleInput) (*StartBattleOutput, error)

	// JoinBattle adds another player to a running battle
	JoinBattle(ctx context.Context, input *JoinBattleInput) (*JoinBattleOutput, error)

	// Command feeds one player input into a battle
	Command(ctx context.Context, input *CommandInput) (*CommandOutput, error)

	// Status describes the living monsters of a battle
	Status(ctx context.Context, input *StatusInput) (*StatusOutput, error)
}

// Config holds the dependencies for the game service
type Config struct {
	Templates   monsters.Repository
	Transcripts transcripts.Repository
	Grammar     *commands.Grammar
	Roller      rng.Roller
	IDGenerator idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Templates == nil {
		vb.RequiredField("Templates")
	}
	if c.Transcripts == nil {
		vb.RequiredField("Transcripts")
	}
	if c.Grammar == nil {
		vb.RequiredField("Grammar")
	}
	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

// session is one live battle plus its players. The mutex serializes all
// engine calls: the battle itself has no locking discipline.
type session struct {
	mu      sync.Mutex
	battle  *battle.Battle
	players map[string]*entities.Player
}

// Player implements battle.PlayerSource.
func (s *session) Player(id string) (*entities.Player, bool) {
	p, ok := s.players[id]
	return p, ok
}

type service struct {
	templates   monsters.Repository
	transcripts transcripts.Repository
	grammar     *commands.Grammar
	roller      rng.Roller
	idGen       idgen.Generator

	mu       sync.RWMutex
	sessions map[string]*session
}

// New creates a new game service with the provided dependencies
func New(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &service{
		templates:   cfg.Templates,
		transcripts: cfg.Transcripts,
		grammar:     cfg.Grammar,
		roller:      cfg.Roller,
		idGen:       cfg.IDGenerator,
		sessions:    make(map[string]*session),
	}, nil
}

// StartBattle creates a new battle session for a player
func (s *service) StartBattle(ctx context.Context, input *StartBattleInput) (*StartBattleOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.PlayerName == "" {
		return nil, errors.InvalidArgument("player name is required")
	}
	if len(input.Monsters) == 0 {
		return nil, errors.InvalidArgument("at least one monster is required")
	}

	hitPoints := input.PlayerHitPoints
	if hitPoints == 0 {
		hitPoints = DefaultPlayerHitPoints
	}
	wound := input.PlayerWound
	if wound == "" {
		wound = DefaultPlayerWound
	}

	playerID := input.PlayerID
	if playerID == "" {
		playerID = s.idGen.Generate()
	}
	player := &entities.Player{
		ID:        playerID,
		Name:      input.PlayerName,
		HitPoints: hitPoints,
		Wound:     wound,
	}

	sess := &session{
		players: map[string]*entities.Player{player.ID: player},
	}

	b, err := battle.New(ctx, &battle.Config{
		Templates:          s.templates,
		Players:            sess,
		Grammar:            s.grammar,
		Roller:             s.roller,
		IDGenerator:        s.idGen,
		StrikeBackInterval: input.StrikeBackInterval,
	}, input.Monsters)
	if err != nil {
		return nil, errors.Wrap(err, "failed to construct battle")
	}
	sess.battle = b

	battleID := s.idGen.Generate()
	s.mu.Lock()
	s.sessions[battleID] = sess
	s.mu.Unlock()

	opening := b.Describe()
	s.record(ctx, battleID, opening)

	slog.Info("Battle started",
		"battle_id", battleID,
		"player_id", player.ID,
		"monster_count", b.MonstersRemaining(),
	)

	return &StartBattleOutput{
		BattleID: battleID,
		PlayerID: player.ID,
		Opening:  opening,
	}, nil
}

// JoinBattle adds another player to a running battle
func (s *service) JoinBattle(ctx context.Context, input *JoinBattleInput) (*JoinBattleOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.BattleID == "" {
		return nil, errors.InvalidArgument("battle ID is required")
	}
	if input.PlayerName == "" {
		return nil, errors.InvalidArgument("player name is required")
	}

	sess, err := s.session(input.BattleID)
	if err != nil {
		return nil, err
	}

	hitPoints := input.PlayerHitPoints
	if hitPoints == 0 {
		hitPoints = DefaultPlayerHitPoints
	}
	wound := input.PlayerWound
	if wound == "" {
		wound = DefaultPlayerWound
	}

	player := &entities.Player{
		ID:        s.idGen.Generate(),
		Name:      input.PlayerName,
		HitPoints: hitPoints,
		Wound:     wound,
	}

	sess.mu.Lock()
	sess.players[player.ID] = player
	sess.mu.Unlock()

	slog.Info("Player joined battle",
		"battle_id", input.BattleID,
		"player_id", player.ID,
	)

	return &JoinBattleOutput{PlayerID: player.ID}, nil
}

// Command feeds one player input into a battle
func (s *service) Command(ctx context.Context, input *CommandInput) (*CommandOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.BattleID == "" {
		return nil, errors.InvalidArgument("battle ID is required")
	}
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	sess, err := s.session(input.BattleID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	player, ok := sess.players[input.PlayerID]
	if !ok {
		return nil, errors.NotFoundf("player %q is not in battle %q", input.PlayerID, input.BattleID)
	}

	var narration []string
	output, err := sess.battle.Execute(ctx, &battle.ExecuteInput{
		Text:   input.Text,
		Player: player,
		Sink: battle.SinkFunc(func(text string) {
			narration = append(narration, text)
		}),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute turn")
	}

	for _, text := range narration {
		s.record(ctx, input.BattleID, text)
	}

	if output.Over {
		s.mu.Lock()
		delete(s.sessions, input.BattleID)
		s.mu.Unlock()
		slog.Info("Battle concluded", "battle_id", input.BattleID)
	}

	return &CommandOutput{
		Narration: narration,
		Over:      output.Over,
	}, nil
}

// Status describes the living monsters of a battle
func (s *service) Status(ctx context.Context, input *StatusInput) (*StatusOutput, error) {
	if input == nil || input.BattleID == "" {
		return nil, errors.InvalidArgument("battle ID is required")
	}

	sess, err := s.session(input.BattleID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	return &StatusOutput{
		Description:       sess.battle.Describe(),
		MonstersRemaining: sess.battle.MonstersRemaining(),
	}, nil
}

func (s *service) session(battleID string) (*session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[battleID]
	if !ok {
		return nil, errors.NotFoundf("battle %q not found", battleID)
	}
	return sess, nil
}

// record appends narration to the transcript. Transcript storage is
// best-effort: a failure is logged, never surfaced to the player.
func (s *service) record(ctx context.Context, battleID, text string) {
	if text == "" {
		return
	}
	if _, err := s.transcripts.Append(ctx, &transcripts.AppendInput{
		BattleID: battleID,
		Text:     text,
	}); err != nil {
		slog.Warn("Failed to record transcript line",
			"battle_id", battleID,
			"error", err,
		)
	}
}
