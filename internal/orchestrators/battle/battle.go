// Package battle implements the turn-based battle engine: it adjudicates
// player attack and dodge commands against a roster of monsters and drives
// the monsters' telegraphed retaliation.
package battle

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/mudforge/battle-api/internal/commands"
	"github.com/mudforge/battle-api/internal/entities"
	"github.com/mudforge/battle-api/internal/errors"
	"github.com/mudforge/battle-api/internal/pkg/idgen"
	"github.com/mudforge/battle-api/internal/pkg/rng"
	"github.com/mudforge/battle-api/internal/repositories/monsters"
)

// Wound notation like "1d6", matching count and die size.
var woundNotationRegex = regexp.MustCompile(`^(\d+)d(\d+)$`)

// Config holds the dependencies for a battle
type Config struct {
	Templates   monsters.Repository
	Players     PlayerSource
	Grammar     *commands.Grammar
	Roller      rng.Roller
	IDGenerator idgen.Generator
	// StrikeBackInterval is the number of qualifying player actions
	// between monster retaliations; zero means DefaultStrikeBackInterval.
	StrikeBackInterval int
	// Chances overrides the hit probabilities; nil means DefaultChances.
	Chances *Chances
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Templates == nil {
		vb.RequiredField("Templates")
	}
	if c.Players == nil {
		vb.RequiredField("Players")
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
	if c.StrikeBackInterval < 0 {
		vb.Fieldf("StrikeBackInterval", "must not be negative, got %d", c.StrikeBackInterval)
	}

	return vb.Build()
}

// windup is the armed state of the strike-back machine: one monster
// charging an attack at one player. The pair is set and cleared as a unit;
// there is no state where only one half exists.
type windup struct {
	monster  *entities.Monster
	targetID string
}

// Battle is the aggregate root of one encounter. It owns the live monster
// roster, the per-player attack tally used for weighted targeting, and the
// windup state of the next monster strike.
//
// A Battle is not safe for concurrent use: callers must feed it one player
// input at a time.
type Battle struct {
	interval int
	counter  int
	monsters []*entities.Monster
	attempts *tally
	windup   *windup
	players  PlayerSource
	grammar  *commands.Grammar
	roller   rng.Roller
	chances  Chances
}

// New constructs a battle from monster template counts. Every requested
// instance is an independent copy of its template with full hit points. A
// missing template id is a configuration error and fails construction.
func New(ctx context.Context, cfg *Config, counts map[string]int) (*Battle, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	if len(counts) == 0 {
		return nil, errors.InvalidArgument("at least one monster is required")
	}

	interval := cfg.StrikeBackInterval
	if interval == 0 {
		interval = DefaultStrikeBackInterval
	}
	chances := DefaultChances
	if cfg.Chances != nil {
		chances = *cfg.Chances
	}

	b := &Battle{
		interval: interval,
		attempts: newTally(),
		players:  cfg.Players,
		grammar:  cfg.Grammar,
		roller:   cfg.Roller,
		chances:  chances,
	}

	// Template ids are walked in sorted order so construction is
	// reproducible.
	for _, templateID := range sortedKeys(counts) {
		output, err := cfg.Templates.GetTemplate(ctx, &monsters.GetTemplateInput{TemplateID: templateID})
		if err != nil {
			return nil, errors.Wrapf(err, "looking up monster template %q", templateID)
		}
		tmpl := output.Template

		if _, _, err := parseWound(tmpl.Wound); err != nil {
			return nil, errors.Wrapf(err, "monster template %q", templateID)
		}

		for i := 0; i < counts[templateID]; i++ {
			b.monsters = append(b.monsters, &entities.Monster{
				ID:         cfg.IDGenerator.Generate(),
				TemplateID: tmpl.ID,
				Name:       tmpl.Name,
				HitPoints:  tmpl.HitPoints,
				Wound:      tmpl.Wound,
			})
		}
	}

	slog.Info("Battle constructed",
		"monster_count", len(b.monsters),
		"strike_back_interval", b.interval,
	)

	return b, nil
}

// Execute processes one player turn. Input that matches neither the attack
// nor the dodge grammar changes nothing. A qualifying action advances the
// action counter; when it reaches the strike-back interval the monsters
// retaliate and the counter resets. Returns Over=true once no monsters
// remain.
func (b *Battle) Execute(ctx context.Context, input *ExecuteInput) (*ExecuteOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Player == nil {
		return nil, errors.InvalidArgument("player is required")
	}
	if input.Sink == nil {
		return nil, errors.InvalidArgument("sink is required")
	}

	intent, ok := b.grammar.Match(input.Text)
	if !ok {
		return &ExecuteOutput{Over: b.Over()}, nil
	}

	switch intent.Kind {
	case commands.IntentAttack:
		if err := b.playerAttempt(input.Player, intent.Target, input.Sink); err != nil {
			return nil, err
		}
	case commands.IntentDodge:
		input.Player.Dodging = true
		input.Sink.Narrate(fmt.Sprintf("%s is attempting to dodge...", input.Player.Name))
	}

	if !b.Over() {
		b.counter++
		if b.counter >= b.interval {
			b.counter = 0
			if err := b.strikeBack(input.Sink); err != nil {
				return nil, err
			}
		}
	}

	return &ExecuteOutput{Over: b.Over()}, nil
}

// playerAttempt resolves one attack command. The attempt is recorded for
// targeting weight whether or not it lands.
func (b *Battle) playerAttempt(player *entities.Player, target string, sink Sink) error {
	b.attempts.Record(player.ID)

	var parts []string
	if b.roller.Float64() < b.chances.PlayerHit {
		idx := b.findTarget(target)
		if idx < 0 {
			parts = append(parts, fmt.Sprintf("No enemy goes by %q.", target))
		} else {
			monster := b.monsters[idx]
			wound, err := rollWound(monster.Wound)
			if err != nil {
				return errors.Wrapf(err, "monster %q", monster.Name)
			}

			remaining := monster.Damage(wound)
			if remaining == 0 {
				// A dead monster cannot complete its charging attack.
				if b.windup != nil && b.windup.monster == monster {
					b.windup = nil
				}
				b.monsters = append(b.monsters[:idx], b.monsters[idx+1:]...)
				parts = append(parts, fmt.Sprintf("%s lands a killing blow on %s!", player.Name, monster.Name))
				slog.Info("Monster slain",
					"monster_id", monster.ID,
					"player_id", player.ID,
					"monsters_remaining", len(b.monsters),
				)
			} else {
				parts = append(parts, fmt.Sprintf("%s wounds %s, who has %d hit points left.",
					player.Name, monster.Name, remaining))
			}
		}
	} else {
		parts = append(parts, fmt.Sprintf("%s swings at %s and misses.", player.Name, target))
	}

	if player.Dodging {
		parts = append(parts, fmt.Sprintf("%s stops dodging.", player.Name))
	}
	// Attacking always ends a dodge, whether or not one was in progress.
	player.Dodging = false

	sink.Narrate(strings.Join(parts, "\n"))
	return nil
}

// strikeBack runs the two-state retaliation machine. Unarmed: pick a
// random monster and a weighted-random target, telegraph the attack.
// Armed: resolve the telegraphed attack against the target's current dodge
// state, then return to unarmed.
func (b *Battle) strikeBack(sink Sink) error {
	if b.windup == nil {
		monster := b.monsters[b.roller.Intn(len(b.monsters))]

		targetID, err := b.attempts.Pick(b.roller.Float64())
		if err != nil {
			return err
		}
		target, ok := b.players.Player(targetID)
		if !ok {
			return errors.FailedPreconditionf("windup target %q is unknown to the player source", targetID)
		}

		b.windup = &windup{monster: monster, targetID: targetID}
		slog.Info("Monster winding up",
			"monster_id", monster.ID,
			"target_id", targetID,
		)
		sink.Narrate(fmt.Sprintf("%s is looking at %s.", monster.Name, target.Name))
		return nil
	}

	armed := b.windup
	target, ok := b.players.Player(armed.targetID)
	if !ok {
		return errors.FailedPreconditionf("windup target %q is unknown to the player source", armed.targetID)
	}

	chance := b.chances.MonsterHit
	if target.Dodging {
		chance = b.chances.MonsterHitDodging
	}

	var parts []string
	if b.roller.Float64() < chance {
		wound, err := rollWound(target.Wound)
		if err != nil {
			return errors.Wrapf(err, "player %q", target.Name)
		}

		remaining := target.Damage(wound)
		if remaining == 0 {
			parts = append(parts, fmt.Sprintf("%s strikes %s down!", armed.monster.Name, target.Name))
			slog.Info("Player slain",
				"player_id", target.ID,
				"monster_id", armed.monster.ID,
			)
			b.handlePlayerDeath(target.ID)
		} else {
			parts = append(parts, fmt.Sprintf("%s strikes %s, who has %d hit points left.",
				armed.monster.Name, target.Name, remaining))
		}
	} else {
		parts = append(parts, fmt.Sprintf("%s lunges at %s and misses.", armed.monster.Name, target.Name))
	}

	if target.Dodging {
		parts = append(parts, fmt.Sprintf("%s stops dodging.", target.Name))
		target.Dodging = false
	}

	b.windup = nil
	sink.Narrate(strings.Join(parts, "\n"))
	return nil
}

// handlePlayerDeath removes a dead player from targeting: their attempts
// stop weighing on selection and a windup aimed at them is abandoned.
func (b *Battle) handlePlayerDeath(playerID string) {
	b.attempts.Drop(playerID)
	if b.windup != nil && b.windup.targetID == playerID {
		b.windup = nil
	}
}

// findTarget returns the index of the first living monster matching the
// target token, or -1. First match wins; collection order is the
// tie-break among same-named monsters.
func (b *Battle) findTarget(token string) int {
	for i, m := range b.monsters {
		if m.Matches(token) {
			return i
		}
	}
	return -1
}

// Over reports whether the battle has concluded.
func (b *Battle) Over() bool {
	return len(b.monsters) == 0
}

// MonstersRemaining returns the number of living monsters.
func (b *Battle) MonstersRemaining() int {
	return len(b.monsters)
}

// Describe returns a newline-joined description of all living monsters.
func (b *Battle) Describe() string {
	lines := make([]string, len(b.monsters))
	for i, m := range b.monsters {
		lines[i] = m.Describe()
	}
	return strings.Join(lines, "\n")
}

// parseWound validates dice notation and returns the count and die size.
func parseWound(notation string) (count, size int, err error) {
	m := woundNotationRegex.FindStringSubmatch(strings.ToLower(strings.TrimSpace(notation)))
	if len(m) != 3 {
		return 0, 0, errors.InvalidArgumentf("invalid wound notation: %q (expected format: XdY)", notation)
	}

	count, err = strconv.Atoi(m[1])
	if err != nil {
		return 0, 0, errors.InvalidArgumentf("invalid dice count in wound notation: %q", notation)
	}
	size, err = strconv.Atoi(m[2])
	if err != nil {
		return 0, 0, errors.InvalidArgumentf("invalid die size in wound notation: %q", notation)
	}
	if count <= 0 || size <= 0 {
		return 0, 0, errors.InvalidArgumentf("dice count and size must be positive: %q", notation)
	}

	return count, size, nil
}

// rollWound rolls the wound dice for one landed hit.
func rollWound(notation string) (int, error) {
	count, size, err := parseWound(notation)
	if err != nil {
		return 0, err
	}

	roll, err := dice.NewRoll(count, size)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to roll wound %q", notation)
	}

	return roll.GetValue(), nil
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
