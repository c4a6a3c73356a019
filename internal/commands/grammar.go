// Package commands turns free player text into battle intents. The grammar
// is word-list driven: callers configure the verbs, the package compiles
// them into matchers.
package commands

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/mudforge/battle-api/internal/errors"
)

// IntentKind classifies a matched command.
type IntentKind int

// Intent kinds.
const (
	IntentAttack IntentKind = iota
	IntentDodge
)

// Intent is the parsed form of one player command.
type Intent struct {
	Kind IntentKind
	// Target is the free-text target token captured by an attack command.
	// Empty for dodge.
	Target string
}

// Default verb lists.
var (
	DefaultAttackWords = []string{"attack", "kill", "hit", "strike"}
	DefaultDodgeWords  = []string{"dodge", "evade", "duck"}
)

// Config holds the word lists a Grammar is compiled from.
type Config struct {
	AttackWords []string
	DodgeWords  []string
}

// Grammar matches player text against the attack and dodge command forms.
type Grammar struct {
	attack *regexp.Regexp
	dodge  *regexp.Regexp
}

// NewGrammar compiles a grammar from the configured word lists. Empty
// lists fall back to the defaults.
func NewGrammar(cfg *Config) (*Grammar, error) {
	if cfg == nil {
		cfg = &Config{}
	}

	attackWords := cfg.AttackWords
	if len(attackWords) == 0 {
		attackWords = DefaultAttackWords
	}
	dodgeWords := cfg.DodgeWords
	if len(dodgeWords) == 0 {
		dodgeWords = DefaultDodgeWords
	}

	// Attack captures a single target token, with an optional article:
	// "kill the goblin" and "hit rat" both match.
	attack, err := regexp.Compile(fmt.Sprintf(
		`(?i)^\s*(?:%s)\s+(?:the\s+|a\s+|an\s+)?(\S+)\s*$`, alternation(attackWords)))
	if err != nil {
		return nil, errors.Wrap(err, "compiling attack grammar")
	}

	dodge, err := regexp.Compile(fmt.Sprintf(
		`(?i)^\s*(?:%s)\s*$`, alternation(dodgeWords)))
	if err != nil {
		return nil, errors.Wrap(err, "compiling dodge grammar")
	}

	return &Grammar{attack: attack, dodge: dodge}, nil
}

// Match classifies text as an attack or dodge intent. The second return is
// false when the text matches neither grammar.
func (g *Grammar) Match(text string) (Intent, bool) {
	if m := g.attack.FindStringSubmatch(text); m != nil {
		return Intent{Kind: IntentAttack, Target: m[1]}, true
	}
	if g.dodge.MatchString(text) {
		return Intent{Kind: IntentDodge}, true
	}
	return Intent{}, false
}

func alternation(words []string) string {
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = regexp.QuoteMeta(strings.TrimSpace(w))
	}
	return strings.Join(quoted, "|")
}
