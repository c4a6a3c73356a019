package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mudforge/battle-api/internal/commands"
)

func newGrammar(t *testing.T) *commands.Grammar {
	t.Helper()
	g, err := commands.NewGrammar(nil)
	require.NoError(t, err)
	return g
}

func TestMatchAttackCapturesTarget(t *testing.T) {
	g := newGrammar(t)

	cases := map[string]string{
		"kill goblin":       "goblin",
		"attack the rat":    "rat",
		"HIT A troll":       "troll",
		"  strike  wyvern ": "wyvern",
	}
	for text, want := range cases {
		intent, ok := g.Match(text)
		require.True(t, ok, "expected %q to match", text)
		assert.Equal(t, commands.IntentAttack, intent.Kind)
		assert.Equal(t, want, intent.Target)
	}
}

func TestMatchDodge(t *testing.T) {
	g := newGrammar(t)

	for _, text := range []string{"dodge", "  EVADE ", "duck"} {
		intent, ok := g.Match(text)
		require.True(t, ok, "expected %q to match", text)
		assert.Equal(t, commands.IntentDodge, intent.Kind)
		assert.Empty(t, intent.Target)
	}
}

func TestMatchNeitherGrammar(t *testing.T) {
	g := newGrammar(t)

	for _, text := range []string{"", "look", "kill", "dodge quickly", "attack the giant rat"} {
		_, ok := g.Match(text)
		assert.False(t, ok, "expected %q not to match", text)
	}
}

func TestCustomWordLists(t *testing.T) {
	g, err := commands.NewGrammar(&commands.Config{
		AttackWords: []string{"smite"},
		DodgeWords:  []string{"sidestep"},
	})
	require.NoError(t, err)

	intent, ok := g.Match("smite demon")
	require.True(t, ok)
	assert.Equal(t, "demon", intent.Target)

	_, ok = g.Match("kill demon")
	assert.False(t, ok)

	intent, ok = g.Match("sidestep")
	require.True(t, ok)
	assert.Equal(t, commands.IntentDodge, intent.Kind)
}
