// Package entities provides the domain state objects for the battle API.
package entities

import (
	"fmt"
	"strings"
)

// EntityTypeMonster is the core.Entity type for monsters.
const EntityTypeMonster = "monster"

// Monster is one live monster instance inside a battle. Instances are
// spawned from a template at battle construction and removed from the
// roster when their hit points reach zero.
type Monster struct {
	ID         string
	TemplateID string
	Name       string
	HitPoints  int
	// Wound is the dice notation ("1d6") for the damage one player hit
	// inflicts on this monster.
	Wound string
}

// GetID implements core.Entity.
func (m *Monster) GetID() string {
	return m.ID
}

// GetType implements core.Entity.
func (m *Monster) GetType() string {
	return EntityTypeMonster
}

// Matches reports whether a free-text target token refers to this monster.
// Matching is a case-insensitive substring check against the display name,
// so "rat" finds "giant rat".
func (m *Monster) Matches(token string) bool {
	if token == "" {
		return false
	}
	return strings.Contains(strings.ToLower(m.Name), strings.ToLower(token))
}

// Damage reduces hit points by n, clamping at zero, and returns the
// remaining hit points.
func (m *Monster) Damage(n int) int {
	if n > m.HitPoints {
		m.HitPoints = 0
	} else {
		m.HitPoints -= n
	}
	return m.HitPoints
}

// Describe returns the one-line self-description used in status output.
func (m *Monster) Describe() string {
	return fmt.Sprintf("%s (%d hp)", m.Name, m.HitPoints)
}
