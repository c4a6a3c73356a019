package entities

// EntityTypePlayer is the core.Entity type for players.
const EntityTypePlayer = "player"

// Player is the live state of one player. It is owned by the caller and
// mutated by the battle engine: attacking clears the dodge flag, monster
// strikes reduce hit points.
type Player struct {
	ID        string
	Name      string
	HitPoints int
	// Wound is the dice notation for the damage one monster hit inflicts
	// on this player.
	Wound   string
	Dodging bool
}

// GetID implements core.Entity.
func (p *Player) GetID() string {
	return p.ID
}

// GetType implements core.Entity.
func (p *Player) GetType() string {
	return EntityTypePlayer
}

// Damage reduces hit points by n, clamping at zero, and returns the
// remaining hit points.
func (p *Player) Damage(n int) int {
	if n > p.HitPoints {
		p.HitPoints = 0
	} else {
		p.HitPoints -= n
	}
	return p.HitPoints
}
