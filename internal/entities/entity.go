package entities

import "github.com/KirkDiggler/rpg-toolkit/core"

// Battle participants are addressable as toolkit entities.
var (
	_ core.Entity = (*Monster)(nil)
	_ core.Entity = (*Player)(nil)
)
