package game

import "time"

// Playfield limits. Anything smaller leaves no room for the status bar,
// the formation, a gap, and the player row.
const (
	MinWidth  = 3
	MinHeight = 4
)

// Formation movement. The interval shrinks toward MinMoveInterval as
// enemies are destroyed (see MovementInterval).
const (
	InitialMoveInterval = 500 * time.Millisecond
	MinMoveInterval     = 50 * time.Millisecond
)

// Player weapons
const (
	FireCooldown    = 500 * time.Millisecond
	ProjectileSpeed = 100 * time.Millisecond
)
