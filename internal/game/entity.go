package game

import "time"

// Enemy is one ship in the formation. A dead enemy stays in the collection
// as an inert record: it is never rendered, never collides, never moves,
// and never counts toward the live set.
type Enemy struct {
	Y, X  int
	Alive bool
}

// Projectile is a player shot that climbs one row each time Speed elapses
// since its last move. Removal (off the top, or on impact) is its only
// destruction path.
type Projectile struct {
	Y, X     int
	Speed    time.Duration
	LastMove time.Time
}

// Player is the player ship. Y is fixed at the bottom row; X moves within
// [0, width-2], keeping one column of margin on the right.
type Player struct {
	Y, X int
}

// Entities holds everything on the playfield. Pure data, single writer:
// the game loop mutates it synchronously, one frame at a time.
type Entities struct {
	Enemies     []Enemy
	Projectiles []Projectile
	Player      Player
}

// NewEnemyRow spawns the starting formation: one row at y=1, every other
// column across the middle third of the playfield.
func NewEnemyRow(width int) []Enemy {
	third := width / 3
	var enemies []Enemy
	for x := third + 1; x <= third*2; x += 2 {
		enemies = append(enemies, Enemy{Y: 1, X: x, Alive: true})
	}
	return enemies
}

// AliveCount returns the number of live enemies.
func (e *Entities) AliveCount() int {
	alive := 0
	for i := range e.Enemies {
		if e.Enemies[i].Alive {
			alive++
		}
	}
	return alive
}

// liveEnemyAt returns the index of the live enemy occupying (y, x), or -1.
// First match in collection order wins; enemies sharing a cell is not a
// modeled scenario.
func (e *Entities) liveEnemyAt(y, x int) int {
	for i := range e.Enemies {
		if e.Enemies[i].Alive && e.Enemies[i].Y == y && e.Enemies[i].X == x {
			return i
		}
	}
	return -1
}
