package game

import "time"

// AdvanceProjectiles steps every projectile whose Speed has elapsed since
// its last move, in one filtering pass that builds the surviving slice.
// For each due projectile:
//
//   - already above the top playable row (y < 1): removed, no collision
//     check.
//   - occupying a live enemy's cell: the collision registers at the
//     pre-move position. The enemy dies, the movement interval is
//     recomputed from the new live count, and the projectile is removed.
//     At most one kill per projectile per step.
//   - otherwise: row decremented, LastMove reset to now.
//
// Removed projectiles never move. Returns whether the last enemy died and
// the movement interval for the caller to adopt.
func AdvanceProjectiles(ents *Entities, interval time.Duration, now time.Time) (won bool, next time.Duration) {
	kept := ents.Projectiles[:0]
	for _, p := range ents.Projectiles {
		if now.Sub(p.LastMove) < p.Speed {
			kept = append(kept, p)
			continue
		}
		if p.Y < 1 {
			continue
		}
		if i := ents.liveEnemyAt(p.Y, p.X); i >= 0 {
			ents.Enemies[i].Alive = false
			alive := ents.AliveCount()
			interval = MovementInterval(alive, len(ents.Enemies))
			if alive == 0 {
				won = true
			}
			continue
		}
		p.Y--
		p.LastMove = now
		kept = append(kept, p)
	}
	ents.Projectiles = kept
	return won, interval
}
