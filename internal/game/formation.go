package game

// Formation is the swarm's shared movement state: the horizontal travel
// direction and whether the next move is a descent step. It is passed in
// and returned by value so no call site shares hidden state.
type Formation struct {
	Direction  int // -1 left, +1 right
	Descending bool
}

// Advance moves every live enemy by one step: row+1 when descending,
// column+Direction otherwise, never both. Dead enemies are untouched.
// Edge policy, evaluated post-move: when the live set touches column 0 or
// width-1, a horizontal formation switches to a descent step and a
// descending formation reverses direction and resumes horizontal motion.
// Returns the post-move bottom-most live row for the lose check.
//
// Must not be called with an empty live set; the caller guards that.
func (f Formation) Advance(enemies []Enemy, width int) (bottomMost int, next Formation) {
	leftMost := width
	rightMost := 0
	for i := range enemies {
		if !enemies[i].Alive {
			continue
		}
		if f.Descending {
			enemies[i].Y++
		} else {
			enemies[i].X += f.Direction
		}
		if enemies[i].X < leftMost {
			leftMost = enemies[i].X
		}
		if enemies[i].X > rightMost {
			rightMost = enemies[i].X
		}
		if enemies[i].Y > bottomMost {
			bottomMost = enemies[i].Y
		}
	}

	next = f
	if leftMost == 0 || rightMost == width-1 {
		if f.Descending {
			next.Direction = -f.Direction
			next.Descending = false
		} else {
			next.Descending = true
		}
	}

	return bottomMost, next
}
