package game

import "time"

// MovementInterval returns the formation movement interval for the given
// live enemy count. Quadratic easing on the destroyed ratio: the interval
// barely shrinks until roughly half the formation is gone, then drops
// fast. Floored at MinMoveInterval. total is fixed at game start and
// never zero.
func MovementInterval(alive, total int) time.Duration {
	ratio := float64(total-alive) / float64(total)
	factor := ratio * ratio
	interval := InitialMoveInterval - time.Duration(factor*float64(InitialMoveInterval-MinMoveInterval))
	if interval < MinMoveInterval {
		interval = MinMoveInterval
	}
	return interval
}
