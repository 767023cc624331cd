// Package game implements the invaders simulation: the enemy formation,
// player projectiles, difficulty scaling, and the win/lose state machine.
// All motion is wall-clock gated; each moving thing owns a "last event
// time + interval" timer pair compared against now once per frame.
package game

import (
	"errors"
	"fmt"
	"time"
)

// ErrScreenTooSmall reports a playfield below the minimum playable size.
// The game never starts; callers check with errors.Is.
var ErrScreenTooSmall = errors.New("terminal too small")

// State is the game phase. Playing is initial; Won and Lost are terminal
// and there are no transitions out of them.
type State int

const (
	StatePlaying State = iota
	StateWon
	StateLost
)

// Key is the single input action applied to a frame.
type Key int

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyFire
	KeyQuit
)

// KeySource yields at most one pending key per call without blocking.
type KeySource interface {
	Poll() Key
}

// KeyQueue is a scripted KeySource handing out queued keys one per poll,
// then KeyNone. Useful for driving a Game without a terminal.
type KeyQueue []Key

// Poll pops the next queued key, or KeyNone when the queue is empty.
func (q *KeyQueue) Poll() Key {
	if len(*q) == 0 {
		return KeyNone
	}
	k := (*q)[0]
	*q = (*q)[1:]
	return k
}

// Game owns all mutable state for one playthrough: the entity store, the
// formation, both player timers, and the phase. Single-threaded; Step is
// called once per frame by one loop.
type Game struct {
	Entities
	Width, Height int
	Formation     Formation
	State         State

	interval time.Duration // Current formation movement interval
	lastMove time.Time
	lastFire time.Time
}

// NewGame validates the playfield and builds the starting state: the
// enemy row across the middle third, the player at bottom center, and
// both timers seeded with now.
func NewGame(width, height int, now time.Time) (*Game, error) {
	if width < MinWidth || height < MinHeight {
		return nil, fmt.Errorf("%w: need at least %dx%d, got %dx%d",
			ErrScreenTooSmall, MinWidth, MinHeight, width, height)
	}
	return &Game{
		Entities: Entities{
			Enemies: NewEnemyRow(width),
			Player:  Player{Y: height - 1, X: width / 2},
		},
		Width:     width,
		Height:    height,
		Formation: Formation{Direction: 1},
		State:     StatePlaying,
		interval:  InitialMoveInterval,
		lastMove:  now,
		lastFire:  now,
	}, nil
}

// Interval returns the current formation movement interval.
func (g *Game) Interval() time.Duration {
	return g.interval
}

// LastMove returns the time of the last formation move.
func (g *Game) LastMove() time.Time {
	return g.lastMove
}

// Step advances the simulation by one frame: projectiles first, then the
// formation if its interval has elapsed and enemies remain, then one
// polled key. A no-op once the game is over.
func (g *Game) Step(now time.Time, keys KeySource) {
	if g.State != StatePlaying {
		return
	}

	won, interval := AdvanceProjectiles(&g.Entities, g.interval, now)
	g.interval = interval
	if won {
		g.State = StateWon
		return
	}

	if now.Sub(g.lastMove) > g.interval && g.AliveCount() > 0 {
		bottomMost, next := g.Formation.Advance(g.Enemies, g.Width)
		g.Formation = next
		g.lastMove = now
		if bottomMost >= g.Height-1 {
			g.State = StateLost
			return
		}
	}

	g.applyKey(now, keys.Poll())
}

// applyKey applies the frame's single key: clamped player movement,
// cooldown-gated fire, or quit.
func (g *Game) applyKey(now time.Time, key Key) {
	switch key {
	case KeyLeft:
		if g.Player.X > 0 {
			g.Player.X--
		}
	case KeyRight:
		if g.Player.X < g.Width-2 {
			g.Player.X++
		}
	case KeyQuit:
		g.State = StateLost
	case KeyFire:
		if now.Sub(g.lastFire) >= FireCooldown {
			g.Projectiles = append(g.Projectiles, Projectile{
				Y:        g.Player.Y - 1,
				X:        g.Player.X,
				Speed:    ProjectileSpeed,
				LastMove: now,
			})
			g.lastFire = now
		}
	}
}
