package game

import (
	"errors"
	"testing"
	"time"
)

func TestNewGameSpawnsFormationAcrossMiddleThird(t *testing.T) {
	g, err := NewGame(21, 10, time.Unix(0, 0))
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}

	wantX := []int{8, 10, 12, 14}
	if len(g.Enemies) != len(wantX) {
		t.Fatalf("enemies = %d, want %d", len(g.Enemies), len(wantX))
	}
	for i, e := range g.Enemies {
		if e.X != wantX[i] || e.Y != 1 || !e.Alive {
			t.Errorf("enemy %d = %+v, want alive at (1,%d)", i, e, wantX[i])
		}
	}
	if g.Player.Y != 9 || g.Player.X != 10 {
		t.Errorf("player at (%d,%d), want (9,10)", g.Player.Y, g.Player.X)
	}
	if g.State != StatePlaying {
		t.Errorf("state = %d, want StatePlaying", g.State)
	}
	if g.Interval() != InitialMoveInterval {
		t.Errorf("interval = %v, want %v", g.Interval(), InitialMoveInterval)
	}
}

func TestNewGameRejectsSmallScreens(t *testing.T) {
	for _, tc := range []struct{ w, h int }{{2, 10}, {21, 3}, {0, 0}} {
		_, err := NewGame(tc.w, tc.h, time.Unix(0, 0))
		if !errors.Is(err, ErrScreenTooSmall) {
			t.Errorf("NewGame(%d, %d) error = %v, want ErrScreenTooSmall", tc.w, tc.h, err)
		}
	}
}

func TestStepMovesPlayerWithinBounds(t *testing.T) {
	start := time.Unix(0, 0)
	g, err := NewGame(21, 10, start)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}

	g.Step(start, &KeyQueue{KeyLeft})
	if g.Player.X != 9 {
		t.Fatalf("player column = %d, want 9", g.Player.X)
	}

	g.Player.X = 0
	g.Step(start, &KeyQueue{KeyLeft})
	if g.Player.X != 0 {
		t.Fatalf("player column = %d, want clamped at 0", g.Player.X)
	}

	g.Player.X = 19
	g.Step(start, &KeyQueue{KeyRight})
	if g.Player.X != 19 {
		t.Fatalf("player column = %d, want clamped at width-2", g.Player.X)
	}
}

func TestStepFireRespectsCooldown(t *testing.T) {
	start := time.Unix(0, 0)
	g, err := NewGame(21, 10, start)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}

	// The cooldown timer is seeded at game start, so an immediate shot
	// stays in the barrel.
	g.Step(start, &KeyQueue{KeyFire})
	if len(g.Projectiles) != 0 {
		t.Fatalf("projectiles = %d, want 0 before cooldown elapses", len(g.Projectiles))
	}

	now := start.Add(FireCooldown)
	g.Step(now, &KeyQueue{KeyFire})
	if len(g.Projectiles) != 1 {
		t.Fatalf("projectiles = %d, want 1", len(g.Projectiles))
	}
	p := g.Projectiles[0]
	if p.Y != g.Player.Y-1 || p.X != g.Player.X {
		t.Fatalf("projectile at (%d,%d), want (%d,%d)", p.Y, p.X, g.Player.Y-1, g.Player.X)
	}
	if p.Speed != ProjectileSpeed {
		t.Fatalf("projectile speed = %v, want %v", p.Speed, ProjectileSpeed)
	}

	g.Step(now.Add(FireCooldown-time.Millisecond), &KeyQueue{KeyFire})
	if len(g.Projectiles) != 1 {
		t.Fatalf("projectiles = %d, want still 1 during cooldown", len(g.Projectiles))
	}
}

func TestStepFormationWaitsForInterval(t *testing.T) {
	start := time.Unix(0, 0)
	g, err := NewGame(21, 10, start)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}

	// Exactly the interval is not enough; the gate is strictly greater.
	g.Step(start.Add(InitialMoveInterval), &KeyQueue{})
	if g.Enemies[0].X != 8 {
		t.Fatalf("enemy column = %d, want 8 before the interval elapses", g.Enemies[0].X)
	}

	now := start.Add(InitialMoveInterval + time.Millisecond)
	g.Step(now, &KeyQueue{})
	if g.Enemies[0].X != 9 {
		t.Fatalf("enemy column = %d, want 9 after the interval elapses", g.Enemies[0].X)
	}
	if !g.LastMove().Equal(now) {
		t.Fatalf("lastMove = %v, want %v", g.LastMove(), now)
	}
}

func TestStepQuitLosesImmediately(t *testing.T) {
	start := time.Unix(0, 0)
	g, err := NewGame(21, 10, start)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}

	g.Step(start, &KeyQueue{KeyQuit})

	if g.State != StateLost {
		t.Fatalf("state = %d, want StateLost", g.State)
	}
}

func TestStepLosesWhenFormationReachesBottom(t *testing.T) {
	start := time.Unix(0, 0)
	g, err := NewGame(21, 6, start)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	g.Enemies = []Enemy{{Y: 4, X: 0, Alive: true}}
	g.Formation = Formation{Direction: -1, Descending: true}

	g.Step(start.Add(InitialMoveInterval+time.Millisecond), &KeyQueue{})

	if g.State != StateLost {
		t.Fatalf("state = %d, want StateLost", g.State)
	}
	if g.Enemies[0].Y != 5 {
		t.Fatalf("enemy row = %d, want 5", g.Enemies[0].Y)
	}
}

func TestStepWinsWhenLastEnemyDies(t *testing.T) {
	start := time.Unix(0, 0)
	g, err := NewGame(21, 10, start)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	g.Enemies = []Enemy{{Y: 1, X: 5, Alive: true}}
	g.Projectiles = []Projectile{{Y: 1, X: 5, Speed: ProjectileSpeed, LastMove: start}}

	g.Step(start.Add(ProjectileSpeed), &KeyQueue{})

	if g.State != StateWon {
		t.Fatalf("state = %d, want StateWon", g.State)
	}
	if g.AliveCount() != 0 {
		t.Fatalf("alive = %d, want 0", g.AliveCount())
	}
}

func TestStepIsNoOpOnceOver(t *testing.T) {
	start := time.Unix(0, 0)
	g, err := NewGame(21, 10, start)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	g.Step(start, &KeyQueue{KeyQuit})
	if g.State != StateLost {
		t.Fatalf("state = %d, want StateLost", g.State)
	}

	before := g.Enemies[0]
	g.Step(start.Add(time.Hour), &KeyQueue{KeyFire})

	if g.State != StateLost {
		t.Fatalf("state = %d, want to stay StateLost", g.State)
	}
	if len(g.Projectiles) != 0 {
		t.Fatal("projectile spawned after the game ended")
	}
	if g.Enemies[0] != before {
		t.Fatalf("enemy = %+v, want unchanged %+v", g.Enemies[0], before)
	}
}

func TestStepProjectileFliesOffTop(t *testing.T) {
	start := time.Unix(0, 0)
	g, err := NewGame(21, 10, start)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	g.Enemies = []Enemy{{Y: 1, X: 19, Alive: true}}

	now := start.Add(FireCooldown)
	g.Step(now, &KeyQueue{KeyFire})
	if len(g.Projectiles) != 1 {
		t.Fatalf("projectiles = %d, want 1", len(g.Projectiles))
	}

	// One row per elapsed speed interval: y=8 down to 0.
	for want := 7; want >= 0; want-- {
		now = now.Add(ProjectileSpeed)
		g.Step(now, &KeyQueue{})
		if len(g.Projectiles) != 1 {
			t.Fatalf("projectiles = %d, want 1 while climbing", len(g.Projectiles))
		}
		if got := g.Projectiles[0].Y; got != want {
			t.Fatalf("projectile row = %d, want %d", got, want)
		}
	}

	now = now.Add(ProjectileSpeed)
	g.Step(now, &KeyQueue{})
	if len(g.Projectiles) != 0 {
		t.Fatalf("projectiles = %d, want 0 after flying off the top", len(g.Projectiles))
	}
	if !g.Enemies[0].Alive {
		t.Fatal("enemy died without being hit")
	}
	if g.State != StatePlaying {
		t.Fatalf("state = %d, want StatePlaying", g.State)
	}
}
