package loop

import (
	"fmt"
	"time"

	"github.com/tomz197/invaders/internal/draw"
	"github.com/tomz197/invaders/internal/game"
)

// Glyphs drawn for each entity.
const (
	playerGlyph     = '☺'
	enemyGlyph      = 'V'
	projectileGlyph = '|'
)

// drawFrame fills the frame buffer from the current game state: status
// bar, live enemies, player, projectiles. Later draws win a shared cell.
func drawFrame(g *game.Game, f *draw.Frame, now time.Time) error {
	f.Clear()

	if err := f.SetText(0, 0, statusLine(g, now), draw.ColorDefault); err != nil {
		return err
	}

	for _, e := range g.Enemies {
		if !e.Alive {
			continue
		}
		if err := f.SetCell(e.Y, e.X, enemyGlyph, draw.ColorRed); err != nil {
			return err
		}
	}

	if err := f.SetCell(g.Player.Y, g.Player.X, playerGlyph, draw.ColorDefault); err != nil {
		return err
	}

	for _, p := range g.Projectiles {
		if err := f.SetCell(p.Y, p.X, projectileGlyph, draw.ColorDefault); err != nil {
			return err
		}
	}

	return nil
}

// statusLine formats the debug status bar. SetText truncates it to the
// playfield width.
func statusLine(g *game.Game, now time.Time) string {
	return fmt.Sprintf("%dx%d interval=%.2fs dir=%+d idle=%.2fs alive=%d",
		g.Width, g.Height,
		g.Interval().Seconds(),
		g.Formation.Direction,
		now.Sub(g.LastMove()).Seconds(),
		g.AliveCount())
}

// drawEnd overlays the centered end-of-game message on the final frame.
func drawEnd(g *game.Game, f *draw.Frame) error {
	text := "game over"
	if g.State == game.StateWon {
		text = "you win"
	}
	x := g.Width/2 - min(g.Width/2, len(text)/2)
	return f.SetText(g.Height/2, x, text, draw.ColorDefault)
}
