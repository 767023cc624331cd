// Package loop provides the main game loop: it composes the clock, the
// input stream, the simulation, and the renderer into the per-frame
// INPUT → UPDATE → DRAW cycle.
package loop

import (
	"bufio"
	"io"
	"time"

	"github.com/tomz197/invaders/internal/draw"
	"github.com/tomz197/invaders/internal/game"
	"github.com/tomz197/invaders/internal/input"
)

// Frame pacing. The frame delay bounds input latency and CPU use
// independent of simulation speed; the end dwell keeps the final message
// on screen long enough to read.
const (
	frameDelay = 50 * time.Millisecond
	endDwell   = 2 * time.Second
)

// Options configures a game loop run.
type Options struct {
	// Clock drives all simulation timing. Defaults to the system clock.
	Clock game.Clock
	// Sleep pauses between frames. Defaults to time.Sleep; tests swap in
	// a function that advances a mock clock instead.
	Sleep func(time.Duration)
}

// streamSource adapts the terminal input stream to the simulation's key
// vocabulary.
type streamSource struct {
	stream *input.Stream
}

func (s streamSource) Poll() game.Key {
	switch s.stream.Poll() {
	case input.KeyLeft:
		return game.KeyLeft
	case input.KeyRight:
		return game.KeyRight
	case input.KeyFire:
		return game.KeyFire
	case input.KeyQuit:
		return game.KeyQuit
	}
	return game.KeyNone
}

// Run plays one game on a width×height playfield, reading keys from r and
// writing frames to w. It returns nil once the game ends, or the first
// rendering error; rendering errors are fatal and the caller is expected
// to restore the terminal.
func Run(r *bufio.Reader, w io.Writer, width, height int, opts Options) error {
	clock := opts.Clock
	if clock == nil {
		clock = game.SystemClock{}
	}
	sleep := opts.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}

	g, err := game.NewGame(width, height, clock.Now())
	if err != nil {
		return err
	}

	keys := streamSource{stream: input.StartStream(r)}
	frame := draw.NewFrame(width, height)
	cw := draw.NewChunkWriter(w)

	draw.HideCursor(cw)
	draw.DisableLineWrap(cw)
	draw.ClearScreen(cw)
	defer func() {
		// Park the cursor under the playfield so the shell prompt does
		// not land mid-frame.
		draw.MoveCursor(cw, 1, height)
		draw.EnableLineWrap(cw)
		draw.ShowCursor(cw)
		_ = cw.Flush()
	}()

	for {
		now := clock.Now()

		// ===== UPDATE PHASE (input is polled inside the step) =====
		g.Step(now, keys)

		// ===== DRAW PHASE =====
		if err := drawFrame(g, frame, now); err != nil {
			return err
		}
		if g.State != game.StatePlaying {
			if err := drawEnd(g, frame); err != nil {
				return err
			}
			frame.Render(cw)
			if err := cw.Flush(); err != nil {
				return err
			}
			sleep(endDwell)
			return nil
		}
		frame.Render(cw)
		if err := cw.Flush(); err != nil {
			return err
		}

		// ===== FRAME TIMING =====
		sleep(frameDelay)
	}
}
