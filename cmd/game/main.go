package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/tomz197/invaders/internal/draw"
	"github.com/tomz197/invaders/internal/game"
	"github.com/tomz197/invaders/internal/loop"
	"golang.org/x/term"
)

func main() {
	width, height, err := draw.TerminalSize()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read terminal size: %v\n", err)
		os.Exit(1)
	}

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to enable raw mode: %v\n", err)
		os.Exit(1)
	}
	restore := func() {
		_ = term.Restore(fd, oldState)
	}

	// A crash mid-frame must never leave the terminal in raw/no-echo mode:
	// restore first, then report.
	defer func() {
		if r := recover(); r != nil {
			restore()
			fmt.Fprintf(os.Stderr, "panic: %v\n%s", r, debug.Stack())
			os.Exit(1)
		}
	}()

	reader := bufio.NewReader(os.Stdin)
	if err := loop.Run(reader, os.Stdout, width, height, loop.Options{}); err != nil {
		restore()
		if errors.Is(err, game.ErrScreenTooSmall) {
			fmt.Fprintln(os.Stderr, err)
		} else {
			fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		}
		os.Exit(1)
	}
	restore()
}
