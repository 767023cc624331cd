// Package input decodes terminal bytes into key presses and queues them
// for non-blocking, one-key-per-frame polling.
package input

import "bufio"

// Key is a decoded key press.
type Key int

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyFire
	KeyQuit
)

// Stream delivers decoded keys via a channel fed by a reader goroutine.
// Keys queue up between polls; the game consumes one per frame.
type Stream struct {
	ch chan Key
}

// StartStream spawns a goroutine that reads from r and decodes key
// presses. The stream closes when the reader fails (EOF, closed session).
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{ch: make(chan Key, 128)}
	go func() {
		defer close(s.ch)
		for {
			key, err := readKey(r)
			if err != nil {
				return
			}
			if key != KeyNone {
				s.ch <- key
			}
		}
	}()
	return s
}

// Poll returns one pending key without blocking, or KeyNone if nothing is
// waiting. Returns KeyNone forever once the stream has closed.
func (s *Stream) Poll() Key {
	select {
	case key, ok := <-s.ch:
		if !ok {
			return KeyNone
		}
		return key
	default:
		return KeyNone
	}
}

// readKey reads and decodes one key press, blocking until bytes arrive.
func readKey(r *bufio.Reader) (Key, error) {
	b, err := r.ReadByte()
	if err != nil {
		return KeyNone, err
	}
	if b == '\x1b' {
		return readEscape(r)
	}
	return decodeByte(b), nil
}

// readEscape decodes a CSI sequence after a leading ESC. Arrow keys arrive
// as one write, so the continuation bytes are already buffered; a lone ESC
// is dropped rather than blocking on bytes that may never come.
func readEscape(r *bufio.Reader) (Key, error) {
	if r.Buffered() == 0 {
		return KeyNone, nil
	}
	b, err := r.ReadByte()
	if err != nil {
		return KeyNone, err
	}
	if b != '[' {
		return decodeByte(b), nil
	}
	if r.Buffered() == 0 {
		return KeyNone, nil
	}
	b, err = r.ReadByte()
	if err != nil {
		return KeyNone, err
	}
	switch b {
	case 'D': // Left arrow
		return KeyLeft, nil
	case 'C': // Right arrow
		return KeyRight, nil
	}
	return KeyNone, nil
}

// decodeByte maps a single byte to a key. Raw mode swallows SIGINT, so
// Ctrl-C is treated as quit.
func decodeByte(b byte) Key {
	switch b {
	case 'a', 'A':
		return KeyLeft
	case 'd', 'D':
		return KeyRight
	case ' ':
		return KeyFire
	case 'q', 'Q', '\x03':
		return KeyQuit
	}
	return KeyNone
}
