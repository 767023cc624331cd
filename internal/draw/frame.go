package draw

import "fmt"

// Color selects the SGR color a cell is drawn with.
type Color int

const (
	ColorDefault Color = iota
	ColorRed
)

// sgr returns the ANSI SGR sequence selecting c.
func sgr(c Color) string {
	switch c {
	case ColorRed:
		return "\033[31m"
	default:
		return "\033[0m"
	}
}

type cell struct {
	glyph rune
	color Color
}

// Frame is a width×height character buffer. Cells are addressed as (y, x)
// with row 0 at the top; Render re-emits the whole grid each frame, so a
// cleared cell erases whatever was there before.
type Frame struct {
	width  int
	height int
	cells  []cell // Flat slice: [y*width + x]
}

// NewFrame creates a cleared frame buffer.
func NewFrame(width, height int) *Frame {
	f := &Frame{
		width:  width,
		height: height,
		cells:  make([]cell, width*height),
	}
	f.Clear()
	return f
}

// Clear resets every cell to a blank.
func (f *Frame) Clear() {
	blank := cell{glyph: ' '}
	for i := range f.cells {
		f.cells[i] = blank
	}
}

// SetCell puts a glyph at (y, x). Drawing out of bounds is an error;
// callers treat it as fatal rather than continue with a corrupted frame.
func (f *Frame) SetCell(y, x int, glyph rune, color Color) error {
	if y < 0 || y >= f.height || x < 0 || x >= f.width {
		return fmt.Errorf("draw out of bounds: (%d,%d) on %dx%d frame", y, x, f.width, f.height)
	}
	f.cells[y*f.width+x] = cell{glyph: glyph, color: color}
	return nil
}

// SetText writes s starting at (y, x), truncated at the right edge.
func (f *Frame) SetText(y, x int, s string, color Color) error {
	if y < 0 || y >= f.height || x < 0 || x >= f.width {
		return fmt.Errorf("draw out of bounds: (%d,%d) on %dx%d frame", y, x, f.width, f.height)
	}
	for _, r := range s {
		if x >= f.width {
			break
		}
		f.cells[y*f.width+x] = cell{glyph: r, color: color}
		x++
	}
	return nil
}

// Render emits the full grid to cw with cursor addressing per row and
// minimal color transitions. The caller flushes.
func (f *Frame) Render(cw *ChunkWriter) {
	cur := ColorDefault
	cw.WriteString(sgr(cur))
	for y := 0; y < f.height; y++ {
		cw.MoveCursor(1, y+1)
		for x := 0; x < f.width; x++ {
			c := f.cells[y*f.width+x]
			if c.color != cur {
				cur = c.color
				cw.WriteString(sgr(cur))
			}
			cw.WriteRune(c.glyph)
		}
	}
	if cur != ColorDefault {
		cw.WriteString(sgr(ColorDefault))
	}
}
