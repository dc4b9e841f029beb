package present

import (
	uv "github.com/charmbracelet/ultraviolet"

	"github.com/trophyraster/raster/pkg/raster"
)

// Terminal presents a rasterizer's framebuffer in a terminal, doubling
// vertical pixel density via the half-block technique in Draw.
type Terminal struct {
	term *uv.Terminal
	cols int
	rows int
}

// NewTerminal wraps an already-started uv.Terminal sized at cols x rows
// terminal cells.
func NewTerminal(term *uv.Terminal, cols, rows int) *Terminal {
	return &Terminal{term: term, cols: cols, rows: rows}
}

// FramebufferSize returns the pixel dimensions a Framebuffer driving this
// presenter should have: one column per cell, two rows per cell.
func (t *Terminal) FramebufferSize() (width, height int) {
	return t.cols, t.rows * 2
}

// Resize updates the terminal cell dimensions after a resize event.
func (t *Terminal) Resize(cols, rows int) {
	t.cols, t.rows = cols, rows
}

// Render draws fb into the terminal's cell buffer. Call Flush to push the
// result to the screen.
func (t *Terminal) Render(fb *raster.Framebuffer) {
	Draw(fb, t.term, uv.Rect(0, 0, t.cols, t.rows))
}

// Flush pushes the cells written by Render to the actual terminal.
func (t *Terminal) Flush() error {
	return t.term.Display()
}
