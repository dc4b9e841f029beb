package present

import (
	"testing"

	uv "github.com/charmbracelet/ultraviolet"

	"github.com/stretchr/testify/assert"
	"github.com/trophyraster/raster/pkg/raster"
)

type fakeScreen struct {
	cells map[[2]int]*uv.Cell
}

func newFakeScreen() *fakeScreen {
	return &fakeScreen{cells: make(map[[2]int]*uv.Cell)}
}

func (f *fakeScreen) SetCell(x, y int, cell *uv.Cell) {
	f.cells[[2]int{x, y}] = cell
}

func TestDrawMapsTwoFramebufferRowsPerCell(t *testing.T) {
	fb := raster.NewFramebuffer(2, 4)
	fb.SetPixel(0, 0, RGB(255, 0, 0))
	fb.SetPixel(0, 1, RGB(0, 255, 0))
	fb.SetPixel(0, 2, RGB(0, 0, 255))
	fb.SetPixel(0, 3, RGB(255, 255, 0))

	scr := newFakeScreen()
	Draw(fb, scr, uv.Rect(0, 0, 2, 2))

	top := scr.cells[[2]int{0, 0}]
	bottom := scr.cells[[2]int{0, 1}]

	assert.Equal(t, "▀", top.Content)
	assert.Equal(t, RGB(255, 0, 0), packStyleColor(top.Style.Fg))
	assert.Equal(t, RGB(0, 255, 0), packStyleColor(top.Style.Bg))
	assert.Equal(t, RGB(0, 0, 255), packStyleColor(bottom.Style.Fg))
	assert.Equal(t, RGB(255, 255, 0), packStyleColor(bottom.Style.Bg))
}

func TestDrawTreatsZeroAlphaAsNoColor(t *testing.T) {
	fb := raster.NewFramebuffer(1, 2)
	scr := newFakeScreen()
	Draw(fb, scr, uv.Rect(0, 0, 1, 1))

	cell := scr.cells[[2]int{0, 0}]
	assert.Nil(t, cell.Style.Fg)
	assert.Nil(t, cell.Style.Bg)
}

// packStyleColor re-packs a style color back to packed ARGB8 for
// comparison against RGB's output.
func packStyleColor(c interface{ RGBA() (r, g, b, a uint32) }) uint32 {
	r, g, b, a := c.RGBA()
	return RGBA(uint8(r>>8), uint8(g>>8), uint8(b>>8), uint8(a>>8))
}
