// Package present converts the engine's packed-ARGB8 framebuffer into
// terminal cells, using the half-block technique: each terminal row covers
// two framebuffer rows, drawn as a "▀" glyph whose foreground is the top
// pixel and whose background is the bottom pixel.
package present

import (
	stdcolor "image/color"

	uv "github.com/charmbracelet/ultraviolet"

	"github.com/trophyraster/raster/pkg/color"
	"github.com/trophyraster/raster/pkg/raster"
)

// Draw paints fb onto scr within area, which must be sized in terminal
// cells — the framebuffer should have exactly twice area's height in
// pixel rows, the caller's responsibility (see Terminal.FramebufferSize).
func Draw(fb *raster.Framebuffer, scr uv.Screen, area uv.Rectangle) {
	for row := area.Min.Y; row < area.Max.Y; row++ {
		topY := (row - area.Min.Y) * 2
		botY := topY + 1

		for col := area.Min.X; col < area.Max.X && col-area.Min.X < fb.Width; col++ {
			fbCol := col - area.Min.X
			topPixel := fb.GetPixel(fbCol, topY)
			botPixel := fb.GetPixel(fbCol, botY)

			cell := &uv.Cell{
				Content: "▀",
				Width:   1,
				Style: uv.Style{
					Fg: argbToColor(topPixel),
					Bg: argbToColor(botPixel),
				},
			}
			scr.SetCell(col, row, cell)
		}
	}
}

// argbToColor unpacks a packed ARGB8 pixel into Go's color.Color
// interface, treating a zero alpha as "no color" so the terminal's own
// background shows through an uninitialized framebuffer.
func argbToColor(argb uint32) stdcolor.Color {
	a, r, g, b := color.UnpackARGB8(argb)
	if a == 0 {
		return nil
	}
	return stdcolor.RGBA{R: r, G: g, B: b, A: a}
}
