package present

import (
	"image"
	stdcolor "image/color"

	"github.com/trophyraster/raster/pkg/color"
	"github.com/trophyraster/raster/pkg/raster"
)

// ToImage converts a framebuffer to a standard image.RGBA, for callers
// that want to encode a frame to PNG/JPEG rather than draw it live.
func ToImage(fb *raster.Framebuffer) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := range fb.Height {
		for x := range fb.Width {
			a, r, g, b := color.UnpackARGB8(fb.GetPixel(x, y))
			img.SetRGBA(x, y, stdcolor.RGBA{R: r, G: g, B: b, A: a})
		}
	}
	return img
}
