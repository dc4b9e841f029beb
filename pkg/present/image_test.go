package present

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/trophyraster/raster/pkg/raster"
)

func TestToImageCopiesPixelColors(t *testing.T) {
	fb := raster.NewFramebuffer(2, 2)
	fb.SetPixel(1, 1, RGB(10, 20, 30))

	img := ToImage(fb)

	r, g, b, a := img.RGBAAt(1, 1).R, img.RGBAAt(1, 1).G, img.RGBAAt(1, 1).B, img.RGBAAt(1, 1).A
	assert.Equal(t, uint8(10), r)
	assert.Equal(t, uint8(20), g)
	assert.Equal(t, uint8(30), b)
	assert.Equal(t, uint8(255), a)
}
