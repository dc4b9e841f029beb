// Package texture implements the engine's packed-ARGB8 image type and its
// wrap-repeat nearest-neighbor UV sampler, plus loaders from image files
// and a couple of procedural generators for tests and demos.
package texture

import (
	"fmt"
	"image"
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"math"
	"os"

	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/webp" // register WebP decoder

	"github.com/trophyraster/raster/pkg/color"
	"github.com/trophyraster/raster/pkg/math3d"
)

// sentinelARGB8 is returned for any UV lookup that resolves outside the
// texture's pixel data, matching the engine's "obviously wrong" magenta.
const sentinelARGB8 = uint32(0xFFFF00FF) // a=255 r=255 g=0 b=255

// Texture is a 2D image stored as packed ARGB8 pixels, row-major with
// (0,0) at the top-left.
type Texture struct {
	Width, Height int
	Pixels        []uint32
}

// New creates a texture of the given dimensions, zero-initialized.
func New(width, height int) *Texture {
	return &Texture{Width: width, Height: height, Pixels: make([]uint32, width*height)}
}

// SetPixel sets the pixel at (x, y); out-of-bounds writes are ignored.
func (t *Texture) SetPixel(x, y int, argb uint32) {
	if x < 0 || x >= t.Width || y < 0 || y >= t.Height {
		return
	}
	t.Pixels[y*t.Width+x] = argb
}

// GetPixel returns the packed pixel at (x, y), or the sentinel if out of
// bounds.
func (t *Texture) GetPixel(x, y int) uint32 {
	if x < 0 || x >= t.Width || y < 0 || y >= t.Height {
		return sentinelARGB8
	}
	return t.Pixels[y*t.Width+x]
}

// Sample performs wrap-repeat nearest-neighbor sampling at UV coordinates
// (u, v), v growing downward as in image space. UVs outside [0,1] wrap by
// repetition; any resulting index outside the backing pixel slice (e.g. a
// texture with inconsistent width/height/pixels) returns the magenta
// sentinel instead of panicking.
func (t *Texture) Sample(uv math3d.Vec2) uint32 {
	if t.Width <= 0 || t.Height <= 0 {
		return sentinelARGB8
	}
	u := wrapRepeat(uv.X)
	v := wrapRepeat(uv.Y)

	x := int(u * float64(t.Width))
	y := int(v * float64(t.Height))
	if x >= t.Width {
		x = t.Width - 1
	}
	if y >= t.Height {
		y = t.Height - 1
	}
	idx := y*t.Width + x
	if idx < 0 || idx >= len(t.Pixels) {
		return sentinelARGB8
	}
	return t.Pixels[idx]
}

// wrapRepeat folds a coordinate into [0,1) by repetition.
func wrapRepeat(c float64) float64 {
	c -= math.Floor(c)
	if c < 0 {
		c += 1
	}
	return c
}

// Load decodes an image file (PNG, JPEG, BMP, WebP) into a Texture.
func Load(path string) (*Texture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open texture %q: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode texture %q: %w", path, err)
	}
	return FromImage(img), nil
}

// FromImage packs a decoded image.Image into a Texture.
func FromImage(img image.Image) *Texture {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	tex := New(width, height)

	for y := range height {
		for x := range width {
			r, g, b, a := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			tex.SetPixel(x, y, color.PackARGB8(uint8(a>>8), uint8(r>>8), uint8(g>>8), uint8(b>>8)))
		}
	}
	return tex
}
