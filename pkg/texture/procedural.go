package texture

import (
	"image"
	stdcolor "image/color"

	"github.com/anthonynsimon/bild/adjust"
	"github.com/anthonynsimon/bild/blur"

	"github.com/trophyraster/raster/pkg/color"
)

// NewChecker creates a procedural checkerboard texture, c1/c2 as packed
// ARGB8 colors, checkSize pixels per tile.
func NewChecker(width, height, checkSize int, c1, c2 uint32) *Texture {
	tex := New(width, height)
	for y := range height {
		for x := range width {
			cx, cy := x/checkSize, y/checkSize
			if (cx+cy)%2 == 0 {
				tex.SetPixel(x, y, c1)
			} else {
				tex.SetPixel(x, y, c2)
			}
		}
	}
	return tex
}

// NewGradient creates a horizontal gradient texture between two packed
// ARGB8 colors.
func NewGradient(width, height int, left, right uint32) *Texture {
	tex := New(width, height)
	al, rl, gl, bl := color.UnpackARGB8(left)
	ar, rr, gr, br := color.UnpackARGB8(right)
	for y := range height {
		for x := range width {
			t := float64(x) / float64(max(width-1, 1))
			tex.SetPixel(x, y, color.PackARGB8(
				lerp8(al, ar, t), lerp8(rl, rr, t), lerp8(gl, gr, t), lerp8(bl, br, t),
			))
		}
	}
	return tex
}

func lerp8(a, b uint8, t float64) uint8 {
	return color.Clamp8(float64(a) + (float64(b)-float64(a))*t)
}

// NewSoftenedChecker builds a checkerboard texture through the stdlib
// image.Image pipeline and runs it through bild's Gaussian blur and
// contrast adjustment before repacking it as an ARGB8 Texture — a single
// mip-free preprocessing pass, not a runtime filtering mode, so it stays
// clear of the mipmapping/anisotropic non-goal.
func NewSoftenedChecker(width, height, checkSize int, c1, c2 uint32, radius, contrast float64) *Texture {
	base := NewChecker(width, height, checkSize, c1, c2)

	rgba := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := range height {
		for x := range width {
			a, r, g, b := color.UnpackARGB8(base.GetPixel(x, y))
			rgba.SetRGBA(x, y, stdcolor.RGBA{R: r, G: g, B: b, A: a})
		}
	}

	blurred := blur.Gaussian(rgba, radius)
	adjusted := adjust.Contrast(blurred, contrast)

	return FromImage(adjusted)
}
