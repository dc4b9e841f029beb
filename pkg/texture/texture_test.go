package texture

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/trophyraster/raster/pkg/color"
	"github.com/trophyraster/raster/pkg/math3d"
)

func TestSampleNearestExactTexel(t *testing.T) {
	tex := New(2, 2)
	tex.SetPixel(0, 0, color.PackARGB8(255, 10, 20, 30))
	tex.SetPixel(1, 0, color.PackARGB8(255, 40, 50, 60))
	tex.SetPixel(0, 1, color.PackARGB8(255, 70, 80, 90))
	tex.SetPixel(1, 1, color.PackARGB8(255, 100, 110, 120))

	got := tex.Sample(math3d.V2(0.1, 0.1))
	assert.Equal(t, color.PackARGB8(255, 10, 20, 30), got)
}

func TestSampleWrapsRepeat(t *testing.T) {
	tex := New(2, 2)
	tex.SetPixel(0, 0, color.PackARGB8(255, 1, 2, 3))
	inRange := tex.Sample(math3d.V2(0.1, 0.1))
	wrapped := tex.Sample(math3d.V2(1.1, 2.1))
	assert.Equal(t, inRange, wrapped)
}

func TestSampleSentinelOnEmptyTexture(t *testing.T) {
	tex := &Texture{}
	got := tex.Sample(math3d.V2(0.5, 0.5))
	assert.Equal(t, sentinelARGB8, got)
}

func TestGetPixelOutOfBoundsSentinel(t *testing.T) {
	tex := New(2, 2)
	assert.Equal(t, sentinelARGB8, tex.GetPixel(-1, 0))
	assert.Equal(t, sentinelARGB8, tex.GetPixel(5, 5))
}

func TestNewGradientEndpoints(t *testing.T) {
	left := color.PackARGB8(255, 0, 0, 0)
	right := color.PackARGB8(255, 255, 255, 255)
	tex := NewGradient(10, 1, left, right)
	assert.Equal(t, left, tex.GetPixel(0, 0))
	assert.Equal(t, right, tex.GetPixel(9, 0))
}

func TestNewSoftenedCheckerProducesOpaqueTexture(t *testing.T) {
	c1 := color.PackARGB8(255, 220, 220, 220)
	c2 := color.PackARGB8(255, 90, 90, 90)
	tex := NewSoftenedChecker(16, 16, 4, c1, c2, 1.5, 1.1)

	assert.Equal(t, 16, tex.Width)
	assert.Equal(t, 16, tex.Height)
	for _, p := range tex.Pixels {
		a, _, _, _ := color.UnpackARGB8(p)
		assert.Equal(t, uint8(255), a)
	}
}
