package color

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPackUnpackARGB8RoundTrips(t *testing.T) {
	packed := PackARGB8(255, 12, 200, 7)
	a, r, g, b := UnpackARGB8(packed)
	assert.Equal(t, uint8(255), a)
	assert.Equal(t, uint8(12), r)
	assert.Equal(t, uint8(200), g)
	assert.Equal(t, uint8(7), b)
}

func TestMapToRange(t *testing.T) {
	assert.InDelta(t, 0.5, MapToRange(0, -1, 1, 0, 1), 1e-9)
	assert.InDelta(t, 0.0, MapToRange(-1, -1, 1, 0, 1), 1e-9)
	assert.InDelta(t, 1.0, MapToRange(1, -1, 1, 0, 1), 1e-9)
}

func TestIndexCoordsRoundTrip(t *testing.T) {
	width := 37
	for idx := 0; idx < width*5; idx++ {
		x, y := IndexToCoords(idx, width)
		assert.Equal(t, idx, CoordsToIndex(x, y, width))
	}
}

func TestClamp8(t *testing.T) {
	assert.Equal(t, uint8(0), Clamp8(-5))
	assert.Equal(t, uint8(255), Clamp8(999))
	assert.Equal(t, uint8(128), Clamp8(128))
}
