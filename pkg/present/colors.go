package present

import "github.com/trophyraster/raster/pkg/color"

// RGB packs an opaque packed-ARGB8 color from 8-bit channels.
func RGB(r, g, b uint8) uint32 {
	return color.PackARGB8(255, r, g, b)
}

// RGBA packs a packed-ARGB8 color from 8-bit channels including alpha.
func RGBA(r, g, b, a uint8) uint32 {
	return color.PackARGB8(a, r, g, b)
}

// Named colors for demo/HUD use, packed ARGB8.
var (
	ColorBlack   = RGB(0, 0, 0)
	ColorWhite   = RGB(255, 255, 255)
	ColorRed     = RGB(255, 0, 0)
	ColorGreen   = RGB(0, 255, 0)
	ColorBlue    = RGB(0, 0, 255)
	ColorYellow  = RGB(255, 255, 0)
	ColorCyan    = RGB(0, 255, 255)
	ColorMagenta = RGB(255, 0, 255)
	ColorGray    = RGB(128, 128, 128)
	ColorSky     = RGB(135, 206, 235)
	ColorGrass   = RGB(34, 139, 34)
)
