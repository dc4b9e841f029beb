// Package raster implements the rasterizer: screen mapping, the
// incremental edge-function per-pixel loop, depth testing,
// perspective-correct attribute interpolation, Lambertian shading,
// texture sampling, and the packed-ARGB8 framebuffer it writes into.
package raster

import "math"

// Framebuffer is a packed-ARGB8 pixel buffer, row-major, (0,0) top-left.
type Framebuffer struct {
	Width, Height int
	Pixels        []uint32
}

// NewFramebuffer allocates a framebuffer of the given dimensions.
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{Width: width, Height: height, Pixels: make([]uint32, width*height)}
}

// SetPixel writes a packed ARGB8 pixel; out-of-bounds writes are ignored.
func (f *Framebuffer) SetPixel(x, y int, argb uint32) {
	if x < 0 || x >= f.Width || y < 0 || y >= f.Height {
		return
	}
	f.Pixels[y*f.Width+x] = argb
}

// GetPixel reads the packed ARGB8 pixel at (x, y), or 0 if out of bounds.
func (f *Framebuffer) GetPixel(x, y int) uint32 {
	if x < 0 || x >= f.Width || y < 0 || y >= f.Height {
		return 0
	}
	return f.Pixels[y*f.Width+x]
}

// Clear fills every pixel with argb. Implemented as a plain loop with a
// doubling copy for large buffers: this reproduces the fill contract of
// the lecture series' clear_buffer without imitating its
// iterator-exhaustion-as-side-effect mechanism.
func (f *Framebuffer) Clear(argb uint32) {
	if len(f.Pixels) == 0 {
		return
	}
	f.Pixels[0] = argb
	for filled := 1; filled < len(f.Pixels); filled *= 2 {
		copy(f.Pixels[filled:], f.Pixels[:filled])
	}
}

// DepthBuffer is a flat linear-NDC-z depth buffer matched 1:1 to a
// Framebuffer's pixel grid.
type DepthBuffer struct {
	Width, Height int
	Values        []float32
}

// NewDepthBuffer allocates a depth buffer of the given dimensions,
// initialized to +Inf (not the float32 zero value) so a Rasterizer drawn
// into before its first Clear still accepts every triangle, matching
// Clear's own reset value.
func NewDepthBuffer(width, height int) *DepthBuffer {
	d := &DepthBuffer{Width: width, Height: height, Values: make([]float32, width*height)}
	d.Clear(float32(math.Inf(1)))
	return d
}

// Clear resets every depth value to v, typically +Inf so even a triangle
// sitting exactly on the far plane (NDC z == 1.0) still passes the
// rasterizer's strict depth < depth_buffer test.
func (d *DepthBuffer) Clear(v float32) {
	if len(d.Values) == 0 {
		return
	}
	d.Values[0] = v
	for filled := 1; filled < len(d.Values); filled *= 2 {
		copy(d.Values[filled:], d.Values[:filled])
	}
}
