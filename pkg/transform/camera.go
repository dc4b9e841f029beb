package transform

import (
	"math"

	"github.com/trophyraster/raster/pkg/math3d"
)

// Camera holds projection parameters and a Transform, deriving right-
// handed view/projection matrices from them. Matrices are recomputed
// lazily, following the teacher's viewDirty/projDirty caching idiom.
type Camera struct {
	Transform Transform

	FOV         float64 // vertical field of view, radians
	AspectRatio float64 // width / height
	Near        float64
	Far         float64
	Speed       float64

	viewMatrix math3d.Mat4
	projMatrix math3d.Mat4
	viewDirty  bool
	projDirty  bool
}

// NewCamera returns a camera at the identity transform with the same
// defaults as the lecture series this engine is built from: near=0.1,
// far=100, fov=pi/4, aspect=1, speed=1.
func NewCamera() *Camera {
	c := &Camera{
		Transform:   Identity(),
		FOV:         math.Pi / 4,
		AspectRatio: 1,
		Near:        0.1,
		Far:         100,
		Speed:       1,
	}
	c.viewDirty = true
	c.projDirty = true
	return c
}

// SetTransform replaces the camera's transform and marks the view matrix
// stale.
func (c *Camera) SetTransform(t Transform) {
	c.Transform = t
	c.viewDirty = true
}

// SetProjection updates the projection parameters and marks the
// projection matrix stale.
func (c *Camera) SetProjection(fov, aspect, near, far float64) {
	c.FOV, c.AspectRatio, c.Near, c.Far = fov, aspect, near, far
	c.projDirty = true
}

// View returns the camera's right-handed view matrix, recomputing it if
// the transform changed since the last call.
func (c *Camera) View() math3d.Mat4 {
	if c.viewDirty {
		eye := c.Transform.Translation
		c.viewMatrix = math3d.LookAtRH(eye, eye.Add(c.Transform.Forward()), c.Transform.Up())
		c.viewDirty = false
	}
	return c.viewMatrix
}

// Projection returns the camera's right-handed perspective projection
// matrix, recomputing it if the parameters changed since the last call.
func (c *Camera) Projection() math3d.Mat4 {
	if c.projDirty {
		c.projMatrix = math3d.PerspectiveRH(c.FOV, c.AspectRatio, c.Near, c.Far)
		c.projDirty = false
	}
	return c.projMatrix
}

// ViewProjection returns Projection() * View().
func (c *Camera) ViewProjection() math3d.Mat4 {
	return c.Projection().Mul(c.View())
}
