package sticker

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/phanxgames/scrollfx"
)

// Camera defaults.
const (
	DefaultFOV  = 75.0 // vertical, degrees
	DefaultNear = 0.1
	DefaultFar  = 1000.0
	DefaultZ    = 5.0
)

// Camera is a perspective camera looking down -Z at the origin.
type Camera struct {
	FOV       float64
	Near, Far float64
	Position  mgl64.Vec3

	viewport scrollfx.Viewport
	viewProj mgl64.Mat4
}

// NewCamera creates the default camera for a viewport.
func NewCamera(vp scrollfx.Viewport) *Camera {
	c := &Camera{
		FOV:      DefaultFOV,
		Near:     DefaultNear,
		Far:      DefaultFar,
		Position: mgl64.Vec3{0, 0, DefaultZ},
	}
	c.Resize(vp)
	return c
}

// Resize updates the aspect ratio and rebuilds the projection.
func (c *Camera) Resize(vp scrollfx.Viewport) {
	c.viewport = vp
	c.update()
}

// Viewport returns the viewport the projection was built for.
func (c *Camera) Viewport() scrollfx.Viewport {
	return c.viewport
}

func (c *Camera) update() {
	aspect := c.viewport.Aspect()
	if aspect <= 0 {
		aspect = 1
	}
	proj := mgl64.Perspective(mgl64.DegToRad(c.FOV), aspect, c.Near, c.Far)
	view := mgl64.LookAtV(c.Position, mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0, 1, 0})
	c.viewProj = proj.Mul4(view)
}

// Project maps a world point to screen pixels. depth is the NDC z in
// [-1, 1]; ok is false for points behind the camera or outside the clip
// depth range.
func (c *Camera) Project(p mgl64.Vec3) (x, y, depth float64, ok bool) {
	clip := c.viewProj.Mul4x1(p.Vec4(1))
	w := clip.W()
	if w <= 0 {
		return 0, 0, 0, false
	}
	ndc := clip.Vec3().Mul(1 / w)
	if ndc.Z() < -1 || ndc.Z() > 1 {
		return 0, 0, 0, false
	}
	x = (ndc.X() + 1) / 2 * c.viewport.Width
	y = (1 - ndc.Y()) / 2 * c.viewport.Height
	return x, y, ndc.Z(), true
}
