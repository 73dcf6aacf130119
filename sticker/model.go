package sticker

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/phanxgames/scrollfx"
)

// Face is one triangle of a Mesh with its base color.
type Face struct {
	I     [3]uint32
	Color scrollfx.Color
}

// Mesh is a flattened triangle model in model space.
type Mesh struct {
	Positions []mgl64.Vec3
	Faces     []Face
}

// Bounds returns the axis-aligned bounding box. An empty mesh returns zero
// vectors.
func (m *Mesh) Bounds() (lo, hi mgl64.Vec3) {
	if len(m.Positions) == 0 {
		return lo, hi
	}
	lo = mgl64.Vec3{math.Inf(1), math.Inf(1), math.Inf(1)}
	hi = mgl64.Vec3{math.Inf(-1), math.Inf(-1), math.Inf(-1)}
	for _, p := range m.Positions {
		for i := 0; i < 3; i++ {
			lo[i] = math.Min(lo[i], p[i])
			hi[i] = math.Max(hi[i], p[i])
		}
	}
	return lo, hi
}

// Center returns the center of the bounding box.
func (m *Mesh) Center() mgl64.Vec3 {
	lo, hi := m.Bounds()
	return lo.Add(hi).Mul(0.5)
}

// Recenter translates every vertex so the bounding box is centered on the
// origin.
func (m *Mesh) Recenter() {
	c := m.Center()
	for i := range m.Positions {
		m.Positions[i] = m.Positions[i].Sub(c)
	}
}

// Model placement applied by the loader.
const ModelScale = 1.8

// ModelPose is the loader-owned orientation: upright and turned -120 degrees.
func ModelPose() Pose {
	return Pose{
		Rotation: mgl64.Vec3{math.Pi / 2, mgl64.DegToRad(-120), 0},
		Scale:    mgl64.Vec3{ModelScale, ModelScale, ModelScale},
	}
}
