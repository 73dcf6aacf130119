package sticker

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/phanxgames/scrollfx"
)

// Light is a directional light shining from Position toward the origin.
type Light struct {
	Position  mgl64.Vec3
	Color     scrollfx.Color
	Intensity float64
}

// Lighting is an ambient term plus directional lights, evaluated once per
// face (flat shading).
type Lighting struct {
	Ambient          scrollfx.Color
	AmbientIntensity float64
	Lights           []Light
}

// diffuseScale maps light intensities onto a [0, 1]-ish shading range.
const diffuseScale = 0.12

// DefaultLighting is a white ambient, a white key, purple and indigo
// accents from the sides and behind, and a white fill.
func DefaultLighting() Lighting {
	white := scrollfx.Hex(0xffffff)
	return Lighting{
		Ambient:          white,
		AmbientIntensity: 0.8,
		Lights: []Light{
			{Position: mgl64.Vec3{5, 5, 5}, Color: white, Intensity: 2},
			{Position: mgl64.Vec3{-5, 5, 20}, Color: scrollfx.Hex(0x7e22ce), Intensity: 5},
			{Position: mgl64.Vec3{0, 5, -10}, Color: scrollfx.Hex(0x4f46e5), Intensity: 5},
			{Position: mgl64.Vec3{5, 0, 5}, Color: white, Intensity: 4},
		},
	}
}

// Shade returns base lit by l for a face with the given unit normal. Faces
// are treated as two-sided. The result is clamped to [0, 1] per channel.
func (l Lighting) Shade(base scrollfx.Color, normal mgl64.Vec3) scrollfx.Color {
	r := l.Ambient.R * l.AmbientIntensity
	g := l.Ambient.G * l.AmbientIntensity
	b := l.Ambient.B * l.AmbientIntensity
	for _, li := range l.Lights {
		dir := li.Position
		if dir.Len() == 0 {
			continue
		}
		d := normal.Dot(dir.Normalize())
		if d < 0 {
			d = -d
		}
		k := d * li.Intensity * diffuseScale
		r += li.Color.R * k
		g += li.Color.G * k
		b += li.Color.B * k
	}
	return scrollfx.Color{
		R: scrollfx.Clamp01(base.R * r),
		G: scrollfx.Clamp01(base.G * g),
		B: scrollfx.Clamp01(base.B * b),
		A: base.A,
	}
}
