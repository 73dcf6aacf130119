package sticker

import (
	"fmt"
	"image"
	"image/color"
	_ "image/png" // smoke textures
	"math"
	"math/rand/v2"
	"os"

	_ "github.com/ftrvxmtrx/tga" // smoke textures
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/phanxgames/scrollfx"
)

// SmokeConfig configures the particle decoration.
type SmokeConfig struct {
	Count  int
	Seed   uint64
	Center mgl64.Vec3
	// Radius is the outer radius of the initial cloud; particles start in
	// the shell between Radius/2 and Radius.
	Radius float64
	// Jitter is the amplitude of the per-particle drift, in world units.
	Jitter float64
	// Size is the on-screen sprite diameter in pixels at depth 0.
	Size  float64
	Color scrollfx.Color

	// BaseOpacity is the opacity at progress 0. It rises linearly to
	// PeakOpacity at PeakAt and falls to 0 at progress 1.
	BaseOpacity float64
	PeakOpacity float64
	PeakAt      float64
}

// DefaultSmokeConfig returns a faint purple haze around the model.
func DefaultSmokeConfig() SmokeConfig {
	return SmokeConfig{
		Count:       180,
		Seed:        7,
		Radius:      6,
		Jitter:      0.25,
		Size:        48,
		Color:       scrollfx.Hex(0xb9a4ff),
		BaseOpacity: 0.15,
		PeakOpacity: 0.35,
		PeakAt:      0.4,
	}
}

type particle struct {
	initial mgl64.Vec3
	pos     mgl64.Vec3
	speed   float64
	phase   float64
}

// Smoke is a fixed buffer of drifting particles that converge on the center
// as scroll progress grows. Positions are a pure function of elapsed time
// and progress.
type Smoke struct {
	cfg       SmokeConfig
	particles []particle
	opacity   float64
	texture   *ebiten.Image
}

// NewSmoke allocates cfg.Count particles from a seeded generator, so equal
// configs produce equal clouds.
func NewSmoke(cfg SmokeConfig) *Smoke {
	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15))
	ps := make([]particle, cfg.Count)
	for i := range ps {
		// Uniform direction on the sphere, radius in the outer shell.
		z := rng.Float64()*2 - 1
		a := rng.Float64() * 2 * math.Pi
		s := math.Sqrt(1 - z*z)
		r := cfg.Radius * (0.5 + 0.5*rng.Float64())
		off := mgl64.Vec3{s * math.Cos(a), s * math.Sin(a), z}.Mul(r)
		ps[i] = particle{
			initial: cfg.Center.Add(off),
			speed:   0.3 + rng.Float64()*0.7,
			phase:   rng.Float64() * 2 * math.Pi,
		}
		ps[i].pos = ps[i].initial
	}
	return &Smoke{cfg: cfg, particles: ps, opacity: cfg.BaseOpacity}
}

// Convergence returns the convergence factor c(p) = 1 - p, clamped: 1 keeps
// particles at their initial positions, 0 collapses them onto the center.
func Convergence(p float64) float64 {
	return 1 - scrollfx.Clamp01(p)
}

// jitter is the drift of particle pt at time t.
func (s *Smoke) jitter(pt *particle, t float64) mgl64.Vec3 {
	w := t*pt.speed + pt.phase
	return mgl64.Vec3{
		math.Sin(w),
		math.Cos(w * 0.8),
		0.5 * math.Sin(w*0.6+pt.phase),
	}.Mul(s.cfg.Jitter)
}

// Update recomputes every position and the opacity for elapsed seconds t and
// progress p:
//
//	pos = center + (initial-center)*c + jitter(t)*(1-c),  c = 1-p
func (s *Smoke) Update(t, p float64) {
	c := Convergence(p)
	for i := range s.particles {
		pt := &s.particles[i]
		spread := pt.initial.Sub(s.cfg.Center).Mul(c)
		pt.pos = s.cfg.Center.Add(spread).Add(s.jitter(pt, t).Mul(1 - c))
	}
	s.opacity = s.OpacityAt(p)
}

// OpacityAt returns the fade curve value at progress p.
func (s *Smoke) OpacityAt(p float64) float64 {
	p = scrollfx.Clamp01(p)
	peakAt := s.cfg.PeakAt
	if peakAt <= 0 || peakAt >= 1 {
		return s.cfg.BaseOpacity * (1 - p)
	}
	if p <= peakAt {
		return s.cfg.BaseOpacity + (s.cfg.PeakOpacity-s.cfg.BaseOpacity)*p/peakAt
	}
	return s.cfg.PeakOpacity * (1 - (p-peakAt)/(1-peakAt))
}

// Opacity returns the opacity computed by the last Update.
func (s *Smoke) Opacity() float64 {
	return s.opacity
}

// Len returns the particle count.
func (s *Smoke) Len() int {
	return len(s.particles)
}

// Position returns the current position of particle i.
func (s *Smoke) Position(i int) mgl64.Vec3 {
	return s.particles[i].pos
}

// Initial returns the initial position of particle i.
func (s *Smoke) Initial(i int) mgl64.Vec3 {
	return s.particles[i].initial
}

// SetTexture sets the sprite image. Nil draws untextured points.
func (s *Smoke) SetTexture(img image.Image) {
	if s.texture != nil {
		s.texture.Deallocate()
		s.texture = nil
	}
	if img != nil {
		s.texture = ebiten.NewImageFromImage(img)
	}
}

// Textured reports whether a sprite texture is set.
func (s *Smoke) Textured() bool {
	return s.texture != nil
}

// Draw renders every particle through cam with additive blending.
func (s *Smoke) Draw(screen *ebiten.Image, cam *Camera) {
	if s.opacity <= 0 {
		return
	}
	c := s.cfg.Color
	a := c.A * s.opacity
	for i := range s.particles {
		x, y, z, ok := cam.Project(s.particles[i].pos)
		if !ok {
			continue
		}
		size := s.cfg.Size * (1 - 0.5*z)
		if s.texture == nil {
			vector.DrawFilledCircle(screen, float32(x), float32(y), float32(size/8),
				c.WithAlpha(a).NRGBA(), true)
			continue
		}
		b := s.texture.Bounds()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-float64(b.Dx())/2, -float64(b.Dy())/2)
		op.GeoM.Scale(size/float64(b.Dx()), size/float64(b.Dy()))
		op.GeoM.Translate(x, y)
		op.ColorScale.Scale(float32(c.R*a), float32(c.G*a), float32(c.B*a), float32(a))
		op.Blend = ebiten.BlendLighter
		op.Filter = ebiten.FilterLinear
		screen.DrawImage(s.texture, op)
	}
}

// Dispose releases the texture.
func (s *Smoke) Dispose() {
	s.SetTexture(nil)
}

// LoadSmokeTexture decodes a PNG or TGA sprite.
func LoadSmokeTexture(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load smoke texture: %w", err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("load smoke texture %s: %w", path, err)
	}
	return img, nil
}

// ProceduralSmokeTexture renders a soft white puff of the given size.
func ProceduralSmokeTexture(size int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	c := float64(size) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := (float64(x) + 0.5 - c) / c
			dy := (float64(y) + 0.5 - c) / c
			d := math.Sqrt(dx*dx + dy*dy)
			if d >= 1 {
				continue
			}
			f := math.Exp(-4*d*d) * (1 - d)
			img.SetNRGBA(x, y, color.NRGBA{255, 255, 255, uint8(f * 255)})
		}
	}
	return img
}
