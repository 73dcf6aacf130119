package sticker

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/phanxgames/scrollfx"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// ExitMotion shrinks the model and lifts it out of view as body progress runs
// from Start to 1. The pose is a function of progress only, so scrolling back
// reverses it exactly.
type ExitMotion struct {
	Start float64 // body progress where the exit begins
	Lift  float64 // world units moved up at progress 1
	Spin  float64 // radians around Y at progress 1
}

// DefaultExitMotion starts the exit in the last 15% of the page.
func DefaultExitMotion() ExitMotion {
	return ExitMotion{Start: 0.85, Lift: 6, Spin: math.Pi}
}

// Amount returns the eased exit fraction in [0, 1] at progress p.
func (m ExitMotion) Amount(p float64) float64 {
	if m.Start >= 1 {
		if p >= 1 {
			return 1
		}
		return 0
	}
	t := scrollfx.Clamp01((p - m.Start) / (1 - m.Start))
	return float64(ease.InQuad(float32(t), 0, 1, 1))
}

// PoseAt returns the exit level pose at progress p.
func (m ExitMotion) PoseAt(p float64) Pose {
	a := m.Amount(p)
	s := 1 - a
	return Pose{
		Position: mgl64.Vec3{0, m.Lift * a, 0},
		Rotation: mgl64.Vec3{0, m.Spin * a, 0},
		Scale:    mgl64.Vec3{s, s, s},
	}
}

// IdleMotion is the continuous float applied while the model is active:
// a vertical sine bob, a slow sway around Y and a tilt following the pointer.
type IdleMotion struct {
	BobAmplitude  float64
	BobSpeed      float64 // radians per second
	SwayAmplitude float64
	SwaySpeed     float64
	TiltGain      float64 // radians per unit of pointer offset
}

// DefaultIdleMotion returns the stock float parameters.
func DefaultIdleMotion() IdleMotion {
	return IdleMotion{
		BobAmplitude:  0.15,
		BobSpeed:      1.2,
		SwayAmplitude: 0.12,
		SwaySpeed:     0.5,
		TiltGain:      0.5,
	}
}

// PoseAt returns the idle pose t seconds after the model became active.
// pointer is the cursor offset from the viewport center, already scaled.
func (m IdleMotion) PoseAt(t float64, pointer scrollfx.Vec2) Pose {
	return Pose{
		Position: mgl64.Vec3{0, m.BobAmplitude * math.Sin(m.BobSpeed*t), 0},
		Rotation: mgl64.Vec3{
			pointer.Y * m.TiltGain,
			m.SwayAmplitude*math.Sin(m.SwaySpeed*t) + pointer.X*m.TiltGain,
			0,
		},
		Scale: mgl64.Vec3{1, 1, 1},
	}
}

// EntranceMotion drops the model in from above while unwinding a quarter
// turn around Z. It runs once, on wall-clock time.
type EntranceMotion struct {
	From Pose
	tw   *gween.Tween
	done bool
}

// Entrance defaults: 12.5 units above rest, -90 degrees around Z, 2.5 s.
const (
	EntranceDrop     = 12.5
	EntranceDuration = 2.5
)

// NewEntranceMotion creates the drop-in tween. A nil ease means power3 out
// (quartic).
func NewEntranceMotion(duration float64, fn ease.TweenFunc) *EntranceMotion {
	if fn == nil {
		fn = ease.OutQuart
	}
	return &EntranceMotion{
		From: Pose{
			Position: mgl64.Vec3{0, EntranceDrop, 0},
			Rotation: mgl64.Vec3{0, 0, -math.Pi / 2},
			Scale:    mgl64.Vec3{1, 1, 1},
		},
		tw: gween.New(0, 1, float32(duration), fn),
	}
}

// Update advances the tween by dt seconds and returns the entrance pose.
func (m *EntranceMotion) Update(dt float64) Pose {
	if m.done {
		return RestPose()
	}
	v, finished := m.tw.Update(float32(dt))
	if finished {
		m.done = true
		return RestPose()
	}
	return m.From.Lerp(RestPose(), float64(v))
}

// Done reports whether the tween has finished.
func (m *EntranceMotion) Done() bool {
	return m.done
}
