package sticker

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween/ease"
)

// Keyframe is a target pose reached at body progress At.
type Keyframe struct {
	At   float64
	Pose Pose
	// Ease shapes the approach to this keyframe from the previous one.
	// Nil means linear.
	Ease ease.TweenFunc
}

// ScrollPath maps body scroll progress to an absolute pose. Each section of
// the page contributes one keyframe; poses are interpolated between
// neighbors, so no keyframe ever needs to undo another's rotation.
type ScrollPath struct {
	keys []Keyframe
}

// NewScrollPath creates a path from keyframes sorted by At.
func NewScrollPath(keys ...Keyframe) *ScrollPath {
	for i := 1; i < len(keys); i++ {
		if keys[i].At < keys[i-1].At {
			panic("sticker: scroll path keyframes must be sorted by At")
		}
	}
	return &ScrollPath{keys: keys}
}

// DefaultScrollPath rests low in the hero, swings right through the info
// section, left through the lab section and settles centered before exit.
func DefaultScrollPath() *ScrollPath {
	return NewScrollPath(
		Keyframe{At: 0, Pose: Pose{
			Position: mgl64.Vec3{0, -2.5, 0},
			Scale:    mgl64.Vec3{1, 1, 1},
		}},
		Keyframe{At: 0.25, Ease: ease.InOutQuad, Pose: Pose{
			Position: mgl64.Vec3{2.5, -0.5, 0},
			Rotation: mgl64.Vec3{0, math.Pi / 4, 0},
			Scale:    mgl64.Vec3{0.9, 0.9, 0.9},
		}},
		Keyframe{At: 0.5, Ease: ease.InOutQuad, Pose: Pose{
			Position: mgl64.Vec3{-2.5, 0, 0},
			Rotation: mgl64.Vec3{0.2, -math.Pi / 4, 0},
			Scale:    mgl64.Vec3{0.9, 0.9, 0.9},
		}},
		Keyframe{At: 0.75, Ease: ease.InOutQuad, Pose: Pose{
			Position: mgl64.Vec3{0, -0.5, 0},
			Scale:    mgl64.Vec3{1, 1, 1},
		}},
	)
}

// Len returns the number of keyframes.
func (sp *ScrollPath) Len() int {
	return len(sp.keys)
}

// PoseAt returns the pose at progress p. Progress before the first keyframe
// yields its pose, after the last yields the last pose. An empty path is at
// rest.
func (sp *ScrollPath) PoseAt(p float64) Pose {
	if len(sp.keys) == 0 {
		return RestPose()
	}
	if p <= sp.keys[0].At {
		return sp.keys[0].Pose
	}
	last := sp.keys[len(sp.keys)-1]
	if p >= last.At {
		return last.Pose
	}
	i := 1
	for sp.keys[i].At <= p {
		i++
	}
	a, b := sp.keys[i-1], sp.keys[i]
	t := (p - a.At) / (b.At - a.At)
	if b.Ease != nil {
		t = float64(b.Ease(float32(t), 0, 1, 1))
	}
	return a.Pose.Lerp(b.Pose, t)
}
