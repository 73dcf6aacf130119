package sticker

import (
	"math"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/phanxgames/scrollfx"
)

const eps = 1e-9

func vecNear(a, b mgl64.Vec3, tol float64) bool {
	return a.Sub(b).Len() <= tol
}

// --- Rig structure ---

func TestNewRigChainOrder(t *testing.T) {
	r := NewRig()
	want := []string{LevelRoot, LevelScroll, LevelExit, LevelIdle, LevelEntrance, LevelModel}
	levels := r.Levels()
	if len(levels) != len(want) {
		t.Fatalf("len(Levels) = %d, want %d", len(levels), len(want))
	}
	for i, l := range levels {
		if l.Name != want[i] {
			t.Errorf("level %d = %q, want %q", i, l.Name, want[i])
		}
		if i > 0 && l.Parent != levels[i-1] {
			t.Errorf("level %q parent = %v, want %q", l.Name, l.Parent, levels[i-1].Name)
		}
	}
	if r.Level(LevelIdle) != r.Idle {
		t.Error("Level(idle) should return the idle node")
	}
	if r.Level("nope") != nil {
		t.Error("Level of unknown name should be nil")
	}
	if r.Scroll.Child(LevelExit) != r.Exit {
		t.Error("Child(exit) lookup failed")
	}
}

func TestRigLevelsHaveDistinctOwners(t *testing.T) {
	r := NewRig()
	seen := map[string]string{}
	for _, l := range r.Levels()[1:] {
		if l.Owner() == "" {
			t.Errorf("level %q has no owner", l.Name)
		}
		if prev, ok := seen[l.Owner()]; ok {
			t.Errorf("owner %q shared by %q and %q", l.Owner(), prev, l.Name)
		}
		seen[l.Owner()] = l.Name
	}
}

func TestWriteByWrongOwnerPanics(t *testing.T) {
	r := NewRig()
	defer func() {
		rec := recover()
		if rec == nil {
			t.Fatal("expected panic")
		}
		if !strings.Contains(rec.(string), "sticker:") {
			t.Errorf("panic message = %q, want sticker: prefix", rec)
		}
	}()
	r.Idle.Write(OwnerScroll, RestPose())
}

func TestAddChildAlreadyParentedPanics(t *testing.T) {
	a := NewTransformNode("a", "")
	b := NewTransformNode("b", "")
	c := NewTransformNode("c", "")
	a.AddChild(c)
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	b.AddChild(c)
}

func TestWorldComposesOuterRotationIntoInnerTranslation(t *testing.T) {
	r := NewRig()
	r.Scroll.Write(OwnerScroll, Pose{
		Rotation: mgl64.Vec3{0, 0, math.Pi / 2},
		Scale:    mgl64.Vec3{1, 1, 1},
	})
	r.Idle.Write(OwnerIdle, Pose{
		Position: mgl64.Vec3{1, 0, 0},
		Scale:    mgl64.Vec3{1, 1, 1},
	})
	got := r.Model.World().Mul4x1(mgl64.Vec4{0, 0, 0, 1}).Vec3()
	if !vecNear(got, mgl64.Vec3{0, 1, 0}, 1e-9) {
		t.Errorf("model origin = %v, want (0, 1, 0)", got)
	}
}

func TestRigResetRestoresRest(t *testing.T) {
	r := NewRig()
	r.Exit.Write(OwnerExit, DefaultExitMotion().PoseAt(1))
	r.Reset()
	if r.Exit.Pose() != RestPose() {
		t.Errorf("exit pose after Reset = %+v, want rest", r.Exit.Pose())
	}
}

// --- Scroll path ---

func TestScrollPathEndpointsClamp(t *testing.T) {
	sp := DefaultScrollPath()
	first := sp.PoseAt(0)
	if sp.PoseAt(-1) != first {
		t.Error("progress below 0 should clamp to the first keyframe")
	}
	last := sp.PoseAt(1)
	if sp.PoseAt(2) != last {
		t.Error("progress above 1 should clamp to the last keyframe")
	}
	if !vecNear(first.Position, mgl64.Vec3{0, -2.5, 0}, eps) {
		t.Errorf("rest position = %v, want (0, -2.5, 0)", first.Position)
	}
}

func TestScrollPathHitsKeyframesExactly(t *testing.T) {
	sp := DefaultScrollPath()
	got := sp.PoseAt(0.25)
	if !vecNear(got.Position, mgl64.Vec3{2.5, -0.5, 0}, 1e-6) {
		t.Errorf("PoseAt(0.25).Position = %v, want (2.5, -0.5, 0)", got.Position)
	}
	// The lab keyframe's rotation is absolute, not relative to the info one.
	got = sp.PoseAt(0.5)
	if math.Abs(got.Rotation.Y()+math.Pi/4) > 1e-6 {
		t.Errorf("PoseAt(0.5).Rotation.Y = %f, want %f", got.Rotation.Y(), -math.Pi/4)
	}
}

func TestScrollPathIdempotent(t *testing.T) {
	sp := DefaultScrollPath()
	for _, p := range []float64{0.1, 0.33, 0.6, 0.9} {
		a := sp.PoseAt(p)
		sp.PoseAt(0.2)
		b := sp.PoseAt(p)
		if a != b {
			t.Errorf("PoseAt(%v) not idempotent: %+v vs %+v", p, a, b)
		}
	}
}

func TestScrollPathEmptyIsRest(t *testing.T) {
	if NewScrollPath().PoseAt(0.5) != RestPose() {
		t.Error("empty path should be at rest")
	}
}

func TestScrollPathUnsortedPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	NewScrollPath(Keyframe{At: 0.5}, Keyframe{At: 0.2})
}

// --- Motions ---

func TestExitMotionReversible(t *testing.T) {
	m := DefaultExitMotion()
	if m.PoseAt(0.5) != m.PoseAt(m.Start) {
		t.Error("exit pose before Start should be at rest")
	}
	if m.PoseAt(m.Start).Scale != (mgl64.Vec3{1, 1, 1}) {
		t.Errorf("scale at Start = %v, want 1", m.PoseAt(m.Start).Scale)
	}
	end := m.PoseAt(1)
	if end.Scale.X() != 0 {
		t.Errorf("scale at 1 = %f, want 0", end.Scale.X())
	}
	if math.Abs(end.Position.Y()-m.Lift) > eps {
		t.Errorf("lift at 1 = %f, want %f", end.Position.Y(), m.Lift)
	}
	mid := m.PoseAt(0.95)
	m.PoseAt(1)
	if m.PoseAt(0.95) != mid {
		t.Error("exit pose should depend on progress only")
	}
}

func TestIdleMotionTiltFollowsPointer(t *testing.T) {
	m := DefaultIdleMotion()
	still := m.PoseAt(0, scrollfx.Vec2{})
	if still.Position != (mgl64.Vec3{}) || still.Rotation != (mgl64.Vec3{}) {
		t.Errorf("idle pose at t=0 with no pointer = %+v, want rest", still)
	}
	tilted := m.PoseAt(0, scrollfx.Vec2{X: 0.2, Y: -0.1})
	if math.Abs(tilted.Rotation.Y()-0.2*m.TiltGain) > eps {
		t.Errorf("tilt Y = %f, want %f", tilted.Rotation.Y(), 0.2*m.TiltGain)
	}
	if math.Abs(tilted.Rotation.X()+0.1*m.TiltGain) > eps {
		t.Errorf("tilt X = %f, want %f", tilted.Rotation.X(), -0.1*m.TiltGain)
	}
}

func TestEntranceMotionFinishesAtRest(t *testing.T) {
	m := NewEntranceMotion(1, nil)
	first := m.Update(0)
	if !vecNear(first.Position, mgl64.Vec3{0, EntranceDrop, 0}, 1e-4) {
		t.Errorf("start position = %v, want drop %v", first.Position, EntranceDrop)
	}
	var p Pose
	for i := 0; i < 70 && !m.Done(); i++ {
		p = m.Update(1.0 / 60)
	}
	if !m.Done() {
		t.Fatal("entrance should finish within its duration")
	}
	if p != RestPose() {
		t.Errorf("final pose = %+v, want rest", p)
	}
}

func TestEntranceMotionDefaultEaseIsPower3Out(t *testing.T) {
	m := NewEntranceMotion(1, nil)
	p := m.Update(0.5)
	// power3.out at 0.5 is 1 - 0.5^4.
	want := EntranceDrop * (1 - 0.9375)
	if math.Abs(p.Position.Y()-want) > 1e-4 {
		t.Errorf("Y at half time = %f, want %f", p.Position.Y(), want)
	}
}
