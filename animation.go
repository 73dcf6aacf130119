package scrollfx

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Tweenable is a tween target: something whose fields a TweenGroup writes
// and that must be told when they change. *Node satisfies it.
type Tweenable interface {
	MarkDirty()
	IsDisposed() bool
}

// FieldTween describes one field animated by a TweenGroup.
type FieldTween struct {
	Field    *float64
	From, To float64
}

// TweenGroup animates float64 fields on a target simultaneously over
// wall-clock time. Call Update(dt) each frame. The group auto-applies values
// and marks the target dirty. If the target is disposed, the group stops
// immediately.
//
// There is no global animation manager: callers drive Update themselves,
// either directly or through a Sequence.
type TweenGroup struct {
	tweens []*gween.Tween
	fields []*float64
	target Tweenable
	Done   bool
}

// NewTweenGroup creates a group animating each field from From to To over
// duration seconds using fn.
func NewTweenGroup(target Tweenable, duration float32, fn ease.TweenFunc, fields ...FieldTween) *TweenGroup {
	g := &TweenGroup{
		tweens: make([]*gween.Tween, len(fields)),
		fields: make([]*float64, len(fields)),
		target: target,
	}
	for i, f := range fields {
		g.tweens[i] = gween.New(float32(f.From), float32(f.To), duration, fn)
		g.fields[i] = f.Field
	}
	return g
}

// Update advances all tweens by dt seconds, writes values to the target fields,
// and marks the target dirty. If the target has been disposed, Done is set
// to true and no writes occur.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}

	if g.target != nil && g.target.IsDisposed() {
		g.Done = true
		return
	}

	allDone := true
	for i, tw := range g.tweens {
		val, finished := tw.Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone

	if g.target != nil {
		g.target.MarkDirty()
	}
}

// Seek jumps every tween to t seconds from its start and applies the values.
func (g *TweenGroup) Seek(t float32) {
	if g.target != nil && g.target.IsDisposed() {
		g.Done = true
		return
	}
	allDone := true
	for i, tw := range g.tweens {
		val, finished := tw.Set(t)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
	if g.target != nil {
		g.target.MarkDirty()
	}
}

// TweenPosition animates node.X and node.Y to the given pixel offsets.
func TweenPosition(node *Node, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	return NewTweenGroup(node, duration, fn,
		FieldTween{&node.X, node.X, toX},
		FieldTween{&node.Y, node.Y, toY},
	)
}

// TweenScale animates node.ScaleX and node.ScaleY.
func TweenScale(node *Node, toSX, toSY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	return NewTweenGroup(node, duration, fn,
		FieldTween{&node.ScaleX, node.ScaleX, toSX},
		FieldTween{&node.ScaleY, node.ScaleY, toSY},
	)
}

// TweenColor animates all four components of node.Color.
func TweenColor(node *Node, to Color, duration float32, fn ease.TweenFunc) *TweenGroup {
	return NewTweenGroup(node, duration, fn,
		FieldTween{&node.Color.R, node.Color.R, to.R},
		FieldTween{&node.Color.G, node.Color.G, to.G},
		FieldTween{&node.Color.B, node.Color.B, to.B},
		FieldTween{&node.Color.A, node.Color.A, to.A},
	)
}

// TweenAlpha animates node.Alpha.
func TweenAlpha(node *Node, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	return NewTweenGroup(node, duration, fn, FieldTween{&node.Alpha, node.Alpha, to})
}

// TweenRotation animates node.Rotation (radians).
func TweenRotation(node *Node, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	return NewTweenGroup(node, duration, fn, FieldTween{&node.Rotation, node.Rotation, to})
}

// TweenProps animates any set of node properties to absolute values.
func TweenProps(node *Node, props Props, duration float32, fn ease.TweenFunc) *TweenGroup {
	var fields []FieldTween
	for _, p := range props.sorted() {
		for _, f := range node.fields(p) {
			fields = append(fields, FieldTween{f, *f, props[p]})
		}
	}
	return NewTweenGroup(node, duration, fn, fields...)
}

// sequenceEntry is a group scheduled at an offset inside a Sequence.
type sequenceEntry struct {
	at    float32
	group *TweenGroup
}

// Sequence plays tween groups on a shared clock, each starting at its own
// offset in seconds. It is the time-driven counterpart of Timeline and is
// used for one-shot entrance animations.
type Sequence struct {
	entries []sequenceEntry
	clock   float32
	Done    bool
}

// NewSequence creates an empty sequence.
func NewSequence() *Sequence {
	return &Sequence{}
}

// Add schedules g to start at offset seconds into the sequence.
func (s *Sequence) Add(at float32, g *TweenGroup) *Sequence {
	s.entries = append(s.entries, sequenceEntry{at: at, group: g})
	s.Done = false
	return s
}

// Len returns the number of scheduled groups.
func (s *Sequence) Len() int {
	return len(s.entries)
}

// Elapsed returns the sequence clock in seconds.
func (s *Sequence) Elapsed() float32 {
	return s.clock
}

// Update advances the sequence clock by dt seconds. Groups whose offset has
// not been reached are left untouched.
func (s *Sequence) Update(dt float32) {
	if s.Done {
		return
	}
	prev := s.clock
	s.clock += dt

	allDone := true
	for _, e := range s.entries {
		if e.group.Done {
			continue
		}
		if s.clock < e.at {
			allDone = false
			continue
		}
		// Only the part of dt past the start offset counts for this group.
		step := dt
		if prev < e.at {
			step = s.clock - e.at
		}
		e.group.Update(step)
		if !e.group.Done {
			allDone = false
		}
	}
	s.Done = allDone
}
