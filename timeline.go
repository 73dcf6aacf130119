package scrollfx

import "github.com/tanema/gween/ease"

// DefaultTweenDuration is the length given to a tween that does not set one,
// in timeline units.
const DefaultTweenDuration = 0.5

// Track animates one field between two values over [Start, End] of its
// timeline. Values are absolute: a track never reads the field it writes.
type Track struct {
	Node     *Node
	Prop     Prop
	From, To float64
	Start    float64
	End      float64
	Ease     ease.TweenFunc

	field   *float64
	chained bool // an earlier-starting track writes the same field
}

// ValueAt returns the track value at timeline position t. Positions before
// Start yield From, positions after End yield To.
func (tr *Track) ValueAt(t float64) float64 {
	if tr.End <= tr.Start {
		if t >= tr.Start {
			return tr.To
		}
		return tr.From
	}
	local := (t - tr.Start) / (tr.End - tr.Start)
	switch {
	case local <= 0:
		return tr.From
	case local >= 1:
		return tr.To
	}
	fn := tr.Ease
	if fn == nil {
		fn = ease.Linear
	}
	k := float64(fn(float32(local), 0, 1, 1))
	return tr.From + (tr.To-tr.From)*k
}

// TweenOption customizes a tween added with Timeline.To.
type TweenOption func(*tweenConfig)

type tweenConfig struct {
	at       float64
	duration float64
	ease     ease.TweenFunc
}

// At places the tween at position t of the timeline.
func At(t float64) TweenOption {
	return func(c *tweenConfig) { c.at = t }
}

// Duration sets the tween length in timeline units.
func Duration(d float64) TweenOption {
	return func(c *tweenConfig) { c.duration = d }
}

// Ease sets the easing function.
func Ease(fn ease.TweenFunc) TweenOption {
	return func(c *tweenConfig) { c.ease = fn }
}

// Timeline is an ordered set of tracks evaluated as a pure function of a
// normalized progress value. Seek(p) maps p in [0, 1] onto [0, Duration()]
// and writes every track; values outside [0, 1] clamp to the endpoints.
// Seeking the same p twice yields the same state.
type Timeline struct {
	tracks      []Track
	duration    float64
	defaultEase ease.TweenFunc
	progress    float64
}

// NewTimeline creates an empty timeline. Tweens without an explicit ease use
// defaultEase, or power1.out when nil.
func NewTimeline(defaultEase ease.TweenFunc) *Timeline {
	if defaultEase == nil {
		defaultEase = ease.OutQuad
	}
	return &Timeline{defaultEase: defaultEase}
}

// To appends tracks moving every prop of every target from its current value
// to the given value. Start values are captured now. An empty target list
// adds nothing, which leaves the tween inert.
func (tl *Timeline) To(targets []*Node, props Props, opts ...TweenOption) *Timeline {
	cfg := tweenConfig{duration: DefaultTweenDuration, ease: tl.defaultEase}
	for _, o := range opts {
		o(&cfg)
	}
	end := cfg.at + cfg.duration
	for _, n := range targets {
		for _, p := range props.sorted() {
			for _, f := range n.fields(p) {
				from, chained := tl.chainFrom(f, cfg.at)
				tl.tracks = append(tl.tracks, Track{
					Node:    n,
					Prop:    p,
					From:    from,
					To:      props[p],
					Start:   cfg.at,
					End:     end,
					Ease:    cfg.ease,
					field:   f,
					chained: chained,
				})
			}
		}
	}
	if len(targets) > 0 && end > tl.duration {
		tl.duration = end
	}
	return tl
}

// chainFrom returns the start value for a new track on f beginning at at.
// The predecessor is the track on f that started last at or before at, and
// the new track picks up its value there. Without one the field's current
// value is used.
func (tl *Timeline) chainFrom(f *float64, at float64) (float64, bool) {
	var prev *Track
	for i := range tl.tracks {
		tr := &tl.tracks[i]
		if tr.field != f || tr.Start > at {
			continue
		}
		if prev == nil || tr.Start >= prev.Start {
			prev = tr
		}
	}
	if prev == nil {
		return *f, false
	}
	return prev.ValueAt(at), true
}

// Duration returns the end of the last tween in timeline units.
func (tl *Timeline) Duration() float64 {
	return tl.duration
}

// Tracks returns the timeline's tracks. The slice MUST NOT be mutated.
func (tl *Timeline) Tracks() []Track {
	return tl.tracks
}

// Progress returns the last value passed to Seek, clamped.
func (tl *Timeline) Progress() float64 {
	return tl.progress
}

// Seek writes every track's value at progress p.
func (tl *Timeline) Seek(p float64) {
	p = clamp01(p)
	tl.progress = p
	t := p * tl.duration
	for i := range tl.tracks {
		tr := &tl.tracks[i]
		if tr.Node.disposed {
			continue
		}
		// A chained track owns its field only once its start is reached.
		if tr.chained && t < tr.Start {
			continue
		}
		*tr.field = tr.ValueAt(t)
		tr.Node.transformDirty = true
	}
}

// fieldsWritten returns every field pointer the timeline writes.
func (tl *Timeline) fieldsWritten() []*float64 {
	out := make([]*float64, len(tl.tracks))
	for i := range tl.tracks {
		out[i] = tl.tracks[i].field
	}
	return out
}
