package scrollfx

import "math"

// Scroller produces the page scroll offset from scroll requests.
type Scroller interface {
	// ScrollBy moves the scroll target by delta pixels.
	ScrollBy(delta float64)
	// ScrollTo sets the scroll target.
	ScrollTo(y float64)
	// SetLimit sets the largest reachable offset.
	SetLimit(max float64)
	// Update advances by dt seconds and returns the rendered offset.
	Update(dt float64) float64
	// Offset returns the rendered offset.
	Offset() float64
}

// DirectScroller applies scroll requests immediately, like native scrolling.
type DirectScroller struct {
	offset, limit float64
}

func (d *DirectScroller) ScrollBy(delta float64) { d.ScrollTo(d.offset + delta) }
func (d *DirectScroller) ScrollTo(y float64)     { d.offset = clampRange(y, 0, d.limit) }
func (d *DirectScroller) Update(float64) float64 { return d.offset }
func (d *DirectScroller) Offset() float64        { return d.offset }

func (d *DirectScroller) SetLimit(max float64) {
	d.limit = math.Max(max, 0)
	d.offset = clampRange(d.offset, 0, d.limit)
}

// smoothSettle is the pixel distance below which the smooth scroller snaps.
const smoothSettle = 0.01

// SmoothScroller eases the rendered offset toward the requested one. Lerp is
// the fraction of the remaining distance covered per 60 Hz frame; it is
// scaled to the real frame time so behavior does not depend on TPS.
type SmoothScroller struct {
	Lerp float64

	target, current, limit float64
}

// NewSmoothScroller creates a smooth scroller. lerp <= 0 or >= 1 disables
// smoothing.
func NewSmoothScroller(lerp float64) *SmoothScroller {
	return &SmoothScroller{Lerp: lerp}
}

func (s *SmoothScroller) ScrollBy(delta float64) { s.ScrollTo(s.target + delta) }
func (s *SmoothScroller) ScrollTo(y float64)     { s.target = clampRange(y, 0, s.limit) }
func (s *SmoothScroller) Offset() float64        { return s.current }

// Target returns the offset the scroller is moving toward.
func (s *SmoothScroller) Target() float64 { return s.target }

func (s *SmoothScroller) SetLimit(max float64) {
	s.limit = math.Max(max, 0)
	s.target = clampRange(s.target, 0, s.limit)
	s.current = clampRange(s.current, 0, s.limit)
}

func (s *SmoothScroller) Update(dt float64) float64 {
	if s.Lerp <= 0 || s.Lerp >= 1 {
		s.current = s.target
		return s.current
	}
	k := 1 - math.Pow(1-s.Lerp, dt*60)
	s.current += (s.target - s.current) * k
	if math.Abs(s.target-s.current) < smoothSettle {
		s.current = s.target
	}
	return s.current
}

func clampRange(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
