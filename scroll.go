package scrollfx

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Edge is a position along a box: a fraction of its length plus pixels.
type Edge struct {
	Fraction float64
	Pixels   float64
}

// resolve returns the edge offset inside a box of the given length.
func (e Edge) resolve(length float64) float64 {
	return e.Fraction*length + e.Pixels
}

// Marker pairs an edge of the trigger element with an edge of the viewport.
// The marker is reached when both edges line up.
type Marker struct {
	Element  Edge
	Viewport Edge
}

// Common markers.
var (
	MarkerTopTop       = Marker{Element: Edge{}, Viewport: Edge{}}
	MarkerTopBottom    = Marker{Element: Edge{}, Viewport: Edge{Fraction: 1}}
	MarkerCenterCenter = Marker{Element: Edge{Fraction: 0.5}, Viewport: Edge{Fraction: 0.5}}
	MarkerBottomBottom = Marker{Element: Edge{Fraction: 1}, Viewport: Edge{Fraction: 1}}
)

// ParseMarker parses "<element> <viewport>" pairs such as "top 80%",
// "center center" or "bottom+=100 bottom". Each edge is top, center, bottom,
// a percentage, or a pixel value, optionally followed by "+=N" or "-=N".
// A single edge applies to both sides.
func ParseMarker(s string) (Marker, error) {
	parts := strings.Fields(s)
	switch len(parts) {
	case 1:
		parts = append(parts, parts[0])
	case 2:
	default:
		return Marker{}, fmt.Errorf("parse marker %q: want \"<element> <viewport>\"", s)
	}
	el, err := parseEdge(parts[0])
	if err != nil {
		return Marker{}, fmt.Errorf("parse marker %q: %w", s, err)
	}
	vp, err := parseEdge(parts[1])
	if err != nil {
		return Marker{}, fmt.Errorf("parse marker %q: %w", s, err)
	}
	return Marker{Element: el, Viewport: vp}, nil
}

// MustMarker is ParseMarker for constant strings. Panics on error.
func MustMarker(s string) Marker {
	m, err := ParseMarker(s)
	if err != nil {
		panic("scrollfx: " + err.Error())
	}
	return m
}

func parseEdge(s string) (Edge, error) {
	var offset float64
	if i := strings.IndexAny(s, "+-"); i > 0 && i+1 < len(s) && s[i+1] == '=' {
		v, err := strconv.ParseFloat(strings.TrimSuffix(s[i+2:], "px"), 64)
		if err != nil {
			return Edge{}, fmt.Errorf("edge %q: bad offset", s)
		}
		if s[i] == '-' {
			v = -v
		}
		offset = v
		s = s[:i]
	}
	switch s {
	case "top":
		return Edge{Pixels: offset}, nil
	case "center":
		return Edge{Fraction: 0.5, Pixels: offset}, nil
	case "bottom":
		return Edge{Fraction: 1, Pixels: offset}, nil
	}
	if pct, ok := strings.CutSuffix(s, "%"); ok {
		v, err := strconv.ParseFloat(pct, 64)
		if err != nil {
			return Edge{}, fmt.Errorf("edge %q: bad percentage", s)
		}
		return Edge{Fraction: v / 100, Pixels: offset}, nil
	}
	v, err := strconv.ParseFloat(strings.TrimSuffix(s, "px"), 64)
	if err != nil {
		return Edge{}, fmt.Errorf("edge %q: unknown keyword", s)
	}
	return Edge{Pixels: v + offset}, nil
}

// Box is a vertical extent of the page in page pixels.
type Box struct {
	Top, Height float64
}

// Trigger defines where a scroll-linked timeline starts and ends: the
// element (by selector, resolved against the page Layout) and two markers.
type Trigger struct {
	Target string
	Start  Marker
	End    Marker
}

// Range returns the scroll offsets at which the trigger starts and ends for
// an element occupying box.
func (t Trigger) Range(box Box, viewportH float64) (start, end float64) {
	start = box.Top + t.Start.Element.resolve(box.Height) - t.Start.Viewport.resolve(viewportH)
	end = box.Top + t.End.Element.resolve(box.Height) - t.End.Viewport.resolve(viewportH)
	return start, end
}

// Progress returns the raw progress in [0, 1] at scroll offset scrollY.
// A zero-length range behaves as a step at its start.
func (t Trigger) Progress(box Box, scrollY, viewportH float64) float64 {
	start, end := t.Range(box, viewportH)
	if end <= start {
		if scrollY >= start {
			return 1
		}
		return 0
	}
	return clamp01((scrollY - start) / (end - start))
}

// scrubSettle is the distance below which a scrubbed value snaps to its target.
const scrubSettle = 1e-4

// Scrubber smooths raw progress. With Lag > 0 the reported value closes about
// 95% of the gap to the raw value within Lag seconds; with Lag <= 0 it
// follows immediately. The first update always jumps to the raw value.
type Scrubber struct {
	Lag float64

	value  float64
	primed bool
}

// Update moves the smoothed value toward target over dt seconds and returns it.
// target is clamped to [0, 1] first, so the result never leaves that range.
func (s *Scrubber) Update(target, dt float64) float64 {
	target = clamp01(target)
	if !s.primed || s.Lag <= 0 {
		s.value = target
		s.primed = true
		return s.value
	}
	if dt > 0 {
		k := 1 - math.Exp(-3*dt/s.Lag)
		s.value += (target - s.value) * k
	}
	if math.Abs(target-s.value) < scrubSettle {
		s.value = target
	}
	return s.value
}

// Value returns the last smoothed value.
func (s *Scrubber) Value() float64 {
	return s.value
}

// Reset jumps the smoothed value to v.
func (s *Scrubber) Reset(v float64) {
	s.value = clamp01(v)
	s.primed = true
}
