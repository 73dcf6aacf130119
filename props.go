package scrollfx

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/tanema/gween/ease"
)

// Prop names an animatable Node property.
type Prop uint8

const (
	PropX        Prop = iota // pixel offset X
	PropY                    // pixel offset Y
	PropAnchorX              // anchor fraction of the parent width
	PropAnchorY              // anchor fraction of the parent height
	PropRotation             // radians
	PropScale                // uniform scale (writes ScaleX and ScaleY)
	PropScaleX
	PropScaleY
	PropAlpha
)

var propNames = [...]string{"x", "y", "anchorX", "anchorY", "rotation", "scale", "scaleX", "scaleY", "alpha"}

func (p Prop) String() string {
	if int(p) < len(propNames) {
		return propNames[p]
	}
	return fmt.Sprintf("Prop(%d)", p)
}

// Props maps properties to target values.
type Props map[Prop]float64

// sorted returns the keys in declaration order so track order is stable.
func (p Props) sorted() []Prop {
	keys := make([]Prop, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// fields returns the storage written for prop p.
func (n *Node) fields(p Prop) []*float64 {
	switch p {
	case PropX:
		return []*float64{&n.X}
	case PropY:
		return []*float64{&n.Y}
	case PropAnchorX:
		return []*float64{&n.AnchorX}
	case PropAnchorY:
		return []*float64{&n.AnchorY}
	case PropRotation:
		return []*float64{&n.Rotation}
	case PropScale:
		return []*float64{&n.ScaleX, &n.ScaleY}
	case PropScaleX:
		return []*float64{&n.ScaleX}
	case PropScaleY:
		return []*float64{&n.ScaleY}
	case PropAlpha:
		return []*float64{&n.Alpha}
	}
	panic(fmt.Sprintf("scrollfx: unknown prop %d", p))
}

// Get returns the current value of prop p (ScaleX for PropScale).
func (n *Node) Get(p Prop) float64 {
	return *n.fields(p)[0]
}

// Deg converts degrees to radians.
func Deg(d float64) float64 {
	return d * math.Pi / 180
}

var easeFamilies = map[string][3]ease.TweenFunc{
	"power1": {ease.InQuad, ease.OutQuad, ease.InOutQuad},
	"power2": {ease.InCubic, ease.OutCubic, ease.InOutCubic},
	"power3": {ease.InQuart, ease.OutQuart, ease.InOutQuart},
	"power4": {ease.InQuint, ease.OutQuint, ease.InOutQuint},
	"sine":   {ease.InSine, ease.OutSine, ease.InOutSine},
	"expo":   {ease.InExpo, ease.OutExpo, ease.InOutExpo},
	"circ":   {ease.InCirc, ease.OutCirc, ease.InOutCirc},
}

// EaseByName resolves "family.variant" names such as "power2.inOut" or
// "none". A bare family name means its .out variant.
func EaseByName(name string) (ease.TweenFunc, error) {
	if name == "" || name == "none" || name == "linear" {
		return ease.Linear, nil
	}
	family, variant, _ := strings.Cut(name, ".")
	fns, ok := easeFamilies[family]
	if !ok {
		return nil, fmt.Errorf("ease %q: unknown family", name)
	}
	switch variant {
	case "in":
		return fns[0], nil
	case "", "out":
		return fns[1], nil
	case "inOut":
		return fns[2], nil
	}
	return nil, fmt.Errorf("ease %q: unknown variant", name)
}

// MustEase is EaseByName for compile-time constant names. Panics on error.
func MustEase(name string) ease.TweenFunc {
	fn, err := EaseByName(name)
	if err != nil {
		panic("scrollfx: " + err.Error())
	}
	return fn
}
