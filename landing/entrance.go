package landing

import "github.com/phanxgames/scrollfx"

// newEntrance builds the one-shot page entrance: the glow swells in over
// five seconds and the header slides down a second in. Missing elements are
// skipped.
func newEntrance(scene *scrollfx.Scene) *scrollfx.Sequence {
	seq := scrollfx.NewSequence()
	for _, glow := range scene.Query(SelectorGlow) {
		seq.Add(0, scrollfx.TweenProps(glow, scrollfx.Props{
			scrollfx.PropScale: 1,
			scrollfx.PropAlpha: 1,
		}, 5, scrollfx.MustEase("power1.inOut")))
	}
	for _, header := range scene.Query(SelectorHeader) {
		seq.Add(1.0, scrollfx.TweenProps(header, scrollfx.Props{
			scrollfx.PropY:     0,
			scrollfx.PropAlpha: 1,
		}, 1.5, scrollfx.MustEase("power4.out")))
	}
	return seq
}
