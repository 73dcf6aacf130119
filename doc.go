// Package scrollfx is a scroll-driven animation engine for [Ebitengine].
//
// A page is a tree of [Node] elements laid out relative to the viewport, a
// vertical [Layout] of named blocks, and a set of [Section] timelines that
// map scroll position onto element properties.
//
// # Quick start
//
//	scene := scrollfx.NewScene(1280, 800)
//	hex := scrollfx.NewShape("hex", scrollfx.ShapeHexagon, 120, 120, "hex")
//	scene.Root().AddChild(hex)
//
//	layout := &scrollfx.Layout{}
//	layout.Append("hero", 1)
//	layout.Append("info", 2)
//
//	seq := scrollfx.NewSequencer(layout)
//	tl := scrollfx.NewTimeline(nil).
//		To([]*scrollfx.Node{hex}, scrollfx.Props{scrollfx.PropRotation: scrollfx.Deg(90)})
//	_ = seq.Add(scrollfx.NewSection("spin", scrollfx.Trigger{
//		Target: "#info",
//		Start:  scrollfx.MarkerTopBottom,
//		End:    scrollfx.MarkerBottomBottom,
//	}, 1, tl))
//
//	scene.SetUpdateFunc(func() error {
//		seq.Update(scene.ScrollY(), scene.Viewport().Height, scrollfx.FrameTime())
//		return nil
//	})
//	scrollfx.Run(scene, scrollfx.RunConfig{Title: "demo", Resizable: true})
//
// # Timelines
//
// A [Timeline] is a pure function of progress: [Timeline.Seek] writes every
// track's value for p in [0, 1], clamping outside that range. Seeking the
// same progress twice leaves the same state, so scrolling back and forth
// never drifts. Start values are captured when a tween is added.
//
// # Triggers and scrub
//
// A [Trigger] resolves its target against the [Layout] and two [Marker]
// values ("top 80%", "bottom bottom") into a scroll range. [Scrubber] smooths
// the raw progress so the animation trails the scroll by a fixed lag.
//
// # Ownership
//
// [Sequencer.Add] rejects a section whose timeline writes a property already
// written by another section ([ErrFieldOwned]). Wrap an element in a
// container when two sections need to animate the same visual property.
//
// # Smooth scrolling
//
// [SmoothScroller] eases the scroll offset toward the requested target each
// frame. [DirectScroller] applies requests immediately.
//
// # Time-based tweens
//
// [TweenGroup] and [Sequence] run gween tweens against wall-clock time for
// animations that are not scroll-linked, such as a page entrance.
//
// [Ebitengine]: https://ebitengine.org
package scrollfx
