package landing

import (
	"github.com/phanxgames/scrollfx"
)

// Section names.
const (
	SectionInfo = "info-background"
	SectionLab  = "lab-background"
	SectionBody = "body"
)

// infoTimeline fades the glow and the solid hexagons and draws the outline
// hexagons to the middle of the viewport as the info section comes in.
func infoTimeline(scene *scrollfx.Scene) *scrollfx.Timeline {
	tl := scrollfx.NewTimeline(nil)
	out := scrollfx.MustEase("power1.out")
	inOut := scrollfx.MustEase("power2.inOut")

	tl.To(scene.Query(SelectorGlowWrap),
		scrollfx.Props{scrollfx.PropAlpha: 0},
		scrollfx.At(0), scrollfx.Duration(1), scrollfx.Ease(out))

	tl.To(scene.QueryAll(SelectorHex1, SelectorHex3),
		scrollfx.Props{scrollfx.PropAlpha: 0, scrollfx.PropScale: 0.5},
		scrollfx.At(0), scrollfx.Duration(1), scrollfx.Ease(out))

	centered := scrollfx.Props{
		scrollfx.PropAnchorX:  0.5,
		scrollfx.PropAnchorY:  0.5,
		scrollfx.PropX:        0,
		scrollfx.PropY:        0,
		scrollfx.PropRotation: 0,
		scrollfx.PropScale:    1,
	}
	tl.To(scene.Query(SelectorHex2), centered, scrollfx.At(0), scrollfx.Ease(inOut))
	tl.To(scene.Query(SelectorHex4), centered, scrollfx.At(0), scrollfx.Ease(inOut))
	return tl
}

// labTimeline splits the centered outline hexagons apart through their
// wrappers: the large one shrinks to the left, the small one grows to the
// right, both turning a full revolution. vw is one percent of the viewport
// width at build time.
func labTimeline(scene *scrollfx.Scene, vw float64) *scrollfx.Timeline {
	tl := scrollfx.NewTimeline(nil)
	inOut := scrollfx.MustEase("power2.inOut")

	tl.To(scene.Query(SelectorHex2Wrap), scrollfx.Props{
		scrollfx.PropX:        -13 * vw,
		scrollfx.PropRotation: scrollfx.Deg(360),
		scrollfx.PropScale:    0.5,
	}, scrollfx.At(0), scrollfx.Ease(inOut))

	tl.To(scene.Query(SelectorHex4Wrap), scrollfx.Props{
		scrollfx.PropX:        13 * vw,
		scrollfx.PropRotation: scrollfx.Deg(360),
		scrollfx.PropScale:    2,
	}, scrollfx.At(0), scrollfx.Ease(inOut))
	return tl
}

// backgroundSections returns the info and lab sections.
func backgroundSections(scene *scrollfx.Scene, scrub float64) []*scrollfx.Section {
	vw := scene.Viewport().Width / 100
	return []*scrollfx.Section{
		scrollfx.NewSection(SectionInfo, scrollfx.Trigger{
			Target: SelectorInfo,
			Start:  scrollfx.MustMarker("top 80%"),
			End:    scrollfx.MarkerCenterCenter,
		}, scrub, infoTimeline(scene)),
		scrollfx.NewSection(SectionLab, scrollfx.Trigger{
			Target: SelectorLab,
			Start:  scrollfx.MarkerTopBottom,
			End:    scrollfx.MarkerCenterCenter,
		}, scrub, labTimeline(scene, vw)),
	}
}

// bodySection tracks progress through the whole page. It animates nothing
// itself; the sticker stage reads its progress.
func bodySection(scrub float64) *scrollfx.Section {
	return scrollfx.NewSection(SectionBody, scrollfx.Trigger{
		Target: scrollfx.BodyTarget,
		Start:  scrollfx.MarkerTopTop,
		End:    scrollfx.MarkerBottomBottom,
	}, scrub, nil)
}
