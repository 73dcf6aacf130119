package scrollfx

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	// defaultWheelStep is the scroll distance of one wheel notch in pixels.
	defaultWheelStep = 100
	// arrowScrollSpeed is the held-arrow scroll speed in pixels per second.
	arrowScrollSpeed = 900
	// pageScrollFraction is how much of the viewport PageUp/PageDown moves.
	pageScrollFraction = 0.9
)

// Pointer returns the last cursor position in screen pixels and whether a
// cursor has been seen inside the window.
func (s *Scene) Pointer() (Vec2, bool) {
	return s.pointer, s.pointerSeen
}

// PointerOffset returns the cursor offset from the viewport center scaled
// by gain, or zero before the cursor has been seen.
func (s *Scene) PointerOffset(gain float64) Vec2 {
	if !s.pointerSeen {
		return Vec2{}
	}
	return Vec2{
		X: (s.pointer.X - s.viewport.Width/2) * gain,
		Y: (s.pointer.Y - s.viewport.Height/2) * gain,
	}
}

// processInput is called from Scene.Update to turn wheel, keyboard, touch
// and cursor input into scroll requests and pointer state.
func (s *Scene) processInput() {
	if s.processInjectedInput() {
		return
	}

	mx, my := ebiten.CursorPosition()
	if mx >= 0 && my >= 0 && float64(mx) <= s.viewport.Width && float64(my) <= s.viewport.Height {
		s.pointer = Vec2{float64(mx), float64(my)}
		s.pointerSeen = true
	}

	_, wy := ebiten.Wheel()
	if wy != 0 {
		s.scroller.ScrollBy(-wy * s.WheelStep)
	}

	page := s.viewport.Height * pageScrollFraction
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyPageDown), inpututil.IsKeyJustPressed(ebiten.KeySpace):
		s.scroller.ScrollBy(page)
	case inpututil.IsKeyJustPressed(ebiten.KeyPageUp):
		s.scroller.ScrollBy(-page)
	case inpututil.IsKeyJustPressed(ebiten.KeyHome):
		s.scroller.ScrollTo(0)
	case inpututil.IsKeyJustPressed(ebiten.KeyEnd):
		s.scroller.ScrollTo(1e12)
	}
	step := arrowScrollSpeed * FrameTime()
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		s.scroller.ScrollBy(step)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		s.scroller.ScrollBy(-step)
	}

	s.processTouchScroll()
}

// processTouchScroll scrolls by the vertical drag of the first touch.
func (s *Scene) processTouchScroll() {
	ids := inpututil.AppendJustPressedTouchIDs(nil)
	if len(ids) > 0 {
		_, y := ebiten.TouchPosition(ids[0])
		s.touchID, s.touchY, s.touching = ids[0], float64(y), true
		return
	}
	if !s.touching {
		return
	}
	if inpututil.IsTouchJustReleased(s.touchID) {
		s.touching = false
		return
	}
	_, y := ebiten.TouchPosition(s.touchID)
	s.scroller.ScrollBy(s.touchY - float64(y))
	s.touchY = float64(y)
}
