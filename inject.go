package scrollfx

// injectedInput is a single synthetic input event consumed by processInput.
type injectedInput struct {
	wheel      float64
	pointer    Vec2
	hasPointer bool
}

// InjectWheel queues a wheel event of dy notches (positive scrolls up, as
// ebiten reports it). The event is consumed on the next Update.
func (s *Scene) InjectWheel(dy float64) {
	s.injectQueue = append(s.injectQueue, injectedInput{wheel: dy})
}

// InjectPointer queues a cursor move to the given screen coordinates.
func (s *Scene) InjectPointer(x, y float64) {
	s.injectQueue = append(s.injectQueue, injectedInput{pointer: Vec2{x, y}, hasPointer: true})
}

// processInjectedInput pops one event from the inject queue and applies it.
// Returns true if an event was consumed (real input is skipped that frame).
func (s *Scene) processInjectedInput() bool {
	if len(s.injectQueue) == 0 {
		return false
	}
	evt := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]

	if evt.hasPointer {
		s.pointer = evt.pointer
		s.pointerSeen = true
	}
	if evt.wheel != 0 {
		s.scroller.ScrollBy(-evt.wheel * s.WheelStep)
	}
	return true
}
