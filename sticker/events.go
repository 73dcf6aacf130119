package sticker

// PhaseEvent records a lifecycle transition.
type PhaseEvent struct {
	From    string
	To      string
	Elapsed float64 // stage clock in seconds
	Err     error   // set on transitions to failed
}

// EventSink receives phase transitions. Publish is called on the game-loop
// goroutine from Stage.Update.
type EventSink interface {
	Publish(PhaseEvent)
}

// EventSinkFunc adapts a function to EventSink.
type EventSinkFunc func(PhaseEvent)

// Publish calls f(e).
func (f EventSinkFunc) Publish(e PhaseEvent) { f(e) }
