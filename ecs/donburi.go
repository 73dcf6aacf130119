package ecs

import (
	"github.com/phanxgames/scrollfx/sticker"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// PhaseEventType is the Donburi event type for sticker phase transitions.
var PhaseEventType = events.NewEventType[sticker.PhaseEvent]()

// PhaseState is the component written by TrackPhase.
type PhaseState struct {
	Phase       string
	Since       float64
	Transitions int
	Err         error
}

// Phase is the component type holding the latest sticker phase.
var Phase = donburi.NewComponentType[PhaseState]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world. Phase
// events are published to PhaseEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) sticker.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) Publish(event sticker.PhaseEvent) {
	PhaseEventType.Publish(s.world, event)
}

// TrackPhase creates an entity carrying the Phase component and keeps it
// current as phase events are processed. It starts in "loading".
func TrackPhase(world donburi.World) donburi.Entity {
	e := world.Create(Phase)
	Phase.Set(world.Entry(e), &PhaseState{Phase: sticker.Loading{}.Name()})
	PhaseEventType.Subscribe(world, func(w donburi.World, ev sticker.PhaseEvent) {
		entry := w.Entry(e)
		st := Phase.Get(entry)
		st.Phase = ev.To
		st.Since = ev.Elapsed
		st.Err = ev.Err
		st.Transitions++
	})
	return e
}
