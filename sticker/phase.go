package sticker

// Phase is the sticker lifecycle state. The concrete types are Loading,
// Entrance, Active, Exit and Failed; no other type implements Phase.
//
//	Loading --load ok--> Entrance --tween done--> Active <--progress--> Exit
//	Loading --load err-> Failed
type Phase interface {
	// Name returns the lowercase phase name used in logs and events.
	Name() string
	phase()
}

// Loading waits for the model. No level is written.
type Loading struct{}

// Entrance plays the one-shot drop-in. The scroll level already follows
// the scroll path.
type Entrance struct {
	Motion *EntranceMotion
}

// Active runs the idle float alongside scroll positioning. Since is the
// stage clock when the phase was first entered.
type Active struct {
	Since float64
}

// Exit shrinks and lifts the model while body progress is past the exit
// threshold. Scrolling back above it returns to Active.
type Exit struct {
	Since float64
}

// Failed is terminal: the model could not be loaded.
type Failed struct {
	Err error
}

func (Loading) Name() string  { return "loading" }
func (Entrance) Name() string { return "entrance" }
func (Active) Name() string   { return "active" }
func (Exit) Name() string     { return "exit" }
func (Failed) Name() string   { return "failed" }

func (Loading) phase()  {}
func (Entrance) phase() {}
func (Active) phase()   {}
func (Exit) phase()     {}
func (Failed) phase()   {}

// HasModel reports whether ph is a phase in which the model is present.
func HasModel(ph Phase) bool {
	switch ph.(type) {
	case Entrance, Active, Exit:
		return true
	}
	return false
}
