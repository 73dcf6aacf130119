package scrollfx

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single action in a scroll script.
type scriptStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// scrollScript is the top-level JSON structure for a scroll script.
type scrollScript struct {
	Steps []scriptStep `json:"steps"`
}

// ScrollScript sequences scroll requests, injected input, resizes and
// screenshots across frames for automated visual checks. Attach to a Scene
// via SetScrollScript.
//
// Supported actions:
//
//	scroll     {"y": 1200}                 jump the scroll target to y
//	scrollBy   {"y": -300}                 move the scroll target by y
//	wheel      {"y": -3}                   inject wheel notches
//	pointer    {"x": 10, "y": 20}          inject a cursor position
//	resize     {"width": 500, "height": 800}
//	wait       {"frames": 30}
//	screenshot {"label": "hero"}
type ScrollScript struct {
	// ExitWhenDone makes Scene.Update return ebiten.Termination on the frame
	// after the last step.
	ExitWhenDone bool

	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScrollScript parses a JSON scroll script and returns a runner ready
// to be attached to a Scene via SetScrollScript.
func LoadScrollScript(jsonData []byte) (*ScrollScript, error) {
	var script scrollScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse scroll script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse scroll script: no steps")
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "scroll", "scrollBy", "wheel", "pointer", "resize", "wait", "screenshot":
		default:
			return nil, fmt.Errorf("parse scroll script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &ScrollScript{steps: script.Steps}, nil
}

// SetScrollScript attaches a script to the scene. The script's step method
// is called from Scene.Update after processInput each frame.
func (s *Scene) SetScrollScript(script *ScrollScript) {
	s.testRunner = script
}

// Done reports whether all steps in the script have been executed.
func (r *ScrollScript) Done() bool {
	return r.done
}

// step advances the script by one frame. Called from Scene.Update.
func (r *ScrollScript) step(s *Scene) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(s.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "scroll":
		s.scroller.ScrollTo(st.Y)
	case "scrollBy":
		s.scroller.ScrollBy(st.Y)
	case "wheel":
		s.InjectWheel(st.Y)
	case "pointer":
		s.InjectPointer(st.X, st.Y)
	case "resize":
		s.SetViewport(st.Width, st.Height)
	case "screenshot":
		s.Screenshot(st.Label)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(s.injectQueue) == 0 {
		r.done = true
	}
}
