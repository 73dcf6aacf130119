package sticker

import (
	"fmt"
	"image"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/scrollfx"
)

// smokeTextureSize is the edge length of the generated smoke sprite.
const smokeTextureSize = 64

// FrameContext is everything the stage reads from the page each frame.
type FrameContext struct {
	Dt       float64 // seconds since the previous frame
	Progress float64 // scrubbed body scroll progress in [0, 1]
	Pointer  scrollfx.Vec2
}

// StageConfig configures a Stage. Nil fields pick the defaults.
type StageConfig struct {
	// Source loads the model. Nil leaves the stage in Loading forever.
	Source ModelSource
	Path   *ScrollPath
	Idle   *IdleMotion
	Exit   *ExitMotion
	Smoke  *SmokeConfig
	// SmokeTexture is a PNG or TGA file. Empty uses a generated puff;
	// a file that fails to load falls back to untextured points.
	SmokeTexture string
	Lighting     *Lighting
	Sink         EventSink
}

// Stage owns the sticker rig, its camera and the particle decoration, and
// drives the phase machine. All methods run on the game-loop goroutine.
type Stage struct {
	rig      *Rig
	camera   *Camera
	lights   Lighting
	smoke    *Smoke
	renderer meshRenderer

	path *ScrollPath
	idle IdleMotion
	exit ExitMotion
	sink EventSink

	phase     Phase
	pending   <-chan loadResult
	mesh      *Mesh
	clock     float64
	idleStart float64
	activated bool
	disposed  bool
}

// NewStage creates the stage and starts loading the model in the background.
func NewStage(cfg StageConfig, vp scrollfx.Viewport) *Stage {
	s := &Stage{
		rig:    NewRig(),
		camera: NewCamera(vp),
		lights: DefaultLighting(),
		path:   cfg.Path,
		idle:   DefaultIdleMotion(),
		exit:   DefaultExitMotion(),
		sink:   cfg.Sink,
		phase:  Loading{},
	}
	if s.path == nil {
		s.path = DefaultScrollPath()
	}
	if cfg.Idle != nil {
		s.idle = *cfg.Idle
	}
	if cfg.Exit != nil {
		s.exit = *cfg.Exit
	}
	if cfg.Lighting != nil {
		s.lights = *cfg.Lighting
	}
	sc := DefaultSmokeConfig()
	if cfg.Smoke != nil {
		sc = *cfg.Smoke
	}
	s.smoke = NewSmoke(sc)
	s.smoke.SetTexture(resolveSmokeTexture(cfg.SmokeTexture))

	if cfg.Source != nil {
		s.pending = loadAsync(cfg.Source)
	}
	return s
}

// resolveSmokeTexture returns the configured sprite, a generated puff, or nil
// when the file cannot be read.
func resolveSmokeTexture(path string) image.Image {
	if path == "" {
		return ProceduralSmokeTexture(smokeTextureSize)
	}
	img, err := LoadSmokeTexture(path)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "[scrollfx] sticker: %v; drawing untextured particles\n", err)
		return nil
	}
	return img
}

// Phase returns the current lifecycle phase.
func (s *Stage) Phase() Phase {
	return s.phase
}

// Model returns the loaded mesh, or nil before loading completes or after
// a failure.
func (s *Stage) Model() *Mesh {
	return s.mesh
}

// Rig returns the transform chain.
func (s *Stage) Rig() *Rig {
	return s.rig
}

// Smoke returns the particle decoration.
func (s *Stage) Smoke() *Smoke {
	return s.smoke
}

// Camera returns the stage camera.
func (s *Stage) Camera() *Camera {
	return s.camera
}

// Elapsed returns the stage clock in seconds.
func (s *Stage) Elapsed() float64 {
	return s.clock
}

// Resize rebuilds the camera projection for a new viewport.
func (s *Stage) Resize(vp scrollfx.Viewport) {
	s.camera.Resize(vp)
}

// Update polls the loader, advances the phase machine and writes each rig
// level from its owner. It is safe to call in every phase, including after
// a failed load.
func (s *Stage) Update(ctx FrameContext) {
	if s.disposed {
		return
	}
	s.clock += ctx.Dt
	s.pollLoad()

	p := scrollfx.Clamp01(ctx.Progress)
	switch ph := s.phase.(type) {
	case Entrance:
		s.rig.Entrance.Write(OwnerEntrance, ph.Motion.Update(ctx.Dt))
		if ph.Motion.Done() {
			s.activate(p)
		}
	case Active:
		if p >= s.exit.Start {
			s.transition(Exit{Since: s.clock}, nil)
		}
	case Exit:
		if p < s.exit.Start {
			s.transition(Active{Since: s.idleStart}, nil)
		}
	}

	if HasModel(s.phase) {
		s.rig.Scroll.Write(OwnerScroll, s.path.PoseAt(p))
	}
	switch s.phase.(type) {
	case Active, Exit:
		s.rig.Idle.Write(OwnerIdle, s.idle.PoseAt(s.clock-s.idleStart, ctx.Pointer))
		s.rig.Exit.Write(OwnerExit, s.exit.PoseAt(p))
	}

	s.smoke.Update(s.clock, p)
}

// activate leaves Entrance for Active, or straight for Exit when the page is
// already past the exit threshold.
func (s *Stage) activate(p float64) {
	if !s.activated {
		s.idleStart = s.clock
		s.activated = true
	}
	if p >= s.exit.Start {
		s.transition(Exit{Since: s.clock}, nil)
		return
	}
	s.transition(Active{Since: s.idleStart}, nil)
}

// pollLoad consumes the loader result without blocking.
func (s *Stage) pollLoad() {
	if s.pending == nil {
		return
	}
	select {
	case res := <-s.pending:
		s.pending = nil
		if res.err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "[scrollfx] sticker: %v\n", res.err)
			s.transition(Failed{Err: res.err}, res.err)
			return
		}
		res.mesh.Recenter()
		s.mesh = res.mesh
		s.rig.Model.Write(OwnerLoader, ModelPose())
		m := NewEntranceMotion(EntranceDuration, nil)
		s.rig.Entrance.Write(OwnerEntrance, m.From)
		s.transition(Entrance{Motion: m}, nil)
	default:
	}
}

func (s *Stage) transition(to Phase, err error) {
	from := s.phase
	s.phase = to
	if s.sink != nil {
		s.sink.Publish(PhaseEvent{From: from.Name(), To: to.Name(), Elapsed: s.clock, Err: err})
	}
}

// Draw renders the model, when present, and the particles. Without a model
// only the particles are drawn.
func (s *Stage) Draw(screen *ebiten.Image) {
	if s.disposed {
		return
	}
	if s.mesh != nil && HasModel(s.phase) {
		s.renderer.draw(screen, s.mesh, s.rig.Model.World(), s.camera, s.lights)
	}
	s.smoke.Draw(screen, s.camera)
}

// Dispose releases the mesh and particle texture. A load still in flight
// finishes in the background and its result is dropped.
func (s *Stage) Dispose() {
	s.disposed = true
	s.pending = nil
	s.mesh = nil
	s.smoke.Dispose()
}
