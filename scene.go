package scrollfx

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

const defaultCommandCap = 64

// layerHook draws custom content after the nodes of a render layer.
type layerHook struct {
	layer uint8
	fn    func(screen *ebiten.Image)
}

// Scene is the top-level object that owns the element tree, the scroll
// state, input state and draw buffers. The root node's box is the viewport.
type Scene struct {
	root     *Node
	viewport Viewport
	debug    bool

	// ClearColor fills the screen before drawing when its alpha is non-zero.
	ClearColor Color

	// Scrolling
	scroller  Scroller
	scrollY   float64
	WheelStep float64

	// Per-frame hooks
	updateFunc func() error
	resizeFns  []func(Viewport)
	hooks      []layerHook

	// Draw state
	commands []drawCommand
	glow     *ebiten.Image
	frame    uint64
	stats    debugStats

	// Input state
	pointer     Vec2
	pointerSeen bool
	injectQueue []injectedInput
	touchID     ebiten.TouchID
	touchY      float64
	touching    bool

	// Automation
	ScreenshotDir   string
	ScreenshotScale float64
	screenshotQueue []string
	testRunner      *ScrollScript
	hud             *hudState
}

// NewScene creates a scene with a viewport-sized root container.
func NewScene(width, height float64) *Scene {
	root := NewContainer("root")
	root.SetSize(width, height)
	return &Scene{
		root:            root,
		viewport:        Viewport{Width: width, Height: height},
		scroller:        &DirectScroller{},
		WheelStep:       defaultWheelStep,
		commands:        make([]drawCommand, 0, defaultCommandCap),
		ScreenshotDir:   "screenshots",
		ScreenshotScale: 1,
	}
}

// Root returns the scene's root container node.
func (s *Scene) Root() *Node {
	return s.root
}

// Viewport returns the current viewport.
func (s *Scene) Viewport() Viewport {
	return s.viewport
}

// SetViewport resizes the root box and notifies resize listeners. No-op when
// the size is unchanged.
func (s *Scene) SetViewport(width, height float64) {
	if s.viewport.Width == width && s.viewport.Height == height {
		return
	}
	s.viewport = Viewport{Width: width, Height: height}
	s.root.SetSize(width, height)
	for _, fn := range s.resizeFns {
		fn(s.viewport)
	}
}

// OnResize registers fn to run after every viewport change.
func (s *Scene) OnResize(fn func(Viewport)) {
	s.resizeFns = append(s.resizeFns, fn)
}

// SetScroller replaces the scroll source. The default applies scroll requests
// immediately.
func (s *Scene) SetScroller(sc Scroller) {
	s.scroller = sc
}

// Scroller returns the current scroll source.
func (s *Scene) Scroller() Scroller {
	return s.scroller
}

// ScrollY returns the scroll offset computed in the last Update.
func (s *Scene) ScrollY() float64 {
	return s.scrollY
}

// SetUpdateFunc sets a callback run every Update after scrolling has been
// advanced and before world transforms are refreshed.
func (s *Scene) SetUpdateFunc(fn func() error) {
	s.updateFunc = fn
}

// OnLayer registers fn to draw after every node of render layer layer (and
// before higher layers). Hooks run every frame, whether or not the layer has
// nodes.
func (s *Scene) OnLayer(layer uint8, fn func(screen *ebiten.Image)) {
	i := len(s.hooks)
	for i > 0 && s.hooks[i-1].layer > layer {
		i--
	}
	s.hooks = append(s.hooks, layerHook{})
	copy(s.hooks[i+1:], s.hooks[i:])
	s.hooks[i] = layerHook{layer: layer, fn: fn}
}

// Query returns every node in the tree matching selector, in tree order.
// A selector that matches nothing yields an empty slice.
func (s *Scene) Query(selector string) []*Node {
	var out []*Node
	s.root.Walk(func(n *Node) bool {
		if n.Matches(selector) {
			out = append(out, n)
		}
		return true
	})
	return out
}

// QueryAll concatenates the results of several selectors.
func (s *Scene) QueryAll(selectors ...string) []*Node {
	var out []*Node
	for _, sel := range selectors {
		out = append(out, s.Query(sel)...)
	}
	return out
}

// QueryOne returns the first node matching selector, or nil.
func (s *Scene) QueryOne(selector string) *Node {
	var found *Node
	s.root.Walk(func(n *Node) bool {
		if found != nil {
			return false
		}
		if n.Matches(selector) {
			found = n
			return false
		}
		return true
	})
	return found
}

// FrameTime returns the fixed update step in seconds.
func FrameTime() float64 {
	return 1.0 / float64(ebiten.TPS())
}

// Update processes input, advances scrolling, runs the update callback and
// refreshes world transforms.
func (s *Scene) Update() error {
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}
	dt := FrameTime()

	s.processInput()
	if s.testRunner != nil {
		// One frame after the last step so its screenshots are flushed.
		if s.testRunner.done && s.testRunner.ExitWhenDone {
			return ebiten.Termination
		}
		s.testRunner.step(s)
	}
	s.scrollY = s.scroller.Update(dt)

	if s.updateFunc != nil {
		if err := s.updateFunc(); err != nil {
			return err
		}
	}

	updateWorldTransform(s.root, identityTransform, 1.0, s.viewport.Width, s.viewport.Height, false)
	s.frame++

	if s.debug {
		s.stats.updateTime = time.Since(t0)
	}
	return nil
}

// Frame returns the number of completed updates.
func (s *Scene) Frame() uint64 {
	return s.frame
}

// Draw renders the tree and layer hooks to screen. It runs every frame,
// whether or not anything changed.
func (s *Scene) Draw(screen *ebiten.Image) {
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}
	if s.ClearColor.A > 0 {
		screen.Fill(s.ClearColor.NRGBA())
	}

	s.commands = s.commands[:0]
	treeOrder := 0
	s.traverse(s.root, identityTransform, 1.0, s.viewport.Width, s.viewport.Height, false, &treeOrder)
	s.sortCommands()
	s.submit(screen)

	if s.hud != nil {
		s.drawHUD(screen)
	}
	s.flushScreenshots(screen)

	if s.debug {
		s.stats.drawTime = time.Since(t0)
		s.stats.commandCount = len(s.commands)
		s.debugLog()
	}
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-node
// access panics, tree depth warnings are printed, and periodic timing stats
// are logged to stderr.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
}

// DebugMode reports whether debug mode is on.
func (s *Scene) DebugMode() bool {
	return s.debug
}

// globalDebug mirrors the most recently set Scene debug flag so that node
// operations (which lack a Scene pointer) can check it cheaply.
var globalDebug bool
