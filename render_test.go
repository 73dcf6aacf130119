package scrollfx

import (
	"math"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func drawScene(s *Scene) {
	s.Draw(ebiten.NewImage(int(s.viewport.Width), int(s.viewport.Height)))
}

func TestShapeEmitsOneCommand(t *testing.T) {
	s := NewScene(640, 480)
	s.Root().AddChild(NewShape("r", ShapeRect, 10, 10))
	drawScene(s)
	if len(s.commands) != 1 {
		t.Fatalf("commands = %d, want 1", len(s.commands))
	}
}

func TestContainerNoCommand(t *testing.T) {
	s := NewScene(640, 480)
	s.Root().AddChild(NewContainer("c"))
	drawScene(s)
	if len(s.commands) != 0 {
		t.Errorf("commands = %d, want 0", len(s.commands))
	}
}

func TestInvisibleSubtreeSkipped(t *testing.T) {
	s := NewScene(640, 480)
	wrap := NewContainer("wrap")
	wrap.AddChild(NewShape("r", ShapeRect, 10, 10))
	wrap.Visible = false
	s.Root().AddChild(wrap)
	drawScene(s)
	if len(s.commands) != 0 {
		t.Errorf("commands = %d, want 0", len(s.commands))
	}
}

func TestTransparentSubtreeSkipped(t *testing.T) {
	s := NewScene(640, 480)
	wrap := NewContainer("wrap")
	wrap.Alpha = 0
	wrap.AddChild(NewShape("r", ShapeHexagon, 10, 10))
	s.Root().AddChild(wrap)
	drawScene(s)
	if len(s.commands) != 0 {
		t.Errorf("commands = %d, want 0 for a fully transparent wrapper", len(s.commands))
	}
}

func TestCommandAlphaIsInherited(t *testing.T) {
	s := NewScene(640, 480)
	wrap := NewContainer("wrap")
	wrap.Alpha = 0.5
	child := NewShape("r", ShapeRect, 10, 10)
	child.Alpha = 0.5
	wrap.AddChild(child)
	s.Root().AddChild(wrap)
	drawScene(s)
	if len(s.commands) != 1 {
		t.Fatalf("commands = %d, want 1", len(s.commands))
	}
	assertNear(t, "alpha", s.commands[0].alpha, 0.25)
}

func TestCommandsSortByLayerThenTreeOrder(t *testing.T) {
	s := NewScene(640, 480)
	fg := NewShape("fg", ShapeRect, 10, 10)
	fg.RenderLayer = 2
	bg := NewShape("bg", ShapeGlow, 10, 10)
	a := NewShape("a", ShapeRect, 10, 10)
	a.RenderLayer = 1
	b := NewShape("b", ShapeRect, 10, 10)
	b.RenderLayer = 1
	for _, n := range []*Node{fg, a, bg, b} {
		s.Root().AddChild(n)
	}
	drawScene(s)
	want := []string{"bg", "a", "b", "fg"}
	for i, cmd := range s.commands {
		if cmd.node.Name != want[i] {
			t.Errorf("commands[%d] = %q, want %q", i, cmd.node.Name, want[i])
		}
	}
}

func TestZIndexOrdersSiblings(t *testing.T) {
	s := NewScene(640, 480)
	top := NewShape("top", ShapeRect, 10, 10)
	bottom := NewShape("bottom", ShapeRect, 10, 10)
	s.Root().AddChild(top)
	s.Root().AddChild(bottom)
	top.SetZIndex(5)
	drawScene(s)
	if s.commands[0].node != bottom || s.commands[1].node != top {
		t.Errorf("order = %q, %q; want bottom, top", s.commands[0].node.Name, s.commands[1].node.Name)
	}
}

func TestLayerHooksInterleave(t *testing.T) {
	s := NewScene(640, 480)
	var order []string
	bg := NewShape("bg", ShapeRect, 10, 10)
	fg := NewShape("fg", ShapeRect, 10, 10)
	fg.RenderLayer = 2
	s.Root().AddChild(bg)
	s.Root().AddChild(fg)
	s.OnLayer(0, func(*ebiten.Image) { order = append(order, "hook0") })
	s.OnLayer(1, func(*ebiten.Image) { order = append(order, "hook1") })
	s.OnLayer(3, func(*ebiten.Image) { order = append(order, "hook3") })

	drawScene(s)
	// hook0 runs after bg only once a higher layer starts.
	want := []string{"hook0", "hook1", "hook3"}
	if len(order) != len(want) {
		t.Fatalf("hooks ran %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("hook[%d] = %q, want %q", i, order[i], want[i])
		}
	}
}

func TestLayerHooksRunWithoutNodes(t *testing.T) {
	s := NewScene(640, 480)
	ran := false
	s.OnLayer(1, func(*ebiten.Image) { ran = true })
	drawScene(s)
	if !ran {
		t.Error("hook should run on an empty tree")
	}
}

func TestHexagonPoints(t *testing.T) {
	pts := hexagonPoints(100, 100, 0)
	assertNear(t, "top x", pts[0].X, 50)
	assertNear(t, "top y", pts[0].Y, 0)
	for _, p := range pts {
		assertNear(t, "radius", math.Hypot(p.X-50, p.Y-50), 50)
	}
	inset := hexagonPoints(100, 60, 10)
	assertNear(t, "inset radius", math.Hypot(inset[0].X-50, inset[0].Y-30), 20)
	collapsed := hexagonPoints(10, 10, 20)
	assertNear(t, "collapsed", collapsed[3].X, 5)
}

func TestAffineGeoMMatchesTransformPoint(t *testing.T) {
	m := [6]float64{0.5, 1, -2, 3, 10, 20}
	g := affineGeoM(m)
	gx, gy := g.Apply(3, 4)
	px, py := transformPoint(m, 3, 4)
	assertNear(t, "x", gx, px)
	assertNear(t, "y", gy, py)
}

func TestRadialGradient(t *testing.T) {
	img := radialGradient(32)
	if a := img.NRGBAAt(16, 16).A; a < 200 {
		t.Errorf("center alpha = %d, want near opaque", a)
	}
	if a := img.NRGBAAt(0, 0).A; a != 0 {
		t.Errorf("corner alpha = %d, want 0", a)
	}
}

func TestDrawAllShapesNoPanic(t *testing.T) {
	s := NewScene(640, 480)
	s.ClearColor = Hex(0x0a0a12)
	for i, shape := range []Shape{ShapeRect, ShapeHexagon, ShapeHexagonOutline, ShapeGlow} {
		n := NewShape("s", shape, 50, 50)
		n.BlendMode = BlendMode(i % 3)
		s.Root().AddChild(n)
	}
	drawScene(s)
	drawScene(s)
}

func TestHexColor(t *testing.T) {
	c := Hex(0xff8000)
	if c.R != 1 || c.B != 0 || c.A != 1 {
		t.Errorf("Hex = %+v", c)
	}
	assertNear(t, "G", c.G, 128.0/255)
	if got := c.WithAlpha(0.5).NRGBA(); got.A != 128 || got.R != 255 {
		t.Errorf("NRGBA = %v", got)
	}
}

func TestViewportHelpers(t *testing.T) {
	if !(Viewport{Width: 500, Height: 800}).IsMobile(768) {
		t.Error("500px should be mobile")
	}
	if (Viewport{Width: 768, Height: 800}).IsMobile(768) {
		t.Error("the breakpoint itself is desktop")
	}
	if (Viewport{Width: 100}).Aspect() != 1 {
		t.Error("degenerate viewport aspect should be 1")
	}
}
