package landing

import "github.com/phanxgames/scrollfx"

// Element selectors the page animations address.
const (
	SelectorGlow     = "#glow-1"
	SelectorGlowWrap = "#glow-1-wrap"
	SelectorHeader   = "#main-header"
	SelectorHero     = "#hero-section"
	SelectorInfo     = "#info-section"
	SelectorLab      = "#lab-section"
	SelectorFooter   = "#footer-section"
	SelectorSticker  = "#sticker-container"

	SelectorHex1     = ".hex-1"
	SelectorHex2     = ".hex-2"
	SelectorHex3     = ".hex-3"
	SelectorHex4     = ".hex-4"
	SelectorHex2Wrap = ".hex-2-wrap"
	SelectorHex4Wrap = ".hex-4-wrap"
)

// Render layers, bottom to top. The sticker stage draws after the content
// layer and before the foreground.
const (
	LayerBackground uint8 = iota
	LayerContent
	LayerForeground
)

// Page sections in scroll order, heights in viewport heights.
var sections = []struct {
	id     string
	height float64
}{
	{"hero-section", 1},
	{"info-section", 1.5},
	{"lab-section", 1.5},
	{"footer-section", 1},
}

// Palette.
var (
	colorBackground = scrollfx.Hex(0x0b0816)
	colorPanel      = scrollfx.Hex(0x1a1530).WithAlpha(0.55)
	colorHeader     = scrollfx.Hex(0x0f0b1e).WithAlpha(0.9)
	colorSolidA     = scrollfx.Hex(0x2d1b69).WithAlpha(0.8)
	colorSolidB     = scrollfx.Hex(0x3b1f8a).WithAlpha(0.7)
	colorPurple     = scrollfx.Hex(0x7e22ce)
	colorIndigo     = scrollfx.Hex(0x4f46e5)
)

// NewLayout returns the page's vertical section stack.
func NewLayout() *scrollfx.Layout {
	l := &scrollfx.Layout{}
	for _, s := range sections {
		l.Append(s.id, s.height)
	}
	return l
}

// Elements holds the nodes of the page markup.
type Elements struct {
	Background *scrollfx.Node
	Content    *scrollfx.Node
	Header     *scrollfx.Node
	Sticker    *scrollfx.Node // nil when the page has no sticker container

	fills  []*scrollfx.Node
	panels []*scrollfx.Node
}

// BuildElements creates the page markup under root. Sizes given in vw are
// resolved against vp once, here.
func BuildElements(root *scrollfx.Node, vp scrollfx.Viewport, withSticker bool) *Elements {
	vw := vp.Width / 100
	e := &Elements{}

	e.Background = e.fill(scrollfx.NewContainer("background"))
	root.AddChild(e.Background)

	glowWrap := e.fill(scrollfx.NewContainer("glow-1-wrap"))
	glow := scrollfx.NewShape("glow-1", scrollfx.ShapeGlow, 60*vw, 60*vw)
	glow.SetAnchor(0.5, 0.45)
	glow.SetScale(0.5, 0.5)
	glow.SetAlpha(0)
	glow.Color = colorPurple
	glow.BlendMode = scrollfx.BlendAdd
	glowWrap.AddChild(glow)
	e.Background.AddChild(glowWrap)

	hex1 := hexagon("hex-1", scrollfx.ShapeHexagon, 12*vw, colorSolidA, 0.12, 0.7, 10)
	hex3 := hexagon("hex-3", scrollfx.ShapeHexagon, 8*vw, colorSolidB, 0.3, 0.15, -15)
	e.Background.AddChild(hex1)
	e.Background.AddChild(hex3)

	hex2Wrap := e.fill(scrollfx.NewContainer("hex-2-wrap", "hex-2-wrap"))
	hex2 := hexagon("hex-2", scrollfx.ShapeHexagonOutline, 30*vw, colorPurple, 0.8, 0.35, 30)
	hex2.SetScale(1.2, 1.2)
	hex2.StrokeWidth = 3
	hex2Wrap.AddChild(hex2)
	e.Background.AddChild(hex2Wrap)

	hex4Wrap := e.fill(scrollfx.NewContainer("hex-4-wrap", "hex-4-wrap"))
	hex4 := hexagon("hex-4", scrollfx.ShapeHexagonOutline, 15*vw, colorIndigo, 0.65, 0.75, -20)
	hex4.SetScale(0.8, 0.8)
	hex4Wrap.AddChild(hex4)
	e.Background.AddChild(hex4Wrap)

	e.Content = scrollfx.NewContainer("content")
	e.Content.PivotX, e.Content.PivotY = 0, 0
	for _, s := range sections {
		panel := scrollfx.NewShape(s.id, scrollfx.ShapeRect, 0, 0, "section")
		panel.PivotY = 0
		panel.AnchorX = 0.5
		panel.Color = colorPanel
		panel.RenderLayer = LayerContent
		e.Content.AddChild(panel)
		e.panels = append(e.panels, panel)
	}
	root.AddChild(e.Content)

	if withSticker {
		e.Sticker = e.fill(scrollfx.NewContainer("sticker-container"))
		root.AddChild(e.Sticker)
	}

	e.Header = scrollfx.NewShape("main-header", scrollfx.ShapeRect, vp.Width, 72)
	e.Header.SetAnchor(0.5, 0)
	e.Header.PivotY = 0
	e.Header.SetPosition(0, -30)
	e.Header.SetAlpha(0)
	e.Header.Color = colorHeader
	e.Header.RenderLayer = LayerForeground
	root.AddChild(e.Header)

	e.Resize(vp, NewLayout())
	return e
}

// fill registers n to track the viewport box and centers it in its parent.
func (e *Elements) fill(n *scrollfx.Node) *scrollfx.Node {
	n.SetAnchor(0.5, 0.5)
	e.fills = append(e.fills, n)
	return n
}

// Resize fits full-viewport nodes and section panels to vp.
func (e *Elements) Resize(vp scrollfx.Viewport, layout *scrollfx.Layout) {
	for _, n := range e.fills {
		n.SetSize(vp.Width, vp.Height)
	}
	e.Content.SetSize(vp.Width, layout.Height(vp.Height))
	for _, p := range e.panels {
		box, _ := layout.Box(p.Name, vp.Height)
		inset := 0.08 * vp.Height
		p.SetSize(0.8*vp.Width, max(box.Height-2*inset, 0))
		p.SetPosition(0, box.Top+inset)
	}
	e.Header.SetSize(vp.Width, e.Header.Height)
}

// ScrollTo moves the content by the page scroll offset.
func (e *Elements) ScrollTo(scrollY float64) {
	e.Content.SetPosition(0, -scrollY)
}

func hexagon(name string, shape scrollfx.Shape, size float64, c scrollfx.Color, ax, ay, rotDeg float64) *scrollfx.Node {
	n := scrollfx.NewShape(name, shape, size, size, name)
	n.SetAnchor(ax, ay)
	n.SetRotation(scrollfx.Deg(rotDeg))
	n.Color = c
	n.RenderLayer = LayerBackground
	return n
}
