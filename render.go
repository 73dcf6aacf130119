package scrollfx

import (
	"image"
	"image/color"
	"math"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
)

// glowTextureSize is the edge length of the generated radial gradient.
const glowTextureSize = 128

// drawCommand is a single draw instruction emitted during tree traversal.
type drawCommand struct {
	node        *Node
	transform   [6]float64
	alpha       float64
	renderLayer uint8
	treeOrder   int
}

// traverse walks the node tree depth-first, updating transforms and emitting
// draw commands for visible shape nodes.
func (s *Scene) traverse(n *Node, parentTransform [6]float64, parentAlpha, parentW, parentH float64, parentRecomputed bool, treeOrder *int) {
	if !n.Visible {
		return
	}
	if globalDebug {
		debugCheckDisposed(n, "traverse")
	}

	recompute := n.transformDirty || parentRecomputed
	if recompute {
		local := computeLocalTransform(n, parentW, parentH)
		n.worldTransform = multiplyAffine(parentTransform, local)
		n.worldAlpha = parentAlpha * n.Alpha
		n.transformDirty = false
	}

	if n.Shape != ShapeNone && n.worldAlpha > 0 {
		*treeOrder++
		s.commands = append(s.commands, drawCommand{
			node:        n,
			transform:   n.worldTransform,
			alpha:       n.worldAlpha,
			renderLayer: n.RenderLayer,
			treeOrder:   *treeOrder,
		})
	}

	if len(n.children) == 0 {
		return
	}
	children := n.children
	if !n.childrenSorted {
		rebuildSortedChildren(n)
	}
	if n.sortedChildren != nil {
		children = n.sortedChildren
	}
	for _, child := range children {
		s.traverse(child, n.worldTransform, n.worldAlpha, n.Width, n.Height, recompute, treeOrder)
	}
}

// rebuildSortedChildren rebuilds the ZIndex-sorted traversal order for a node
// with a stable insertion sort.
func rebuildSortedChildren(n *Node) {
	nc := len(n.children)
	if cap(n.sortedChildren) < nc {
		n.sortedChildren = make([]*Node, nc)
	}
	n.sortedChildren = n.sortedChildren[:nc]
	copy(n.sortedChildren, n.children)
	for i := 1; i < nc; i++ {
		key := n.sortedChildren[i]
		j := i - 1
		for j >= 0 && n.sortedChildren[j].ZIndex > key.ZIndex {
			n.sortedChildren[j+1] = n.sortedChildren[j]
			j--
		}
		n.sortedChildren[j+1] = key
	}
	n.childrenSorted = true
}

// sortCommands orders commands by render layer, then tree order.
func (s *Scene) sortCommands() {
	sort.SliceStable(s.commands, func(i, j int) bool {
		a, b := &s.commands[i], &s.commands[j]
		if a.renderLayer != b.renderLayer {
			return a.renderLayer < b.renderLayer
		}
		return a.treeOrder < b.treeOrder
	})
}

// submit draws the sorted commands, interleaving layer hooks.
func (s *Scene) submit(screen *ebiten.Image) {
	h := 0
	for i := range s.commands {
		cmd := &s.commands[i]
		for h < len(s.hooks) && s.hooks[h].layer < cmd.renderLayer {
			s.hooks[h].fn(screen)
			h++
		}
		s.drawShape(screen, cmd)
	}
	for ; h < len(s.hooks); h++ {
		s.hooks[h].fn(screen)
	}
}

func (s *Scene) drawShape(screen *ebiten.Image, cmd *drawCommand) {
	n := cmd.node
	tint := n.Color.WithAlpha(n.Color.A * cmd.alpha)
	switch n.Shape {
	case ShapeRect:
		pts := [4]Vec2{{0, 0}, {n.Width, 0}, {n.Width, n.Height}, {0, n.Height}}
		drawFan(screen, pts[:], cmd.transform, tint, n.BlendMode)
	case ShapeHexagon:
		pts := hexagonPoints(n.Width, n.Height, 0)
		drawFan(screen, pts[:], cmd.transform, tint, n.BlendMode)
	case ShapeHexagonOutline:
		outer := hexagonPoints(n.Width, n.Height, 0)
		inner := hexagonPoints(n.Width, n.Height, n.StrokeWidth)
		drawRing(screen, outer[:], inner[:], cmd.transform, tint, n.BlendMode)
	case ShapeGlow:
		s.drawGlow(screen, n, cmd.transform, tint)
	}
}

// hexagonPoints returns a pointy-top hexagon inscribed in a w x h box, inset
// by inset pixels.
func hexagonPoints(w, h, inset float64) [6]Vec2 {
	cx, cy := w/2, h/2
	r := math.Min(w, h)/2 - inset
	if r < 0 {
		r = 0
	}
	var pts [6]Vec2
	for i := range pts {
		a := -math.Pi/2 + float64(i)*math.Pi/3
		pts[i] = Vec2{cx + r*math.Cos(a), cy + r*math.Sin(a)}
	}
	return pts
}

func vertex(m [6]float64, p Vec2, c Color) ebiten.Vertex {
	x, y := transformPoint(m, p.X, p.Y)
	return ebiten.Vertex{
		DstX:   float32(x),
		DstY:   float32(y),
		SrcX:   0.5,
		SrcY:   0.5,
		ColorR: float32(c.R * c.A),
		ColorG: float32(c.G * c.A),
		ColorB: float32(c.B * c.A),
		ColorA: float32(c.A),
	}
}

// drawFan fills a convex polygon with fan triangulation.
func drawFan(screen *ebiten.Image, pts []Vec2, m [6]float64, c Color, blend BlendMode) {
	if len(pts) < 3 {
		return
	}
	verts := make([]ebiten.Vertex, len(pts))
	for i, p := range pts {
		verts[i] = vertex(m, p, c)
	}
	inds := make([]uint16, 0, (len(pts)-2)*3)
	for i := 1; i < len(pts)-1; i++ {
		inds = append(inds, 0, uint16(i), uint16(i+1))
	}
	screen.DrawTriangles(verts, inds, WhitePixel, &ebiten.DrawTrianglesOptions{
		Blend:     blend.EbitenBlend(),
		AntiAlias: true,
	})
}

// drawRing fills the band between two closed polygons of equal vertex count.
func drawRing(screen *ebiten.Image, outer, inner []Vec2, m [6]float64, c Color, blend BlendMode) {
	n := len(outer)
	verts := make([]ebiten.Vertex, 0, 2*n)
	for i := 0; i < n; i++ {
		verts = append(verts, vertex(m, outer[i], c), vertex(m, inner[i], c))
	}
	inds := make([]uint16, 0, 6*n)
	for i := 0; i < n; i++ {
		o0, i0 := uint16(2*i), uint16(2*i+1)
		o1, i1 := uint16(2*((i+1)%n)), uint16(2*((i+1)%n)+1)
		inds = append(inds, o0, o1, i0, i0, o1, i1)
	}
	screen.DrawTriangles(verts, inds, WhitePixel, &ebiten.DrawTrianglesOptions{
		Blend:     blend.EbitenBlend(),
		AntiAlias: true,
	})
}

// drawGlow stretches the shared radial gradient over the node's box.
func (s *Scene) drawGlow(screen *ebiten.Image, n *Node, m [6]float64, c Color) {
	if s.glow == nil {
		s.glow = ebiten.NewImageFromImage(radialGradient(glowTextureSize))
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(n.Width/glowTextureSize, n.Height/glowTextureSize)
	op.GeoM.Concat(affineGeoM(m))
	op.ColorScale.Scale(float32(c.R*c.A), float32(c.G*c.A), float32(c.B*c.A), float32(c.A))
	op.Blend = n.BlendMode.EbitenBlend()
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(s.glow, op)
}

// affineGeoM converts an affine matrix to an ebiten.GeoM.
func affineGeoM(m [6]float64) ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, m[0])
	g.SetElement(1, 0, m[1])
	g.SetElement(0, 1, m[2])
	g.SetElement(1, 1, m[3])
	g.SetElement(0, 2, m[4])
	g.SetElement(1, 2, m[5])
	return g
}

// radialGradient renders a white disc fading quadratically to transparent.
func radialGradient(size int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	c := float64(size) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := (float64(x) + 0.5 - c) / c
			dy := (float64(y) + 0.5 - c) / c
			f := 1 - math.Sqrt(dx*dx+dy*dy)
			if f <= 0 {
				continue
			}
			img.SetNRGBA(x, y, color.NRGBA{255, 255, 255, uint8(f * f * 255)})
		}
	}
	return img
}
