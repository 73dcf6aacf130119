package sticker

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/phanxgames/scrollfx"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// ErrEmptyModel is returned when a model file holds no triangles.
var ErrEmptyModel = errors.New("model has no triangles")

// defaultFaceColor is used for primitives without a material.
var defaultFaceColor = scrollfx.Hex(0xd8d4e8)

// ModelSource produces the sticker mesh. Load runs on a background goroutine
// and must not touch stage state.
type ModelSource interface {
	Load() (*Mesh, error)
}

// ModelSourceFunc adapts a function to ModelSource.
type ModelSourceFunc func() (*Mesh, error)

// Load calls f.
func (f ModelSourceFunc) Load() (*Mesh, error) { return f() }

// GLBFile loads a binary or JSON glTF file from Path.
type GLBFile struct {
	Path string
}

// Load reads and flattens the file.
func (g GLBFile) Load() (*Mesh, error) {
	return LoadGLB(g.Path)
}

// LoadGLB reads a glTF document and flattens the default scene into a
// single mesh in model space. Only triangle primitives are kept.
func LoadGLB(path string) (*Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load model %s: %w", path, err)
	}
	m, err := flattenDocument(doc)
	if err != nil {
		return nil, fmt.Errorf("load model %s: %w", path, err)
	}
	return m, nil
}

// flattenDocument walks the default scene (or every root node when the
// document names none) and bakes node transforms into vertex positions.
func flattenDocument(doc *gltf.Document) (*Mesh, error) {
	m := &Mesh{}
	var roots []int
	switch {
	case doc.Scene != nil && *doc.Scene < len(doc.Scenes):
		roots = doc.Scenes[*doc.Scene].Nodes
	case len(doc.Scenes) > 0:
		roots = doc.Scenes[0].Nodes
	default:
		for i := range doc.Nodes {
			roots = append(roots, i)
		}
	}
	for _, i := range roots {
		if err := flattenNode(doc, i, mgl64.Ident4(), m, 0); err != nil {
			return nil, err
		}
	}
	if len(m.Faces) == 0 {
		return nil, ErrEmptyModel
	}
	return m, nil
}

// maxNodeDepth guards against cyclic node graphs in malformed files.
const maxNodeDepth = 64

func flattenNode(doc *gltf.Document, idx int, parent mgl64.Mat4, m *Mesh, depth int) error {
	if idx < 0 || idx >= len(doc.Nodes) {
		return fmt.Errorf("node %d out of range", idx)
	}
	if depth > maxNodeDepth {
		return fmt.Errorf("node %d: hierarchy deeper than %d", idx, maxNodeDepth)
	}
	node := doc.Nodes[idx]
	world := parent.Mul4(nodeMatrix(node))
	if node.Mesh != nil {
		if *node.Mesh >= len(doc.Meshes) {
			return fmt.Errorf("node %d: mesh %d out of range", idx, *node.Mesh)
		}
		for _, p := range doc.Meshes[*node.Mesh].Primitives {
			if err := appendPrimitive(doc, p, world, m); err != nil {
				return fmt.Errorf("node %d: %w", idx, err)
			}
		}
	}
	for _, c := range node.Children {
		if err := flattenNode(doc, c, world, m, depth+1); err != nil {
			return err
		}
	}
	return nil
}

// nodeMatrix returns the node's local matrix from Matrix or from its TRS
// properties. Zero-valued rotation and scale fall back to identity.
func nodeMatrix(n *gltf.Node) mgl64.Mat4 {
	if m := mgl64.Mat4(n.Matrix); m != (mgl64.Mat4{}) && m != mgl64.Ident4() {
		return m
	}
	t := n.Translation
	r := n.Rotation
	if r == [4]float64{} {
		r = [4]float64{0, 0, 0, 1}
	}
	s := n.Scale
	if s == [3]float64{} {
		s = [3]float64{1, 1, 1}
	}
	q := mgl64.Quat{W: r[3], V: mgl64.Vec3{r[0], r[1], r[2]}}.Normalize()
	return mgl64.Translate3D(t[0], t[1], t[2]).
		Mul4(q.Mat4()).
		Mul4(mgl64.Scale3D(s[0], s[1], s[2]))
}

func appendPrimitive(doc *gltf.Document, p *gltf.Primitive, world mgl64.Mat4, m *Mesh) error {
	if p.Mode != gltf.PrimitiveTriangles {
		return nil
	}
	posIdx, ok := p.Attributes[gltf.POSITION]
	if !ok {
		return nil
	}
	if posIdx >= len(doc.Accessors) {
		return fmt.Errorf("position accessor %d out of range", posIdx)
	}
	positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
	if err != nil {
		return fmt.Errorf("read positions: %w", err)
	}

	var indices []uint32
	if p.Indices != nil {
		if *p.Indices >= len(doc.Accessors) {
			return fmt.Errorf("index accessor %d out of range", *p.Indices)
		}
		indices, err = modeler.ReadIndices(doc, doc.Accessors[*p.Indices], nil)
		if err != nil {
			return fmt.Errorf("read indices: %w", err)
		}
	} else {
		indices = make([]uint32, len(positions))
		for i := range indices {
			indices[i] = uint32(i)
		}
	}

	base := uint32(len(m.Positions))
	for _, v := range positions {
		w := world.Mul4x1(mgl64.Vec4{float64(v[0]), float64(v[1]), float64(v[2]), 1})
		m.Positions = append(m.Positions, w.Vec3())
	}
	col := primitiveColor(doc, p)
	for i := 0; i+2 < len(indices); i += 3 {
		a, b, c := indices[i], indices[i+1], indices[i+2]
		if int(a) >= len(positions) || int(b) >= len(positions) || int(c) >= len(positions) {
			return fmt.Errorf("index out of range at triangle %d", i/3)
		}
		m.Faces = append(m.Faces, Face{I: [3]uint32{base + a, base + b, base + c}, Color: col})
	}
	return nil
}

// primitiveColor returns the material base color factor, or a neutral tint.
func primitiveColor(doc *gltf.Document, p *gltf.Primitive) scrollfx.Color {
	if p.Material == nil || *p.Material >= len(doc.Materials) {
		return defaultFaceColor
	}
	pbr := doc.Materials[*p.Material].PBRMetallicRoughness
	if pbr == nil || pbr.BaseColorFactor == nil {
		return defaultFaceColor
	}
	f := pbr.BaseColorFactor
	return scrollfx.Color{R: f[0], G: f[1], B: f[2], A: 1}
}

// loadResult is the single message posted by loadAsync.
type loadResult struct {
	mesh *Mesh
	err  error
}

// loadAsync runs src.Load on its own goroutine and posts exactly one result
// on the returned channel. The channel is buffered so the goroutine never
// blocks, even if nobody reads it.
func loadAsync(src ModelSource) <-chan loadResult {
	ch := make(chan loadResult, 1)
	go func() {
		mesh, err := src.Load()
		if err == nil && (mesh == nil || len(mesh.Faces) == 0) {
			err = ErrEmptyModel
		}
		ch <- loadResult{mesh: mesh, err: err}
	}()
	return ch
}
