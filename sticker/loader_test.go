package sticker

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// quadDocument builds a two-triangle square under a translated node.
func quadDocument(translation [3]float64) *gltf.Document {
	doc := gltf.NewDocument()
	pos := modeler.WritePosition(doc, [][3]float32{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}})
	idx := modeler.WriteIndices(doc, []uint16{0, 1, 2, 0, 2, 3})
	doc.Materials = append(doc.Materials, &gltf.Material{
		PBRMetallicRoughness: &gltf.PBRMetallicRoughness{
			BaseColorFactor: &[4]float64{1, 0, 0, 1},
		},
	})
	doc.Meshes = append(doc.Meshes, &gltf.Mesh{
		Primitives: []*gltf.Primitive{{
			Indices:    gltf.Index(idx),
			Attributes: map[string]int{gltf.POSITION: pos},
			Material:   gltf.Index(0),
		}},
	})
	doc.Nodes = append(doc.Nodes, &gltf.Node{Mesh: gltf.Index(0), Translation: translation})
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, 0)
	return doc
}

func TestFlattenDocumentBakesNodeTransform(t *testing.T) {
	m, err := flattenDocument(quadDocument([3]float64{10, 0, 0}))
	if err != nil {
		t.Fatalf("flattenDocument: %v", err)
	}
	if len(m.Positions) != 4 || len(m.Faces) != 2 {
		t.Fatalf("got %d positions, %d faces; want 4, 2", len(m.Positions), len(m.Faces))
	}
	if !vecNear(m.Positions[1], mgl64.Vec3{11, 0, 0}, 1e-6) {
		t.Errorf("vertex 1 = %v, want (11, 0, 0)", m.Positions[1])
	}
	if m.Faces[0].Color.R != 1 || m.Faces[0].Color.G != 0 {
		t.Errorf("face color = %+v, want red", m.Faces[0].Color)
	}
	lo, hi := m.Bounds()
	if !vecNear(lo, mgl64.Vec3{10, 0, 0}, 1e-6) || !vecNear(hi, mgl64.Vec3{11, 1, 0}, 1e-6) {
		t.Errorf("Bounds = %v..%v, want (10,0,0)..(11,1,0)", lo, hi)
	}
}

func TestFlattenDocumentEmpty(t *testing.T) {
	_, err := flattenDocument(gltf.NewDocument())
	if !errors.Is(err, ErrEmptyModel) {
		t.Errorf("err = %v, want ErrEmptyModel", err)
	}
}

func TestLoadGLBMissingFile(t *testing.T) {
	if _, err := LoadGLB("does/not/exist.glb"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadAsyncPostsOnce(t *testing.T) {
	ch := loadAsync(ModelSourceFunc(func() (*Mesh, error) { return triangleMesh(), nil }))
	res := <-ch
	if res.err != nil || res.mesh == nil {
		t.Fatalf("result = %+v, want mesh", res)
	}
	select {
	case extra := <-ch:
		t.Errorf("unexpected second result %+v", extra)
	default:
	}
}

func TestNodeMatrixDefaultsToIdentity(t *testing.T) {
	got := nodeMatrix(&gltf.Node{})
	if got != mgl64.Ident4() {
		t.Errorf("nodeMatrix(zero) = %v, want identity", got)
	}
}

func TestLoadGLBBundledSticker(t *testing.T) {
	m, err := LoadGLB("../assets/models/sticker.glb")
	if err != nil {
		t.Fatalf("LoadGLB: %v", err)
	}
	// Top and bottom hexagon fans plus six side quads.
	if len(m.Faces) != 24 {
		t.Errorf("faces = %d, want 24", len(m.Faces))
	}
	if m.Faces[0].Color == m.Faces[len(m.Faces)-1].Color {
		t.Error("face and edge materials should differ")
	}
}
