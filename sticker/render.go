package sticker

import (
	"sort"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/scrollfx"
)

// maxBatchFaces keeps every DrawTriangles call within uint16 indices.
const maxBatchFaces = 65535 / 3

// projectedFace is a screen-space triangle awaiting submission.
type projectedFace struct {
	v     [3]mgl64.Vec2
	depth float64
	color scrollfx.Color
}

// meshRenderer draws a Mesh with flat shading and painter's ordering.
// Buffers are reused between frames.
type meshRenderer struct {
	faces []projectedFace
	verts []ebiten.Vertex
	inds  []uint16
}

// draw projects every face of mesh through world and cam, shades it with
// lights, sorts back to front and submits in uint16-sized batches.
func (r *meshRenderer) draw(screen *ebiten.Image, mesh *Mesh, world mgl64.Mat4, cam *Camera, lights Lighting) {
	r.faces = r.faces[:0]
	for _, f := range mesh.Faces {
		var wp [3]mgl64.Vec3
		var pf projectedFace
		visible := true
		for k := 0; k < 3; k++ {
			wp[k] = world.Mul4x1(mesh.Positions[f.I[k]].Vec4(1)).Vec3()
			x, y, z, ok := cam.Project(wp[k])
			if !ok {
				visible = false
				break
			}
			pf.v[k] = mgl64.Vec2{x, y}
			pf.depth += z
		}
		if !visible {
			continue
		}
		n := wp[1].Sub(wp[0]).Cross(wp[2].Sub(wp[0]))
		if l := n.Len(); l > 0 {
			n = n.Mul(1 / l)
		}
		pf.color = lights.Shade(f.Color, n)
		r.faces = append(r.faces, pf)
	}
	sort.Slice(r.faces, func(i, j int) bool {
		return r.faces[i].depth > r.faces[j].depth
	})

	for start := 0; start < len(r.faces); start += maxBatchFaces {
		end := min(start+maxBatchFaces, len(r.faces))
		r.verts = r.verts[:0]
		r.inds = r.inds[:0]
		for i, pf := range r.faces[start:end] {
			c := pf.color
			for k := 0; k < 3; k++ {
				r.verts = append(r.verts, ebiten.Vertex{
					DstX:   float32(pf.v[k].X()),
					DstY:   float32(pf.v[k].Y()),
					SrcX:   0.5,
					SrcY:   0.5,
					ColorR: float32(c.R * c.A),
					ColorG: float32(c.G * c.A),
					ColorB: float32(c.B * c.A),
					ColorA: float32(c.A),
				})
			}
			base := uint16(i * 3)
			r.inds = append(r.inds, base, base+1, base+2)
		}
		screen.DrawTriangles(r.verts, r.inds, scrollfx.WhitePixel, &ebiten.DrawTrianglesOptions{
			AntiAlias: true,
		})
	}
}
