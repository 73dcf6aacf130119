package sticker

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Pose is a local transform: position, Euler XYZ rotation in radians, and
// per-axis scale.
type Pose struct {
	Position mgl64.Vec3
	Rotation mgl64.Vec3
	Scale    mgl64.Vec3
}

// RestPose returns the identity pose.
func RestPose() Pose {
	return Pose{Scale: mgl64.Vec3{1, 1, 1}}
}

// Lerp interpolates every component linearly from p to q.
func (p Pose) Lerp(q Pose, t float64) Pose {
	return Pose{
		Position: p.Position.Add(q.Position.Sub(p.Position).Mul(t)),
		Rotation: p.Rotation.Add(q.Rotation.Sub(p.Rotation).Mul(t)),
		Scale:    p.Scale.Add(q.Scale.Sub(p.Scale).Mul(t)),
	}
}

// Matrix returns T * Rx * Ry * Rz * S.
func (p Pose) Matrix() mgl64.Mat4 {
	r := mgl64.HomogRotate3DX(p.Rotation.X()).
		Mul4(mgl64.HomogRotate3DY(p.Rotation.Y())).
		Mul4(mgl64.HomogRotate3DZ(p.Rotation.Z()))
	return mgl64.Translate3D(p.Position.X(), p.Position.Y(), p.Position.Z()).
		Mul4(r).
		Mul4(mgl64.Scale3D(p.Scale.X(), p.Scale.Y(), p.Scale.Z()))
}

// TransformNode is one level of the sticker hierarchy. Each level has a
// single owner: the only animation concern allowed to write its pose.
type TransformNode struct {
	Name   string
	Parent *TransformNode

	pose     Pose
	owner    string
	children []*TransformNode
}

// NewTransformNode creates a node at rest written only by owner. An empty
// owner makes the node static.
func NewTransformNode(name, owner string) *TransformNode {
	return &TransformNode{Name: name, owner: owner, pose: RestPose()}
}

// AddChild reparents child under n. Panics on nil, self, or a child that
// already has a parent.
func (n *TransformNode) AddChild(child *TransformNode) {
	switch {
	case child == nil:
		panic("sticker: cannot add nil child")
	case child == n:
		panic("sticker: cannot add node as its own child")
	case child.Parent != nil:
		panic(fmt.Sprintf("sticker: node %q already has parent %q", child.Name, child.Parent.Name))
	}
	child.Parent = n
	n.children = append(n.children, child)
}

// Children returns the node's children. The slice MUST NOT be mutated.
func (n *TransformNode) Children() []*TransformNode {
	return n.children
}

// Child returns the direct child with the given name, or nil.
func (n *TransformNode) Child(name string) *TransformNode {
	for _, c := range n.children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// Owner returns the animation concern allowed to write this node.
func (n *TransformNode) Owner() string {
	return n.owner
}

// Pose returns the current local pose.
func (n *TransformNode) Pose() Pose {
	return n.pose
}

// Write replaces the local pose on behalf of owner. Writing a level owned by
// another concern is a programming error and panics.
func (n *TransformNode) Write(owner string, p Pose) {
	if owner != n.owner {
		panic(fmt.Sprintf("sticker: level %q is owned by %q, written by %q", n.Name, n.owner, owner))
	}
	n.pose = p
}

// Local returns the node's local matrix.
func (n *TransformNode) Local() mgl64.Mat4 {
	return n.pose.Matrix()
}

// World returns the product of every ancestor's local matrix and this one.
func (n *TransformNode) World() mgl64.Mat4 {
	m := n.Local()
	for p := n.Parent; p != nil; p = p.Parent {
		m = p.Local().Mul4(m)
	}
	return m
}
