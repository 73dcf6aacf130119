package scrollfx

import "strings"

// nodeIDCounter is a plain counter (no atomic; scrollfx is single-threaded).
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// Node is a page element: a box positioned inside its parent's box that may
// draw a Shape. Nodes form a tree rooted at Scene.Root, whose box is the
// viewport. Children inherit their parent's transform and alpha.
//
// Name doubles as the element id ("#name" in selectors) and Classes hold the
// class names (".class"). Each animated field should be written by exactly
// one timeline; wrap a node in a container when two concerns need the same
// property.
type Node struct {
	// Identity
	ID      uint32
	Name    string
	Classes []string

	// Hierarchy
	Parent   *Node
	children []*Node

	// Box
	Width, Height float64

	// Layout: the pivot lands at (AnchorX*parentW + X, AnchorY*parentH + Y).
	AnchorX, AnchorY float64
	X, Y             float64

	// Transform (local). Pivot is a fraction of the node's own box.
	ScaleX, ScaleY float64
	Rotation       float64
	PivotX, PivotY float64

	// Computed during traversal.
	worldTransform [6]float64
	worldAlpha     float64
	transformDirty bool

	// Appearance
	Shape       Shape
	Color       Color
	Alpha       float64
	StrokeWidth float64
	BlendMode   BlendMode
	Visible     bool

	// Ordering
	ZIndex      int
	RenderLayer uint8

	disposed       bool
	childrenSorted bool
	sortedChildren []*Node
}

func nodeDefaults(n *Node) {
	n.ID = nextNodeID()
	n.ScaleX = 1
	n.ScaleY = 1
	n.PivotX = 0.5
	n.PivotY = 0.5
	n.Alpha = 1
	n.Color = ColorWhite
	n.Visible = true
	n.transformDirty = true
	n.childrenSorted = true
}

// NewContainer creates a node with no visual representation.
func NewContainer(name string, classes ...string) *Node {
	n := &Node{Name: name, Classes: classes}
	nodeDefaults(n)
	return n
}

// NewShape creates a node that draws shape inside a width x height box.
func NewShape(name string, shape Shape, width, height float64, classes ...string) *Node {
	n := &Node{Name: name, Classes: classes, Shape: shape, Width: width, Height: height}
	nodeDefaults(n)
	if shape == ShapeHexagonOutline {
		n.StrokeWidth = 2
	}
	return n
}

// HasClass reports whether the node carries the class name.
func (n *Node) HasClass(class string) bool {
	for _, c := range n.Classes {
		if c == class {
			return true
		}
	}
	return false
}

// Matches reports whether the node matches a simple selector: "#id",
// ".class", or a bare name.
func (n *Node) Matches(selector string) bool {
	switch {
	case strings.HasPrefix(selector, "#"):
		return n.Name == selector[1:]
	case strings.HasPrefix(selector, "."):
		return n.HasClass(selector[1:])
	default:
		return n.Name == selector
	}
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("scrollfx: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(n, "AddChild (parent)")
		debugCheckDisposed(child, "AddChild (child)")
	}
	if isAncestor(child, n) {
		panic("scrollfx: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
	n.childrenSorted = false
	markSubtreeDirty(child)
	if globalDebug {
		debugCheckTreeDepth(child)
	}
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if child.Parent != n {
		panic("scrollfx: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
	n.childrenSorted = false
	markSubtreeDirty(child)
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// SetZIndex sets the node's ZIndex and marks the parent's children as unsorted.
func (n *Node) SetZIndex(z int) {
	if n.ZIndex == z {
		return
	}
	n.ZIndex = z
	if n.Parent != nil {
		n.Parent.childrenSorted = false
	}
}

// Walk calls fn for n and every descendant in depth-first order.
// Returning false from fn skips that node's children.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range n.children {
		c.Walk(fn)
	}
}

// --- Disposal ---

// Dispose removes this node from its parent, marks it as disposed,
// and recursively disposes all descendants.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.RemoveFromParent()
	n.dispose()
}

func (n *Node) dispose() {
	n.disposed = true
	n.ID = 0
	for _, child := range n.children {
		child.Parent = nil
		child.dispose()
	}
	n.children = nil
	n.sortedChildren = nil
	n.Parent = nil
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// isAncestor reports whether candidate is an ancestor of node.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}

// markSubtreeDirty sets transformDirty on node and all its descendants.
func markSubtreeDirty(node *Node) {
	node.transformDirty = true
	for _, child := range node.children {
		markSubtreeDirty(child)
	}
}
