package sticker

// Rig levels from outermost to innermost. Outer levels carry large-scale
// motion; rotations of an outer level swing the translation of every inner
// level.
const (
	LevelRoot     = "root"
	LevelScroll   = "scroll"
	LevelExit     = "exit"
	LevelIdle     = "idle"
	LevelEntrance = "entrance"
	LevelModel    = "model"
)

// Owners of the writable levels.
const (
	OwnerScroll   = "scroll-path"
	OwnerExit     = "exit-motion"
	OwnerIdle     = "idle-motion"
	OwnerEntrance = "entrance-tween"
	OwnerLoader   = "loader"
)

// Rig is the named chain root -> scroll -> exit -> idle -> entrance -> model.
//
//	scroll    absolute pose from the scroll path (body progress)
//	exit      shrink and lift once progress passes the exit threshold
//	idle      bob, sway and pointer tilt while active
//	entrance  one-shot drop-in after the model loads
//	model     centering, scale and base orientation set by the loader
type Rig struct {
	Root     *TransformNode
	Scroll   *TransformNode
	Exit     *TransformNode
	Idle     *TransformNode
	Entrance *TransformNode
	Model    *TransformNode
}

// NewRig builds the chain with every level at rest.
func NewRig() *Rig {
	r := &Rig{
		Root:     NewTransformNode(LevelRoot, ""),
		Scroll:   NewTransformNode(LevelScroll, OwnerScroll),
		Exit:     NewTransformNode(LevelExit, OwnerExit),
		Idle:     NewTransformNode(LevelIdle, OwnerIdle),
		Entrance: NewTransformNode(LevelEntrance, OwnerEntrance),
		Model:    NewTransformNode(LevelModel, OwnerLoader),
	}
	r.Root.AddChild(r.Scroll)
	r.Scroll.AddChild(r.Exit)
	r.Exit.AddChild(r.Idle)
	r.Idle.AddChild(r.Entrance)
	r.Entrance.AddChild(r.Model)
	return r
}

// Levels returns the chain from root to model.
func (r *Rig) Levels() []*TransformNode {
	return []*TransformNode{r.Root, r.Scroll, r.Exit, r.Idle, r.Entrance, r.Model}
}

// Level returns the level with the given name, or nil.
func (r *Rig) Level(name string) *TransformNode {
	for _, l := range r.Levels() {
		if l.Name == name {
			return l
		}
	}
	return nil
}

// Reset puts every writable level back at rest.
func (r *Rig) Reset() {
	for _, l := range r.Levels()[1:] {
		l.Write(l.owner, RestPose())
	}
}
