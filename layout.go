package scrollfx

// BodyTarget is the trigger target covering the whole page.
const BodyTarget = "body"

type block struct {
	id     string
	height float64 // in viewport heights
}

// Layout is the vertical stack of page sections. Heights are stored in
// viewport heights so boxes follow window resizes.
type Layout struct {
	blocks []block
}

// Append stacks a section of height viewport heights below the previous one.
func (l *Layout) Append(id string, height float64) *Layout {
	l.blocks = append(l.blocks, block{id: id, height: height})
	return l
}

// Height returns the page height in pixels for the given viewport height.
func (l *Layout) Height(viewportH float64) float64 {
	var h float64
	for _, b := range l.blocks {
		h += b.height * viewportH
	}
	return h
}

// Box resolves a selector ("#id", bare id, or "body") to its page box.
// Reports false when no section carries the id.
func (l *Layout) Box(target string, viewportH float64) (Box, bool) {
	if target == BodyTarget {
		return Box{Top: 0, Height: l.Height(viewportH)}, true
	}
	if len(target) > 0 && target[0] == '#' {
		target = target[1:]
	}
	var top float64
	for _, b := range l.blocks {
		h := b.height * viewportH
		if b.id == target {
			return Box{Top: top, Height: h}, true
		}
		top += h
	}
	return Box{}, false
}

// MaxScroll returns the largest scroll offset for the viewport height.
func (l *Layout) MaxScroll(viewportH float64) float64 {
	return max(l.Height(viewportH)-viewportH, 0)
}
