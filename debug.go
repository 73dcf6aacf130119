package scrollfx

import (
	"fmt"
	"os"
	"time"
)

// debugLogInterval is how many frames pass between stats lines.
const debugLogInterval = 60

// debugStats holds per-frame timing and draw metrics.
// Only populated when Scene.debug is true.
type debugStats struct {
	updateTime   time.Duration
	drawTime     time.Duration
	commandCount int
}

// debugLog prints timing stats to stderr once every debugLogInterval frames.
func (s *Scene) debugLog() {
	if !s.debug || s.frame%debugLogInterval != 0 {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[scrollfx] frame %d | update: %v | draw: %v | commands: %d | scrollY: %.1f\n",
		s.frame, s.stats.updateTime, s.stats.drawTime, s.stats.commandCount, s.scrollY)
}

// debugCheckDisposed panics with a descriptive message when a disposed node is
// used in a tree operation. Only called in debug mode.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("scrollfx debug: %s on disposed node %q (ID was %d)", op, n.Name, n.ID))
	}
}

// debugCheckTreeDepth warns on stderr if tree depth exceeds the threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(n *Node) {
	depth := 0
	for p := n; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		_, _ = fmt.Fprintf(os.Stderr, "[scrollfx] warning: tree depth %d exceeds %d (node %q)\n",
			depth, debugMaxTreeDepth, n.Name)
	}
}
