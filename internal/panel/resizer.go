// Package panel holds the pointer-driven layout state for the editor area:
// the draggable divider between the HTML and CSS panes and the tri-state
// expansion of the preview and log side panels. Both are pure state machines;
// the composition root feeds them mouse events and reads them back at render
// time.
package panel

// Split position bounds, in percent of the shared editor width. The clamp
// keeps both panes usable no matter how far the divider is dragged.
const (
	MinSplit     = 15
	MaxSplit     = 85
	DefaultSplit = 50
)

// Resizer tracks the divider between the two editor panes. The position only
// moves while a drag session is armed, so stray motion events cannot shift
// the layout.
type Resizer struct {
	position int
	dragging bool
}

// NewResizer returns a resizer with the divider centered.
func NewResizer() *Resizer {
	return &Resizer{position: DefaultSplit}
}

// StartDrag arms a drag session. Subsequent Drag calls move the divider
// until StopDrag.
func (r *Resizer) StartDrag() {
	r.dragging = true
}

// Drag converts a pointer column into a split percentage. pointerX is the
// absolute column of the event; regionLeft and regionWidth describe the
// editor area the split is relative to. Ignored unless a drag is armed.
func (r *Resizer) Drag(pointerX, regionLeft, regionWidth int) {
	if !r.dragging || regionWidth <= 0 {
		return
	}
	pct := (pointerX - regionLeft) * 100 / regionWidth
	r.position = clamp(pct, MinSplit, MaxSplit)
}

// StopDrag disarms the drag session. Safe to call when no drag is active,
// so the composition root can route every mouse release here.
func (r *Resizer) StopDrag() {
	r.dragging = false
}

// Position returns the HTML pane's share of the editor width in percent.
func (r *Resizer) Position() int {
	return r.position
}

// Dragging reports whether a drag session is armed.
func (r *Resizer) Dragging() bool {
	return r.dragging
}

func clamp(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
