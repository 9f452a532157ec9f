package panel

// Expansion is the visibility state of one side panel. A panel is expanded
// while hovered or pinned; fullscreen replaces the whole content area.
// Capabilities are fixed at construction: the preview panel supports pin and
// fullscreen, the log panel is hover-only.
type Expansion struct {
	hover      bool
	pinned     bool
	fullscreen bool

	pinnable       bool
	fullscreenable bool
}

// NewPreviewExpansion returns the expansion state for the preview panel,
// which supports hover, pin, and fullscreen.
func NewPreviewExpansion() *Expansion {
	return &Expansion{pinnable: true, fullscreenable: true}
}

// NewLogExpansion returns the expansion state for the activity log panel,
// which expands on hover only.
func NewLogExpansion() *Expansion {
	return &Expansion{}
}

// HoverEnter marks the pointer as over the panel. Ignored while pinned or
// fullscreen, where hover has no effect on visibility.
func (e *Expansion) HoverEnter() {
	if e.pinned || e.fullscreen {
		return
	}
	e.hover = true
}

// HoverLeave marks the pointer as off the panel. Ignored while pinned or
// fullscreen.
func (e *Expansion) HoverLeave() {
	if e.pinned || e.fullscreen {
		return
	}
	e.hover = false
}

// TogglePin flips the pinned state. Unpinning also clears hover so the panel
// collapses immediately instead of lingering under a stale hover. No-op on a
// panel that cannot pin.
func (e *Expansion) TogglePin() {
	if !e.pinnable {
		return
	}
	e.pinned = !e.pinned
	if !e.pinned {
		e.hover = false
	}
}

// ToggleFullscreen flips the fullscreen state. Exiting fullscreen clears
// hover for the same reason unpinning does. No-op on a panel that cannot go
// fullscreen.
func (e *Expansion) ToggleFullscreen() {
	if !e.fullscreenable {
		return
	}
	e.fullscreen = !e.fullscreen
	if !e.fullscreen {
		e.hover = false
	}
}

// Expanded reports whether the panel should render expanded.
func (e *Expansion) Expanded() bool {
	return e.hover || e.pinned
}

// Fullscreen reports whether the panel has taken over the content area.
func (e *Expansion) Fullscreen() bool {
	return e.fullscreen
}

// Pinned reports whether the panel is pinned open.
func (e *Expansion) Pinned() bool {
	return e.pinned
}
