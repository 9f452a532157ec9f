package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/tagmend/tagmend/internal/ui"
)

// routeMouseEvents routes mouse events by screen region: the answer popup,
// the divider drag, the side panel strips, and the scrollable panes.
// Returns handled=true when the event was consumed.
func (m *Model) routeMouseEvents(msg tea.Msg) (tea.Cmd, bool) {
	switch msg.(type) {
	case tea.MouseClickMsg, tea.MouseMotionMsg, tea.MouseReleaseMsg, tea.MouseWheelMsg:
	default:
		return nil, false
	}

	// The modal is keyboard driven; its list already saw wheel events
	// through the modal update in Update, so nothing may leak to the
	// components underneath.
	if m.modal.IsVisible() {
		return nil, true
	}

	// The popup owns the mouse while it is on screen
	if m.chat.PopupVisible() {
		return m.routePopupMouseEvents(msg), true
	}

	if m.previewExp.Fullscreen() {
		if wheel, ok := msg.(tea.MouseWheelMsg); ok {
			preview, cmd := m.preview.Update(wheel)
			m.preview = preview
			return cmd, true
		}
		return nil, true
	}

	switch mouseMsg := msg.(type) {
	case tea.MouseClickMsg:
		return m.handleMouseClick(mouseMsg), true
	case tea.MouseMotionMsg:
		return m.handleMouseMotion(mouseMsg), true
	case tea.MouseReleaseMsg:
		return m.handleMouseRelease(mouseMsg), true
	case tea.MouseWheelMsg:
		return m.handleMouseWheel(mouseMsg), true
	}
	return nil, false
}

// routePopupMouseEvents re-bases mouse coordinates onto the popup and
// forwards them. The popup ignores presses that miss its viewport, and
// nothing reaches the buffers underneath.
func (m *Model) routePopupMouseEvents(msg tea.Msg) tea.Cmd {
	originX, originY := m.popupOrigin()

	switch mouseMsg := msg.(type) {
	case tea.MouseClickMsg:
		adjusted := tea.MouseClickMsg{
			X:      mouseMsg.X - originX,
			Y:      mouseMsg.Y - originY,
			Button: mouseMsg.Button,
			Mod:    mouseMsg.Mod,
		}
		popup, cmd := m.popup.Update(adjusted)
		m.popup = popup
		return cmd

	case tea.MouseMotionMsg:
		adjusted := tea.MouseMotionMsg{
			X:      mouseMsg.X - originX,
			Y:      mouseMsg.Y - originY,
			Button: mouseMsg.Button,
			Mod:    mouseMsg.Mod,
		}
		popup, cmd := m.popup.Update(adjusted)
		m.popup = popup
		return cmd

	case tea.MouseReleaseMsg:
		adjusted := tea.MouseReleaseMsg{
			X:      mouseMsg.X - originX,
			Y:      mouseMsg.Y - originY,
			Button: mouseMsg.Button,
			Mod:    mouseMsg.Mod,
		}
		popup, cmd := m.popup.Update(adjusted)
		m.popup = popup
		return cmd

	case tea.MouseWheelMsg:
		popup, cmd := m.popup.Update(mouseMsg)
		m.popup = popup
		return cmd
	}
	return nil
}

// handleMouseClick starts a divider drag when the press lands on the divider
// column.
func (m *Model) handleMouseClick(msg tea.MouseClickMsg) tea.Cmd {
	if msg.Button != tea.MouseLeft {
		return nil
	}
	if !m.inContentRows(msg.Y) || m.review.Active() {
		return nil
	}

	dividerX := m.editors.DividerX()
	if msg.X >= dividerX-1 && msg.X <= dividerX+1 {
		m.resizer.StartDrag()
	}
	return nil
}

// handleMouseMotion drives the divider drag and the strip hover expansion.
func (m *Model) handleMouseMotion(msg tea.MouseMotionMsg) tea.Cmd {
	if m.resizer.Dragging() {
		m.resizer.Drag(msg.X, 0, m.editorsWidth())
		m.updateSizes()
		return nil
	}

	m.updateHover(msg.X, msg.Y)
	return nil
}

// handleMouseRelease ends a divider drag wherever the pointer is.
func (m *Model) handleMouseRelease(msg tea.MouseReleaseMsg) tea.Cmd {
	if m.resizer.Dragging() {
		m.resizer.StopDrag()
	}
	return nil
}

// handleMouseWheel scrolls whichever pane is under the pointer.
func (m *Model) handleMouseWheel(msg tea.MouseWheelMsg) tea.Cmd {
	if !m.inContentRows(msg.Y) {
		return nil
	}

	switch {
	case m.inPreviewRegion(msg.X) && m.previewExp.Expanded():
		preview, cmd := m.preview.Update(msg)
		m.preview = preview
		return cmd
	case m.inLogRegion(msg.X) && m.logExp.Expanded():
		logPane, cmd := m.logPane.Update(msg)
		m.logPane = logPane
		return cmd
	case m.review.Active():
		review, cmd := m.review.Update(msg)
		m.review = review
		return cmd
	}
	return nil
}

// updateHover expands the side panel under the pointer and collapses the
// other. A change in expansion shifts the layout, so sizes are recomputed.
func (m *Model) updateHover(x, y int) {
	previewBefore := m.previewExp.Expanded()
	logBefore := m.logExp.Expanded()

	inContent := m.inContentRows(y)
	if inContent && m.inPreviewRegion(x) {
		m.previewExp.HoverEnter()
	} else {
		m.previewExp.HoverLeave()
	}
	if inContent && m.inLogRegion(x) {
		m.logExp.HoverEnter()
	} else {
		m.logExp.HoverLeave()
	}

	if m.previewExp.Expanded() != previewBefore || m.logExp.Expanded() != logBefore {
		m.updateSizes()
	}
}

// inContentRows reports whether a screen row falls between the header and
// the chat bar.
func (m *Model) inContentRows(y int) bool {
	ctx := ui.GetViewContext()
	return y >= ui.HeaderHeight && y < ui.HeaderHeight+ctx.ContentHeight
}

// inPreviewRegion reports whether a screen column falls in the preview
// region, between the editors and the log region.
func (m *Model) inPreviewRegion(x int) bool {
	ctx := ui.GetViewContext()
	left := ctx.TerminalWidth - m.logRegionWidth() - m.previewRegionWidth()
	return x >= left && x < left+m.previewRegionWidth()
}

// inLogRegion reports whether a screen column falls in the log region at the
// right edge.
func (m *Model) inLogRegion(x int) bool {
	ctx := ui.GetViewContext()
	return x >= ctx.TerminalWidth-m.logRegionWidth()
}
