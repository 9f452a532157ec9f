package app

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/tagmend/tagmend/internal/ui"
)

// View renders the app. This is the core Bubble Tea view function.
func (m *Model) View() tea.View {
	var v tea.View
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion

	if m.width == 0 || m.height == 0 {
		v.SetContent("Loading...")
		return v
	}

	v.SetContent(m.RenderToString())
	return v
}

// RenderToString renders the current view as a string.
// This is useful for demos and testing.
func (m *Model) RenderToString() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	// Update footer context for conditional bindings
	m.updateFooterContext()

	ctx := ui.GetViewContext()
	header := m.header.View()
	footer := m.footer.View()
	chatBar := m.chatBar.View(m.statusLine())
	content := m.renderContent(ctx)

	view := lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		content,
		chatBar,
		footer,
	)

	// Overlay modal if visible
	if m.modal.IsVisible() {
		modalView := m.modal.View(m.width, m.height)
		return lipgloss.Place(
			m.width, m.height,
			lipgloss.Center, lipgloss.Center,
			modalView,
		)
	}

	// The answer popup takes the screen like a modal while visible
	if m.chat.PopupVisible() {
		return lipgloss.Place(
			m.width, m.height,
			lipgloss.Center, lipgloss.Center,
			m.popup.View(),
		)
	}

	return view
}

// renderContent renders the region between the header and the chat bar:
// the editors (or the review) plus the two side panels, or the preview
// alone in fullscreen.
func (m *Model) renderContent(ctx *ui.ViewContext) string {
	if m.previewExp.Fullscreen() {
		return m.preview.ViewPanel(ctx.TerminalWidth, ctx.ContentHeight, m.previewExp.Pinned())
	}

	var left string
	if m.review.Active() {
		left = m.review.View()
	} else {
		left = m.editors.View(m.resizer.Dragging())
	}

	var previewView string
	if m.previewExp.Expanded() {
		previewView = m.preview.ViewPanel(ctx.SidePanelWidth, ctx.ContentHeight, m.previewExp.Pinned())
	} else {
		previewView = m.preview.ViewStrip(ctx.ContentHeight, m.previewExp.Pinned())
	}

	var logView string
	if m.logExp.Expanded() {
		logView = m.logPane.ViewPanel(ctx.SidePanelWidth, ctx.ContentHeight)
	} else {
		logView = m.logPane.ViewStrip(ctx.ContentHeight)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, left, previewView, logView)
}

// popupOrigin returns the popup's top-left screen cell, matching the
// centered placement in RenderToString. Mouse events are re-based on it.
func (m *Model) popupOrigin() (x, y int) {
	width, height := ui.GetViewContext().PopupSize()
	gapX := m.width - width
	gapY := m.height - height
	if gapX < 0 {
		gapX = 0
	}
	if gapY < 0 {
		gapY = 0
	}
	return gapX / 2, gapY / 2
}

// statusLine picks the message under the chat bar: a correction error wins,
// then the in-flight spinner; otherwise empty so the bar shows its hint.
func (m *Model) statusLine() string {
	if msg := m.corrections.UserError(); msg != "" {
		return ui.StatusErrorStyle.Render(msg) +
			ui.ChatHintStyle.Render("  (esc to clear)")
	}
	if m.Requesting() {
		return ui.RenderSpinner(m.corrSpinner)
	}
	return ""
}

// updateFooterContext updates the footer with current context for
// conditional bindings.
func (m *Model) updateFooterContext() {
	m.footer.SetContext(
		m.chatFocused(),
		m.review.Active(),
		m.Requesting(),
		m.chat.PopupVisible(),
		m.previewExp.Fullscreen(),
	)
}

// updateSizes updates component sizes based on terminal dimensions.
func (m *Model) updateSizes() {
	ctx := ui.GetViewContext()
	ctx.UpdateTerminalSize(m.width, m.height)

	m.header.SetWidth(ctx.TerminalWidth)
	m.footer.SetWidth(ctx.TerminalWidth)
	m.chatBar.SetWidth(ctx.TerminalWidth)

	m.editors.SetSize(m.editorsWidth(), ctx.ContentHeight, m.resizer.Position())
	m.review.SetSize(m.editorsWidth(), ctx.ContentHeight)

	popupWidth, popupHeight := ctx.PopupSize()
	m.popup.SetSize(popupWidth, popupHeight)
}

// previewRegionWidth returns the preview region's current column count.
func (m *Model) previewRegionWidth() int {
	if m.previewExp.Expanded() {
		return ui.GetViewContext().SidePanelWidth
	}
	return ui.StripWidth
}

// logRegionWidth returns the log region's current column count.
func (m *Model) logRegionWidth() int {
	if m.logExp.Expanded() {
		return ui.GetViewContext().SidePanelWidth
	}
	return ui.StripWidth
}

// editorsWidth returns the editor region's current column count.
func (m *Model) editorsWidth() int {
	return ui.GetViewContext().TerminalWidth - m.previewRegionWidth() - m.logRegionWidth()
}
