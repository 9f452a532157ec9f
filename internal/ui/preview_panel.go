package ui

import (
	"strings"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/tagmend/tagmend/internal/preview"
)

// PreviewPanel shows the composed document rendered as text. Collapsed it is
// a narrow strip with a vertical label; expanded it is a bordered panel with
// a scrollable viewport; fullscreen it replaces the whole content area.
type PreviewPanel struct {
	viewport  viewport.Model
	html      string
	css       string
	lastWidth int
}

// NewPreviewPanel creates the preview panel.
func NewPreviewPanel() *PreviewPanel {
	vp := viewport.New()
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3
	return &PreviewPanel{viewport: vp}
}

// SetContent updates the buffer sources and re-renders the preview at the
// last known width.
func (p *PreviewPanel) SetContent(htmlSrc, cssSrc string) {
	p.html = htmlSrc
	p.css = cssSrc
	p.render()
}

func (p *PreviewPanel) render() {
	width := p.lastWidth
	if width <= 0 {
		width = DefaultWrapWidth
	}
	p.viewport.SetContent(preview.Render(p.html, p.css, width))
}

// Update handles scroll input while the panel is expanded.
func (p *PreviewPanel) Update(msg tea.Msg) (*PreviewPanel, tea.Cmd) {
	var cmd tea.Cmd
	p.viewport, cmd = p.viewport.Update(msg)
	return p, cmd
}

// ViewStrip renders the collapsed strip.
func (p *PreviewPanel) ViewStrip(height int, pinned bool) string {
	return renderStrip("PREVIEW", height, pinned)
}

// ViewPanel renders the expanded panel at the given outer size.
func (p *PreviewPanel) ViewPanel(width, height int, pinned bool) string {
	innerWidth := width - BorderSize
	innerHeight := height - BorderSize - TitleHeight
	if innerWidth < 1 {
		innerWidth = 1
	}
	if innerHeight < 1 {
		innerHeight = 1
	}

	if innerWidth != p.lastWidth {
		p.lastWidth = innerWidth
		p.render()
	}
	p.viewport.SetWidth(innerWidth)
	p.viewport.SetHeight(innerHeight)

	title := PanelTitleStyle.Render("Preview")
	if pinned {
		title += StripPinnedStyle.Render("●")
	}

	content := lipgloss.JoinVertical(lipgloss.Left, title, p.viewport.View())
	return PanelStyle.Width(width).Height(height).Render(content)
}

// renderStrip renders a collapsed side strip: a one-column bordered bar with
// the label stacked vertically and a pin marker above it when pinned.
func renderStrip(label string, height int, pinned bool) string {
	innerHeight := height - BorderSize
	if innerHeight < 1 {
		innerHeight = 1
	}

	rows := make([]string, 0, innerHeight)
	if pinned {
		rows = append(rows, StripPinnedStyle.Render("●"), " ")
	}
	for _, r := range label {
		if len(rows) >= innerHeight {
			break
		}
		rows = append(rows, StripLabelStyle.Render(string(r)))
	}
	for len(rows) < innerHeight {
		rows = append(rows, " ")
	}

	return StripStyle.Width(StripWidth).Height(height).Render(strings.Join(rows, "\n"))
}
