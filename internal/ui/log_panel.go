package ui

import (
	"strings"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/tagmend/tagmend/internal/activity"
)

// LogPanel shows the workflow audit trail. Collapsed it is a narrow strip;
// expanded it lists the activity entries newest-first, timestamps dimmed and
// failures highlighted.
type LogPanel struct {
	viewport viewport.Model
	log      *activity.Log
}

// NewLogPanel creates the log panel over the given activity log.
func NewLogPanel(log *activity.Log) *LogPanel {
	vp := viewport.New()
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3
	vp.SoftWrap = true
	return &LogPanel{viewport: vp, log: log}
}

// Update handles scroll input while the panel is expanded.
func (l *LogPanel) Update(msg tea.Msg) (*LogPanel, tea.Cmd) {
	var cmd tea.Cmd
	l.viewport, cmd = l.viewport.Update(msg)
	return l, cmd
}

// ViewStrip renders the collapsed strip. The log panel has no pin.
func (l *LogPanel) ViewStrip(height int) string {
	return renderStrip("LOG", height, false)
}

// ViewPanel renders the expanded panel at the given outer size.
func (l *LogPanel) ViewPanel(width, height int) string {
	innerWidth := width - BorderSize
	innerHeight := height - BorderSize - TitleHeight
	if innerWidth < 1 {
		innerWidth = 1
	}
	if innerHeight < 1 {
		innerHeight = 1
	}

	l.viewport.SetWidth(innerWidth)
	l.viewport.SetHeight(innerHeight)
	l.viewport.SetContent(l.renderEntries())

	title := PanelTitleStyle.Render("Activity")
	content := lipgloss.JoinVertical(lipgloss.Left, title, l.viewport.View())
	return PanelStyle.Width(width).Height(height).Render(content)
}

// renderEntries formats the log newest-first.
func (l *LogPanel) renderEntries() string {
	entries := l.log.Entries()
	if len(entries) == 0 {
		return lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Italic(true).
			Render("No activity yet")
	}

	lines := make([]string, len(entries))
	for i, e := range entries {
		stamp := LogTimestampStyle.Render("[" + e.When.Format("15:04:05") + "]")
		msgStyle := LogEntryStyle
		if e.IsError {
			msgStyle = LogErrorStyle
		}
		lines[i] = stamp + " " + msgStyle.Render(e.Message)
	}
	return strings.Join(lines, "\n")
}
