package ui

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// EditorPane identifies one of the two code panes.
type EditorPane int

const (
	PaneHTML EditorPane = iota
	PaneCSS
	PaneNone EditorPane = -1
)

// Editors is the split editing region: two textareas joined by a one-cell
// divider column placed per the split position. The textareas are the live
// code buffers; the correction workflow reads them on request and replaces
// them wholesale on accept.
type Editors struct {
	html textarea.Model
	css  textarea.Model

	width   int
	height  int
	split   int // HTML pane share in percent
	focused EditorPane

	htmlWidth int
	cssWidth  int
}

// NewEditors creates the editor region with both panes empty.
func NewEditors() *Editors {
	e := &Editors{
		html:    newCodeArea("<!-- html -->"),
		css:     newCodeArea("/* css */"),
		focused: PaneHTML,
	}
	e.html.Focus()
	return e
}

func newCodeArea(placeholder string) textarea.Model {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.CharLimit = 0
	ta.ShowLineNumbers = true
	ta.Prompt = ""
	return ta
}

// SetSize sets the region dimensions and the split position (HTML share in
// percent). The divider column takes one cell between the panes.
func (e *Editors) SetSize(width, height, split int) {
	e.width = width
	e.height = height
	e.split = split

	usable := width - DividerWidth
	if usable < 2 {
		usable = 2
	}
	e.htmlWidth = usable * split / 100
	if e.htmlWidth < 1 {
		e.htmlWidth = 1
	}
	e.cssWidth = usable - e.htmlWidth
	if e.cssWidth < 1 {
		e.cssWidth = 1
	}

	areaHeight := height - TitleHeight - BorderSize
	if areaHeight < 1 {
		areaHeight = 1
	}

	e.html.SetWidth(e.htmlWidth - BorderSize)
	e.html.SetHeight(areaHeight)
	e.css.SetWidth(e.cssWidth - BorderSize)
	e.css.SetHeight(areaHeight)

	GetViewContext().Log("Editors.SetSize: region=%dx%d, split=%d, html=%d, css=%d", width, height, split, e.htmlWidth, e.cssWidth)
}

// DividerX returns the divider column's X offset within the editor region.
// Used for drag hit-testing.
func (e *Editors) DividerX() int {
	return e.htmlWidth
}

// Focus moves keyboard focus to the given pane.
func (e *Editors) Focus(pane EditorPane) {
	e.focused = pane
	switch pane {
	case PaneHTML:
		e.html.Focus()
		e.css.Blur()
	case PaneCSS:
		e.css.Focus()
		e.html.Blur()
	default:
		e.html.Blur()
		e.css.Blur()
	}
}

// Focused returns which pane has keyboard focus, or PaneNone.
func (e *Editors) Focused() EditorPane {
	return e.focused
}

// HTML returns the HTML buffer text.
func (e *Editors) HTML() string {
	return e.html.Value()
}

// CSS returns the CSS buffer text.
func (e *Editors) CSS() string {
	return e.css.Value()
}

// SetHTML replaces the HTML buffer text.
func (e *Editors) SetHTML(value string) {
	e.html.SetValue(value)
}

// SetCSS replaces the CSS buffer text.
func (e *Editors) SetCSS(value string) {
	e.css.SetValue(value)
}

// Update routes input to the focused textarea.
func (e *Editors) Update(msg tea.Msg) (*Editors, tea.Cmd) {
	var cmd tea.Cmd
	switch e.focused {
	case PaneHTML:
		e.html, cmd = e.html.Update(msg)
	case PaneCSS:
		e.css, cmd = e.css.Update(msg)
	}
	return e, cmd
}

// lineCount counts buffer lines for the pane title; an empty buffer counts
// as zero.
func lineCount(value string) int {
	if value == "" {
		return 0
	}
	return strings.Count(value, "\n") + 1
}

func renderPaneTitle(name string, lines, width int) string {
	word := "lines"
	if lines == 1 {
		word = "line"
	}
	title := EditorTitleStyle.Render(name) + " " +
		EditorLineCountStyle.Render(fmt.Sprintf("%d %s", lines, word))
	return lipgloss.NewStyle().Width(width).Render(title)
}

// View renders both panes joined by the divider. The focused pane gets the
// focused border; the divider brightens while a drag is armed.
func (e *Editors) View(dragging bool) string {
	htmlBorder := PanelStyle
	cssBorder := PanelStyle
	switch e.focused {
	case PaneHTML:
		htmlBorder = PanelFocusedStyle
	case PaneCSS:
		cssBorder = PanelFocusedStyle
	}

	boxHeight := e.height - TitleHeight
	if boxHeight < 1 {
		boxHeight = 1
	}

	htmlPane := lipgloss.JoinVertical(lipgloss.Left,
		renderPaneTitle("HTML", lineCount(e.html.Value()), e.htmlWidth),
		htmlBorder.Width(e.htmlWidth).Height(boxHeight).Render(e.html.View()),
	)
	cssPane := lipgloss.JoinVertical(lipgloss.Left,
		renderPaneTitle("CSS", lineCount(e.css.Value()), e.cssWidth),
		cssBorder.Width(e.cssWidth).Height(boxHeight).Render(e.css.View()),
	)

	dividerStyle := DividerStyle
	if dragging {
		dividerStyle = DividerActiveStyle
	}
	divider := dividerStyle.Render(strings.TrimRight(strings.Repeat("│\n", e.height), "\n"))

	return lipgloss.JoinHorizontal(lipgloss.Top, htmlPane, divider, cssPane)
}
