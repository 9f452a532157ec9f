package ui

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/tagmend/tagmend/internal/correction"
)

// Review renders an active correction set one file at a time, replacing the
// editor region while the user decides between accept and edit-again. Each
// errored line shows as a removed/added row pair with the explanation
// indented beneath; clean lines show as single dim rows.
type Review struct {
	files     []correction.File
	fileIndex int
	viewport  viewport.Model
	width     int
	height    int
	active    bool
}

// NewReview creates an inactive review component.
func NewReview() *Review {
	return &Review{}
}

// Enter loads a correction set and activates the review with a fresh viewport.
func (r *Review) Enter(set *correction.Set) {
	r.active = true
	r.files = set.Files()
	r.fileIndex = 0

	// Create a fresh viewport for the diff content
	r.viewport = viewport.New()
	r.viewport.MouseWheelEnabled = true
	r.viewport.MouseWheelDelta = 3
	r.viewport.SoftWrap = true

	r.updateDiff()
}

// Exit deactivates the review and drops the loaded set.
func (r *Review) Exit() {
	r.active = false
	r.files = nil
	r.fileIndex = 0
}

// Active returns whether the review is currently showing.
func (r *Review) Active() bool {
	return r.active
}

// SetSize sets the outer dimensions of the review region.
func (r *Review) SetSize(width, height int) {
	r.width = width
	r.height = height
}

// SelectFile jumps to the file at the given index.
func (r *Review) SelectFile(index int) {
	if index < 0 || index >= len(r.files) {
		return
	}
	if index == r.fileIndex {
		return
	}
	r.fileIndex = index
	r.updateDiff()
}

// NextFile advances to the next file, wrapping around.
func (r *Review) NextFile() {
	if len(r.files) == 0 {
		return
	}
	r.fileIndex = (r.fileIndex + 1) % len(r.files)
	r.updateDiff()
}

// FileIndex returns the currently selected file index.
// Used for testing navigation.
func (r *Review) FileIndex() int {
	return r.fileIndex
}

// updateDiff renders the current file's corrections into the viewport.
func (r *Review) updateDiff() {
	if len(r.files) == 0 {
		r.viewport.SetContent("No files to display")
		return
	}
	if r.fileIndex >= len(r.files) {
		r.fileIndex = len(r.files) - 1
	}
	file := r.files[r.fileIndex]
	r.viewport.SetContent(renderCorrections(file.Lines))
	r.viewport.GotoTop()
}

// renderCorrections formats one file's correction records as a line diff.
func renderCorrections(lines []correction.Correction) string {
	if len(lines) == 0 {
		return DiffContextStyle.Render("(empty file)")
	}

	var rows []string
	for _, c := range lines {
		num := fmt.Sprintf("%4d ", c.LineNumber)
		if c.IsError {
			rows = append(rows,
				DiffRemovedStyle.Render(num+"- "+c.Original),
				DiffAddedStyle.Render(strings.Repeat(" ", len(num))+"+ "+c.Corrected),
				DiffExplanationStyle.Render(strings.Repeat(" ", len(num)+2)+c.Explanation),
			)
		} else {
			rows = append(rows, DiffContextStyle.Render(num+"  "+c.Original))
		}
	}
	return strings.Join(rows, "\n")
}

// Update handles scroll input while the review is showing.
func (r *Review) Update(msg tea.Msg) (*Review, tea.Cmd) {
	var cmd tea.Cmd
	r.viewport, cmd = r.viewport.Update(msg)
	return r, cmd
}

// View renders the review panel: a compact file navigation bar above the
// scrollable diff.
func (r *Review) View() string {
	innerWidth := r.width - 2 // Account for panel border
	innerHeight := r.height - 2

	navBar := r.renderFileNavBar(innerWidth)
	navBarHeight := 1 // Single line navigation

	diffHeight := innerHeight - navBarHeight

	r.viewport.SetWidth(innerWidth)
	r.viewport.SetHeight(diffHeight)

	// Constrain to max height to prevent layout overflow
	diffContent := lipgloss.NewStyle().
		MaxHeight(diffHeight).
		Render(r.viewport.View())

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		navBar,
		diffContent,
	)

	return PanelFocusedStyle.Width(r.width).Height(r.height).Render(content)
}

// renderFileNavBar renders the compact horizontal file navigation bar:
//
//	← [h] HTML · 3 issues (1 of 2) [c] →
func (r *Review) renderFileNavBar(width int) string {
	if len(r.files) == 0 {
		return lipgloss.NewStyle().
			Width(width).
			Foreground(ColorTextMuted).
			Render("No files to display")
	}

	file := r.files[r.fileIndex]

	// Left arrow (show if not first file)
	leftArrow := "  "
	if r.fileIndex > 0 {
		leftArrow = "← "
	}

	// Right arrow (show if not last file)
	rightArrow := "  "
	if r.fileIndex < len(r.files)-1 {
		rightArrow = " →"
	}

	arrowStyle := lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
	nameStyle := lipgloss.NewStyle().Foreground(ColorText).Bold(true)
	counterStyle := lipgloss.NewStyle().Foreground(ColorTextMuted)

	issues := file.IssueCount()
	var issueText string
	if issues == 0 {
		issueText = lipgloss.NewStyle().Foreground(ColorSuccess).Render("no issues")
	} else {
		word := "issues"
		if issues == 1 {
			word = "issue"
		}
		issueText = lipgloss.NewStyle().Foreground(ColorWarning).Render(fmt.Sprintf("%d %s", issues, word))
	}

	counter := counterStyle.Render(fmt.Sprintf("(%d of %d)", r.fileIndex+1, len(r.files)))

	navContent := arrowStyle.Render(leftArrow) +
		keyStyle.Render("[h]") + " " +
		nameStyle.Render(file.Name) + " " +
		counterStyle.Render("·") + " " +
		issueText + " " +
		counter + " " +
		keyStyle.Render("[c]") +
		arrowStyle.Render(rightArrow)

	barStyle := lipgloss.NewStyle().
		Width(width)

	return barStyle.Render(navContent)
}
