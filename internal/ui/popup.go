package ui

import (
	"strings"
	"time"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/tagmend/tagmend/internal/workflow"
)

// popupChromeHeight is the title line plus the blank line above the viewport
const popupChromeHeight = 2

// Popup is the centered chat answer overlay. It is visible from an accepted
// question submission until dismissed; while the question is pending it shows
// the animated waiting line, afterwards the rendered answer.
type Popup struct {
	viewport viewport.Model
	width    int
	height   int

	pending       bool
	answer        string
	answerIsError bool
	spinner       *SpinnerState

	// Mouse text selection state, in viewport-relative coordinates
	selectionStartCol  int
	selectionStartLine int
	selectionEndCol    int
	selectionEndLine   int
	selectionActive    bool

	// Click tracking for double/triple click detection
	lastClickTime time.Time
	lastClickX    int
	lastClickY    int
	clickCount    int

	// Selection flash animation (brief highlight after copy, then clear)
	selectionFlashFrame int // -1 = inactive, 0 = flash visible, 1+ = done
}

// NewPopup creates the answer popup.
func NewPopup() *Popup {
	vp := viewport.New()
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3

	p := &Popup{
		viewport:            vp,
		spinner:             NewSpinnerState(),
		selectionFlashFrame: -1,
	}
	p.SelectionClear()
	return p
}

// SetSize sets the popup's outer dimensions.
func (p *Popup) SetSize(width, height int) {
	p.width = width
	p.height = height

	// PopupStyle carries a border and Padding(1, 2)
	innerWidth := width - BorderSize - 4
	innerHeight := height - BorderSize - 2

	viewportHeight := innerHeight - popupChromeHeight
	if viewportHeight < 1 {
		viewportHeight = 1
	}
	if innerWidth < 1 {
		innerWidth = 1
	}

	p.viewport.SetWidth(innerWidth)
	p.viewport.SetHeight(viewportHeight)
	p.updateContent()
}

// StartPending puts the popup into the waiting state for a freshly accepted
// question.
func (p *Popup) StartPending() {
	p.pending = true
	p.answer = ""
	p.answerIsError = false
	p.spinner.Start()
	p.SelectionClear()
	p.updateContent()
}

// SetAnswer installs the resolved answer, errored or not.
func (p *Popup) SetAnswer(answer string, isError bool) {
	p.pending = false
	p.answer = answer
	p.answerIsError = isError
	p.updateContent()
	p.viewport.GotoTop()
}

// Pending reports whether the popup is in the waiting state.
func (p *Popup) Pending() bool {
	return p.pending
}

// updateContent renders the popup body into the viewport.
func (p *Popup) updateContent() {
	wrapWidth := p.viewport.Width()
	if wrapWidth <= 0 {
		wrapWidth = DefaultWrapWidth
	}

	var body string
	switch {
	case p.pending:
		body = RenderSpinner(p.spinner)
	case p.answerIsError:
		// The workflow prefixes errored answers; keep the prefix styled as
		// part of the message
		body = StatusErrorStyle.Render(workflow.ErrorAnswerPrefix) +
			wrapText(strings.TrimPrefix(p.answer, workflow.ErrorAnswerPrefix), wrapWidth)
	default:
		body = renderMarkdown(strings.TrimSpace(p.answer), wrapWidth)
	}

	p.viewport.SetContent(body)
}

// Update handles messages while the popup is on screen.
func (p *Popup) Update(msg tea.Msg) (*Popup, tea.Cmd) {
	switch msg := msg.(type) {
	case StopwatchTickMsg:
		return p, p.handleStopwatchTick()

	case SelectionFlashTickMsg:
		return p, p.handleSelectionFlashTick()

	case tea.MouseClickMsg:
		if msg.Button == tea.MouseLeft {
			x, y := p.viewportCoords(msg.X, msg.Y)
			return p, p.handleMouseClick(x, y)
		}

	case tea.MouseMotionMsg:
		if p.selectionActive {
			x, y := p.viewportCoords(msg.X, msg.Y)
			p.EndSelection(x, y)
		}
		return p, nil

	case tea.MouseReleaseMsg:
		if p.selectionActive {
			p.SelectionStop()
			if p.HasTextSelection() {
				return p, p.CopySelectedText()
			}
		}
		return p, nil
	}

	var cmd tea.Cmd
	p.viewport, cmd = p.viewport.Update(msg)
	return p, cmd
}

// viewportCoords converts popup-local coordinates to viewport coordinates,
// accounting for the border, padding, and the title chrome.
func (p *Popup) viewportCoords(x, y int) (int, int) {
	return x - 1 - 2, y - 1 - 1 - popupChromeHeight
}

// handleStopwatchTick advances the waiting animation.
func (p *Popup) handleStopwatchTick() tea.Cmd {
	if !p.pending {
		return nil
	}
	p.spinner.Advance()
	p.updateContent()
	return StopwatchTick()
}

// handleSelectionFlashTick advances the copy flash and clears the selection
// when the flash is done.
func (p *Popup) handleSelectionFlashTick() tea.Cmd {
	if p.selectionFlashFrame < 0 {
		return nil
	}

	p.selectionFlashFrame++
	if p.selectionFlashFrame >= 2 {
		p.selectionFlashFrame = -1
		p.SelectionClear()
		return nil
	}
	return SelectionFlashTick()
}

// View renders the popup box.
func (p *Popup) View() string {
	var title string
	if p.pending {
		title = PopupTitleStyle.Render("Asking...")
	} else if p.answerIsError {
		title = StatusErrorStyle.Render("Answer")
	} else {
		title = PopupTitleStyle.Render("Answer")
	}

	body := p.selectionView(p.viewport.View())

	content := lipgloss.JoinVertical(lipgloss.Left, title, "", body)
	return PopupStyle.Width(p.width).Height(p.height).Render(content)
}
