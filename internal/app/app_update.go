package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/tagmend/tagmend/internal/keys"
	"github.com/tagmend/tagmend/internal/logger"
	"github.com/tagmend/tagmend/internal/ui"
	"github.com/tagmend/tagmend/internal/ui/modals"
)

// Update handles messages. This is the core Bubble Tea update function that
// routes all messages to appropriate handlers.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateSizes()

	case tea.FocusMsg:
		m.windowFocused = true

	case tea.BlurMsg:
		m.windowFocused = false

	case tea.KeyPressMsg:
		if result, cmd := m.handleKeyPress(msg); result != nil {
			return result, cmd
		}
		// Key not handled by handleKeyPress, let it fall through to the
		// focused component

	case correctionResultMsg:
		return m.handleCorrectionResult(msg)

	case chatResultMsg:
		return m.handleChatResult(msg)

	case modals.HelpShortcutTriggeredMsg:
		return m.handleHelpShortcutTrigger(msg.Key)

	case ui.ClipboardErrorMsg:
		return m.handleClipboardError(msg)
	}

	// Update modal
	if m.modal.IsVisible() {
		modal, cmd := m.modal.Update(msg)
		m.modal = modal
		cmds = append(cmds, cmd)
	}

	// Tick messages drive the spinners regardless of focus
	if cmd, handled := m.handleTickMessages(msg); handled {
		cmds = append(cmds, cmd)
		return m, tea.Batch(cmds...)
	}

	// Route mouse events by screen region
	if cmd, handled := m.routeMouseEvents(msg); handled {
		cmds = append(cmds, cmd)
		return m, tea.Batch(cmds...)
	}

	// Update the focused component for remaining messages
	if m.review.Active() {
		review, cmd := m.review.Update(msg)
		m.review = review
		cmds = append(cmds, cmd)
	} else if m.chatFocused() {
		chatBar, cmd := m.chatBar.Update(msg)
		m.chatBar = chatBar
		cmds = append(cmds, cmd)
	} else {
		editors, cmd := m.editors.Update(msg)
		m.editors = editors
		m.refreshPreview()
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// handleKeyPress handles all keyboard input.
// Returns (model, cmd) if the key was handled, or (nil, nil) if it should
// fall through to the focused component for handling.
func (m *Model) handleKeyPress(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	logger.Log("App: KeyPressMsg received: key=%q, focus=%v, modalVisible=%v", key, m.focus, m.modal.IsVisible())

	// Handle modal first if visible
	if m.modal.IsVisible() {
		return m.handleModalKey(msg)
	}

	// Handle ctrl+c specially - always quits
	if key == keys.CtrlC {
		return m, tea.Quit
	}

	// Fullscreen preview swallows everything except its exit keys
	if m.previewExp.Fullscreen() {
		return m.handleFullscreenKeys(msg)
	}

	// Review mode replaces the editors and takes its own key set
	if m.review.Active() {
		return m.handleReviewKeys(msg)
	}

	// Handle Escape for various exit scenarios
	if key == keys.Escape {
		if result, cmd, handled := m.handleEscapeKey(); handled {
			return result, cmd
		}
	}

	// Answer popup scrolls on the navigation keys while it is up
	if m.chat.PopupVisible() {
		switch key {
		case keys.Up, keys.Down, keys.PgUp, keys.PgDown, keys.Home, keys.End:
			popup, cmd := m.popup.Update(msg)
			m.popup = popup
			return m, cmd
		}
	}

	// Enter submits the chat question when the bar is focused
	if m.chatFocused() && key == keys.Enter {
		return m.handleChatSubmit()
	}

	// Try executing from shortcut registry
	if result, cmd, handled := m.ExecuteShortcut(key); handled {
		return result, cmd
	}

	// While the popup covers the screen, remaining keys are swallowed so
	// they cannot type into the hidden editors
	if m.chat.PopupVisible() {
		return m, nil
	}

	// Key not handled - return nil to signal it should fall through to the
	// focused component
	return nil, nil
}

// handleEscapeKey handles escape for dismissing the popup or clearing a
// correction error, in that order. Returns handled=false when neither
// applies so the key can fall through.
func (m *Model) handleEscapeKey() (tea.Model, tea.Cmd, bool) {
	if m.chat.PopupVisible() {
		m.chat.Dismiss()
		return m, nil, true
	}
	if m.corrections.UserError() != "" {
		m.corrections.ClearUserError()
		return m, nil, true
	}
	return m, nil, false
}

// handleFullscreenKeys handles keys while the preview owns the whole content
// area. Scroll keys go to the preview; the toggle keys leave fullscreen.
func (m *Model) handleFullscreenKeys(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case keys.CtrlF, keys.Escape:
		m.previewExp.ToggleFullscreen()
		m.updateSizes()
		return m, nil
	case keys.Up, keys.Down, keys.PgUp, keys.PgDown, keys.Home, keys.End, "j", "k":
		preview, cmd := m.preview.Update(msg)
		m.preview = preview
		return m, cmd
	}
	return m, nil
}

// handleReviewKeys handles keys while a correction set is on screen.
func (m *Model) handleReviewKeys(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case keys.Enter:
		return m.acceptCorrections()
	case "e", keys.Escape:
		m.corrections.EditAgain()
		m.review.Exit()
		return m, nil
	case "h":
		m.review.SelectFile(0)
		return m, nil
	case "c":
		m.review.SelectFile(1)
		return m, nil
	case keys.Tab, keys.Left, keys.Right:
		m.review.NextFile()
		return m, nil
	case keys.Up, keys.Down, keys.PgUp, keys.PgDown, keys.Home, keys.End, "j", "k":
		review, cmd := m.review.Update(msg)
		m.review = review
		return m, cmd
	}
	return m, nil
}

// acceptCorrections replaces both buffers with the corrected text and leaves
// review mode.
func (m *Model) acceptCorrections() (tea.Model, tea.Cmd) {
	html, css, ok := m.corrections.Accept()
	if !ok {
		m.review.Exit()
		return m, nil
	}
	m.editors.SetHTML(html)
	m.editors.SetCSS(css)
	m.refreshPreview()
	m.review.Exit()
	return m, nil
}

// handleChatSubmit sends the chat bar's question to the collaborator.
func (m *Model) handleChatSubmit() (tea.Model, tea.Cmd) {
	question := m.chatBar.Question()
	if !m.chat.Submit(question) {
		return m, nil
	}

	m.chatBar.Clear()
	m.chatBar.SetPending(true)
	m.popup.StartPending()

	cmds := []tea.Cmd{m.askQuestion(m.editors.HTML(), m.editors.CSS(), question)}
	// The correction spinner may already be driving the tick chain
	if !m.Requesting() {
		cmds = append(cmds, ui.StopwatchTick())
	}
	return m, tea.Batch(cmds...)
}

// toggleFocus cycles HTML -> CSS -> chat -> HTML.
func (m *Model) toggleFocus() {
	switch m.focus {
	case FocusHTML:
		m.setFocus(FocusCSS)
	case FocusCSS:
		m.setFocus(FocusChat)
	default:
		m.setFocus(FocusHTML)
	}
}

// setFocus moves input focus to the given target.
func (m *Model) setFocus(f Focus) {
	if m.focus == f {
		return
	}
	logger.Log("App: focus %v -> %v", m.focus, f)
	m.focus = f

	switch f {
	case FocusHTML:
		m.editors.Focus(ui.PaneHTML)
		m.chatBar.SetFocused(false)
	case FocusCSS:
		m.editors.Focus(ui.PaneCSS)
		m.chatBar.SetFocused(false)
	case FocusChat:
		m.editors.Focus(ui.PaneNone)
		m.chatBar.SetFocused(true)
	}
}
