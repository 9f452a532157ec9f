package app

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/tagmend/tagmend/internal/logger"
	"github.com/tagmend/tagmend/internal/notification"
	"github.com/tagmend/tagmend/internal/ui"
)

// handleCorrectionResult lands the outcome of a correction request. Success
// opens review mode; failure surfaces in the status line via the workflow's
// user error.
func (m *Model) handleCorrectionResult(msg correctionResultMsg) (tea.Model, tea.Cmd) {
	m.corrections.Resolve(msg.set, msg.err)

	if msg.err != nil {
		return m, nil
	}

	m.review.Enter(msg.set)
	m.updateSizes()

	if !m.windowFocused && m.config.GetNotificationsEnabled() {
		go notification.CorrectionsReady(msg.set.TotalIssues())
	}
	return m, nil
}

// handleChatResult lands the outcome of a chat question in the popup.
func (m *Model) handleChatResult(msg chatResultMsg) (tea.Model, tea.Cmd) {
	m.chat.Resolve(msg.answer, msg.err)
	m.chatBar.SetPending(false)
	m.popup.SetAnswer(m.chat.Answer(), m.chat.AnswerIsError())

	if msg.err == nil && !m.windowFocused && m.config.GetNotificationsEnabled() {
		go notification.AnswerReady()
	}
	return m, nil
}

// handleHelpShortcutTrigger handles shortcuts triggered from the help modal.
// It normalizes display keys and delegates to the shortcut registry.
func (m *Model) handleHelpShortcutTrigger(key string) (tea.Model, tea.Cmd) {
	normalizedKey := normalizeHelpDisplayKey(key)
	if normalizedKey == "" {
		return m, nil // Display-only shortcut, no action
	}

	result, cmd, _ := m.ExecuteShortcut(normalizedKey)
	return result, cmd
}

// normalizeHelpDisplayKey converts help modal display keys to actual key
// values. Returns empty string for display-only shortcuts that shouldn't be
// executed.
func normalizeHelpDisplayKey(displayKey string) string {
	switch displayKey {
	// Display-only shortcuts (informational, no action)
	case "↑/↓ or j/k", "PgUp/PgDn", "Enter", "Esc", "Mouse drag", "Mouse hover", "ctrl-c":
		return ""
	// Review-context only shortcuts (not executable from the help modal)
	case "e", "h/c":
		return ""
	case "Tab":
		return "tab"
	default:
		// Display keys spell ctrl combinations with a dash
		key := strings.ToLower(displayKey)
		return strings.Replace(key, "ctrl-", "ctrl+", 1)
	}
}

// handleClipboardError records a failed copy so the user sees it in the
// activity log instead of a silent no-op.
func (m *Model) handleClipboardError(msg ui.ClipboardErrorMsg) (tea.Model, tea.Cmd) {
	logger.Error("App: clipboard write failed: %v", msg.Error)
	m.activityLog.RecordError("copy failed: " + msg.Error.Error())
	return m, nil
}

// handleTickMessages advances the animations that run regardless of focus.
// Returns handled=true for tick messages so they stop propagating.
func (m *Model) handleTickMessages(msg tea.Msg) (tea.Cmd, bool) {
	switch msg.(type) {
	case ui.StopwatchTickMsg:
		// Both spinners advance on the same tick. The popup re-arms the
		// tick while it is pending; the correction spinner only adds its
		// own re-arm when the popup did not, so the chain never forks.
		popup, cmd := m.popup.Update(msg)
		m.popup = popup

		if m.Requesting() {
			m.corrSpinner.Advance()
			if cmd == nil {
				cmd = ui.StopwatchTick()
			}
		}
		return cmd, true

	case ui.SelectionFlashTickMsg:
		popup, cmd := m.popup.Update(msg)
		m.popup = popup
		return cmd, true
	}
	return nil, false
}
