package app

import (
	"context"

	tea "charm.land/bubbletea/v2"
)

// requestCorrections builds the command that asks the collaborator to review
// both buffers. The texts are captured by value so later edits cannot leak
// into an in-flight request.
func (m *Model) requestCorrections(html, css string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		set, err := client.RequestCorrections(context.Background(), html, css)
		return correctionResultMsg{set: set, err: err}
	}
}

// askQuestion builds the command that sends a free-text question about the
// buffers to the collaborator.
func (m *Model) askQuestion(html, css, question string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		answer, err := client.Ask(context.Background(), html, css, question)
		return chatResultMsg{answer: answer, err: err}
	}
}
