package ui

import (
	"strings"

	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/tagmend/tagmend/internal/logger"
)

// ChatBar is the question input under the editors: a single-row textarea in
// its own border plus a hint line. The hint line doubles as the status line
// for whichever workflow currently has something to say.
type ChatBar struct {
	input   textarea.Model
	width   int
	focused bool
	pending bool
}

// NewChatBar creates the chat input bar.
func NewChatBar() *ChatBar {
	ti := textarea.New()
	ti.Placeholder = "Ask about your code..."
	ti.CharLimit = 0
	ti.SetHeight(ChatInputHeight)
	ti.ShowLineNumbers = false
	ti.Prompt = ""
	return &ChatBar{input: ti}
}

// SetWidth sets the bar's outer width.
func (c *ChatBar) SetWidth(width int) {
	c.width = width
	c.input.SetWidth(width - BorderSize - InputPaddingWidth)
}

// SetFocused sets the focus state.
func (c *ChatBar) SetFocused(focused bool) {
	c.focused = focused
	if focused {
		c.input.Focus()
	} else {
		c.input.Blur()
	}
}

// IsFocused returns the focus state.
func (c *ChatBar) IsFocused() bool {
	return c.focused
}

// SetPending disables input while a question is in flight.
func (c *ChatBar) SetPending(pending bool) {
	c.pending = pending
}

// Question returns the trimmed input text.
func (c *ChatBar) Question() string {
	val := strings.TrimSpace(c.input.Value())
	logger.Log("ChatBar.Question: value=%q, len=%d", val, len(val))
	return val
}

// Clear clears the input field.
func (c *ChatBar) Clear() {
	c.input.Reset()
}

// Update routes input to the textarea unless a question is pending.
func (c *ChatBar) Update(msg tea.Msg) (*ChatBar, tea.Cmd) {
	if !c.focused || c.pending {
		return c, nil
	}
	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return c, cmd
}

// View renders the input box with the status line beneath it. An empty
// status falls back to the usage hint.
func (c *ChatBar) View(status string) string {
	style := ChatInputStyle
	if c.focused {
		style = ChatInputFocusedStyle
	}

	inputArea := style.Width(c.width).Render(c.input.View())

	if status == "" {
		status = ChatHintStyle.Render("Ask a question about the code. The answer opens in a popup.")
	}
	statusLine := lipgloss.NewStyle().Width(c.width).Padding(0, 1).Render(status)

	return lipgloss.JoinVertical(lipgloss.Left, inputArea, statusLine)
}
