package ui

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// KeyBinding represents a keyboard shortcut
type KeyBinding struct {
	Key  string
	Desc string
}

// Footer represents the bottom footer bar with keybindings
type Footer struct {
	width        int
	bindings     []KeyBinding
	chatFocused  bool // Whether the chat bar has focus
	reviewMode   bool // Whether the review overlay is active
	requesting   bool // Whether a correction request is in flight
	popupVisible bool // Whether the chat answer popup is on screen
	fullscreen   bool // Whether the preview has taken over the content area
}

// NewFooter creates a new footer
func NewFooter() *Footer {
	return &Footer{
		bindings: []KeyBinding{
			{Key: "tab", Desc: "switch pane"},
			{Key: "ctrl+r", Desc: "review"},
			{Key: "ctrl+p", Desc: "pin preview"},
			{Key: "ctrl+f", Desc: "fullscreen"},
			{Key: "ctrl+s", Desc: "settings"},
			{Key: "ctrl+h", Desc: "help"},
			{Key: "ctrl+c", Desc: "quit"},
		},
	}
}

// SetContext updates the footer's context for conditional bindings
func (f *Footer) SetContext(chatFocused, reviewMode, requesting, popupVisible, fullscreen bool) {
	f.chatFocused = chatFocused
	f.reviewMode = reviewMode
	f.requesting = requesting
	f.popupVisible = popupVisible
	f.fullscreen = fullscreen
}

// SetWidth sets the footer width
func (f *Footer) SetWidth(width int) {
	f.width = width
}

// SetBindings allows custom keybindings
func (f *Footer) SetBindings(bindings []KeyBinding) {
	f.bindings = bindings
}

// View renders the footer
func (f *Footer) View() string {
	var parts []string

	// Show review-specific shortcuts when the review overlay is active
	if f.reviewMode {
		reviewBindings := []KeyBinding{
			{Key: "enter", Desc: "accept"},
			{Key: "e", Desc: "edit again"},
			{Key: "h/c", Desc: "switch file"},
			{Key: "↑/↓/j/k", Desc: "scroll"},
			{Key: "pgup/dn", Desc: "page"},
		}
		for _, b := range reviewBindings {
			key := FooterKeyStyle.Render(b.Key)
			desc := FooterDescStyle.Render(": " + b.Desc)
			parts = append(parts, key+desc)
		}
		return f.join(parts)
	}

	// Show fullscreen-specific shortcuts when the preview owns the screen
	if f.fullscreen {
		fsBindings := []KeyBinding{
			{Key: "ctrl+f", Desc: "exit fullscreen"},
			{Key: "↑/↓", Desc: "scroll"},
			{Key: "ctrl+c", Desc: "quit"},
		}
		for _, b := range fsBindings {
			key := FooterKeyStyle.Render(b.Key)
			desc := FooterDescStyle.Render(": " + b.Desc)
			parts = append(parts, key+desc)
		}
		return f.join(parts)
	}

	// Show popup-specific shortcuts while the answer popup is up
	if f.popupVisible {
		popupBindings := []KeyBinding{
			{Key: "esc", Desc: "dismiss"},
			{Key: "↑/↓", Desc: "scroll"},
			{Key: "drag", Desc: "select/copy"},
		}
		for _, b := range popupBindings {
			key := FooterKeyStyle.Render(b.Key)
			desc := FooterDescStyle.Render(": " + b.Desc)
			parts = append(parts, key+desc)
		}
		return f.join(parts)
	}

	// Chat bar focused: submitting takes enter, so lead with it
	if f.chatFocused {
		key := FooterKeyStyle.Render("enter")
		desc := FooterDescStyle.Render(": ask")
		parts = append(parts, key+desc)
	}

	for _, b := range f.bindings {
		// Requesting: the review shortcut is a no-op until the result lands
		if b.Key == "ctrl+r" && f.requesting {
			continue
		}

		key := FooterKeyStyle.Render(b.Key)
		desc := FooterDescStyle.Render(": " + b.Desc)
		parts = append(parts, key+desc)
	}

	return f.join(parts)
}

func (f *Footer) join(parts []string) string {
	content := strings.Join(parts, "  "+lipgloss.NewStyle().Foreground(ColorBorder).Render("|")+"  ")
	return FooterStyle.Width(f.width).Render(content)
}
