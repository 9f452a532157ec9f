package app

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/tagmend/tagmend/internal/config"
	"github.com/tagmend/tagmend/internal/correction"
	"github.com/tagmend/tagmend/internal/keys"
)

// testConfig creates a minimal config for testing. It carries no file path,
// so Save() fails; tests that exercise the save path load from a temp HOME.
func testConfig() *config.Config {
	return &config.Config{
		Provider: config.ProviderGemini,
	}
}

// mockClient is a collab.Client that returns canned responses and records
// what it was asked.
type mockClient struct {
	set    *correction.Set
	answer string
	err    error

	correctionCalls int
	askCalls        int
	lastHTML        string
	lastCSS         string
	lastQuestion    string
}

func (c *mockClient) RequestCorrections(ctx context.Context, html, css string) (*correction.Set, error) {
	c.correctionCalls++
	c.lastHTML, c.lastCSS = html, css
	if c.err != nil {
		return nil, c.err
	}
	return c.set, nil
}

func (c *mockClient) Ask(ctx context.Context, html, css, question string) (string, error) {
	c.askCalls++
	c.lastHTML, c.lastCSS = html, css
	c.lastQuestion = question
	if c.err != nil {
		return "", c.err
	}
	return c.answer, nil
}

func (c *mockClient) Name() string {
	return "Mock"
}

// testModel creates a test Model with the given config and a mock client.
func testModel(cfg *config.Config) *Model {
	return New(cfg, "0.0.0-test", &mockClient{})
}

// testModelWithSize creates a test Model and sets its size.
func testModelWithSize(cfg *config.Config, width, height int) *Model {
	m := testModel(cfg)
	m.Update(tea.WindowSizeMsg{Width: width, Height: height})
	return m
}

// testCorrectionSet builds a small set with one HTML issue and one CSS issue.
func testCorrectionSet() *correction.Set {
	return &correction.Set{
		HTML: []correction.Correction{
			{LineNumber: 1, Original: "<p>hi", Corrected: "<p>hi</p>", IsError: true, Explanation: "unclosed tag"},
			{LineNumber: 2, Original: "<div></div>", Corrected: "<div></div>"},
		},
		CSS: []correction.Correction{
			{LineNumber: 1, Original: "p { colr: red }", Corrected: "p { color: red }", IsError: true, Explanation: "misspelled property"},
		},
	}
}

// keyPress creates a tea.KeyPressMsg for the given key string.
// Examples: "a", "enter", "tab", "esc", "ctrl+r", "up", "down"
func keyPress(key string) tea.KeyPressMsg {
	switch key {
	case keys.Enter:
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case keys.Tab:
		return tea.KeyPressMsg{Code: tea.KeyTab}
	case keys.Escape:
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case keys.Up:
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case keys.Down:
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case keys.Left:
		return tea.KeyPressMsg{Code: tea.KeyLeft}
	case keys.Right:
		return tea.KeyPressMsg{Code: tea.KeyRight}
	case keys.Home:
		return tea.KeyPressMsg{Code: tea.KeyHome}
	case keys.End:
		return tea.KeyPressMsg{Code: tea.KeyEnd}
	case keys.PgUp:
		return tea.KeyPressMsg{Code: tea.KeyPgUp}
	case keys.PgDown:
		return tea.KeyPressMsg{Code: tea.KeyPgDown}
	case keys.CtrlC:
		return tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}
	case keys.CtrlR:
		return tea.KeyPressMsg{Code: 'r', Mod: tea.ModCtrl}
	case keys.CtrlP:
		return tea.KeyPressMsg{Code: 'p', Mod: tea.ModCtrl}
	case keys.CtrlF:
		return tea.KeyPressMsg{Code: 'f', Mod: tea.ModCtrl}
	case keys.CtrlS:
		return tea.KeyPressMsg{Code: 's', Mod: tea.ModCtrl}
	case keys.CtrlH:
		return tea.KeyPressMsg{Code: 'h', Mod: tea.ModCtrl}
	default:
		// Regular character - for single characters, set both Code and Text
		if len(key) == 1 {
			return tea.KeyPressMsg{Code: rune(key[0]), Text: key}
		}
		// Fallback for unknown keys
		return tea.KeyPressMsg{Text: key}
	}
}

// sendKey sends a key press to the model and returns the updated model.
func sendKey(m *Model, key string) *Model {
	result, _ := m.Update(keyPress(key))
	return result.(*Model)
}

// typeText simulates typing a string by sending individual character key
// presses.
func typeText(m *Model, text string) *Model {
	for _, ch := range text {
		m = sendKey(m, string(ch))
	}
	return m
}

// focusChat cycles focus until the chat bar owns input.
func focusChat(m *Model) *Model {
	for i := 0; i < 3 && !m.chatFocused(); i++ {
		m = sendKey(m, keys.Tab)
	}
	return m
}

// resolveCorrections feeds a correction result through Update as if the
// collaborator command had completed.
func resolveCorrections(m *Model, set *correction.Set, err error) *Model {
	result, _ := m.Update(correctionResultMsg{set: set, err: err})
	return result.(*Model)
}

// resolveChat feeds a chat result through Update.
func resolveChat(m *Model, answer string, err error) *Model {
	result, _ := m.Update(chatResultMsg{answer: answer, err: err})
	return result.(*Model)
}

// startedCorrectionRequest puts the model mid-request: buffers filled and
// ctrl+r pressed.
func startedCorrectionRequest(m *Model) *Model {
	m.editors.SetHTML("<p>hi</p>")
	return sendKey(m, keys.CtrlR)
}

// =============================================================================
// Mouse Event Helpers
// =============================================================================

// mouseClick creates a tea.MouseClickMsg at the given coordinates.
func mouseClick(x, y int) tea.MouseClickMsg {
	return tea.MouseClickMsg{
		X:      x,
		Y:      y,
		Button: tea.MouseLeft,
	}
}

// mouseMotion creates a tea.MouseMotionMsg at the given coordinates.
func mouseMotion(x, y int) tea.MouseMotionMsg {
	return tea.MouseMotionMsg{
		X:      x,
		Y:      y,
		Button: tea.MouseLeft,
	}
}

// mouseRelease creates a tea.MouseReleaseMsg at the given coordinates.
func mouseRelease(x, y int) tea.MouseReleaseMsg {
	return tea.MouseReleaseMsg{
		X:      x,
		Y:      y,
		Button: tea.MouseLeft,
	}
}

// sendMouse sends any mouse message through Update.
func sendMouse(m *Model, msg tea.Msg) *Model {
	result, _ := m.Update(msg)
	return result.(*Model)
}
