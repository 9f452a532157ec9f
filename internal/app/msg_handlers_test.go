package app

import (
	"fmt"
	"strings"
	"testing"

	"github.com/tagmend/tagmend/internal/errors"
	"github.com/tagmend/tagmend/internal/ui"
	"github.com/tagmend/tagmend/internal/ui/modals"
	"github.com/tagmend/tagmend/internal/workflow"
)

func TestCorrectionResult_SuccessOpensReview(t *testing.T) {
	m := testModelWithSize(testConfig(), 120, 40)
	m = startedCorrectionRequest(m)

	m = resolveCorrections(m, testCorrectionSet(), nil)

	if m.corrections.State() != workflow.StateReviewing {
		t.Errorf("correction state = %v, want reviewing", m.corrections.State())
	}
	if !m.review.Active() {
		t.Error("expected review mode after a successful result")
	}
}

func TestCorrectionResult_FailureStaysInEditor(t *testing.T) {
	m := testModelWithSize(testConfig(), 120, 40)
	m = startedCorrectionRequest(m)

	m = resolveCorrections(m, nil, errors.CollaboratorFailed("gemini", fmt.Errorf("boom")))

	if m.corrections.State() != workflow.StateEditing {
		t.Errorf("correction state = %v, want editing", m.corrections.State())
	}
	if m.review.Active() {
		t.Error("review must not open on failure")
	}
	if m.corrections.UserError() == "" {
		t.Error("expected a user-visible error message")
	}
}

func TestCorrectionResult_StrayResultIgnored(t *testing.T) {
	m := testModelWithSize(testConfig(), 120, 40)

	// No request in flight
	m = resolveCorrections(m, testCorrectionSet(), nil)

	if m.review.Active() {
		t.Error("a stray result must not open review mode")
	}
	if m.corrections.State() != workflow.StateEditing {
		t.Errorf("correction state = %v, want editing", m.corrections.State())
	}
}

func TestChatResult_SuccessFillsPopup(t *testing.T) {
	m := testModelWithSize(testConfig(), 120, 40)
	m = focusChat(m)
	m = typeText(m, "why is it red?")
	m = sendKey(m, "enter")

	if m.chat.State() != workflow.ChatPending {
		t.Fatalf("chat state = %v, want pending", m.chat.State())
	}

	m = resolveChat(m, "Because of the color rule.", nil)

	if m.chat.State() != workflow.ChatIdle {
		t.Errorf("chat state = %v, want idle", m.chat.State())
	}
	if !m.chat.PopupVisible() {
		t.Error("expected the popup to stay up with the answer")
	}
	if m.chat.Answer() != "Because of the color rule." {
		t.Errorf("answer = %q", m.chat.Answer())
	}
	if m.chat.AnswerIsError() {
		t.Error("a successful answer must not be marked as an error")
	}
}

func TestChatResult_FailureShowsErrorAnswer(t *testing.T) {
	m := testModelWithSize(testConfig(), 120, 40)
	m = focusChat(m)
	m = typeText(m, "hello?")
	m = sendKey(m, "enter")

	m = resolveChat(m, "", errors.CollaboratorFailed("gemini", fmt.Errorf("boom")))

	if !m.chat.AnswerIsError() {
		t.Error("expected the answer to be marked as an error")
	}
	if !strings.HasPrefix(m.chat.Answer(), workflow.ErrorAnswerPrefix) {
		t.Errorf("answer = %q, want the %q prefix", m.chat.Answer(), workflow.ErrorAnswerPrefix)
	}
	if !m.chat.PopupVisible() {
		t.Error("the popup shows errored answers too")
	}
}

func TestNormalizeHelpDisplayKey(t *testing.T) {
	tests := []struct {
		displayKey string
		want       string
	}{
		{"Tab", "tab"},
		{"ctrl-r", "ctrl+r"},
		{"ctrl-p", "ctrl+p"},
		{"ctrl-f", "ctrl+f"},
		{"ctrl-s", "ctrl+s"},
		{"ctrl-h", "ctrl+h"},
		{"ctrl-c", ""},
		{"Enter", ""},
		{"Esc", ""},
		{"Mouse drag", ""},
		{"Mouse hover", ""},
		{"↑/↓ or j/k", ""},
		{"e", ""},
		{"h/c", ""},
	}

	for _, tt := range tests {
		if got := normalizeHelpDisplayKey(tt.displayKey); got != tt.want {
			t.Errorf("normalizeHelpDisplayKey(%q) = %q, want %q", tt.displayKey, got, tt.want)
		}
	}
}

func TestHelpShortcutTrigger_ExecutesRegistryEntry(t *testing.T) {
	m := testModelWithSize(testConfig(), 120, 40)

	result, _ := m.Update(modals.HelpShortcutTriggeredMsg{Key: "ctrl-s"})
	m = result.(*Model)

	if !m.modal.IsVisible() {
		t.Error("expected the settings modal to open from the help trigger")
	}
}

func TestHelpShortcutTrigger_DisplayOnlyIsNoOp(t *testing.T) {
	m := testModelWithSize(testConfig(), 120, 40)

	result, _ := m.Update(modals.HelpShortcutTriggeredMsg{Key: "Mouse hover"})
	m = result.(*Model)

	if m.modal.IsVisible() {
		t.Error("a display-only entry must not do anything")
	}
}

func TestTickMessages_AdvanceWithoutForking(t *testing.T) {
	m := testModelWithSize(testConfig(), 120, 40)
	m = startedCorrectionRequest(m)

	cmd, handled := m.handleTickMessages(ui.StopwatchTickMsg{})
	if !handled {
		t.Fatal("stopwatch ticks must be handled")
	}
	if cmd == nil {
		t.Error("expected a re-armed tick while the spinner runs")
	}
}

func TestTickMessages_NoRearmWhenIdle(t *testing.T) {
	m := testModelWithSize(testConfig(), 120, 40)

	cmd, handled := m.handleTickMessages(ui.StopwatchTickMsg{})
	if !handled {
		t.Fatal("stopwatch ticks must be handled even when idle")
	}
	if cmd != nil {
		t.Error("an idle model must not keep the tick chain alive")
	}
}

func TestClipboardError_LandsInActivityLog(t *testing.T) {
	m := testModelWithSize(testConfig(), 120, 40)

	result, _ := m.Update(ui.ClipboardErrorMsg{Error: fmt.Errorf("denied")})
	m = result.(*Model)

	entry, ok := m.activityLog.Newest()
	if !ok || !strings.Contains(entry.Message, "copy failed") {
		t.Errorf("expected a copy failure entry, got %q", entry.Message)
	}
	if !entry.IsError {
		t.Error("a clipboard failure should be an error entry")
	}
}
