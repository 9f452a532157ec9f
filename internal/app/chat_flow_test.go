package app

import (
	"testing"

	"github.com/tagmend/tagmend/internal/keys"
	"github.com/tagmend/tagmend/internal/workflow"
)

func TestChatSubmit_SendsQuestionAndOpensPopup(t *testing.T) {
	m := testModelWithSize(testConfig(), 120, 40)
	m.editors.SetHTML("<p>red</p>")

	m = focusChat(m)
	m = typeText(m, "why red?")
	m = sendKey(m, keys.Enter)

	if m.chat.State() != workflow.ChatPending {
		t.Fatalf("chat state = %v, want pending", m.chat.State())
	}
	if !m.chat.PopupVisible() {
		t.Error("expected the popup immediately, in its waiting state")
	}
	if m.chatBar.Question() != "" {
		t.Errorf("chat bar = %q, want cleared after submit", m.chatBar.Question())
	}
	if !m.popup.Pending() {
		t.Error("expected the popup spinner to be running")
	}
}

func TestChatSubmit_BlankQuestionIsNoOp(t *testing.T) {
	m := testModelWithSize(testConfig(), 120, 40)

	m = focusChat(m)
	m = typeText(m, "   ")
	m = sendKey(m, keys.Enter)

	if m.chat.State() != workflow.ChatIdle {
		t.Errorf("chat state = %v, want idle for a blank question", m.chat.State())
	}
	if m.chat.PopupVisible() {
		t.Error("a blank question must not open the popup")
	}
}

func TestChatSubmit_BarLockedWhilePending(t *testing.T) {
	m := testModelWithSize(testConfig(), 120, 40)

	m = focusChat(m)
	m = typeText(m, "first")
	m = sendKey(m, keys.Enter)

	// Dismiss the waiting popup so the chat bar is reachable again
	m = sendKey(m, keys.Escape)

	m = typeText(m, "second")
	m = sendKey(m, keys.Enter)

	if m.chat.State() != workflow.ChatPending {
		t.Fatalf("chat state = %v, want still pending", m.chat.State())
	}
	// The bar refuses input until the in-flight question resolves
	if got := m.chatBar.Question(); got != "" {
		t.Errorf("chat bar = %q, want input locked while pending", got)
	}

	m = resolveChat(m, "done", nil)
	m = typeText(m, "second")

	if got := m.chatBar.Question(); got != "second" {
		t.Errorf("chat bar = %q, want input unlocked after the answer", got)
	}
}

func TestChatSubmit_CommandCarriesQuestionAndBuffers(t *testing.T) {
	m := testModelWithSize(testConfig(), 120, 40)
	m.editors.SetHTML("<p>x</p>")
	m.editors.SetCSS("p{}")

	cmd := m.askQuestion(m.editors.HTML(), m.editors.CSS(), "what is p?")
	msg := cmd()

	if _, ok := msg.(chatResultMsg); !ok {
		t.Fatalf("command returned %T, want chatResultMsg", msg)
	}
	mock := m.client.(*mockClient)
	if mock.lastQuestion != "what is p?" {
		t.Errorf("question sent = %q", mock.lastQuestion)
	}
	if mock.lastHTML != "<p>x</p>" || mock.lastCSS != "p{}" {
		t.Errorf("buffers sent = (%q, %q)", mock.lastHTML, mock.lastCSS)
	}
}

func TestPopup_SwallowsTypedKeysWhileVisible(t *testing.T) {
	m := testModelWithSize(testConfig(), 120, 40)
	m.editors.SetHTML("<p>")

	m = focusChat(m)
	m = typeText(m, "q")
	m = sendKey(m, keys.Enter)
	m = resolveChat(m, "an answer", nil)

	// Typed characters while the popup covers the screen must not reach
	// the chat bar or the editors
	m = typeText(m, "zzz")

	if got := m.editors.HTML(); got != "<p>" {
		t.Errorf("HTML buffer = %q, popup must not leak keys", got)
	}
	if got := m.chatBar.Question(); got != "" {
		t.Errorf("chat bar = %q, popup must not leak keys", got)
	}
}

func TestPopup_EscapeDismisses(t *testing.T) {
	m := testModelWithSize(testConfig(), 120, 40)

	m = focusChat(m)
	m = typeText(m, "q")
	m = sendKey(m, keys.Enter)
	m = resolveChat(m, "an answer", nil)

	if !m.chat.PopupVisible() {
		t.Fatal("expected the popup up after the answer")
	}

	m = sendKey(m, keys.Escape)
	if m.chat.PopupVisible() {
		t.Error("expected escape to dismiss the popup")
	}

	// The answer is kept for the log; a new popup needs a new question
	if m.chat.Answer() != "an answer" {
		t.Errorf("answer = %q, want it retained after dismissal", m.chat.Answer())
	}
}

func TestPopup_DismissWhilePendingStaysHidden(t *testing.T) {
	m := testModelWithSize(testConfig(), 120, 40)

	m = focusChat(m)
	m = typeText(m, "q")
	m = sendKey(m, keys.Enter)

	// Dismiss before the answer lands
	m = sendKey(m, keys.Escape)
	if m.chat.PopupVisible() {
		t.Fatal("expected escape to hide the pending popup")
	}

	// The late answer resolves quietly; the popup stays hidden
	m = resolveChat(m, "late answer", nil)
	if m.chat.PopupVisible() {
		t.Error("a dismissed popup must not reappear when the answer lands")
	}
	if m.chat.State() != workflow.ChatIdle {
		t.Errorf("chat state = %v, want idle", m.chat.State())
	}
}

func TestPopup_ScrollKeysGoToPopup(t *testing.T) {
	m := testModelWithSize(testConfig(), 120, 40)
	m.editors.SetHTML("<p>")

	m = focusChat(m)
	m = typeText(m, "q")
	m = sendKey(m, keys.Enter)
	m = resolveChat(m, "an answer", nil)

	// Scroll keys are routed to the popup viewport, not the editors
	m = sendKey(m, keys.Down)
	m = sendKey(m, keys.PgDown)

	if got := m.editors.HTML(); got != "<p>" {
		t.Errorf("HTML buffer = %q, scroll keys must not reach the editors", got)
	}
	if !m.chat.PopupVisible() {
		t.Error("scrolling must not dismiss the popup")
	}
}
