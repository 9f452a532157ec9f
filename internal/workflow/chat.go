package workflow

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/tagmend/tagmend/internal/activity"
	"github.com/tagmend/tagmend/internal/errors"
	"github.com/tagmend/tagmend/internal/logger"
)

// ErrorAnswerPrefix marks an errored answer apart from collaborator text.
const ErrorAnswerPrefix = "Error: "

// ChatState is the phase of the chat question cycle.
type ChatState int

const (
	// ChatIdle means no question is outstanding.
	ChatIdle ChatState = iota
	// ChatPending means a question is in flight.
	ChatPending
)

// String returns a human-readable state name for logging
func (s ChatState) String() string {
	switch s {
	case ChatIdle:
		return "idle"
	case ChatPending:
		return "pending"
	default:
		return "unknown"
	}
}

// Chat drives the one-shot question/answer exchange. It runs independently
// of the correction workflow: one may be pending while the other completes.
type Chat struct {
	state         ChatState
	answer        string
	answerIsError bool
	popupVisible  bool
	log           *activity.Log
}

// NewChat returns an idle workflow recording its transitions to log.
func NewChat(log *activity.Log) *Chat {
	return &Chat{state: ChatIdle, log: log}
}

func (w *Chat) setState(next ChatState) {
	if w.state != next {
		logger.Log("Workflow: chat %s -> %s", w.state, next)
	}
	w.state = next
}

// Submit accepts a question and arms a request. It returns true when the
// caller should issue the collaborator command and clear the input box. A
// blank question or an already-pending request is a no-op.
func (w *Chat) Submit(question string) bool {
	if w.state == ChatPending {
		logger.Log("Workflow: chat question discarded, one already pending")
		return false
	}
	if strings.TrimSpace(question) == "" {
		return false
	}

	w.answer = ""
	w.answerIsError = false
	w.popupVisible = true
	w.setState(ChatPending)
	w.log.Record("question sent: " + truncateQuestion(question))
	return true
}

// Resolve completes the pending question. Failure stores a prefixed
// user-visible string in place of the answer; either way the workflow
// returns to Idle.
func (w *Chat) Resolve(answer string, err error) {
	if w.state != ChatPending {
		logger.Log("Workflow: stray chat result ignored in state %s", w.state)
		return
	}

	if err != nil {
		w.answer = ErrorAnswerPrefix + errors.UserMessage(err)
		w.answerIsError = true
		w.log.RecordError("question failed: " + errors.UserMessage(err))
		logger.Log("Workflow: chat failed: %v", err)
	} else {
		w.answer = answer
		w.answerIsError = false
		w.log.Record("answer received")
	}
	w.setState(ChatIdle)
}

// Dismiss hides the popup. The stored answer is retained; the popup only
// reappears on the next accepted Submit.
func (w *Chat) Dismiss() {
	w.popupVisible = false
}

// State returns the current phase.
func (w *Chat) State() ChatState {
	return w.state
}

// Answer returns the stored answer text, which may be an errored answer.
func (w *Chat) Answer() string {
	return w.answer
}

// AnswerIsError reports whether the stored answer is an error message.
func (w *Chat) AnswerIsError() bool {
	return w.answerIsError
}

// PopupVisible reports whether the answer popup should be on screen.
func (w *Chat) PopupVisible() bool {
	return w.popupVisible
}

// truncateQuestion keeps activity entries one line no matter how long the
// question was.
func truncateQuestion(q string) string {
	q = strings.TrimSpace(q)
	if i := strings.IndexByte(q, '\n'); i >= 0 {
		q = q[:i]
	}
	return runewidth.Truncate(q, 60, "…")
}
