// Package workflow holds the two request state machines behind the editor:
// the correction review cycle and the chat question cycle. Each is a plain
// synchronous FSM; the composition root calls Begin/Submit before issuing the
// collaborator command and Resolve with the command's result, so every
// transition happens on the update loop.
package workflow

import (
	"strings"

	"github.com/tagmend/tagmend/internal/activity"
	"github.com/tagmend/tagmend/internal/correction"
	"github.com/tagmend/tagmend/internal/errors"
	"github.com/tagmend/tagmend/internal/logger"
)

// CorrectionState is the phase of the correction review cycle.
type CorrectionState int

const (
	// StateEditing means the user owns the buffers and may request a review.
	StateEditing CorrectionState = iota
	// StateRequesting means a correction request is in flight.
	StateRequesting
	// StateReviewing means a correction set is on screen awaiting a verdict.
	StateReviewing
)

// String returns a human-readable state name for logging
func (s CorrectionState) String() string {
	switch s {
	case StateEditing:
		return "editing"
	case StateRequesting:
		return "requesting"
	case StateReviewing:
		return "reviewing"
	default:
		return "unknown"
	}
}

// Correction drives Editing -> Requesting -> {Reviewing | Editing} for one
// pair of code buffers. It never touches the network itself: Begin reports
// whether the caller may issue the collaborator command, and Resolve is the
// single completion entry point for that command's result.
type Correction struct {
	state     CorrectionState
	set       *correction.Set
	userError string
	log       *activity.Log
}

// NewCorrection returns an idle workflow recording its transitions to log.
func NewCorrection(log *activity.Log) *Correction {
	return &Correction{state: StateEditing, log: log}
}

func (w *Correction) setState(next CorrectionState) {
	if w.state != next {
		logger.Log("Workflow: correction %s -> %s", w.state, next)
	}
	w.state = next
}

// Begin validates the buffers and arms a request. It returns true when the
// caller should issue the collaborator command. With both buffers blank it
// records the rejection and stores a user-visible message instead; while a
// request is already in flight the call is discarded outright.
func (w *Correction) Begin(html, css string) bool {
	if w.state == StateRequesting {
		logger.Log("Workflow: correction request discarded, one already in flight")
		return false
	}

	if strings.TrimSpace(html) == "" && strings.TrimSpace(css) == "" {
		err := errors.EmptyBuffers()
		w.userError = errors.UserMessage(err)
		w.log.RecordError("correction rejected: " + w.userError)
		logger.Log("Workflow: correction rejected: %v", err)
		return false
	}

	w.userError = ""
	w.set = nil
	w.setState(StateRequesting)
	w.log.Record("corrections requested")
	return true
}

// Resolve completes the in-flight request, success or failure. It always
// leaves the Requesting state so a stuck spinner is impossible. Failure
// surfaces the collaborator's message verbatim and returns to Editing.
func (w *Correction) Resolve(set *correction.Set, err error) {
	if w.state != StateRequesting {
		logger.Log("Workflow: stray correction result ignored in state %s", w.state)
		return
	}

	if err != nil {
		w.userError = errors.UserMessage(err)
		w.log.RecordError("correction failed: " + w.userError)
		logger.Log("Workflow: correction failed: %v", err)
		w.setState(StateEditing)
		return
	}

	w.set = set
	w.setState(StateReviewing)
	w.log.Recordf("corrections ready: %d issue(s) found", set.TotalIssues())
}

// Accept reduces the reviewed set into replacement buffer texts and ends the
// review. The second return is false outside Reviewing, in which case the
// texts are meaningless and the buffers must not be touched.
func (w *Correction) Accept() (html, css string, ok bool) {
	if w.state != StateReviewing || w.set == nil {
		return "", "", false
	}

	html, css = w.set.Apply()
	w.set = nil
	w.setState(StateEditing)
	w.log.Record("corrections accepted")
	return html, css, true
}

// EditAgain discards the reviewed set without touching the buffers.
func (w *Correction) EditAgain() {
	if w.state != StateReviewing {
		return
	}

	w.set = nil
	w.setState(StateEditing)
	w.log.Record("corrections discarded")
}

// State returns the current phase.
func (w *Correction) State() CorrectionState {
	return w.state
}

// Set returns the correction set under review, or nil outside Reviewing.
func (w *Correction) Set() *correction.Set {
	return w.set
}

// UserError returns the user-visible message from the last rejected or
// failed request, or the empty string.
func (w *Correction) UserError() string {
	return w.userError
}

// ClearUserError drops the user-visible error message.
func (w *Correction) ClearUserError() {
	w.userError = ""
}
