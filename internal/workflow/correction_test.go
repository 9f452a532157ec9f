package workflow

import (
	"fmt"
	"strings"
	"testing"

	"github.com/tagmend/tagmend/internal/activity"
	"github.com/tagmend/tagmend/internal/correction"
	"github.com/tagmend/tagmend/internal/errors"
)

func newCorrectionWorkflow() (*Correction, *activity.Log) {
	log := activity.NewLog()
	return NewCorrection(log), log
}

func TestBegin_AcceptsNonEmptyBuffers(t *testing.T) {
	w, log := newCorrectionWorkflow()

	if !w.Begin("<p>hi</p>", "") {
		t.Fatal("Begin() = false with a non-empty HTML buffer")
	}
	if got := w.State(); got != StateRequesting {
		t.Errorf("State() = %s, want %s", got, StateRequesting)
	}
	if log.Len() != 1 {
		t.Errorf("log has %d entries after Begin, want 1", log.Len())
	}
}

func TestBegin_RejectsEmptyBuffers(t *testing.T) {
	tests := []struct {
		name string
		html string
		css  string
	}{
		{"both empty", "", ""},
		{"whitespace only", "  \n\t", "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, log := newCorrectionWorkflow()

			if w.Begin(tt.html, tt.css) {
				t.Fatal("Begin() = true with blank buffers")
			}
			if got := w.State(); got != StateEditing {
				t.Errorf("State() = %s, want %s", got, StateEditing)
			}
			if w.UserError() == "" {
				t.Error("UserError() is empty after a rejected Begin")
			}
			if log.Len() != 1 {
				t.Errorf("log has %d entries, want 1 rejection entry", log.Len())
			}
		})
	}
}

func TestBegin_DiscardedWhileRequesting(t *testing.T) {
	w, log := newCorrectionWorkflow()
	w.Begin("<p>hi</p>", "")
	before := log.Len()

	if w.Begin("<p>hi</p>", "") {
		t.Error("Begin() = true while a request is in flight")
	}
	if log.Len() != before {
		t.Error("discarded Begin still grew the activity log")
	}
	if got := w.State(); got != StateRequesting {
		t.Errorf("State() = %s, want %s", got, StateRequesting)
	}
}

func TestBegin_ClearsPreviousError(t *testing.T) {
	w, _ := newCorrectionWorkflow()
	w.Begin("", "")
	if w.UserError() == "" {
		t.Fatal("expected a user error after rejected Begin")
	}

	w.Begin("<p>hi</p>", "")

	if got := w.UserError(); got != "" {
		t.Errorf("UserError() = %q after accepted Begin, want empty", got)
	}
}

func TestResolve_SuccessEntersReviewing(t *testing.T) {
	w, log := newCorrectionWorkflow()
	w.Begin("<p>hi</p>", "")

	set := &correction.Set{
		HTML: []correction.Correction{
			{LineNumber: 1, Original: "<p>hi</p>", Corrected: "<p>Hi</p>", IsError: true, Explanation: "Capitalize"},
		},
		CSS: []correction.Correction{},
	}
	w.Resolve(set, nil)

	if got := w.State(); got != StateReviewing {
		t.Errorf("State() = %s, want %s", got, StateReviewing)
	}
	if w.Set() != set {
		t.Error("Set() did not return the resolved correction set")
	}

	entry, _ := log.Newest()
	if !strings.Contains(entry.Message, "1 issue(s)") {
		t.Errorf("success entry = %q, want issue count in it", entry.Message)
	}
}

func TestResolve_FailureReturnsToEditing(t *testing.T) {
	w, log := newCorrectionWorkflow()
	w.Begin("<p>hi</p>", "")

	collabErr := errors.CollaboratorFailed("gemini", fmt.Errorf("connection refused"))
	w.Resolve(nil, collabErr)

	if got := w.State(); got != StateEditing {
		t.Errorf("State() = %s, want %s", got, StateEditing)
	}
	if w.Set() != nil {
		t.Error("Set() retained a set from a failed request")
	}
	if w.UserError() == "" {
		t.Error("UserError() is empty after a failed request")
	}

	entry, _ := log.Newest()
	if !strings.Contains(entry.Message, "correction failed") {
		t.Errorf("failure entry = %q, want a failure message", entry.Message)
	}
}

func TestResolve_StrayResultIgnored(t *testing.T) {
	w, log := newCorrectionWorkflow()
	before := log.Len()

	w.Resolve(&correction.Set{}, nil)

	if got := w.State(); got != StateEditing {
		t.Errorf("State() = %s after stray Resolve, want %s", got, StateEditing)
	}
	if w.Set() != nil {
		t.Error("stray Resolve stored a set")
	}
	if log.Len() != before {
		t.Error("stray Resolve grew the activity log")
	}
}

func TestAccept_ReducesSetIntoBuffers(t *testing.T) {
	w, _ := newCorrectionWorkflow()
	w.Begin("<p>hi</p>", "")
	w.Resolve(&correction.Set{
		HTML: []correction.Correction{
			{LineNumber: 1, Original: "<p>hi</p>", Corrected: "<p>Hi</p>", IsError: true, Explanation: "Capitalize"},
		},
		CSS: []correction.Correction{},
	}, nil)

	html, css, ok := w.Accept()
	if !ok {
		t.Fatal("Accept() = false in Reviewing")
	}
	if html != "<p>Hi</p>" {
		t.Errorf("Accept() html = %q, want %q", html, "<p>Hi</p>")
	}
	if css != "" {
		t.Errorf("Accept() css = %q, want empty", css)
	}
	if got := w.State(); got != StateEditing {
		t.Errorf("State() = %s after Accept, want %s", got, StateEditing)
	}
	if w.Set() != nil {
		t.Error("Set() retained after Accept")
	}
}

func TestAccept_OutsideReviewing(t *testing.T) {
	w, _ := newCorrectionWorkflow()

	if _, _, ok := w.Accept(); ok {
		t.Error("Accept() = true in Editing")
	}

	w.Begin("<p>hi</p>", "")
	if _, _, ok := w.Accept(); ok {
		t.Error("Accept() = true in Requesting")
	}
}

func TestEditAgain_DiscardsSet(t *testing.T) {
	w, _ := newCorrectionWorkflow()
	w.Begin("<p>hi</p>", "")
	w.Resolve(&correction.Set{HTML: []correction.Correction{}, CSS: []correction.Correction{}}, nil)

	w.EditAgain()

	if got := w.State(); got != StateEditing {
		t.Errorf("State() = %s after EditAgain, want %s", got, StateEditing)
	}
	if w.Set() != nil {
		t.Error("Set() retained after EditAgain")
	}
}

func TestClearUserError(t *testing.T) {
	w, _ := newCorrectionWorkflow()
	w.Begin("", "")

	w.ClearUserError()

	if got := w.UserError(); got != "" {
		t.Errorf("UserError() = %q after ClearUserError, want empty", got)
	}
}

func TestCorrectionState_String(t *testing.T) {
	tests := []struct {
		state CorrectionState
		want  string
	}{
		{StateEditing, "editing"},
		{StateRequesting, "requesting"},
		{StateReviewing, "reviewing"},
		{CorrectionState(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("CorrectionState(%d).String() = %q, want %q", tt.state, got, tt.want)
		}
	}
}
