// Package errors provides structured error types for the tagmend application.
// These errors provide context about what operation failed and where.
package errors

import (
	"errors"
	"fmt"
)

// Op describes an operation, usually as "package.function".
type Op string

// Kind categorizes the type of error.
type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindConfig
	KindCollaborator
	KindUnexpectedResponse
	KindIO
	KindClipboard
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation error"
	case KindConfig:
		return "configuration error"
	case KindCollaborator:
		return "collaborator error"
	case KindUnexpectedResponse:
		return "unexpected response"
	case KindIO:
		return "I/O error"
	case KindClipboard:
		return "clipboard error"
	default:
		return "unknown error"
	}
}

// Error is the structured error type for tagmend.
type Error struct {
	Op      Op     // Operation that failed
	Kind    Kind   // Category of error
	Err     error  // Underlying error
	Context string // Additional context
}

// Error returns the error message.
func (e *Error) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s: %s: %s", e.Op, e.Context, e.Err)
	}
	if e.Op != "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// E creates a new Error. Arguments can be:
// - Op: the operation name
// - Kind: the error kind
// - string: context message
// - error: the underlying error
func E(args ...interface{}) error {
	e := &Error{}
	for _, arg := range args {
		switch a := arg.(type) {
		case Op:
			e.Op = a
		case Kind:
			e.Kind = a
		case string:
			e.Context = a
		case error:
			e.Err = a
		}
	}
	if e.Err == nil {
		e.Err = errors.New(e.Context)
		e.Context = ""
	}
	return e
}

// Is reports whether err is of the given Kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// GetKind returns the Kind of an error.
func GetKind(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// UserMessage returns the part of an error suitable for display in the UI:
// the context when present, otherwise the underlying message. Collaborator
// failures pass their message through verbatim.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		if e.Context != "" {
			return e.Context
		}
		if e.Err != nil {
			return e.Err.Error()
		}
		return e.Kind.String()
	}
	return err.Error()
}

// Validation errors
func EmptyBuffers() error {
	return E(Op("workflow.Begin"), KindValidation, "nothing to correct: both the HTML and CSS panes are empty")
}

func EmptyQuestion() error {
	return E(Op("workflow.Submit"), KindValidation, "question is empty")
}

// Config errors
func ConfigLoadFailed(path string, err error) error {
	return E(Op("config.Load"), KindConfig, fmt.Sprintf("failed to load config from %s", path), err)
}

func ConfigSaveFailed(path string, err error) error {
	return E(Op("config.Save"), KindConfig, fmt.Sprintf("failed to save config to %s", path), err)
}

func ConfigInvalid(reason string) error {
	return E(Op("config.Validate"), KindConfig, reason)
}

func MissingAPIKey(provider string) error {
	return E(Op("collab.New"), KindConfig, fmt.Sprintf("no API key for %s (set TAGMEND_API_KEY or add it in settings)", provider))
}

// Collaborator errors
func CollaboratorFailed(provider string, err error) error {
	return E(Op(provider+".request"), KindCollaborator, err)
}

func UnexpectedResponse(provider, reason string) error {
	return E(Op("collab.Parse"), KindUnexpectedResponse, fmt.Sprintf("%s returned an unexpected response: %s", provider, reason))
}
