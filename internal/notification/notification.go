// Package notification provides cross-platform desktop notifications.
// It uses the beeep library to send notifications on macOS, Linux, and Windows.
package notification

import (
	"fmt"

	"github.com/gen2brain/beeep"

	"github.com/tagmend/tagmend/internal/logger"
)

// notifyFunc delivers a single desktop notification. The icon may be a
// filesystem path or raw image bytes, matching beeep's contract.
type notifyFunc func(title, message string, icon any) error

// notifier is swappable so tests can capture notifications instead of
// sending them.
var notifier notifyFunc = beeep.Notify

// SetNotifier replaces the notification delivery function.
func SetNotifier(fn notifyFunc) {
	notifier = fn
}

// ResetNotifier restores the default beeep-backed delivery function.
func ResetNotifier() {
	notifier = beeep.Notify
}

// Send sends a desktop notification with the given title and message.
// On macOS, it uses terminal-notifier or AppleScript.
// On Linux, it uses D-Bus or notify-send.
// On Windows, it uses the Windows Runtime COM API.
func Send(title, message string) error {
	logger.Log("Notification: Sending notification - title=%q, message=%q", title, message)
	// Use empty string for icon - beeep handles platform defaults
	err := notifier(title, message, "")
	if err != nil {
		logger.Log("Notification: Failed to send notification: %v", err)
	}
	return err
}

// CorrectionsReady sends a notification that a correction review is ready.
func CorrectionsReady(issues int) error {
	if issues == 0 {
		return Send("Tagmend", "review ready: no issues found")
	}
	return Send("Tagmend", fmt.Sprintf("review ready: %d issue(s) found", issues))
}

// AnswerReady sends a notification that a chat answer has arrived.
func AnswerReady() error {
	return Send("Tagmend", "answer ready")
}
