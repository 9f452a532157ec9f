//go:build !darwin || (darwin && !cgo)

// Package clipboard provides text writing to the system clipboard.
package clipboard

import (
	"fmt"

	"golang.design/x/clipboard"

	"github.com/tagmend/tagmend/internal/logger"
)

// initialized tracks whether the clipboard has been initialized
var initialized bool

// initClipboard initializes the clipboard library on first use.
// This is safe to call multiple times.
func initClipboard() error {
	if initialized {
		return nil
	}

	if err := clipboard.Init(); err != nil {
		logger.Log("Clipboard: Failed to initialize: %v", err)
		return fmt.Errorf("failed to initialize clipboard: %w", err)
	}

	initialized = true
	logger.Log("Clipboard: Initialized successfully")
	return nil
}

// WriteText writes text to the clipboard.
// On Linux/Windows, this uses the golang.design/x/clipboard library.
func WriteText(text string) error {
	if err := initClipboard(); err != nil {
		return err
	}

	clipboard.Write(clipboard.FmtText, []byte(text))
	logger.Log("Clipboard: Wrote %d bytes of text", len(text))
	return nil
}
