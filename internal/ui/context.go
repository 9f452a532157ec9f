package ui

import (
	"sync"

	"github.com/tagmend/tagmend/internal/logger"
)

// ViewContext holds centralized layout calculations and provides debug logging.
// All size calculations should go through this to avoid duplication.
type ViewContext struct {
	// Terminal dimensions
	TerminalWidth  int
	TerminalHeight int

	// Calculated dimensions
	HeaderHeight   int
	FooterHeight   int
	ContentHeight  int
	SidePanelWidth int

	mu sync.Mutex
}

// Global view context instance
var ctx *ViewContext
var ctxOnce sync.Once

// GetViewContext returns the singleton ViewContext instance
func GetViewContext() *ViewContext {
	ctxOnce.Do(func() {
		ctx = &ViewContext{
			HeaderHeight: HeaderHeight,
			FooterHeight: FooterHeight,
		}
		logger.ComponentLogger("ui").Debug("ViewContext initialized")
	})
	return ctx
}

// Log writes a debug message to the log file.
func (v *ViewContext) Log(msg string, args ...interface{}) {
	logger.Log(msg, args...)
}

// UpdateTerminalSize recalculates all dimensions when terminal size changes.
// This method is thread-safe and should be called from the main event loop
// when the terminal is resized.
func (v *ViewContext) UpdateTerminalSize(width, height int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	// Validate dimensions to prevent negative layout values
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}
	if height < MinTerminalHeight {
		height = MinTerminalHeight
	}

	v.TerminalWidth = width
	v.TerminalHeight = height

	// Header and footer each take exactly 1 line of content
	// The styles add padding but lipgloss Width() handles the total
	v.HeaderHeight = HeaderHeight
	v.FooterHeight = FooterHeight

	// Content area is everything between the header and the chat bar
	v.ContentHeight = height - v.HeaderHeight - v.FooterHeight - ChatBarTotalHeight

	// Expanded side panels take 1/3 of the width
	v.SidePanelWidth = width / SidePanelWidthRatio

	log := logger.ComponentLogger("ui")
	log.Debug("Terminal size updated",
		"width", width,
		"height", height,
		"headerHeight", v.HeaderHeight,
		"footerHeight", v.FooterHeight,
		"contentHeight", v.ContentHeight,
		"sidePanelWidth", v.SidePanelWidth,
	)
}

// InnerWidth returns the usable width inside a panel with borders
func (v *ViewContext) InnerWidth(panelWidth int) int {
	return panelWidth - BorderSize
}

// InnerHeight returns the usable height inside a panel with borders
func (v *ViewContext) InnerHeight(panelHeight int) int {
	return panelHeight - BorderSize
}

// PopupSize returns the chat popup dimensions for the current terminal size.
func (v *ViewContext) PopupSize() (width, height int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	width = v.TerminalWidth * PopupWidthNum / PopupWidthDen
	if width > PopupMaxWidth {
		width = PopupMaxWidth
	}
	height = v.TerminalHeight * PopupHeightNum / PopupHeightDen
	return width, height
}
