// Package ui provides constants for layout calculations and configuration.
package ui

// Layout constants for panel sizing
const (
	// HeaderHeight is the height of the header in lines
	HeaderHeight = 1

	// FooterHeight is the height of the footer in lines
	FooterHeight = 1

	// BorderSize is the total border width (1 on each side)
	BorderSize = 2

	// DividerWidth is the width of the draggable column between the editors
	DividerWidth = 1

	// StripWidth is the width of a collapsed side panel strip
	StripWidth = 3

	// SidePanelWidthRatio is the denominator for an expanded side panel's
	// width (1/3 of total width)
	SidePanelWidthRatio = 3

	// ChatInputHeight is the number of lines for the chat bar textarea
	ChatInputHeight = 1

	// ChatInputBorderHeight is the border size around the chat bar textarea
	ChatInputBorderHeight = 2

	// ChatHintHeight is the hint line under the chat bar
	ChatHintHeight = 1

	// ChatBarTotalHeight is the total height of the chat bar (textarea +
	// borders + hint)
	ChatBarTotalHeight = ChatInputHeight + ChatInputBorderHeight + ChatHintHeight

	// InputPaddingWidth is the horizontal padding inside the chat bar (Padding(0, 1) = 1 left + 1 right)
	InputPaddingWidth = 2

	// TitleHeight is the height of panel titles
	TitleHeight = 1

	// DefaultWrapWidth is the default width for text wrapping when viewport width is unknown
	DefaultWrapWidth = 80
)

// Minimum usable terminal dimensions. Anything smaller is clamped so the
// layout math cannot go negative.
const (
	MinTerminalWidth  = 40
	MinTerminalHeight = 12
)

// Popup dimensions
const (
	// PopupWidthRatio is the numerator/denominator pair giving the chat
	// popup 2/3 of the terminal width
	PopupWidthNum = 2
	PopupWidthDen = 3

	// PopupMaxWidth caps the chat popup width on wide terminals
	PopupMaxWidth = 100

	// PopupHeightRatio is the denominator for popup height (2/3 of total height)
	PopupHeightNum = 2
	PopupHeightDen = 3
)

// Modal dimensions
const (
	// ModalWidth is the default width of modals
	ModalWidth = 60

	// ModalWidthWide is the width of modals that need extra room, such as the
	// settings form
	ModalWidthWide = 96

	// ModalInputCharLimit is the character limit for modal text inputs
	ModalInputCharLimit = 256

	// ModalInputWidth is the width of modal text inputs
	ModalInputWidth = 50

	// HelpModalMaxVisible is the number of rows visible in the help modal list
	HelpModalMaxVisible = 14
)
