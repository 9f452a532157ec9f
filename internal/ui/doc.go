// Package ui provides the user interface components for the Tagmend TUI.
//
// # Overview
//
// The ui package implements the visual components of Tagmend using the Bubble Tea
// framework and Lipgloss styling library. It follows the Model-Update-View pattern
// established by Bubble Tea.
//
// # Layout System
//
// The layout is organized as follows:
//
//	┌───────────────────────────────────────────────────────┐
//	│ Header (1 line)                                       │
//	├──────────────────────┬──────────────────────┬───┬─────┤
//	│                      │                      │   │     │
//	│   HTML editor        │      CSS editor      │ P │  L  │
//	│   (split %)          │      (remainder)     │   │     │
//	│                      │                      │   │     │
//	├──────────────────────┴──────────────────────┴───┴─────┤
//	│ Chat bar (input + hint, 4 lines)                      │
//	├───────────────────────────────────────────────────────┤
//	│ Footer (1 line)                                       │
//	└───────────────────────────────────────────────────────┘
//
// P and L are the preview and activity log side panels. Collapsed they are
// three-cell strips with a vertical label; hovered or pinned they expand to
// a third of the terminal width. The review overlay and the chat popup
// replace or cover the content area when active.
//
// # Components
//
// ViewContext: Singleton that manages centralized layout calculations.
// All size calculations should go through ViewContext to ensure consistency.
//
// Header: Displays the application title, version, and the configured
// provider/model. Uses a gradient background with the primary color.
//
// Footer: Shows context-aware keyboard shortcuts. The displayed shortcuts
// change based on focus state, review mode, and in-flight requests.
//
// Editors: The two code textareas joined by a draggable divider column.
// Each pane shows a title with a live line count.
//
// Review: The correction review overlay. Renders one file at a time as an
// inline diff (original line, corrected line, explanation) with a nav bar
// for switching files.
//
// Popup: The chat answer overlay. Shows a spinner while a question is
// pending, then the rendered markdown answer with mouse text selection.
//
// PreviewPanel and LogPanel: The two side panels, each with a collapsed
// strip form and an expanded viewport form.
//
// ChatBar: The single-line question input under the editors with a status
// or hint line.
//
// Modal: Popup dialogs built on the modals package:
//   - SettingsState: Provider, model, API key, theme, notifications
//   - HelpState: Keyboard shortcut reference
//
// # Focus System
//
// Focus cycles through the HTML editor, the CSS editor, and the chat bar
// with Tab. Keyboard input goes to the focused component; global shortcuts
// (ctrl+r, ctrl+p, ctrl+f, ctrl+s, ctrl+h, ctrl+c) work from any focus.
// The review overlay and modals capture keys while visible.
//
// # Constants
//
// Layout constants are defined in constants.go:
//   - HeaderHeight, FooterHeight: Fixed at 1 line each
//   - BorderSize: 2 (1 on each side)
//   - SidePanelWidthRatio: 3 (an expanded side panel gets 1/3 of width)
//   - StripWidth: 3 cells for a collapsed side panel
//   - ChatBarTotalHeight: 4 lines (input + border + hint)
//
// # Styles
//
// All styles are defined in styles.go using Lipgloss and regenerated by the
// active theme. The default palette uses:
//   - ColorPrimary (#7C3AED): Purple, used for highlights and focused elements
//   - ColorSecondary (#06B6D4): Cyan, used for hints and info
//   - ColorBg (#1F2937): Dark background
//   - ColorText (#F9FAFB): Light text
//   - ColorTextMuted (#B0B8C4): Muted text for secondary content
package ui
