package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/tagmend/tagmend/internal/logger"
	"github.com/tagmend/tagmend/internal/ui"
	"github.com/tagmend/tagmend/internal/ui/modals"
	"github.com/tagmend/tagmend/internal/workflow"
)

// Shortcut represents a keyboard shortcut with its metadata and handler.
// This is the single source of truth for all shortcuts in the application.
type Shortcut struct {
	Key         string                              // The key binding (e.g., "tab", "ctrl+r")
	DisplayKey  string                              // Display name in help (e.g., "Tab"); defaults to Key
	Description string                              // Human-readable description
	Category    string                              // Section for help modal grouping
	Handler     func(m *Model) (tea.Model, tea.Cmd) // Action to perform
	Condition   func(m *Model) bool                 // Optional extra condition
}

// Categories for organizing shortcuts in the help modal
const (
	CategoryNavigation    = "Navigation"
	CategoryCollaborator  = "Collaborator"
	CategoryPanels        = "Panels"
	CategoryConfiguration = "Configuration"
	CategoryReview        = "Review (when open)"
	CategoryGeneral       = "General"
)

// categoryOrder defines the display order of categories in the help modal
var categoryOrder = []string{
	CategoryNavigation,
	CategoryCollaborator,
	CategoryPanels,
	CategoryConfiguration,
	CategoryReview,
	CategoryGeneral,
}

// ShortcutRegistry is the central registry of all keyboard shortcuts.
// Add new shortcuts here and they will automatically appear in the help
// modal and be executable from both direct key presses and the help modal.
var ShortcutRegistry = []Shortcut{
	// Navigation
	{
		Key:         "tab",
		DisplayKey:  "Tab",
		Description: "Cycle focus: HTML, CSS, chat",
		Category:    CategoryNavigation,
		Handler:     shortcutToggleFocus,
	},

	// Collaborator
	{
		Key:         "ctrl+r",
		DisplayKey:  "ctrl-r",
		Description: "Request a correction review",
		Category:    CategoryCollaborator,
		Handler:     shortcutRequestCorrections,
		Condition:   func(m *Model) bool { return !m.Requesting() },
	},

	// Panels
	{
		Key:         "ctrl+p",
		DisplayKey:  "ctrl-p",
		Description: "Pin or unpin the preview panel",
		Category:    CategoryPanels,
		Handler:     shortcutTogglePreviewPin,
	},
	{
		Key:         "ctrl+f",
		DisplayKey:  "ctrl-f",
		Description: "Fullscreen preview",
		Category:    CategoryPanels,
		Handler:     shortcutToggleFullscreen,
	},

	// Configuration
	{
		Key:         "ctrl+s",
		DisplayKey:  "ctrl-s",
		Description: "Settings",
		Category:    CategoryConfiguration,
		Handler:     shortcutSettings,
	},
}

// helpShortcut is shown in help but handled specially in ExecuteShortcut.
// It references ShortcutRegistry, so it can't be in the registry itself.
var helpShortcut = Shortcut{
	Key:         "ctrl+h",
	DisplayKey:  "ctrl-h",
	Description: "Show this help",
	Category:    CategoryGeneral,
}

// DisplayOnlyShortcuts are shown in help but not executable from the help
// modal. These are context-sensitive or informational entries.
var DisplayOnlyShortcuts = []Shortcut{
	// Navigation (display-only)
	{DisplayKey: "Enter", Description: "Send the chat question (chat focused)", Category: CategoryNavigation},
	{DisplayKey: "Esc", Description: "Dismiss popup / clear error", Category: CategoryNavigation},
	{DisplayKey: "Mouse drag", Description: "Resize editors / select popup text", Category: CategoryNavigation},

	// Panels (display-only)
	{DisplayKey: "Mouse hover", Description: "Expand a side panel", Category: CategoryPanels},

	// Review (display-only, context-sensitive)
	{DisplayKey: "Enter", Description: "Accept the corrections", Category: CategoryReview},
	{DisplayKey: "e", Description: "Edit again without accepting", Category: CategoryReview},
	{DisplayKey: "h/c", Description: "Switch between HTML and CSS", Category: CategoryReview},
	{DisplayKey: "↑/↓ or j/k", Description: "Scroll the diff", Category: CategoryReview},
	{DisplayKey: "PgUp/PgDn", Description: "Page the diff", Category: CategoryReview},

	// General
	{DisplayKey: "ctrl-c", Description: "Quit", Category: CategoryGeneral},
}

// isShortcutApplicable checks if a shortcut is applicable given the current
// model state. This is used to filter which shortcuts appear in the help
// modal.
func (m *Model) isShortcutApplicable(s Shortcut) bool {
	if s.Condition != nil && !s.Condition(m) {
		return false
	}
	return true
}

// ExecuteShortcut finds and executes a shortcut by key.
// It checks the Condition guard before executing.
// Returns (model, cmd, true) if the shortcut was found and executed.
// Returns (model, nil, false) if the shortcut was not found or guards failed.
func (m *Model) ExecuteShortcut(key string) (tea.Model, tea.Cmd, bool) {
	// Handle help shortcut specially (defined outside registry to avoid
	// init cycle)
	if key == helpShortcut.Key {
		result, cmd := shortcutHelp(m)
		return result, cmd, true
	}

	for _, s := range ShortcutRegistry {
		if s.Key == key {
			if s.Condition != nil && !s.Condition(m) {
				logger.Log("Shortcut: Guard failed for key=%q", key)
				return m, nil, false // Guard failed, let key propagate
			}
			logger.Log("Shortcut: Executing handler for %q", key)
			result, cmd := s.Handler(m)
			return result, cmd, true
		}
	}
	return m, nil, false
}

// getApplicableHelpSections generates help modal sections from shortcuts
// that are applicable in the current application state.
func (m *Model) getApplicableHelpSections(registry []Shortcut, displayOnly []Shortcut) []modals.HelpSection {
	// Collect shortcuts by category
	categories := make(map[string][]modals.HelpShortcut)

	// Add executable shortcuts that are applicable
	for _, s := range registry {
		if !m.isShortcutApplicable(s) {
			continue
		}
		displayKey := s.DisplayKey
		if displayKey == "" {
			displayKey = s.Key
		}
		categories[s.Category] = append(categories[s.Category], modals.HelpShortcut{
			Key:  displayKey,
			Desc: s.Description,
		})
	}

	// Add display-only shortcuts; review entries only make sense while a
	// review is open
	for _, s := range displayOnly {
		if s.Category == CategoryReview && !m.review.Active() {
			continue
		}
		displayKey := s.DisplayKey
		if displayKey == "" {
			displayKey = s.Key
		}
		categories[s.Category] = append(categories[s.Category], modals.HelpShortcut{
			Key:  displayKey,
			Desc: s.Description,
		})
	}

	// Build sections in the correct order
	var sections []modals.HelpSection
	for _, cat := range categoryOrder {
		if shortcuts, ok := categories[cat]; ok && len(shortcuts) > 0 {
			sections = append(sections, modals.HelpSection{
				Title:     cat,
				Shortcuts: shortcuts,
			})
		}
	}

	return sections
}

// =============================================================================
// Shortcut Handlers
// =============================================================================

func shortcutToggleFocus(m *Model) (tea.Model, tea.Cmd) {
	m.toggleFocus()
	return m, nil
}

func shortcutRequestCorrections(m *Model) (tea.Model, tea.Cmd) {
	if !m.corrections.Begin(m.editors.HTML(), m.editors.CSS()) {
		return m, nil
	}

	m.corrSpinner.Start()
	cmds := []tea.Cmd{m.requestCorrections(m.editors.HTML(), m.editors.CSS())}
	// The popup spinner may already be driving the tick chain
	if m.chat.State() != workflow.ChatPending {
		cmds = append(cmds, ui.StopwatchTick())
	}
	return m, tea.Batch(cmds...)
}

func shortcutTogglePreviewPin(m *Model) (tea.Model, tea.Cmd) {
	m.previewExp.TogglePin()
	m.updateSizes()
	return m, nil
}

func shortcutToggleFullscreen(m *Model) (tea.Model, tea.Cmd) {
	m.previewExp.ToggleFullscreen()
	m.updateSizes()
	return m, nil
}

func shortcutSettings(m *Model) (tea.Model, tea.Cmd) {
	m.modal.Show(newSettingsModalState(m.config))
	return m, nil
}

func shortcutHelp(m *Model) (tea.Model, tea.Cmd) {
	// Include the help shortcut in the registry for display purposes
	allShortcuts := append(ShortcutRegistry, helpShortcut)
	sections := m.getApplicableHelpSections(allShortcuts, DisplayOnlyShortcuts)
	m.modal.Show(modals.NewHelpStateFromSections(sections))
	return m, nil
}
