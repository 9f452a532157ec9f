package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/tagmend/tagmend/internal/collab"
	"github.com/tagmend/tagmend/internal/config"
	"github.com/tagmend/tagmend/internal/keys"
	"github.com/tagmend/tagmend/internal/logger"
	"github.com/tagmend/tagmend/internal/ui"
	"github.com/tagmend/tagmend/internal/ui/modals"
)

// handleModalKey routes modal key events to the appropriate handler based on
// modal state type.
func (m *Model) handleModalKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch s := m.modal.State.(type) {
	case *modals.SettingsState:
		return m.handleSettingsModal(key, msg, s)
	case *modals.HelpState:
		return m.handleHelpModal(key, msg, s)
	}

	// Unknown modal type: escape closes, everything else is forwarded
	if key == keys.Escape {
		m.modal.Hide()
		return m, nil
	}
	modal, cmd := m.modal.Update(msg)
	m.modal = modal
	return m, cmd
}

// handleSettingsModal handles key events for the Settings modal.
func (m *Model) handleSettingsModal(key string, msg tea.KeyPressMsg, state *modals.SettingsState) (tea.Model, tea.Cmd) {
	switch key {
	case keys.Escape:
		m.modal.Hide()
		return m, nil
	case keys.Enter:
		// Save all settings
		m.config.SetProvider(state.GetProvider())
		m.config.SetModel(state.GetModel())
		m.config.SetAPIKey(state.GetAPIKey())
		m.config.SetNotificationsEnabled(state.GetNotificationsEnabled())
		// Apply theme if changed
		if state.ThemeChanged() {
			selectedTheme := state.GetSelectedTheme()
			ui.SetThemeByName(selectedTheme)
			m.config.SetTheme(selectedTheme)
		}
		if err := m.config.Save(); err != nil {
			logger.Error("App: failed to save settings: %v", err)
			m.modal.SetError("Failed to save: " + err.Error())
			return m, nil
		}
		m.modal.Hide()
		return m, m.rebuildClient()
	}
	// Forward other keys to the modal for the form
	modal, cmd := m.modal.Update(msg)
	m.modal = modal
	return m, cmd
}

// rebuildClient swaps the collaborator client after a settings change. A
// broken config keeps the old client so in-flight work still lands.
func (m *Model) rebuildClient() tea.Cmd {
	client, err := collab.New(m.config)
	if err != nil {
		m.activityLog.RecordError("settings: " + err.Error())
		logger.Error("App: collaborator rebuild failed: %v", err)
		return nil
	}
	m.client = client
	m.header.SetCollaborator(client.Name(), m.config.GetModel())
	m.activityLog.Recordf("collaborator set to %s", client.Name())
	return nil
}

// handleHelpModal handles key events for the Help modal.
func (m *Model) handleHelpModal(key string, msg tea.KeyPressMsg, state *modals.HelpState) (tea.Model, tea.Cmd) {
	// While filtering, forward all keys to the list (Esc cancels filter,
	// Enter applies)
	if state.IsFiltering() {
		modal, cmd := m.modal.Update(msg)
		m.modal = modal
		return m, cmd
	}

	switch key {
	case keys.Escape, "q":
		m.modal.Hide()
		return m, nil
	case keys.Enter:
		// Trigger the selected shortcut
		shortcut := state.GetSelectedShortcut()
		if shortcut != nil {
			m.modal.Hide()
			return m, func() tea.Msg {
				return modals.HelpShortcutTriggeredMsg{Key: shortcut.Key}
			}
		}
		return m, nil
	}
	// Forward navigation keys to the modal
	modal, cmd := m.modal.Update(msg)
	m.modal = modal
	return m, cmd
}

// newSettingsModalState builds the settings form seeded from the config.
func newSettingsModalState(cfg *config.Config) *modals.SettingsState {
	providers := []string{config.ProviderGemini, config.ProviderAnthropic}
	providerDisplayNames := []string{"Gemini", "Anthropic"}

	names := ui.ThemeNames()
	themes := make([]string, len(names))
	themeDisplayNames := make([]string, len(names))
	for i, n := range names {
		themes[i] = string(n)
		themeDisplayNames[i] = ui.GetTheme(n).Name
	}

	return modals.NewSettingsState(
		providers, providerDisplayNames, cfg.GetProvider(),
		cfg.GetStoredModel(), cfg.GetStoredAPIKey(),
		themes, themeDisplayNames, string(ui.CurrentThemeName()),
		cfg.GetNotificationsEnabled(),
	)
}
