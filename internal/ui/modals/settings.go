package modals

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	huh "charm.land/huh/v2"
	"charm.land/lipgloss/v2"
)

// =============================================================================
// SettingsState - State for the Settings modal
// =============================================================================

// ModelCharLimit caps the model ID input.
const ModelCharLimit = 64

// SettingsState edits the provider, model, API key, theme, and notification
// preference. All fields are bound to the huh form by pointer, so the form
// writes straight into this struct as the user types.
type SettingsState struct {
	// Bound form values
	selectedProvider     string
	selectedTheme        string
	OriginalTheme        string // To detect if theme changed
	modelID              string
	apiKey               string
	notificationsEnabled bool

	form *huh.Form

	// Size tracking
	availableWidth int
}

func (*SettingsState) modalState() {}

func (s *SettingsState) PreferredWidth() int { return ModalWidthWide }

// SetSize updates the available width for rendering content.
func (s *SettingsState) SetSize(width, height int) {
	s.availableWidth = width
	s.form.WithWidth(s.contentWidth())
}

func (s *SettingsState) contentWidth() int {
	if s.availableWidth > 0 {
		return s.availableWidth - 10
	}
	return ModalWidthWide - 10
}

func (s *SettingsState) Title() string { return "Settings" }

func (s *SettingsState) Help() string {
	return "Tab: next field  Enter: save  Esc: cancel"
}

func (s *SettingsState) Render() string {
	title := ModalTitleStyle.Render(s.Title())
	help := ModalHelpStyle.Render(s.Help())
	return lipgloss.JoinVertical(lipgloss.Left, title, s.form.View(), help)
}

func (s *SettingsState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	var cmd tea.Cmd
	s.form, cmd = huhFormUpdate(s.form, msg)
	return s, cmd
}

// GetProvider returns the selected provider key.
func (s *SettingsState) GetProvider() string {
	return s.selectedProvider
}

// GetModel returns the model ID, or empty string for the provider default.
func (s *SettingsState) GetModel() string {
	return strings.TrimSpace(s.modelID)
}

// GetAPIKey returns the entered API key.
func (s *SettingsState) GetAPIKey() string {
	return strings.TrimSpace(s.apiKey)
}

// GetSelectedTheme returns the selected theme key.
func (s *SettingsState) GetSelectedTheme() string {
	return s.selectedTheme
}

// ThemeChanged returns true if the selected theme differs from the original.
func (s *SettingsState) ThemeChanged() bool {
	return s.selectedTheme != s.OriginalTheme
}

// GetNotificationsEnabled returns whether notifications are enabled.
func (s *SettingsState) GetNotificationsEnabled() bool {
	return s.notificationsEnabled
}

// NewSettingsState creates a new SettingsState seeded with the current config
// values. Provider and theme option keys line up with their display names by
// index.
func NewSettingsState(providers []string, providerDisplayNames []string, currentProvider string,
	model, apiKey string,
	themes []string, themeDisplayNames []string, currentTheme string,
	notificationsEnabled bool) *SettingsState {

	s := &SettingsState{
		selectedProvider:     currentProvider,
		selectedTheme:        currentTheme,
		OriginalTheme:        currentTheme,
		modelID:              model,
		apiKey:               apiKey,
		notificationsEnabled: notificationsEnabled,
		availableWidth:       ModalWidthWide,
	}

	// Build provider options
	providerOptions := make([]huh.Option[string], len(providers))
	for i := range providers {
		providerOptions[i] = huh.NewOption(providerDisplayNames[i], providers[i])
	}

	// Build theme options
	themeOptions := make([]huh.Option[string], len(themes))
	for i := range themes {
		themeOptions[i] = huh.NewOption(themeDisplayNames[i], themes[i])
	}

	// Provider settings group
	providerGroup := huh.NewGroup(
		huh.NewSelect[string]().
			Title("Provider").
			Options(providerOptions...).
			Value(&s.selectedProvider),
		huh.NewInput().
			Title("Model").
			Description("Leave empty for the provider default").
			Placeholder("e.g., gemini-2.0-flash").
			CharLimit(ModelCharLimit).
			Value(&s.modelID),
		huh.NewInput().
			Title("API key").
			Description("The TAGMEND_API_KEY environment variable overrides this").
			EchoMode(huh.EchoModePassword).
			CharLimit(ModalInputCharLimit).
			Value(&s.apiKey),
	)

	// Appearance settings group
	appearanceGroup := huh.NewGroup(
		huh.NewSelect[string]().
			Title("Theme").
			Options(themeOptions...).
			Value(&s.selectedTheme),
		huh.NewConfirm().
			Title("Desktop notifications").
			Affirmative("On").
			Negative("Off").
			Value(&s.notificationsEnabled),
	)

	s.form = huh.NewForm(providerGroup, appearanceGroup).
		WithTheme(ModalTheme()).
		WithShowHelp(false).
		WithWidth(s.contentWidth()).
		WithLayout(huh.LayoutStack)

	initHuhForm(s.form)
	return s
}
