// Package app is the composition root: one Bubble Tea model wiring the
// editors, side panels, chat bar, and overlays to the correction and chat
// workflows. All state transitions happen here on the update loop; the
// collaborator is only ever reached through commands built in
// app_commands.go.
package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/tagmend/tagmend/internal/activity"
	"github.com/tagmend/tagmend/internal/collab"
	"github.com/tagmend/tagmend/internal/config"
	"github.com/tagmend/tagmend/internal/correction"
	"github.com/tagmend/tagmend/internal/panel"
	"github.com/tagmend/tagmend/internal/ui"
	"github.com/tagmend/tagmend/internal/workflow"
)

// Focus represents which input target receives typed keys
type Focus int

const (
	FocusHTML Focus = iota
	FocusCSS
	FocusChat
)

// String returns a human-readable name for the focus target
func (f Focus) String() string {
	switch f {
	case FocusHTML:
		return "html"
	case FocusCSS:
		return "css"
	case FocusChat:
		return "chat"
	default:
		return "unknown"
	}
}

// Model is the main Bubble Tea model
type Model struct {
	config  *config.Config
	version string // App version (injected at build time)
	client  collab.Client

	header  *ui.Header
	footer  *ui.Footer
	editors *ui.Editors
	review  *ui.Review
	preview *ui.PreviewPanel
	logPane *ui.LogPanel
	popup   *ui.Popup
	chatBar *ui.ChatBar
	modal   *ui.Modal

	// Workflow state machines
	corrections *workflow.Correction
	chat        *workflow.Chat
	activityLog *activity.Log

	// Layout state
	resizer    *panel.Resizer
	previewExp *panel.Expansion
	logExp     *panel.Expansion

	// Spinner for the correction status line; the popup owns its own
	corrSpinner *ui.SpinnerState

	width         int
	height        int
	focus         Focus
	windowFocused bool
}

// correctionResultMsg carries the outcome of a correction request
type correctionResultMsg struct {
	set *correction.Set
	err error
}

// chatResultMsg carries the outcome of a chat question
type chatResultMsg struct {
	answer string
	err    error
}

// New creates the app model. The collaborator client is injected so startup
// can reject a bad config before the terminal is taken over.
func New(cfg *config.Config, version string, client collab.Client) *Model {
	// Load saved theme from config; an unset name resolves to the default.
	// This also pushes the palette into the modals package, which renders
	// nothing useful until that happens.
	ui.SetThemeByName(cfg.GetTheme())

	log := activity.NewLog()

	m := &Model{
		config:        cfg,
		version:       version,
		client:        client,
		header:        ui.NewHeader(),
		footer:        ui.NewFooter(),
		editors:       ui.NewEditors(),
		review:        ui.NewReview(),
		preview:       ui.NewPreviewPanel(),
		logPane:       ui.NewLogPanel(log),
		popup:         ui.NewPopup(),
		chatBar:       ui.NewChatBar(),
		modal:         ui.NewModal(),
		corrections:   workflow.NewCorrection(log),
		chat:          workflow.NewChat(log),
		activityLog:   log,
		resizer:       panel.NewResizer(),
		previewExp:    panel.NewPreviewExpansion(),
		logExp:        panel.NewLogExpansion(),
		corrSpinner:   ui.NewSpinnerState(),
		focus:         FocusHTML,
		windowFocused: true,
	}

	m.header.SetVersion(version)
	m.header.SetCollaborator(client.Name(), cfg.GetModel())
	m.activityLog.Record("session started")

	return m
}

// State helper methods

// Requesting returns true while a correction request is in flight.
func (m *Model) Requesting() bool {
	return m.corrections.State() == workflow.StateRequesting
}

// Reviewing returns true while a correction set is on screen.
func (m *Model) Reviewing() bool {
	return m.review.Active()
}

// chatFocused returns true when typed keys go to the chat bar.
func (m *Model) chatFocused() bool {
	return m.focus == FocusChat
}

// refreshPreview re-renders the preview panel from the current buffers.
func (m *Model) refreshPreview() {
	m.preview.SetContent(m.editors.HTML(), m.editors.CSS())
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	return nil
}
