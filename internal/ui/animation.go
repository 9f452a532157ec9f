package ui

import (
	"fmt"
	"math/rand"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// StopwatchTickMsg is sent to update the animated waiting display
type StopwatchTickMsg time.Time

// SelectionFlashTickMsg is sent to animate the selection copy flash
type SelectionFlashTickMsg time.Time

// thinkingVerbs are playful status messages that cycle while waiting for the
// collaborator
var thinkingVerbs = []string{
	"Thinking",
	"Reasoning",
	"Pondering",
	"Contemplating",
	"Musing",
	"Cogitating",
	"Ruminating",
	"Deliberating",
	"Reflecting",
	"Considering",
	"Analyzing",
	"Processing",
	"Computing",
	"Synthesizing",
	"Formulating",
	"Brainstorming",
	"Noodling",
	"Percolating",
	"Brewing",
	"Marinating",
}

// randomThinkingVerb returns a random verb from the list
func randomThinkingVerb() string {
	return thinkingVerbs[rand.Intn(len(thinkingVerbs))]
}

// spinnerFrames are the characters used for the shimmering spinner animation
var spinnerFrames = []string{"·", "✺", "✹", "✸", "✷", "✶", "✵", "✴", "✳", "✲", "✱", "✧", "✦", "·"}

// spinnerFrameHoldTimes defines how long each frame should be held (in ticks)
// All frames have equal duration for smooth animation
var spinnerFrameHoldTimes = []int{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1}

// StopwatchTick returns a command that sends a tick message after a delay
func StopwatchTick() tea.Cmd {
	return tea.Tick(200*time.Millisecond, func(t time.Time) tea.Msg {
		return StopwatchTickMsg(t)
	})
}

// SelectionFlashTick returns a command that sends a selection flash tick
func SelectionFlashTick() tea.Cmd {
	return tea.Tick(150*time.Millisecond, func(t time.Time) tea.Msg {
		return SelectionFlashTickMsg(t)
	})
}

// SpinnerState tracks one waiting spinner animation. The correction status
// line and the chat popup each own an instance; both advance on the same
// StopwatchTickMsg.
type SpinnerState struct {
	Idx       int    // Current spinner frame index
	Tick      int    // Tick counter for frame hold timing
	Verb      string // Random verb to display while waiting (e.g., "Thinking")
	StartTime time.Time
}

// NewSpinnerState creates a new SpinnerState.
func NewSpinnerState() *SpinnerState {
	return &SpinnerState{}
}

// Start resets the spinner with a fresh verb and start time.
func (s *SpinnerState) Start() {
	s.Verb = randomThinkingVerb()
	s.Idx = 0
	s.Tick = 0
	s.StartTime = time.Now()
}

// Advance moves the spinner one tick forward, honoring per-frame hold times.
func (s *SpinnerState) Advance() {
	s.Tick++
	holdTime := spinnerFrameHoldTimes[s.Idx%len(spinnerFrameHoldTimes)]
	if s.Tick >= holdTime {
		s.Tick = 0
		s.Idx++
		if s.Idx >= len(spinnerFrames) {
			s.Idx = 0
		}
	}
}

// Elapsed returns the time since the spinner was started.
func (s *SpinnerState) Elapsed() time.Duration {
	return time.Since(s.StartTime)
}

// RenderSpinner renders the shimmering spinner with the thinking verb and
// elapsed stopwatch. Format: ✺ Pondering... (12s)
func RenderSpinner(s *SpinnerState) string {
	frame := spinnerFrames[s.Idx%len(spinnerFrames)]

	spinnerStyle := lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Bold(true)

	verbStyle := lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Italic(true)

	metaStyle := lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	return spinnerStyle.Render(frame) + " " +
		verbStyle.Render(s.Verb+"...") + " " +
		metaStyle.Render("("+formatElapsed(s.Elapsed())+")")
}

// formatElapsed formats a duration for display (e.g., "12s", "1m30s")
func formatElapsed(d time.Duration) string {
	secs := int(d.Seconds())
	if secs < 60 {
		return fmt.Sprintf("%ds", secs)
	}
	return fmt.Sprintf("%dm%ds", secs/60, secs%60)
}
