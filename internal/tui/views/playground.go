package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/carbon-dev/carbon/internal/timer"
	"github.com/carbon-dev/carbon/internal/tui"
)

// ============================================================================
// Message Types
// ============================================================================

// PlaygroundClosedMsg returns control to the workshop. Extract carries the
// trimmed scratch text into the draft; Terminate additionally clears the
// scratch buffer. Plain back keeps the buffer for next time.
type PlaygroundClosedMsg struct {
	Extract   bool
	Terminate bool
	Text      string
}

// SprintStartMsg asks the app to start ticking a sprint.
type SprintStartMsg struct {
	Mode timer.Mode
}

// SprintStopMsg cancels the running sprint.
type SprintStopMsg struct{}

// ============================================================================
// PlaygroundModel
// ============================================================================

// PlaygroundModel is the view model for the no-pressure scratch space.
type PlaygroundModel struct {
	textarea textarea.Model
	modeIdx  int
	display  string
	expired  bool
	width    int
	height   int
}

// NewPlaygroundModel creates the playground view.
func NewPlaygroundModel(width, height int) PlaygroundModel {
	ta := textarea.New()
	ta.Placeholder = "no prompt, no clock, no judgement..."
	ta.CharLimit = 0
	ta.SetWidth(width - 10)
	ta.SetHeight(10)
	ta.Focus()

	return PlaygroundModel{
		width:    width,
		height:   height,
		textarea: ta,
	}
}

// Init returns the initial command for the playground view.
func (m PlaygroundModel) Init() tea.Cmd {
	return textarea.Blink
}

// Open seeds the scratch buffer, which survives round trips by default.
// The sprint selection starts over each visit.
func (m *PlaygroundModel) Open(text string) {
	m.textarea.SetValue(text)
	m.modeIdx = 0
	m.expired = false
	m.textarea.Focus()
	m.textarea.CursorEnd()
}

// Value returns the current scratch text.
func (m PlaygroundModel) Value() string {
	return m.textarea.Value()
}

// SetTimerDisplay updates the countdown string shown in the header.
func (m *PlaygroundModel) SetTimerDisplay(display string) {
	m.display = display
}

// SetExpired flips the sprint-finished banner.
func (m *PlaygroundModel) SetExpired(on bool) {
	m.expired = on
}

// Update handles messages for the playground view.
func (m PlaygroundModel) Update(msg tea.Msg) (PlaygroundModel, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+t":
			// Cycle sprint length: 90s -> 5m -> 10m -> off.
			if m.modeIdx < len(timer.Modes) {
				mode := timer.Modes[m.modeIdx]
				m.modeIdx++
				m.expired = false
				return m, func() tea.Msg { return SprintStartMsg{Mode: mode} }
			}
			m.modeIdx = 0
			return m, func() tea.Msg { return SprintStopMsg{} }
		case "ctrl+x":
			text := strings.TrimSpace(m.textarea.Value())
			return m, func() tea.Msg {
				return PlaygroundClosedMsg{Extract: true, Text: text}
			}
		case "ctrl+k":
			m.textarea.Reset()
			return m, func() tea.Msg {
				return PlaygroundClosedMsg{Terminate: true}
			}
		case tui.KeyEsc:
			return m, func() tea.Msg { return PlaygroundClosedMsg{} }
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.textarea.SetWidth(msg.Width - 10)
		return m, nil
	}

	m.textarea, cmd = m.textarea.Update(msg)
	return m, cmd
}

// View renders the playground view.
func (m PlaygroundModel) View() string {
	var b strings.Builder

	b.WriteString(tui.TitleStyle.Render("Playground"))
	if m.display != "" {
		b.WriteString("   ")
		b.WriteString(tui.TimerStyle.Render(m.display))
	}
	if m.expired {
		b.WriteString("   ")
		b.WriteString(tui.WarningStyle.Render("time! pencils down (or keep going)"))
	}
	b.WriteString("\n\n")

	b.WriteString(m.textarea.View())
	b.WriteString("\n\n")

	b.WriteString(tui.DimStyle.Render(
		"ctrl+t: sprint timer   ctrl+x: pull into draft   ctrl+k: burn it\n" +
			"esc: back to workshop (keeps scratch)"))

	return tui.BoxStyle.Width(m.width - 4).Render(b.String())
}
