// Package views provides the TUI view components for Carbon.
package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/carbon-dev/carbon/internal/domain"
	"github.com/carbon-dev/carbon/internal/intensity"
	"github.com/carbon-dev/carbon/internal/tui"
)

// ============================================================================
// Message Types
// ============================================================================

// FeelingSubmittedMsg is sent when the feeling is substantial enough and
// the user moves on to choose a vessel.
type FeelingSubmittedMsg struct {
	Feeling string
}

// VoiceRequestedMsg asks the app to run the voice transcriber.
type VoiceRequestedMsg struct{}

// OpenArchiveMsg asks the app to show the archive.
type OpenArchiveMsg struct{}

// ============================================================================
// IntakeModel
// ============================================================================

// IntakeModel is the view model for the feeling-capture screen.
type IntakeModel struct {
	textarea     textarea.Model
	recent       []domain.Entry
	voiceEnabled bool
	recording    bool
	width        int
	height       int
}

// NewIntakeModel creates the intake view.
func NewIntakeModel(voiceEnabled bool, width, height int) IntakeModel {
	ta := textarea.New()
	ta.Placeholder = "what's sitting with you right now..."
	ta.CharLimit = 2000
	ta.SetWidth(width - 10)
	ta.SetHeight(5)
	ta.Focus()

	return IntakeModel{
		textarea:     ta,
		voiceEnabled: voiceEnabled,
		width:        width,
		height:       height,
	}
}

// Init returns the initial command for the intake view.
func (m IntakeModel) Init() tea.Cmd {
	return textarea.Blink
}

// SetRecent replaces the recent-entries summary shown under the input.
func (m *IntakeModel) SetRecent(entries []domain.Entry) {
	if len(entries) > 3 {
		entries = entries[:3]
	}
	m.recent = entries
}

// SetRecording toggles the voice-recording indicator.
func (m *IntakeModel) SetRecording(on bool) {
	m.recording = on
}

// AppendText adds transcribed text to the feeling input.
func (m *IntakeModel) AppendText(text string) {
	if text == "" {
		return
	}
	cur := m.textarea.Value()
	if cur == "" {
		m.textarea.SetValue(text)
		return
	}
	m.textarea.SetValue(cur + " " + text)
}

// Value returns the current feeling text.
func (m IntakeModel) Value() string {
	return m.textarea.Value()
}

// Reset clears the input for a fresh session.
func (m *IntakeModel) Reset() {
	m.textarea.Reset()
}

// Update handles messages for the intake view.
func (m IntakeModel) Update(msg tea.Msg) (IntakeModel, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+n":
			feeling := strings.TrimSpace(m.textarea.Value())
			if canAdvance(feeling) {
				return m, func() tea.Msg {
					return FeelingSubmittedMsg{Feeling: feeling}
				}
			}
		case "ctrl+v":
			if m.voiceEnabled && !m.recording {
				return m, func() tea.Msg { return VoiceRequestedMsg{} }
			}
		case "ctrl+a":
			return m, func() tea.Msg { return OpenArchiveMsg{} }
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

// canAdvance mirrors the session rule: more than five characters.
func canAdvance(feeling string) bool {
	return len([]rune(feeling)) > 5
}

// View renders the intake view.
func (m IntakeModel) View() string {
	var b strings.Builder

	b.WriteString(tui.TitleStyle.Render("CARBON"))
	b.WriteString(tui.DimStyle.Render("  pressure makes diamonds"))
	b.WriteString("\n\n")

	b.WriteString("How are you feeling?\n\n")
	b.WriteString(m.textarea.View())
	b.WriteString("\n")

	res := intensity.Classify(m.textarea.Value())
	b.WriteString(tui.DimStyle.Render("intensity: "))
	b.WriteString(tui.IntensityBadge(string(res.Level)))
	if m.recording {
		b.WriteString("   ")
		b.WriteString(tui.WarningStyle.Render("● recording..."))
	}
	b.WriteString("\n")

	if len(m.recent) > 0 {
		b.WriteString("\n")
		b.WriteString(tui.DimStyle.Render("recent sessions:"))
		b.WriteString("\n")
		for _, e := range m.recent {
			line := fmt.Sprintf("  %s  %-6s  %s",
				e.CreatedAt.Format("Jan 02"), e.Medium, truncate(e.Feeling, 40))
			b.WriteString(tui.DimStyle.Render(line))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	hints := []string{"ctrl+n: continue", "ctrl+a: archive"}
	if m.voiceEnabled {
		hints = append(hints, "ctrl+v: speak")
	}
	hints = append(hints, "ctrl+c: exit")
	b.WriteString(tui.DimStyle.Render(strings.Join(hints, "       ")))

	return tui.BoxStyle.Width(m.width - 4).Render(b.String())
}

func truncate(s string, n int) string {
	runes := []rune(strings.ReplaceAll(s, "\n", " "))
	if len(runes) <= n {
		return string(runes)
	}
	return string(runes[:n-1]) + "…"
}
