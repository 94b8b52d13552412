package views

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/carbon-dev/carbon/internal/domain"
	"github.com/carbon-dev/carbon/internal/tui"
)

// ============================================================================
// Message Types
// ============================================================================

// FollowUpRequestedMsg asks the app for a replacement prompt.
type FollowUpRequestedMsg struct{}

// SaveRequestedMsg asks the app to archive the session.
type SaveRequestedMsg struct{}

// ExportSessionMsg asks the app to export the working session as text.
type ExportSessionMsg struct{}

// OpenPlaygroundMsg switches to the playground scratch space.
type OpenPlaygroundMsg struct{}

// oracleClearMsg hides the oracle card after its display interval.
type oracleClearMsg struct{}

// oracleInterval is how long a drawn card stays visible.
const oracleInterval = 8 * time.Second

// oracleDeck is the fixed set of oblique strategies for stuck moments.
var oracleDeck = []string{
	"Write the last line first.",
	"Steal the rhythm of a song you hate.",
	"Remove every adjective, then put one back.",
	"What would the villain of this feeling say?",
	"Make the setting do the talking.",
	"Honor thy error as a hidden intention.",
	"Say it in half the words, twice as loud.",
	"Start from the part you are avoiding.",
}

// snippets maps each medium to its structural insert markers.
var snippets = map[domain.Medium][]string{
	domain.MediumScript: {"INT. "},
	domain.MediumSong:   {"[HOOK]", "[VERSE]"},
	domain.MediumPoem:   {"—"},
	domain.MediumNovel:  {"* * *"},
}

// ============================================================================
// WorkshopModel
// ============================================================================

// WorkshopModel is the view model for the main writing screen.
type WorkshopModel struct {
	textarea   textarea.Model
	prompt     string
	medium     domain.Medium
	generating bool
	oracle     string
	snippetIdx int
	width      int
	height     int
}

// NewWorkshopModel creates the workshop view.
func NewWorkshopModel(width, height int) WorkshopModel {
	ta := textarea.New()
	ta.Placeholder = "let it out..."
	ta.CharLimit = 0
	ta.SetWidth(width - 10)
	ta.SetHeight(10)
	ta.Focus()

	return WorkshopModel{
		textarea: ta,
		width:    width,
		height:   height,
	}
}

// Init returns the initial command for the workshop view.
func (m WorkshopModel) Init() tea.Cmd {
	return textarea.Blink
}

// Open seeds the view for a session: prompt, medium, and any existing
// draft (non-empty when an archived entry was loaded).
func (m *WorkshopModel) Open(prompt string, medium domain.Medium, draft string) {
	m.prompt = prompt
	m.medium = medium
	m.textarea.SetValue(draft)
	m.oracle = ""
	m.snippetIdx = 0
	m.generating = false
	m.textarea.Focus()
}

// SetPrompt replaces the prompt after a follow-up resolves.
func (m *WorkshopModel) SetPrompt(prompt string) {
	m.prompt = prompt
	m.generating = false
}

// SetGenerating toggles the follow-up waiting indicator.
func (m *WorkshopModel) SetGenerating(on bool) {
	m.generating = on
}

// SetDraft replaces the draft text, used when returning from the
// playground with extracted material.
func (m *WorkshopModel) SetDraft(text string) {
	m.textarea.SetValue(text)
}

// Value returns the current draft text.
func (m WorkshopModel) Value() string {
	return m.textarea.Value()
}

// Update handles messages for the workshop view.
func (m WorkshopModel) Update(msg tea.Msg) (WorkshopModel, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+r":
			if !m.generating {
				return m, func() tea.Msg { return FollowUpRequestedMsg{} }
			}
			return m, nil
		case "ctrl+o":
			m.oracle = oracleDeck[rand.Intn(len(oracleDeck))]
			return m, tea.Tick(oracleInterval, func(time.Time) tea.Msg {
				return oracleClearMsg{}
			})
		case "ctrl+n":
			m.insertSnippet()
			return m, nil
		case "ctrl+p":
			return m, func() tea.Msg { return OpenPlaygroundMsg{} }
		case "ctrl+s":
			return m, func() tea.Msg { return SaveRequestedMsg{} }
		case "ctrl+e":
			return m, func() tea.Msg { return ExportSessionMsg{} }
		case "ctrl+a":
			return m, func() tea.Msg { return OpenArchiveMsg{} }
		}

	case oracleClearMsg:
		m.oracle = ""
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.textarea.SetWidth(msg.Width - 10)
		return m, nil
	}

	m.textarea, cmd = m.textarea.Update(msg)
	return m, cmd
}

// insertSnippet appends the medium's next structural marker on its own
// line. Song alternates between hook and verse markers.
func (m *WorkshopModel) insertSnippet() {
	marks := snippets[m.medium]
	if len(marks) == 0 {
		return
	}
	mark := marks[m.snippetIdx%len(marks)]
	m.snippetIdx++

	cur := m.textarea.Value()
	if cur == "" {
		m.textarea.SetValue(mark)
	} else {
		m.textarea.SetValue(cur + "\n" + mark)
	}
	m.textarea.CursorEnd()
}

// View renders the workshop view.
func (m WorkshopModel) View() string {
	var b strings.Builder

	b.WriteString(tui.TitleStyle.Render(fmt.Sprintf("Workshop - %s", m.medium)))
	b.WriteString("\n\n")

	if m.generating {
		b.WriteString(tui.DimStyle.Render("pressing harder..."))
	} else {
		b.WriteString(tui.PromptStyle.Render(m.prompt))
	}
	b.WriteString("\n\n")

	if m.oracle != "" {
		b.WriteString(tui.OracleStyle.Render("ORACLE: " + m.oracle))
		b.WriteString("\n\n")
	}

	b.WriteString(m.textarea.View())
	b.WriteString("\n\n")

	b.WriteString(tui.DimStyle.Render(
		"ctrl+r: new prompt   ctrl+o: oracle   ctrl+n: snippet   ctrl+p: playground\n" +
			"ctrl+s: save & archive   ctrl+e: export   ctrl+a: archive   ctrl+c: exit"))

	return tui.BoxStyle.Width(m.width - 4).Render(b.String())
}
