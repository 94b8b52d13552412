package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/carbon-dev/carbon/internal/archive"
	"github.com/carbon-dev/carbon/internal/domain"
	"github.com/carbon-dev/carbon/internal/tui"
)

// ============================================================================
// Message Types
// ============================================================================

// ToggleStorageMsg asks the app to switch between LOCAL and REMOTE storage.
type ToggleStorageMsg struct{}

// LoadEntryMsg re-opens an archived entry in the workshop.
type LoadEntryMsg struct {
	Entry domain.Entry
}

// ExportArchiveMsg asks the app to export the full entry list as JSON.
type ExportArchiveMsg struct{}

// ExportEntryMsg asks the app to export one entry as text.
type ExportEntryMsg struct {
	Entry domain.Entry
}

// ArchiveBackMsg returns to the intake screen.
type ArchiveBackMsg struct{}

// ============================================================================
// ArchiveModel
// ============================================================================

// ArchiveModel is the view model for the archive list and detail screens.
type ArchiveModel struct {
	entries  []domain.Entry
	cursor   int
	detail   bool
	status   archive.Status
	probing  bool
	feedback string
	width    int
	height   int
}

// NewArchiveModel creates the archive view.
func NewArchiveModel(width, height int) ArchiveModel {
	return ArchiveModel{width: width, height: height}
}

// Init returns the initial command for the archive view.
func (m ArchiveModel) Init() tea.Cmd {
	return nil
}

// SetEntries replaces the listed entries, clamping the cursor.
func (m *ArchiveModel) SetEntries(entries []domain.Entry) {
	m.entries = entries
	if m.cursor >= len(entries) {
		m.cursor = len(entries) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// SetStatus updates the storage status line.
func (m *ArchiveModel) SetStatus(status archive.Status) {
	m.status = status
	m.probing = false
}

// SetProbing shows the probe-in-progress indicator.
func (m *ArchiveModel) SetProbing(on bool) {
	m.probing = on
}

// SetFeedback shows a transient message (export result and the like).
func (m *ArchiveModel) SetFeedback(text string) {
	m.feedback = text
}

// InDetail reports whether the detail screen is showing.
func (m ArchiveModel) InDetail() bool {
	return m.detail
}

// Update handles messages for the archive view.
func (m ArchiveModel) Update(msg tea.Msg) (ArchiveModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.detail {
			if len(m.entries) == 0 {
				m.detail = false
				return m, nil
			}
			return m.updateDetail(msg)
		}
		return m.updateList(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m ArchiveModel) updateList(msg tea.KeyMsg) (ArchiveModel, tea.Cmd) {
	keys := tui.DefaultKeyMap
	switch {
	case key.Matches(msg, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, keys.Down):
		if m.cursor < len(m.entries)-1 {
			m.cursor++
		}
	case key.Matches(msg, keys.Enter):
		if len(m.entries) > 0 {
			m.detail = true
		}
	case msg.String() == "m":
		if !m.probing {
			return m, func() tea.Msg { return ToggleStorageMsg{} }
		}
	case msg.String() == "e":
		if len(m.entries) > 0 {
			return m, func() tea.Msg { return ExportArchiveMsg{} }
		}
	case key.Matches(msg, keys.Escape):
		return m, func() tea.Msg { return ArchiveBackMsg{} }
	}
	return m, nil
}

func (m ArchiveModel) updateDetail(msg tea.KeyMsg) (ArchiveModel, tea.Cmd) {
	entry := m.entries[m.cursor]
	switch {
	case msg.String() == "l":
		m.detail = false
		return m, func() tea.Msg { return LoadEntryMsg{Entry: entry} }
	case msg.String() == "e":
		return m, func() tea.Msg { return ExportEntryMsg{Entry: entry} }
	case key.Matches(msg, tui.DefaultKeyMap.Escape):
		m.detail = false
	}
	return m, nil
}

// View renders the archive view.
func (m ArchiveModel) View() string {
	if m.detail && m.cursor < len(m.entries) {
		return m.viewDetail(m.entries[m.cursor])
	}
	return m.viewList()
}

func (m ArchiveModel) viewList() string {
	var b strings.Builder

	b.WriteString(tui.TitleStyle.Render("Archive"))
	b.WriteString("   ")
	if m.probing {
		b.WriteString(tui.WarningStyle.Render("checking remote..."))
	} else if m.status.Connected {
		b.WriteString(tui.SuccessStyle.Render("REMOTE"))
	} else {
		b.WriteString(tui.DimStyle.Render("LOCAL"))
	}
	b.WriteString("\n")
	b.WriteString(tui.DimStyle.Render(m.status.Message))
	b.WriteString("\n\n")

	if len(m.entries) == 0 {
		b.WriteString(tui.DimStyle.Render("nothing archived yet"))
		b.WriteString("\n")
	}
	for i, e := range m.entries {
		cursor := "  "
		line := fmt.Sprintf("%s  %-6s  %-4s  %s",
			e.CreatedAt.Format("2006-01-02"), e.Medium, e.Intensity, truncate(e.Feeling, 36))
		if i == m.cursor {
			cursor = tui.SelectedStyle.Render("> ")
			line = tui.SelectedStyle.Render(line)
		}
		b.WriteString(cursor)
		b.WriteString(line)
		b.WriteString("\n")
	}

	if m.feedback != "" {
		b.WriteString("\n")
		b.WriteString(tui.SuccessStyle.Render(m.feedback))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(tui.DimStyle.Render(
		"↑/↓: move   enter: open   m: toggle storage   e: export all   esc: back"))

	return tui.BoxStyle.Width(m.width - 4).Render(b.String())
}

func (m ArchiveModel) viewDetail(e domain.Entry) string {
	var b strings.Builder

	b.WriteString(tui.TitleStyle.Render(fmt.Sprintf("%s session", e.Medium)))
	b.WriteString(tui.DimStyle.Render("  " + e.CreatedAt.Format("2006-01-02 15:04")))
	b.WriteString("\n\n")

	b.WriteString(tui.DimStyle.Render("feeling "))
	b.WriteString(tui.IntensityBadge(string(e.Intensity)))
	b.WriteString("\n")
	b.WriteString(e.Feeling)
	b.WriteString("\n\n")

	b.WriteString(tui.DimStyle.Render(fmt.Sprintf("pressure (%s)", e.PressureStyle)))
	b.WriteString("\n")
	b.WriteString(tui.PromptStyle.Render(e.Prompt))
	b.WriteString("\n\n")

	b.WriteString(tui.DimStyle.Render("draft"))
	b.WriteString("\n")
	b.WriteString(e.Draft)
	b.WriteString("\n\n")

	b.WriteString(tui.DimStyle.Render(fmt.Sprintf(
		"%d chars   %d revisions   %ds in session",
		e.Metrics.DraftChars, e.Metrics.RevisionCount, e.Metrics.TimeSpentSec)))
	b.WriteString("\n\n")

	if m.feedback != "" {
		b.WriteString(tui.SuccessStyle.Render(m.feedback))
		b.WriteString("\n\n")
	}

	b.WriteString(tui.DimStyle.Render("l: load into workshop   e: export   esc: back"))

	return tui.BoxStyle.Width(m.width - 4).Render(b.String())
}
