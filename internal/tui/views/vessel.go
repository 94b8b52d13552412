package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/carbon-dev/carbon/internal/domain"
	"github.com/carbon-dev/carbon/internal/press"
	"github.com/carbon-dev/carbon/internal/tui"
)

// ============================================================================
// Message Types
// ============================================================================

// VesselChosenMsg is sent once both the medium and the pressure style are
// picked; the app then requests the opening prompt.
type VesselChosenMsg struct {
	Medium domain.Medium
	Style  domain.PressureStyle
}

// VesselBackMsg returns to intake without losing the feeling text.
type VesselBackMsg struct{}

// vesselStage tracks which of the two picks is active.
type vesselStage int

const (
	stageMedium vesselStage = iota
	stageStyle
)

// ============================================================================
// VesselModel
// ============================================================================

// VesselModel is the view model for medium and pressure-style selection.
type VesselModel struct {
	stage      vesselStage
	mediumIdx  int
	styleIdx   int
	generating bool
	spinner    spinner.Model
	width      int
	height     int
}

// NewVesselModel creates the vessel view.
func NewVesselModel(width, height int) VesselModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	return VesselModel{
		spinner: sp,
		width:   width,
		height:  height,
	}
}

// Init returns the initial command for the vessel view.
func (m VesselModel) Init() tea.Cmd {
	return nil
}

// SetGenerating toggles the waiting state while the prompt resolves.
func (m *VesselModel) SetGenerating(on bool) {
	m.generating = on
}

// Reset returns the view to the first pick.
func (m *VesselModel) Reset() {
	m.stage = stageMedium
	m.mediumIdx = 0
	m.styleIdx = 0
	m.generating = false
}

// Update handles messages for the vessel view.
func (m VesselModel) Update(msg tea.Msg) (VesselModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.generating {
			return m, nil
		}
		switch msg.String() {
		case tui.KeyUp, "k":
			if m.stage == stageMedium && m.mediumIdx > 0 {
				m.mediumIdx--
			} else if m.stage == stageStyle && m.styleIdx > 0 {
				m.styleIdx--
			}
		case tui.KeyDown, "j":
			if m.stage == stageMedium && m.mediumIdx < len(domain.Mediums)-1 {
				m.mediumIdx++
			} else if m.stage == stageStyle && m.styleIdx < len(domain.PressureStyles)-1 {
				m.styleIdx++
			}
		case tui.KeyEnter:
			if m.stage == stageMedium {
				m.stage = stageStyle
				return m, nil
			}
			medium := domain.Mediums[m.mediumIdx]
			style := domain.PressureStyles[m.styleIdx]
			m.generating = true
			return m, tea.Batch(
				m.spinner.Tick,
				func() tea.Msg { return VesselChosenMsg{Medium: medium, Style: style} },
			)
		case tui.KeyEsc:
			if m.stage == stageStyle {
				m.stage = stageMedium
				return m, nil
			}
			return m, func() tea.Msg { return VesselBackMsg{} }
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View renders the vessel view.
func (m VesselModel) View() string {
	var b strings.Builder

	b.WriteString(tui.TitleStyle.Render("Choose your vessel"))
	b.WriteString("\n\n")

	if m.generating {
		b.WriteString(m.spinner.View())
		b.WriteString(" pressing your feeling into a prompt...\n")
		return tui.BoxStyle.Width(m.width - 4).Render(b.String())
	}

	for i, medium := range domain.Mediums {
		cursor := "  "
		name := fmt.Sprintf("%-7s", medium)
		if m.stage == stageMedium && i == m.mediumIdx {
			cursor = tui.SelectedStyle.Render("> ")
			name = tui.SelectedStyle.Render(name)
		} else if m.stage == stageStyle && i == m.mediumIdx {
			name = tui.SuccessStyle.Render(name)
		}
		b.WriteString(cursor)
		b.WriteString(name)
		b.WriteString(" ")
		b.WriteString(tui.DimStyle.Render(press.VesselHints[medium]))
		b.WriteString("\n")
	}

	if m.stage == stageStyle {
		b.WriteString("\n")
		b.WriteString(tui.TitleStyle.Render("How hard should the press be?"))
		b.WriteString("\n\n")
		for i, style := range domain.PressureStyles {
			cursor := "  "
			name := string(style)
			if i == m.styleIdx {
				cursor = tui.SelectedStyle.Render("> ")
				name = tui.SelectedStyle.Render(name)
			}
			b.WriteString(cursor)
			b.WriteString(fmt.Sprintf("%-10s %s", name, tui.DimStyle.Render(press.StyleDescriptions[style])))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(tui.DimStyle.Render("↑/↓: move       enter: select       esc: back"))

	return tui.BoxStyle.Width(m.width - 4).Render(b.String())
}
