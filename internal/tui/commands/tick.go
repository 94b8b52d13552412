package commands

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/carbon-dev/carbon/internal/tui"
)

// tickInterval drives the sprint countdown display.
const tickInterval = 250 * time.Millisecond

// TickCmd schedules the next countdown tick. Only issued while a sprint is
// running, so an idle app generates no messages.
func TickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tui.TickMsg{Time: t}
	})
}

// OracleClearCmd hides the oracle card after it has been read.
func OracleClearCmd(after time.Duration) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg {
		return tui.OracleClearMsg{}
	})
}
