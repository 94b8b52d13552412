// Package commands provides Bubble Tea commands for async operations.
package commands

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/carbon-dev/carbon/internal/domain"
	"github.com/carbon-dev/carbon/internal/tui"
)

// generationTimeout bounds a single generation call.
const generationTimeout = 30 * time.Second

// GenerateInitialCmd resolves the opening prompt for a session. The
// generator is total: failures come back as fallback text, never an error.
func GenerateInitialCmd(gen domain.Generator, in domain.PromptInput) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), generationTimeout)
		defer cancel()
		return tui.PromptGeneratedMsg{Text: gen.Initial(ctx, in)}
	}
}

// GenerateFollowUpCmd resolves a replacement prompt mid-session.
func GenerateFollowUpCmd(gen domain.Generator, in domain.FollowUpInput) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), generationTimeout)
		defer cancel()
		return tui.PromptGeneratedMsg{Text: gen.FollowUp(ctx, in), FollowUp: true}
	}
}
