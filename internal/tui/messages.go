// Package tui implements the terminal user interface using Bubble Tea.
package tui

import (
	"time"

	"github.com/carbon-dev/carbon/internal/archive"
	"github.com/carbon-dev/carbon/internal/domain"
)

// ============================================================================
// Generation Messages
// ============================================================================

// PromptGeneratedMsg carries a resolved writing prompt. FollowUp marks
// whether it replaces an existing prompt or opens the workshop.
type PromptGeneratedMsg struct {
	Text     string
	FollowUp bool
}

// ============================================================================
// Storage Messages
// ============================================================================

// StorageStatusMsg reports the outcome of a storage mode switch or probe.
type StorageStatusMsg struct {
	Status archive.Status
}

// SaveDoneMsg reports a completed save attempt.
type SaveDoneMsg struct {
	Result domain.SaveResult
}

// ============================================================================
// Voice Messages
// ============================================================================

// VoiceTextMsg carries transcribed speech for the feeling field.
type VoiceTextMsg struct {
	Text string
	Err  error
}

// ============================================================================
// Utility Messages
// ============================================================================

// TickMsg is sent periodically for time-based updates (sprint countdown).
type TickMsg struct {
	Time time.Time
}

// OracleClearMsg hides the currently shown oracle card.
type OracleClearMsg struct{}

// CtrlCResetMsg resets the Ctrl+C confirmation state after its timeout.
type CtrlCResetMsg struct{}

// ErrorMsg is a generic error message for unrecoverable errors.
type ErrorMsg struct {
	Err error
}
