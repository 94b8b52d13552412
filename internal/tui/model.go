// Package tui implements the terminal user interface using Bubble Tea.
package tui

import (
	"github.com/carbon-dev/carbon/internal/archive"
	"github.com/carbon-dev/carbon/internal/config"
	"github.com/carbon-dev/carbon/internal/domain"
	"github.com/carbon-dev/carbon/internal/log"
	"github.com/carbon-dev/carbon/internal/session"
	"github.com/carbon-dev/carbon/internal/timer"
	"github.com/carbon-dev/carbon/internal/voice"
)

// ViewState represents the current screen of the TUI.
type ViewState int

const (
	StateIntake ViewState = iota // Feeling capture
	StateVessel                  // Medium and pressure style selection
	StateWorkshop
	StatePlayground
	StateArchive
	StateArchiveDetail
)

// Model holds the shared application state threaded through every view.
type Model struct {
	State ViewState

	Cfg       *config.Config
	Session   *session.Controller
	Vault     *archive.Vault
	Generator domain.Generator
	Sprint    *timer.Sprint
	Voice     *voice.Capture
	Logger    *log.Logger

	// StatusLine mirrors the vault status plus transient save feedback.
	StatusLine string

	// Terminal dimensions
	Width  int
	Height int

	// CtrlCPending is true while waiting for a second Ctrl+C press.
	CtrlCPending bool
}

// NewModel creates the shared model with default dimensions.
func NewModel(cfg *config.Config, ctl *session.Controller, vault *archive.Vault, gen domain.Generator, sprint *timer.Sprint, voc *voice.Capture, logger *log.Logger) *Model {
	return &Model{
		State:      StateIntake,
		Cfg:        cfg,
		Session:    ctl,
		Vault:      vault,
		Generator:  gen,
		Sprint:     sprint,
		Voice:      voc,
		Logger:     logger,
		StatusLine: vault.Status().Message,
		Width:      80,
		Height:     24,
	}
}
