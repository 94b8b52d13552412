// Package app provides the main TUI application that wires all views together.
package app

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/carbon-dev/carbon/internal/domain"
	"github.com/carbon-dev/carbon/internal/export"
	"github.com/carbon-dev/carbon/internal/tui"
	"github.com/carbon-dev/carbon/internal/tui/commands"
	"github.com/carbon-dev/carbon/internal/tui/views"
)

// App is the main TUI application that wires all views together.
type App struct {
	model *tui.Model

	// View models
	intakeView     views.IntakeModel
	vesselView     views.VesselModel
	workshopView   views.WorkshopModel
	playgroundView views.PlaygroundModel
	archiveView    views.ArchiveModel
}

// New creates a new App around the shared model.
func New(model *tui.Model) *App {
	a := &App{
		model:          model,
		intakeView:     views.NewIntakeModel(model.Voice.Available(), model.Width, model.Height),
		vesselView:     views.NewVesselModel(model.Width, model.Height),
		workshopView:   views.NewWorkshopModel(model.Width, model.Height),
		playgroundView: views.NewPlaygroundModel(model.Width, model.Height),
		archiveView:    views.NewArchiveModel(model.Width, model.Height),
	}
	a.intakeView.SetRecent(model.Vault.Entries())
	a.archiveView.SetStatus(model.Vault.Status())
	return a
}

// Init returns the initial command for the TUI. A REMOTE mode restored
// from disk is re-validated before it is trusted.
func (a *App) Init() tea.Cmd {
	cmds := []tea.Cmd{a.intakeView.Init()}
	if a.model.Vault.NeedsValidation() {
		cmds = append(cmds, commands.EnterRemoteCmd(a.model.Vault))
	}
	return tea.Batch(cmds...)
}

// Update handles messages and updates the application state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.model.Width = msg.Width
		a.model.Height = msg.Height
		return a.routeToActive(msg)

	case tea.KeyMsg:
		if msg.String() == tui.KeyCtrlC {
			if a.model.CtrlCPending {
				return a, tea.Quit
			}
			a.model.CtrlCPending = true
			return a, tea.Tick(time.Second, func(time.Time) tea.Msg {
				return tui.CtrlCResetMsg{}
			})
		}

	case tui.CtrlCResetMsg:
		a.model.CtrlCPending = false
		return a, nil

	case tui.PromptGeneratedMsg:
		return a.handlePromptGenerated(msg)

	case tui.StorageStatusMsg:
		a.model.StatusLine = msg.Status.Message
		a.archiveView.SetStatus(msg.Status)
		a.syncEntries()
		return a, nil

	case tui.SaveDoneMsg:
		return a.handleSaveDone(msg)

	case tui.VoiceTextMsg:
		a.intakeView.SetRecording(false)
		if msg.Err == nil {
			a.intakeView.AppendText(msg.Text)
		}
		return a, nil

	case tui.TickMsg:
		if a.model.Sprint.Tick() {
			a.playgroundView.SetExpired(true)
		}
		a.playgroundView.SetTimerDisplay(a.model.Sprint.Display())
		if a.model.Sprint.Running() {
			return a, commands.TickCmd()
		}
		return a, nil

	// Intake
	case views.FeelingSubmittedMsg:
		a.model.Session.Feeling = msg.Feeling
		a.vesselView.Reset()
		a.model.State = tui.StateVessel
		return a, nil

	case views.VoiceRequestedMsg:
		a.intakeView.SetRecording(true)
		return a, commands.TranscribeCmd(a.model.Voice)

	case views.OpenArchiveMsg:
		a.archiveView.SetFeedback("")
		a.syncEntries()
		a.model.State = tui.StateArchive
		return a, nil

	// Vessel
	case views.VesselChosenMsg:
		a.model.Session.Medium = msg.Medium
		a.model.Session.PressureStyle = msg.Style
		if !a.model.Session.BeginGeneration() {
			return a, nil
		}
		a.vesselView.SetGenerating(true)
		return a, commands.GenerateInitialCmd(a.model.Generator, a.model.Session.PromptInput())

	case views.VesselBackMsg:
		a.model.State = tui.StateIntake
		return a, nil

	// Workshop
	case views.FollowUpRequestedMsg:
		if !a.model.Session.BeginGeneration() {
			return a, nil
		}
		a.workshopView.SetGenerating(true)
		return a, commands.GenerateFollowUpCmd(a.model.Generator, a.model.Session.FollowUpInput())

	case views.SaveRequestedMsg:
		a.model.Session.SetDraft(a.workshopView.Value())
		return a, commands.SaveCmd(a.model.Vault, a.model.Session.Snapshot())

	case views.ExportSessionMsg:
		a.model.Session.SetDraft(a.workshopView.Value())
		blob := export.Session(a.model.Session.Snapshot(), time.Now())
		a.model.StatusLine = a.writeBlob(blob)
		return a, nil

	case views.OpenPlaygroundMsg:
		a.model.Session.SetDraft(a.workshopView.Value())
		// Entering the playground always starts without a sprint.
		a.model.Sprint.Stop()
		a.playgroundView.Open(a.model.Session.Playground)
		a.playgroundView.SetTimerDisplay("")
		a.model.State = tui.StatePlayground
		return a, nil

	// Playground
	case views.SprintStartMsg:
		a.model.Sprint.Start(msg.Mode)
		a.playgroundView.SetTimerDisplay(a.model.Sprint.Display())
		return a, commands.TickCmd()

	case views.SprintStopMsg:
		a.model.Sprint.Stop()
		a.playgroundView.SetTimerDisplay("")
		return a, nil

	case views.PlaygroundClosedMsg:
		return a.handlePlaygroundClosed(msg)

	// Archive
	case views.ToggleStorageMsg:
		if a.model.Vault.Mode() == domain.ModeRemote {
			return a, commands.EnterLocalCmd(a.model.Vault)
		}
		a.archiveView.SetProbing(true)
		return a, commands.EnterRemoteCmd(a.model.Vault)

	case views.LoadEntryMsg:
		a.model.Session.LoadEntry(msg.Entry)
		a.workshopView.Open(msg.Entry.Prompt, msg.Entry.Medium, msg.Entry.Draft)
		a.model.State = tui.StateWorkshop
		return a, a.workshopView.Init()

	case views.ExportArchiveMsg:
		blob, err := export.Archive(a.model.Vault.Entries(), time.Now())
		if err != nil {
			a.archiveView.SetFeedback("export failed: " + err.Error())
			return a, nil
		}
		a.archiveView.SetFeedback(a.writeBlob(blob))
		return a, nil

	case views.ExportEntryMsg:
		a.archiveView.SetFeedback(a.writeBlob(export.Entry(msg.Entry)))
		return a, nil

	case views.ArchiveBackMsg:
		a.intakeView.SetRecent(a.model.Vault.Entries())
		a.model.State = tui.StateIntake
		return a, nil
	}

	return a.routeToActive(msg)
}

// routeToActive forwards a message to the view for the current state and
// keeps the session draft in sync with the workshop textarea.
func (a *App) routeToActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.model.State {
	case tui.StateIntake:
		a.intakeView, cmd = a.intakeView.Update(msg)
	case tui.StateVessel:
		a.vesselView, cmd = a.vesselView.Update(msg)
	case tui.StateWorkshop:
		a.workshopView, cmd = a.workshopView.Update(msg)
		a.model.Session.SetDraft(a.workshopView.Value())
	case tui.StatePlayground:
		a.playgroundView, cmd = a.playgroundView.Update(msg)
	case tui.StateArchive, tui.StateArchiveDetail:
		a.archiveView, cmd = a.archiveView.Update(msg)
	}
	return a, cmd
}

func (a *App) handlePromptGenerated(msg tui.PromptGeneratedMsg) (tea.Model, tea.Cmd) {
	a.model.Session.EndGeneration()

	if msg.FollowUp {
		a.model.Session.Prompt = msg.Text
		a.workshopView.SetPrompt(msg.Text)
		return a, nil
	}

	a.model.Session.EnterWorkshop(msg.Text)
	a.vesselView.SetGenerating(false)
	a.workshopView.Open(msg.Text, a.model.Session.Medium, "")
	a.model.State = tui.StateWorkshop
	return a, a.workshopView.Init()
}

func (a *App) handleSaveDone(msg tui.SaveDoneMsg) (tea.Model, tea.Cmd) {
	if msg.Result.FellBack {
		a.model.StatusLine = "remote save failed, archived locally"
	} else {
		a.model.StatusLine = fmt.Sprintf("archived (%s)", msg.Result.Via)
	}

	// The session always resets after a save attempt; the entry is safe
	// in one of the two backends.
	a.model.Session.Reset()
	a.model.Sprint.Stop()
	a.intakeView.Reset()
	a.syncEntries()
	a.model.State = tui.StateIntake
	return a, nil
}

func (a *App) handlePlaygroundClosed(msg views.PlaygroundClosedMsg) (tea.Model, tea.Cmd) {
	a.model.Sprint.Stop()
	a.playgroundView.SetTimerDisplay("")

	switch {
	case msg.Terminate:
		a.model.Session.Playground = ""
	case msg.Extract:
		a.model.Session.Playground = a.playgroundView.Value()
		if msg.Text != "" {
			a.model.Session.InsertSnippet(msg.Text)
			a.workshopView.SetDraft(a.model.Session.Draft)
		}
	default:
		a.model.Session.Playground = a.playgroundView.Value()
	}

	a.model.State = tui.StateWorkshop
	return a, a.workshopView.Init()
}

// syncEntries pushes the vault's current list into the views that show it.
func (a *App) syncEntries() {
	entries := a.model.Vault.Entries()
	a.intakeView.SetRecent(entries)
	a.archiveView.SetEntries(entries)
	a.archiveView.SetStatus(a.model.Vault.Status())
}

// writeBlob saves an export to the working directory and returns a status
// line describing the outcome.
func (a *App) writeBlob(blob export.Blob) string {
	if err := os.WriteFile(blob.Filename, blob.Content, 0644); err != nil {
		return "export failed: " + err.Error()
	}
	return "exported " + blob.Filename
}

// View renders the current application state.
func (a *App) View() string {
	var content string
	switch a.model.State {
	case tui.StateIntake:
		content = a.intakeView.View()
	case tui.StateVessel:
		content = a.vesselView.View()
	case tui.StateWorkshop:
		content = a.workshopView.View()
	case tui.StatePlayground:
		content = a.playgroundView.View()
	case tui.StateArchive, tui.StateArchiveDetail:
		content = a.archiveView.View()
	}

	status := tui.StatusBarStyle.Render(a.model.StatusLine)
	return content + "\n" + status
}
