package commands

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/carbon-dev/carbon/internal/archive"
	"github.com/carbon-dev/carbon/internal/domain"
	"github.com/carbon-dev/carbon/internal/tui"
)

// storageTimeout bounds a remote probe or save round-trip.
const storageTimeout = 15 * time.Second

// EnterRemoteCmd probes the remote service and switches to REMOTE mode,
// reverting to LOCAL on any failure. Also used to re-validate a REMOTE
// mode restored from disk at startup.
func EnterRemoteCmd(vault *archive.Vault) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), storageTimeout)
		defer cancel()
		return tui.StorageStatusMsg{Status: vault.EnterRemote(ctx)}
	}
}

// EnterLocalCmd switches to LOCAL mode.
func EnterLocalCmd(vault *archive.Vault) tea.Cmd {
	return func() tea.Msg {
		return tui.StorageStatusMsg{Status: vault.EnterLocal()}
	}
}

// SaveCmd persists the snapshot through the vault. The result reports
// which backend actually took the write.
func SaveCmd(vault *archive.Vault, snap domain.Snapshot) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), storageTimeout)
		defer cancel()
		return tui.SaveDoneMsg{Result: vault.Save(ctx, snap)}
	}
}
