package archive

import (
	"context"
	"sync"

	"github.com/carbon-dev/carbon/internal/domain"
	"github.com/carbon-dev/carbon/internal/log"
)

// Status describes the current storage connection for display.
type Status struct {
	Mode      domain.StorageMode
	Connected bool // true only when REMOTE and the last probe succeeded
	Message   string
}

// Vault is the dual-mode persistence adapter. It owns the process-wide
// entry list and storage mode, mirrors LOCAL mutations to the device slots,
// and falls back to LOCAL whenever the remote service fails so that user
// work is never dropped.
//
// All state is guarded by a mutex: callers run vault operations from
// Bubble Tea commands, which execute off the update goroutine. Mode
// switches carry a sequence token so a stale probe resolving late cannot
// clobber a newer mode decision.
type Vault struct {
	device *DeviceStore
	local  *LocalStore
	remote *RemoteStore
	logger *log.Logger

	mu      sync.Mutex
	mode    domain.StorageMode
	entries []domain.Entry
	status  Status
	seq     uint64
}

// NewVault creates a Vault seeded from the device slots. If the persisted
// mode is REMOTE it is not trusted yet: the caller must run ValidateRemote
// before relying on it, and until then the local entries remain visible.
func NewVault(device *DeviceStore, local *LocalStore, remote *RemoteStore, logger *log.Logger) *Vault {
	mode := device.ReadMode()
	return &Vault{
		device:  device,
		local:   local,
		remote:  remote,
		logger:  logger,
		mode:    mode,
		entries: device.ReadEntries(),
		status:  Status{Mode: mode, Message: "Local storage"},
	}
}

// Mode returns the current storage mode.
func (v *Vault) Mode() domain.StorageMode {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.mode
}

// Status returns the current connection status.
func (v *Vault) Status() Status {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.status
}

// Entries returns a copy of the in-memory entry list, newest first.
func (v *Vault) Entries() []domain.Entry {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := make([]domain.Entry, len(v.entries))
	copy(out, v.entries)
	return out
}

// NeedsValidation reports whether the restored mode requires a remote probe.
func (v *Vault) NeedsValidation() bool {
	return v.Mode() == domain.ModeRemote
}

// begin bumps the operation sequence and returns the new token.
func (v *Vault) begin() uint64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.seq++
	return v.seq
}

// EnterRemote switches to REMOTE mode: health probe, then list fetch, then
// the remote list replaces the in-memory entries (remote is authoritative
// while in REMOTE mode). On any failure the mode reverts to LOCAL, the
// reversion is persisted immediately, and the local entry list is left
// untouched. Also used to re-validate a REMOTE mode restored from disk.
func (v *Vault) EnterRemote(ctx context.Context) Status {
	tok := v.begin()

	var entries []domain.Entry
	err := v.remote.Health(ctx)
	if err == nil {
		entries, err = v.remote.List(ctx)
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	if tok != v.seq {
		// A newer mode decision happened while we were probing.
		return v.status
	}

	if err != nil {
		v.mode = domain.ModeLocal
		_ = v.device.WriteMode(domain.ModeLocal)
		v.entries = v.device.ReadEntries()
		v.status = Status{Mode: domain.ModeLocal, Message: "Remote unavailable, using local storage"}
		_ = v.logger.Append(log.LogEvent{Event: log.EventRemoteUnavailable, Error: err.Error()})
		return v.status
	}

	v.mode = domain.ModeRemote
	_ = v.device.WriteMode(domain.ModeRemote)
	v.entries = entries
	v.status = Status{Mode: domain.ModeRemote, Connected: true, Message: "Remote connected"}
	_ = v.logger.Append(log.LogEvent{Event: log.EventModeChanged, Mode: string(domain.ModeRemote)})
	return v.status
}

// EnterLocal switches to LOCAL mode, persists the label, and reloads the
// in-memory list from the device slots.
func (v *Vault) EnterLocal() Status {
	tok := v.begin()

	v.mu.Lock()
	defer v.mu.Unlock()
	if tok != v.seq {
		return v.status
	}

	v.mode = domain.ModeLocal
	_ = v.device.WriteMode(domain.ModeLocal)
	v.entries = v.device.ReadEntries()
	v.status = Status{Mode: domain.ModeLocal, Message: "Local storage"}
	_ = v.logger.Append(log.LogEvent{Event: log.EventModeChanged, Mode: string(domain.ModeLocal)})
	return v.status
}

// Save persists the snapshot via the active backend.
//
// REMOTE: the write goes to the remote service first; on success the
// in-memory list is refreshed by re-listing from remote so the view matches
// server state, and the device mirror is not written. On failure the vault
// constructs a local entry from the same snapshot, forces the mode back to
// LOCAL (persisting the change), and prepends the entry so the work
// survives; the result is tagged FellBack.
//
// LOCAL: the entry is created and the full list mirrored to the device slot.
func (v *Vault) Save(ctx context.Context, snap domain.Snapshot) domain.SaveResult {
	if v.Mode() == domain.ModeRemote {
		if entry, err := v.remote.Create(ctx, snap); err == nil {
			return v.commitRemoteSave(ctx, entry, snap)
		} else {
			_ = v.logger.Append(log.LogEvent{Event: log.EventStorageFallback, Error: err.Error()})
			return v.saveLocal(ctx, snap, true)
		}
	}
	return v.saveLocal(ctx, snap, false)
}

func (v *Vault) commitRemoteSave(ctx context.Context, entry domain.Entry, snap domain.Snapshot) domain.SaveResult {
	entries, err := v.remote.List(ctx)

	tok := v.begin()
	v.mu.Lock()
	defer v.mu.Unlock()
	if tok == v.seq {
		if err == nil {
			v.entries = entries
		} else {
			// The write landed but the refresh failed; show the created
			// entry until the next successful list.
			v.entries = append([]domain.Entry{entry}, v.entries...)
		}
		v.status = Status{Mode: domain.ModeRemote, Connected: true, Message: "Remote connected"}
	}

	_ = v.logger.Append(log.LogEvent{
		Event:      log.EventSessionSaved,
		Mode:       string(domain.ModeRemote),
		EntryID:    entry.ID,
		Medium:     string(entry.Medium),
		DraftChars: entry.Metrics.DraftChars,
	})
	return domain.SaveResult{Entry: entry, Via: domain.SourceRemote}
}

func (v *Vault) saveLocal(ctx context.Context, snap domain.Snapshot, fellBack bool) domain.SaveResult {
	entry, err := v.local.Create(ctx, snap)

	tok := v.begin()
	v.mu.Lock()
	if tok == v.seq {
		v.mode = domain.ModeLocal
		if err == nil {
			// The slot was just rewritten with the new entry on top.
			v.entries = v.device.ReadEntries()
		} else {
			// The slot write failed; keep the entry in memory so the
			// session can be cleared without losing the work.
			v.entries = append([]domain.Entry{entry}, v.entries...)
		}
		if fellBack {
			v.status = Status{Mode: domain.ModeLocal, Message: "Remote save failed, saved locally instead"}
		} else {
			v.status = Status{Mode: domain.ModeLocal, Message: "Local storage"}
		}
	}
	v.mu.Unlock()

	if fellBack {
		_ = v.device.WriteMode(domain.ModeLocal)
	}
	if err != nil {
		_ = v.logger.Append(log.LogEvent{Event: log.EventStorageFallback, Error: err.Error()})
	}

	_ = v.logger.Append(log.LogEvent{
		Event:      log.EventSessionSaved,
		Mode:       string(domain.ModeLocal),
		EntryID:    entry.ID,
		Medium:     string(entry.Medium),
		DraftChars: entry.Metrics.DraftChars,
	})
	return domain.SaveResult{Entry: entry, Via: domain.SourceLocal, FellBack: fellBack}
}
