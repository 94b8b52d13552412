// Package archive implements session persistence: a device-local store, a
// remote store, and the dual-mode vault that routes between them.
package archive

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/carbon-dev/carbon/internal/domain"
)

// Device slot file names. Each slot holds one serialized value and is
// rewritten in full on every mutation.
const (
	entriesSlot = "entries.json"
	modeSlot    = "storage_mode"
)

// DeviceStore is the durable on-device key-value store: one slot for the
// serialized entry list, one for the storage-mode label.
type DeviceStore struct {
	dir string
}

// NewDeviceStore creates a DeviceStore rooted at dir, creating it if needed.
func NewDeviceStore(dir string) (*DeviceStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create device store directory: %w", err)
	}
	return &DeviceStore{dir: dir}, nil
}

// ReadEntries loads the persisted entry list. A missing or corrupt slot
// yields an empty list, never an error.
func (d *DeviceStore) ReadEntries() []domain.Entry {
	data, err := os.ReadFile(filepath.Join(d.dir, entriesSlot))
	if err != nil {
		return []domain.Entry{}
	}

	var entries []domain.Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return []domain.Entry{}
	}

	// Source is not persisted; everything in this slot came from the device.
	for i := range entries {
		entries[i].Source = domain.SourceLocal
	}
	return entries
}

// WriteEntries overwrites the entry slot with the full list.
func (d *DeviceStore) WriteEntries(entries []domain.Entry) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("marshal entries: %w", err)
	}
	if err := os.WriteFile(filepath.Join(d.dir, entriesSlot), data, 0644); err != nil {
		return fmt.Errorf("write entries slot: %w", err)
	}
	return nil
}

// ReadMode loads the persisted storage mode. Anything other than a valid
// label yields LOCAL.
func (d *DeviceStore) ReadMode() domain.StorageMode {
	data, err := os.ReadFile(filepath.Join(d.dir, modeSlot))
	if err != nil {
		return domain.ModeLocal
	}
	switch domain.StorageMode(strings.TrimSpace(string(data))) {
	case domain.ModeRemote:
		return domain.ModeRemote
	default:
		return domain.ModeLocal
	}
}

// WriteMode overwrites the storage-mode slot.
func (d *DeviceStore) WriteMode(mode domain.StorageMode) error {
	if err := os.WriteFile(filepath.Join(d.dir, modeSlot), []byte(mode), 0644); err != nil {
		return fmt.Errorf("write mode slot: %w", err)
	}
	return nil
}
