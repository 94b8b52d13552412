package archive

import (
	"context"
	"testing"

	"github.com/carbon-dev/carbon/internal/domain"
	"github.com/carbon-dev/carbon/internal/testutil"
)

func TestDeviceRoundTrip(t *testing.T) {
	device, err := NewDeviceStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewDeviceStore: %v", err)
	}

	want := testutil.SampleEntries()
	if err := device.WriteEntries(want); err != nil {
		t.Fatalf("WriteEntries: %v", err)
	}

	got := device.ReadEntries()
	if len(got) != len(want) {
		t.Fatalf("ReadEntries returned %d entries, want %d", len(got), len(want))
	}
	if got[0].ID != want[0].ID || got[0].Feeling != want[0].Feeling {
		t.Errorf("first entry = %+v, want %+v", got[0], want[0])
	}
	if got[0].Source != domain.SourceLocal {
		t.Error("device entries must be re-tagged as local")
	}
}

func TestDeviceSeededSlot(t *testing.T) {
	entries := testutil.SampleEntries()
	dir := testutil.TempDataDir(t, map[string]string{
		"entries.json": testutil.EntriesJSON(t, entries),
		"storage_mode": "REMOTE",
	})

	device, err := NewDeviceStore(dir)
	if err != nil {
		t.Fatalf("NewDeviceStore: %v", err)
	}
	if got := device.ReadEntries(); len(got) != 2 {
		t.Errorf("ReadEntries returned %d entries, want 2", len(got))
	}
	if device.ReadMode() != domain.ModeRemote {
		t.Error("persisted REMOTE mode should round-trip")
	}
}

func TestDeviceCorruptSlotsYieldDefaults(t *testing.T) {
	dir := testutil.TempDataDir(t, map[string]string{
		"entries.json": "{definitely not an array",
		"storage_mode": "CLOUD9",
	})

	device, err := NewDeviceStore(dir)
	if err != nil {
		t.Fatalf("NewDeviceStore: %v", err)
	}
	if got := device.ReadEntries(); len(got) != 0 {
		t.Errorf("corrupt entry slot should read as empty, got %d entries", len(got))
	}
	if device.ReadMode() != domain.ModeLocal {
		t.Error("unknown mode label should read as LOCAL")
	}
}

func TestLocalStoreCreatePrepends(t *testing.T) {
	device, err := NewDeviceStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewDeviceStore: %v", err)
	}
	if err := device.WriteEntries(testutil.SampleEntries()); err != nil {
		t.Fatalf("WriteEntries: %v", err)
	}

	store := NewLocalStore(device)
	entry, err := store.Create(context.Background(), domain.Snapshot{
		Feeling:       "new weight",
		Intensity:     domain.IntensityLow,
		Medium:        domain.MediumNovel,
		PressureStyle: domain.StyleTechnical,
		Draft:         "chapter one",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if entry.ID == "" {
		t.Fatal("Create returned an entry without an id")
	}
	if entry.Metrics.DraftChars != len("chapter one") {
		t.Errorf("DraftChars = %d", entry.Metrics.DraftChars)
	}

	entries, err := store.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("List returned %d entries, want 3", len(entries))
	}
	if entries[0].ID != entry.ID {
		t.Error("new entry should be first in the list")
	}
}

func TestLocalStoreIDsAreUniqueAndSortable(t *testing.T) {
	device, err := NewDeviceStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewDeviceStore: %v", err)
	}
	store := NewLocalStore(device)

	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		e, err := store.Create(context.Background(), domain.Snapshot{Feeling: "x"})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if seen[e.ID] {
			t.Fatalf("duplicate id %s", e.ID)
		}
		seen[e.ID] = true
	}
}
