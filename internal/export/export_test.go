package export

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/carbon-dev/carbon/internal/domain"
)

var exportTime = time.Date(2026, 8, 29, 14, 30, 0, 0, time.UTC)

func TestArchiveExport(t *testing.T) {
	entries := []domain.Entry{
		{ID: "01ABC", Feeling: "restless", Medium: domain.MediumPoem, CreatedAt: exportTime},
	}
	blob, err := Archive(entries, exportTime)
	if err != nil {
		t.Fatalf("Archive: %v", err)
	}
	if blob.Filename != "carbon-archive-2026-08-29.json" {
		t.Errorf("Filename = %q", blob.Filename)
	}

	var doc struct {
		ExportedAt time.Time      `json:"exportedAt"`
		Entries    []domain.Entry `json:"entries"`
	}
	if err := json.Unmarshal(blob.Content, &doc); err != nil {
		t.Fatalf("unmarshal export: %v", err)
	}
	if !doc.ExportedAt.Equal(exportTime) {
		t.Errorf("ExportedAt = %v", doc.ExportedAt)
	}
	if len(doc.Entries) != 1 || doc.Entries[0].ID != "01ABC" {
		t.Errorf("Entries = %+v", doc.Entries)
	}
}

func TestArchiveExportEmptyListIsArray(t *testing.T) {
	blob, err := Archive(nil, exportTime)
	if err != nil {
		t.Fatalf("Archive: %v", err)
	}
	if strings.Contains(string(blob.Content), "\"entries\": null") {
		t.Error("empty archive must serialize as [] not null")
	}
}

func TestSessionExport(t *testing.T) {
	snap := domain.Snapshot{
		Feeling:       "wired and tired",
		Intensity:     domain.IntensityMed,
		Medium:        domain.MediumSong,
		PressureStyle: domain.StyleBrutal,
		Prompt:        "write the chorus first",
		Draft:         "la la la",
	}
	blob := Session(snap, exportTime)
	if blob.Filename != "carbon-session-2026-08-29.txt" {
		t.Errorf("Filename = %q", blob.Filename)
	}

	text := string(blob.Content)
	for _, want := range []string{
		"FEELING (MED):", "wired and tired",
		"PRESSURE (BRUTAL):", "write the chorus first",
		"DRAFT:", "la la la",
		"MEDIUM: Song",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("session export missing %q in:\n%s", want, text)
		}
	}
}

func TestEntryExportFilenameCarriesID(t *testing.T) {
	e := domain.Entry{
		ID:        "01J8ZXYZ",
		Feeling:   "quiet",
		Intensity: domain.IntensityLow,
		CreatedAt: exportTime,
	}
	blob := Entry(e)
	if blob.Filename != "carbon-entry-01J8ZXYZ.txt" {
		t.Errorf("Filename = %q", blob.Filename)
	}
	if !strings.Contains(string(blob.Content), "FEELING (LOW):") {
		t.Error("entry export missing feeling section")
	}
}

func TestEmptyFieldsRenderPlaceholder(t *testing.T) {
	blob := Session(domain.Snapshot{}, exportTime)
	if !strings.Contains(string(blob.Content), "(empty)") {
		t.Error("blank fields should render a placeholder")
	}
}
