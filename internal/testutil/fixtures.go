// Package testutil provides test helper utilities for carbon tests.
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/carbon-dev/carbon/internal/domain"
)

// TempDataDir creates a temporary data directory with the given files and
// returns its path. Files is a map of relative path -> content. The
// directory is automatically cleaned up when the test finishes.
func TempDataDir(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()

	for relPath, content := range files {
		absPath := filepath.Join(dir, relPath)
		if err := os.MkdirAll(filepath.Dir(absPath), 0755); err != nil {
			t.Fatalf("creating directory for %s: %v", relPath, err)
		}
		if err := os.WriteFile(absPath, []byte(content), 0644); err != nil {
			t.Fatalf("writing %s: %v", relPath, err)
		}
	}

	return dir
}

// SampleEntries returns a small archive, newest first.
func SampleEntries() []domain.Entry {
	base := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	return []domain.Entry{
		{
			ID:            "01K1SAMPLE2",
			Feeling:       "restless before the show",
			Intensity:     domain.IntensityMed,
			Medium:        domain.MediumSong,
			PressureStyle: domain.StyleBrutal,
			Prompt:        "Write the hook your nerves keep humming.",
			Draft:         "steady steady steady now",
			Metrics:       domain.Metrics{TimeSpentSec: 240, RevisionCount: 5, DraftChars: 24},
			CreatedAt:     base.Add(24 * time.Hour),
		},
		{
			ID:            "01K1SAMPLE1",
			Feeling:       "quiet, almost empty",
			Intensity:     domain.IntensityLow,
			Medium:        domain.MediumPoem,
			PressureStyle: domain.StyleGentle,
			Prompt:        "Describe the emptiness as a room.",
			Draft:         "four walls and no echo",
			Metrics:       domain.Metrics{TimeSpentSec: 300, RevisionCount: 3, DraftChars: 22},
			CreatedAt:     base,
		},
	}
}

// EntriesJSON serializes entries the way the device slot stores them.
func EntriesJSON(t *testing.T, entries []domain.Entry) string {
	t.Helper()
	data, err := json.Marshal(entries)
	if err != nil {
		t.Fatalf("marshal entries: %v", err)
	}
	return string(data)
}
