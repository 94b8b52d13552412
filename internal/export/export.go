// Package export serializes sessions and archive entries into shareable
// blobs. Everything here is pure: callers decide where the bytes go.
package export

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/carbon-dev/carbon/internal/domain"
)

// Blob is a named export payload.
type Blob struct {
	Filename string
	Content  []byte
}

// Archive serializes the full entry list as JSON with an export timestamp.
func Archive(entries []domain.Entry, at time.Time) (Blob, error) {
	doc := struct {
		ExportedAt time.Time      `json:"exportedAt"`
		Entries    []domain.Entry `json:"entries"`
	}{
		ExportedAt: at.UTC(),
		Entries:    entries,
	}
	if doc.Entries == nil {
		doc.Entries = []domain.Entry{}
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return Blob{}, fmt.Errorf("marshal archive export: %w", err)
	}
	return Blob{
		Filename: fmt.Sprintf("carbon-archive-%s.json", at.UTC().Format("2006-01-02")),
		Content:  append(data, '\n'),
	}, nil
}

// Session renders an unsaved session as readable text.
func Session(snap domain.Snapshot, at time.Time) Blob {
	return Blob{
		Filename: fmt.Sprintf("carbon-session-%s.txt", at.UTC().Format("2006-01-02")),
		Content: []byte(renderText(
			at.UTC().Format("2006-01-02 15:04"),
			snap.Feeling, string(snap.Intensity), string(snap.Medium),
			string(snap.PressureStyle), snap.Prompt, snap.Draft,
		)),
	}
}

// Entry renders a single archived entry as readable text. The filename
// carries the entry id so repeated exports don't collide.
func Entry(e domain.Entry) Blob {
	return Blob{
		Filename: fmt.Sprintf("carbon-entry-%s.txt", e.ID),
		Content: []byte(renderText(
			e.CreatedAt.UTC().Format("2006-01-02 15:04"),
			e.Feeling, string(e.Intensity), string(e.Medium),
			string(e.PressureStyle), e.Prompt, e.Draft,
		)),
	}
}

func renderText(when, feeling, intensity, medium, style, prompt, draft string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "CARBON %s\n", when)
	fmt.Fprintf(&b, "MEDIUM: %s\n\n", orDash(medium))
	fmt.Fprintf(&b, "FEELING (%s):\n%s\n\n", orDash(intensity), orDash(feeling))
	fmt.Fprintf(&b, "PRESSURE (%s):\n%s\n\n", orDash(style), orDash(prompt))
	fmt.Fprintf(&b, "DRAFT:\n%s\n", orDash(draft))
	return b.String()
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "(empty)"
	}
	return s
}
