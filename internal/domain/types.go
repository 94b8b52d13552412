// Package domain defines the core session and archive types shared across
// the application.
package domain

import "time"

// Medium is the creative vessel chosen for a session.
type Medium string

const (
	MediumSong   Medium = "Song"
	MediumScript Medium = "Script"
	MediumNovel  Medium = "Novel"
	MediumPoem   Medium = "Poem"
)

// Mediums lists every selectable medium in presentation order.
var Mediums = []Medium{MediumSong, MediumScript, MediumNovel, MediumPoem}

// PressureStyle selects the tone of generated prompts.
type PressureStyle string

const (
	StyleGentle    PressureStyle = "GENTLE"
	StyleBrutal    PressureStyle = "BRUTAL"
	StyleTechnical PressureStyle = "TECHNICAL"
	StyleAbstract  PressureStyle = "ABSTRACT"
)

// PressureStyles lists every pressure style in presentation order.
var PressureStyles = []PressureStyle{StyleGentle, StyleBrutal, StyleTechnical, StyleAbstract}

// Intensity is the coarse severity tier derived from the feeling text.
type Intensity string

const (
	IntensityLow  Intensity = "LOW"
	IntensityMed  Intensity = "MED"
	IntensityHigh Intensity = "HIGH"
)

// StorageMode selects which persistence backend receives archive writes.
type StorageMode string

const (
	ModeLocal  StorageMode = "LOCAL"
	ModeRemote StorageMode = "REMOTE"
)

// Source tags where an archive entry was reconstructed from. It is never
// persisted.
type Source string

const (
	SourceLocal  Source = "LOCAL"
	SourceRemote Source = "REMOTE"
)

// Metrics holds the session measurements frozen into an archive entry.
// DraftChars is always recomputed from the draft text, regardless of where
// the entry came from.
type Metrics struct {
	TimeSpentSec  int `json:"timeSpentSec"`
	RevisionCount int `json:"revisionCount"`
	DraftChars    int `json:"draftChars"`
}

// Entry is one archived session. Entries are immutable once created.
type Entry struct {
	ID            string        `json:"id"`
	Feeling       string        `json:"feeling"`
	Intensity     Intensity     `json:"intensity"`
	Medium        Medium        `json:"medium"`
	PressureStyle PressureStyle `json:"pressureStyle"`
	Prompt        string        `json:"prompt"`
	Draft         string        `json:"draft"`
	Playground    string        `json:"playground"`
	Metrics       Metrics       `json:"metrics"`
	CreatedAt     time.Time     `json:"createdAt"`
	Source        Source        `json:"-"`
}

// Snapshot is the frozen state of a session at save time.
type Snapshot struct {
	Feeling       string
	Intensity     Intensity
	Medium        Medium
	PressureStyle PressureStyle
	Prompt        string
	Draft         string
	Playground    string
	TimeSpentSec  int
	RevisionCount int
}

// SaveResult reports how a save completed. FellBack is set when a remote
// write failed and the entry was captured locally instead.
type SaveResult struct {
	Entry    Entry
	Via      Source
	FellBack bool
}
