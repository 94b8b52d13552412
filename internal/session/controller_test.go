package session

import (
	"testing"
	"time"

	"github.com/carbon-dev/carbon/internal/domain"
)

// fixedClock returns a controller whose clock is controllable by the test.
func fixedClock(c *Controller, at *time.Time) {
	c.now = func() time.Time { return *at }
}

func TestCanAdvanceRequiresSubstantialFeeling(t *testing.T) {
	c := NewController()

	c.Feeling = "numb"
	if c.CanAdvance() {
		t.Error("five characters or fewer should not advance")
	}
	c.Feeling = "heavy day"
	if !c.CanAdvance() {
		t.Error("feeling longer than five characters should advance")
	}
}

func TestRevisionHeuristic(t *testing.T) {
	c := NewController()
	c.EnterWorkshop("prompt")

	// "" -> "ab": empty to non-empty counts even below the delta.
	c.SetDraft("ab")
	// "ab" -> "abcdef": delta 4 >= 3 counts.
	c.SetDraft("abcdef")
	// "abcdef" -> "abcdefg": delta 1 does not count.
	c.SetDraft("abcdefg")

	if got := c.RevisionCount(); got != 2 {
		t.Errorf("revisionCount = %d, want 2", got)
	}
}

func TestRevisionHeuristicCountsDeletions(t *testing.T) {
	c := NewController()
	c.EnterWorkshop("prompt")
	c.SetDraft("a whole opening stanza")
	c.SetDraft("a")
	if got := c.RevisionCount(); got != 2 {
		t.Errorf("revisionCount = %d, want 2 (large deletion counts)", got)
	}
}

func TestRevisionHeuristicIgnoresNoOpSet(t *testing.T) {
	c := NewController()
	c.EnterWorkshop("prompt")
	c.SetDraft("abc")
	before := c.RevisionCount()
	c.SetDraft("abc")
	if got := c.RevisionCount(); got != before {
		t.Errorf("setting an identical draft changed the count: %d -> %d", before, got)
	}
}

func TestSnapshotFreezesMetrics(t *testing.T) {
	at := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	c := NewController()
	fixedClock(c, &at)

	c.Feeling = "carrying too much"
	c.Medium = domain.MediumNovel
	c.EnterWorkshop("a prompt")
	c.SetDraft("some draft text")
	c.Playground = "loose lines"

	at = at.Add(95 * time.Second)
	snap := c.Snapshot()

	if snap.TimeSpentSec != 95 {
		t.Errorf("TimeSpentSec = %d, want 95", snap.TimeSpentSec)
	}
	if snap.RevisionCount != 1 {
		t.Errorf("RevisionCount = %d, want 1", snap.RevisionCount)
	}
	if snap.Playground != "loose lines" {
		t.Errorf("Playground = %q", snap.Playground)
	}
	if snap.Intensity != c.Intensity().Level {
		t.Error("snapshot intensity must match the derived value")
	}
}

func TestSnapshotWithoutWorkshopEntryHasZeroTime(t *testing.T) {
	c := NewController()
	if got := c.Snapshot().TimeSpentSec; got != 0 {
		t.Errorf("TimeSpentSec = %d, want 0 before the clock starts", got)
	}
}

func TestResetClearsEverything(t *testing.T) {
	c := NewController()
	c.Feeling = "something"
	c.Medium = domain.MediumSong
	c.EnterWorkshop("prompt")
	c.SetDraft("draft")
	c.Playground = "scratch"
	c.BeginGeneration()

	c.Reset()

	if c.Feeling != "" || c.Medium != "" || c.Prompt != "" || c.Draft != "" || c.Playground != "" {
		t.Error("Reset left session fields populated")
	}
	if c.RevisionCount() != 0 {
		t.Error("Reset did not clear the revision count")
	}
	if c.Generating() {
		t.Error("Reset did not clear the generation flag")
	}
}

func TestLoadEntryRestartsClockAndCount(t *testing.T) {
	at := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	c := NewController()
	fixedClock(c, &at)

	e := domain.Entry{
		Feeling:       "an old weight",
		Medium:        domain.MediumScript,
		PressureStyle: domain.StyleBrutal,
		Prompt:        "old prompt",
		Draft:         "old draft",
		Playground:    "old scratch",
		Metrics:       domain.Metrics{TimeSpentSec: 900, RevisionCount: 40},
	}
	c.LoadEntry(e)

	if c.RevisionCount() != 0 {
		t.Error("loading an entry must reset the revision count")
	}
	at = at.Add(10 * time.Second)
	if got := c.Snapshot().TimeSpentSec; got != 10 {
		t.Errorf("TimeSpentSec = %d, want 10 (clock restarts, not resumes)", got)
	}

	// Editing the loaded draft compares against the seeded text.
	c.SetDraft("old draft!")
	if c.RevisionCount() != 0 {
		t.Error("one-character edit after load should not count")
	}
}

func TestGenerationGuardIsExclusive(t *testing.T) {
	c := NewController()
	if !c.BeginGeneration() {
		t.Fatal("first BeginGeneration should succeed")
	}
	if c.BeginGeneration() {
		t.Fatal("second BeginGeneration must be rejected while one is in flight")
	}
	c.EndGeneration()
	if !c.BeginGeneration() {
		t.Fatal("BeginGeneration should succeed again after EndGeneration")
	}
}

func TestInsertSnippet(t *testing.T) {
	c := NewController()
	c.EnterWorkshop("prompt")
	c.InsertSnippet("[HOOK]")
	if c.Draft != "[HOOK]" {
		t.Errorf("Draft = %q", c.Draft)
	}
	c.InsertSnippet("[VERSE]")
	if c.Draft != "[HOOK]\n[VERSE]" {
		t.Errorf("Draft = %q", c.Draft)
	}
}

func TestFollowUpInputDefaultsPreviousPrompt(t *testing.T) {
	c := NewController()
	in := c.FollowUpInput()
	if in.PreviousPrompt != "(none)" {
		t.Errorf("PreviousPrompt = %q, want placeholder when empty", in.PreviousPrompt)
	}
}
