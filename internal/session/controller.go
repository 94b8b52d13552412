// Package session owns the live writing session: the draft fields, the
// session clock, the revision heuristic, and the single-generation guard.
package session

import (
	"time"
	"unicode/utf8"

	"github.com/carbon-dev/carbon/internal/domain"
	"github.com/carbon-dev/carbon/internal/intensity"
)

// minFeelingLen guards the INTAKE -> VESSEL transition.
const minFeelingLen = 5

// revisionDelta is the edit-significance threshold: a draft change counts
// as a revision when the length delta reaches it. Tunable heuristic, not a
// real diff.
const revisionDelta = 3

// Controller holds all mutable session state. It is driven exclusively
// from the TUI update loop, so it needs no locking; async work (generation,
// persistence) happens outside and reports back through messages.
type Controller struct {
	Feeling       string
	Medium        domain.Medium
	PressureStyle domain.PressureStyle
	Prompt        string
	Draft         string
	Playground    string

	startedAt     time.Time
	revisionCount int
	lastDraft     string
	generating    bool

	now func() time.Time
}

// NewController creates a Controller with the default pressure style.
func NewController() *Controller {
	return &Controller{
		PressureStyle: domain.StyleGentle,
		now:           time.Now,
	}
}

// Intensity derives the current tier from the feeling text. It is always
// recomputed, never stored.
func (c *Controller) Intensity() intensity.Result {
	return intensity.Classify(c.Feeling)
}

// CanAdvance reports whether the feeling is substantial enough to leave
// intake.
func (c *Controller) CanAdvance() bool {
	return utf8.RuneCountInString(c.Feeling) > minFeelingLen
}

// AppendFeeling adds transcribed text to the feeling, used by voice intake.
func (c *Controller) AppendFeeling(text string) {
	if text == "" {
		return
	}
	if c.Feeling == "" {
		c.Feeling = text
		return
	}
	c.Feeling = c.Feeling + " " + text
}

// BeginGeneration marks a generation call in flight. It returns false if
// one is already outstanding; callers must then ignore the trigger.
func (c *Controller) BeginGeneration() bool {
	if c.generating {
		return false
	}
	c.generating = true
	return true
}

// EndGeneration clears the in-flight flag.
func (c *Controller) EndGeneration() {
	c.generating = false
}

// Generating reports whether a generation call is outstanding.
func (c *Controller) Generating() bool {
	return c.generating
}

// EnterWorkshop starts the working phase: the session clock starts and the
// revision counter resets. Called once the initial prompt has resolved.
func (c *Controller) EnterWorkshop(prompt string) {
	c.Prompt = prompt
	c.startedAt = c.now()
	c.revisionCount = 0
	c.lastDraft = ""
}

// SetDraft records a draft edit and applies the revision heuristic: the
// count increments when the length delta reaches revisionDelta, or when the
// draft goes from empty to non-empty. Rapid small edits do not over-count.
func (c *Controller) SetDraft(text string) {
	if text == c.lastDraft {
		return
	}
	cur := utf8.RuneCountInString(text)
	prev := utf8.RuneCountInString(c.lastDraft)
	delta := cur - prev
	if delta < 0 {
		delta = -delta
	}
	if delta >= revisionDelta || (cur > 0 && prev == 0) {
		c.revisionCount++
	}
	c.lastDraft = text
	c.Draft = text
}

// InsertSnippet appends a snippet to the draft on its own line.
func (c *Controller) InsertSnippet(snippet string) {
	if c.Draft == "" {
		c.SetDraft(snippet)
		return
	}
	c.SetDraft(c.Draft + "\n" + snippet)
}

// RevisionCount returns the current revision count.
func (c *Controller) RevisionCount() int {
	return c.revisionCount
}

// Snapshot freezes the session for persistence. Time spent is measured
// from workshop entry; draft characters are recomputed by the stores.
func (c *Controller) Snapshot() domain.Snapshot {
	started := c.startedAt
	if started.IsZero() {
		started = c.now()
	}
	spent := int(c.now().Sub(started).Seconds())
	if spent < 0 {
		spent = 0
	}

	return domain.Snapshot{
		Feeling:       c.Feeling,
		Intensity:     c.Intensity().Level,
		Medium:        c.Medium,
		PressureStyle: c.PressureStyle,
		Prompt:        c.Prompt,
		Draft:         c.Draft,
		Playground:    c.Playground,
		TimeSpentSec:  spent,
		RevisionCount: c.revisionCount,
	}
}

// Reset clears every session field. Runs unconditionally after each save
// attempt, whether persistence went remote, fell back, or stayed local.
func (c *Controller) Reset() {
	c.Feeling = ""
	c.Medium = ""
	c.Prompt = ""
	c.Draft = ""
	c.Playground = ""
	c.startedAt = time.Time{}
	c.revisionCount = 0
	c.lastDraft = ""
	c.generating = false
}

// LoadEntry seeds the session from an archived entry and re-enters the
// working phase. The clock restarts; the original elapsed time does not
// resume.
func (c *Controller) LoadEntry(e domain.Entry) {
	c.Feeling = e.Feeling
	c.Medium = e.Medium
	c.PressureStyle = e.PressureStyle
	if c.PressureStyle == "" {
		c.PressureStyle = domain.StyleGentle
	}
	c.Prompt = e.Prompt
	c.Draft = e.Draft
	c.Playground = e.Playground
	c.startedAt = c.now()
	c.revisionCount = 0
	c.lastDraft = e.Draft
}

// PromptInput assembles the generation inputs for an initial prompt.
func (c *Controller) PromptInput() domain.PromptInput {
	return domain.PromptInput{
		Feeling:       c.Feeling,
		Medium:        c.Medium,
		PressureStyle: c.PressureStyle,
		Intensity:     c.Intensity().Level,
	}
}

// FollowUpInput assembles the generation inputs for a follow-up prompt.
func (c *Controller) FollowUpInput() domain.FollowUpInput {
	prev := c.Prompt
	if prev == "" {
		prev = "(none)"
	}
	return domain.FollowUpInput{
		PromptInput:    c.PromptInput(),
		PreviousPrompt: prev,
		CurrentDraft:   c.Draft,
	}
}
