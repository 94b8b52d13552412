// Package timer implements the playground sprint timer. The timer is
// display-driven: the TUI ticks it and renders Remaining; nothing blocks
// on it.
package timer

import (
	"fmt"
	"time"
)

// Mode identifies a sprint duration.
type Mode string

const (
	ModeNone Mode = ""
	Mode90s  Mode = "90s"
	Mode5m   Mode = "5m"
	Mode10m  Mode = "10m"
)

// Modes lists the selectable sprint durations in display order.
var Modes = []Mode{Mode90s, Mode5m, Mode10m}

// Duration returns the sprint length for the mode, zero for ModeNone.
func (m Mode) Duration() time.Duration {
	switch m {
	case Mode90s:
		return 90 * time.Second
	case Mode5m:
		return 5 * time.Minute
	case Mode10m:
		return 10 * time.Minute
	}
	return 0
}

// Sprint is a countdown against the wall clock. Restarting with a new mode
// replaces any running sprint.
type Sprint struct {
	mode    Mode
	endsAt  time.Time
	running bool

	now func() time.Time
}

// New creates a stopped sprint timer.
func New() *Sprint {
	return &Sprint{now: time.Now}
}

// Start begins a sprint of the given mode, replacing any running one.
func (s *Sprint) Start(mode Mode) {
	d := mode.Duration()
	if d == 0 {
		s.Stop()
		return
	}
	s.mode = mode
	s.endsAt = s.now().Add(d)
	s.running = true
}

// Stop cancels the sprint and clears the mode.
func (s *Sprint) Stop() {
	s.mode = ModeNone
	s.endsAt = time.Time{}
	s.running = false
}

// Running reports whether a sprint is counting down.
func (s *Sprint) Running() bool {
	return s.running
}

// Mode returns the selected mode. It survives expiry so the view can keep
// showing which sprint just finished.
func (s *Sprint) Mode() Mode {
	return s.mode
}

// Remaining returns the whole seconds left, rounded up so the display
// never shows 0 while time remains. Zero when stopped or expired.
func (s *Sprint) Remaining() int {
	if !s.running {
		return 0
	}
	left := s.endsAt.Sub(s.now())
	if left <= 0 {
		return 0
	}
	return int((left + time.Second - 1) / time.Second)
}

// Tick advances the timer against the clock. It returns true exactly once,
// on the tick where the sprint expires; the mode label is kept.
func (s *Sprint) Tick() bool {
	if !s.running {
		return false
	}
	if s.now().Before(s.endsAt) {
		return false
	}
	s.running = false
	s.endsAt = time.Time{}
	return true
}

// Display formats the remaining time as M:SS, or the empty string when no
// sprint is selected.
func (s *Sprint) Display() string {
	if s.mode == ModeNone {
		return ""
	}
	rem := s.Remaining()
	return fmt.Sprintf("%d:%02d", rem/60, rem%60)
}
