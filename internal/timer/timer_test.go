package timer

import (
	"testing"
	"time"
)

func newFakeSprint(at *time.Time) *Sprint {
	s := New()
	s.now = func() time.Time { return *at }
	return s
}

func TestStartAndRemaining(t *testing.T) {
	at := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	s := newFakeSprint(&at)

	s.Start(Mode90s)
	if !s.Running() {
		t.Fatal("sprint should be running after Start")
	}
	if got := s.Remaining(); got != 90 {
		t.Errorf("Remaining = %d, want 90", got)
	}

	at = at.Add(30 * time.Second)
	if got := s.Remaining(); got != 60 {
		t.Errorf("Remaining = %d, want 60", got)
	}
}

func TestRemainingRoundsUp(t *testing.T) {
	at := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	s := newFakeSprint(&at)

	s.Start(Mode90s)
	at = at.Add(250 * time.Millisecond)
	if got := s.Remaining(); got != 90 {
		t.Errorf("Remaining = %d, want 90 (partial seconds round up)", got)
	}
	at = at.Add(time.Second)
	if got := s.Remaining(); got != 89 {
		t.Errorf("Remaining = %d, want 89", got)
	}
}

func TestTickExpiresOnceAndKeepsMode(t *testing.T) {
	at := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	s := newFakeSprint(&at)

	s.Start(Mode90s)
	if s.Tick() {
		t.Fatal("Tick fired before expiry")
	}

	at = at.Add(91 * time.Second)
	if !s.Tick() {
		t.Fatal("Tick should fire at expiry")
	}
	if s.Tick() {
		t.Fatal("Tick fired twice for one expiry")
	}
	if s.Running() {
		t.Error("sprint still running after expiry")
	}
	if s.Remaining() != 0 {
		t.Errorf("Remaining = %d, want 0 after expiry", s.Remaining())
	}
	if s.Mode() != Mode90s {
		t.Errorf("Mode = %q, want the label kept after expiry", s.Mode())
	}
}

func TestStopClearsMode(t *testing.T) {
	at := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	s := newFakeSprint(&at)

	s.Start(Mode5m)
	s.Stop()
	if s.Running() || s.Mode() != ModeNone || s.Remaining() != 0 {
		t.Error("Stop must clear running state, mode, and remaining time")
	}
}

func TestRestartReplacesSprint(t *testing.T) {
	at := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	s := newFakeSprint(&at)

	s.Start(Mode10m)
	at = at.Add(5 * time.Minute)
	s.Start(Mode90s)
	if got := s.Remaining(); got != 90 {
		t.Errorf("Remaining = %d, want 90 after restart", got)
	}
	if s.Mode() != Mode90s {
		t.Errorf("Mode = %q, want %q", s.Mode(), Mode90s)
	}
}

func TestDisplay(t *testing.T) {
	at := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	s := newFakeSprint(&at)

	if got := s.Display(); got != "" {
		t.Errorf("Display = %q, want empty when no sprint selected", got)
	}
	s.Start(Mode5m)
	if got := s.Display(); got != "5:00" {
		t.Errorf("Display = %q, want 5:00", got)
	}
	at = at.Add(4*time.Minute + 55*time.Second)
	if got := s.Display(); got != "0:05" {
		t.Errorf("Display = %q, want 0:05", got)
	}
}

func TestDurations(t *testing.T) {
	cases := []struct {
		mode Mode
		want time.Duration
	}{
		{Mode90s, 90 * time.Second},
		{Mode5m, 5 * time.Minute},
		{Mode10m, 10 * time.Minute},
		{ModeNone, 0},
	}
	for _, tc := range cases {
		if got := tc.mode.Duration(); got != tc.want {
			t.Errorf("Duration(%q) = %v, want %v", tc.mode, got, tc.want)
		}
	}
}
