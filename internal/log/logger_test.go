package log

import (
	"testing"
	"time"
)

func TestAppendAndReadAll(t *testing.T) {
	logger, err := NewLogger(t.TempDir())
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}

	events := []LogEvent{
		{Event: EventSessionSaved, Mode: "LOCAL", EntryID: "01ABC", Medium: "Poem", DraftChars: 42},
		{Event: EventStorageFallback, Error: "connection refused"},
		{Event: EventModeChanged, Mode: "REMOTE"},
	}
	for _, e := range events {
		if err := logger.Append(e); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	got, err := logger.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("ReadAll returned %d events, want 3", len(got))
	}
	if got[0].Event != EventSessionSaved || got[0].DraftChars != 42 {
		t.Errorf("first event = %+v", got[0])
	}
	if got[1].Error != "connection refused" {
		t.Errorf("second event = %+v", got[1])
	}
	if got[0].Time.IsZero() {
		t.Error("Append should stamp a zero time")
	}
}

func TestReadAllMissingFile(t *testing.T) {
	logger, err := NewLogger(t.TempDir())
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	events, err := logger.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(events) != 0 {
		t.Errorf("expected no events, got %d", len(events))
	}
}

func TestNilLoggerAppendIsNoOp(t *testing.T) {
	var logger *Logger
	if err := logger.Append(LogEvent{Event: EventGenerationFailed, Time: time.Now()}); err != nil {
		t.Errorf("nil logger Append returned %v", err)
	}
}
