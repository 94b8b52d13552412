package voice

import (
	"context"
	"testing"

	"github.com/carbon-dev/carbon/internal/log"
)

func testLogger(t *testing.T) *log.Logger {
	t.Helper()
	logger, err := log.NewLogger(t.TempDir())
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	return logger
}

func TestEmptyCommandIsUnavailable(t *testing.T) {
	c := NewCapture("", testLogger(t))
	if c.Available() {
		t.Error("empty command line should disable voice intake")
	}
}

func TestMissingBinaryLogsOnce(t *testing.T) {
	logger := testLogger(t)
	c := NewCapture("definitely-not-a-real-transcriber-4a7f", logger)

	if c.Available() {
		t.Fatal("missing binary should be unavailable")
	}
	// Repeat checks must not re-log.
	c.Available()
	c.Available()

	events, err := logger.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	count := 0
	for _, e := range events {
		if e.Event == log.EventVoiceUnavailable {
			count++
		}
	}
	if count != 1 {
		t.Errorf("voice_unavailable logged %d times, want 1", count)
	}
}

func TestTranscribeReturnsTrimmedOutput(t *testing.T) {
	c := NewCapture("echo  a line of feeling ", testLogger(t))
	if !c.Available() {
		t.Skip("echo not on PATH")
	}
	got, err := c.Transcribe(context.Background())
	if err != nil {
		t.Fatalf("Transcribe: %v", err)
	}
	if got != "a line of feeling" {
		t.Errorf("Transcribe = %q", got)
	}
}
