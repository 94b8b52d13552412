// Package voice captures spoken intake through an external transcriber
// command. The command is expected to record until it exits and print the
// transcribed text on stdout. When no command is available the feature is
// reported unavailable exactly once and hidden.
package voice

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/carbon-dev/carbon/internal/log"
)

// Capture shells out to a configured transcriber.
type Capture struct {
	command string
	args    []string
	logger  *log.Logger

	available bool
	checked   bool
}

// NewCapture creates a Capture for a transcriber command line. The first
// field is the binary, the rest are fixed arguments. An empty command line
// means voice intake is disabled.
func NewCapture(commandLine string, logger *log.Logger) *Capture {
	fields := strings.Fields(commandLine)
	c := &Capture{logger: logger}
	if len(fields) > 0 {
		c.command = fields[0]
		c.args = fields[1:]
	}
	return c
}

// Available reports whether the transcriber can run. The lookup happens
// once; an unavailable transcriber is logged once and never re-probed.
func (c *Capture) Available() bool {
	if c.checked {
		return c.available
	}
	c.checked = true

	if c.command == "" {
		return false
	}
	if _, err := exec.LookPath(c.command); err != nil {
		_ = c.logger.Append(log.LogEvent{
			Event:  log.EventVoiceUnavailable,
			Reason: fmt.Sprintf("transcriber %q not found", c.command),
		})
		return false
	}
	c.available = true
	return true
}

// Transcribe runs the transcriber and returns the trimmed output. The call
// blocks until the command exits, so run it from an async command.
func (c *Capture) Transcribe(ctx context.Context) (string, error) {
	if !c.Available() {
		return "", fmt.Errorf("voice transcriber unavailable")
	}

	out, err := exec.CommandContext(ctx, c.command, c.args...).Output()
	if err != nil {
		_ = c.logger.Append(log.LogEvent{Event: log.EventVoiceUnavailable, Error: err.Error()})
		return "", fmt.Errorf("run transcriber: %w", err)
	}
	return strings.TrimSpace(string(out)), nil
}
