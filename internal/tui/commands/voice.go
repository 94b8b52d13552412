package commands

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/carbon-dev/carbon/internal/tui"
	"github.com/carbon-dev/carbon/internal/voice"
)

// voiceTimeout bounds one recording round. Generous: the transcriber only
// exits when the speaker stops.
const voiceTimeout = 2 * time.Minute

// TranscribeCmd runs the external transcriber and reports its text.
func TranscribeCmd(capture *voice.Capture) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), voiceTimeout)
		defer cancel()
		text, err := capture.Transcribe(ctx)
		return tui.VoiceTextMsg{Text: text, Err: err}
	}
}
