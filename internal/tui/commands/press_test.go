package commands

import (
	"context"
	"testing"

	"github.com/carbon-dev/carbon/internal/domain"
	"github.com/carbon-dev/carbon/internal/tui"
)

// stubGenerator returns canned prompts without any network calls.
type stubGenerator struct {
	initial  string
	followUp string
}

func (s stubGenerator) Initial(context.Context, domain.PromptInput) string {
	return s.initial
}

func (s stubGenerator) FollowUp(context.Context, domain.FollowUpInput) string {
	return s.followUp
}

func TestGenerateInitialCmd(t *testing.T) {
	gen := stubGenerator{initial: "write the ache as weather"}
	cmd := GenerateInitialCmd(gen, domain.PromptInput{Medium: domain.MediumPoem})

	msg, ok := cmd().(tui.PromptGeneratedMsg)
	if !ok {
		t.Fatalf("cmd returned %T, want PromptGeneratedMsg", cmd())
	}
	if msg.Text != "write the ache as weather" {
		t.Errorf("Text = %q", msg.Text)
	}
	if msg.FollowUp {
		t.Error("initial prompt must not be marked as a follow-up")
	}
}

func TestGenerateFollowUpCmd(t *testing.T) {
	gen := stubGenerator{followUp: "now cut the first stanza"}
	cmd := GenerateFollowUpCmd(gen, domain.FollowUpInput{PreviousPrompt: "old"})

	msg, ok := cmd().(tui.PromptGeneratedMsg)
	if !ok {
		t.Fatalf("cmd returned %T, want PromptGeneratedMsg", cmd())
	}
	if msg.Text != "now cut the first stanza" {
		t.Errorf("Text = %q", msg.Text)
	}
	if !msg.FollowUp {
		t.Error("follow-up prompt must be marked as such")
	}
}
