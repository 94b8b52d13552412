package domain

import "context"

// PromptInput carries the inputs for an initial pressure prompt.
type PromptInput struct {
	Feeling       string
	Medium        Medium
	PressureStyle PressureStyle
	Intensity     Intensity
}

// FollowUpInput carries the inputs for a follow-up pressure prompt.
type FollowUpInput struct {
	PromptInput
	PreviousPrompt string
	CurrentDraft   string
}

// Generator produces creative pressure prompts. Both operations are total:
// on any failure they return a usable fallback string instead of an error,
// so generation can never interrupt a writing session.
type Generator interface {
	Initial(ctx context.Context, in PromptInput) string
	FollowUp(ctx context.Context, in FollowUpInput) string
}

// Store defines archive persistence. List returns entries newest first.
type Store interface {
	List(ctx context.Context) ([]Entry, error)
	Create(ctx context.Context, snap Snapshot) (Entry, error)
}
