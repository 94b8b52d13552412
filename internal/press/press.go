package press

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/carbon-dev/carbon/internal/domain"
	"github.com/carbon-dev/carbon/internal/log"
)

// Fallback strings returned in-band when generation cannot complete.
// Generation failure must never interrupt a writing session.
const (
	FallbackNoKey      = "No API key configured. Set GEMINI_API_KEY and restart to apply pressure."
	FallbackEmpty      = "The pressure failed. Try again."
	FallbackDisconnect = "Connection to the Oracle lost. Use your own silence as the prompt."
)

// Client generates pressure prompts through the Gemini API. It implements
// domain.Generator. A Client with no API key is still usable; every call
// returns FallbackNoKey.
type Client struct {
	genai  *genai.Client
	model  string
	logger *log.Logger
}

// NewClient creates a Client for the given model. An empty apiKey yields a
// degraded client rather than an error.
func NewClient(ctx context.Context, apiKey, model string, logger *log.Logger) (*Client, error) {
	c := &Client{model: model, logger: logger}
	if apiKey == "" {
		return c, nil
	}

	gc, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}
	c.genai = gc
	return c, nil
}

// Initial implements domain.Generator.
func (c *Client) Initial(ctx context.Context, in domain.PromptInput) string {
	return c.generate(ctx, buildInitialSystem(in), buildInitialQuery(in))
}

// FollowUp implements domain.Generator.
func (c *Client) FollowUp(ctx context.Context, in domain.FollowUpInput) string {
	return c.generate(ctx, buildFollowUpSystem(in), buildFollowUpQuery(in))
}

func (c *Client) generate(ctx context.Context, system, query string) string {
	if c.genai == nil {
		return FallbackNoKey
	}

	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(system, genai.RoleUser),
	}
	contents := []*genai.Content{genai.NewContentFromText(query, genai.RoleUser)}

	res, err := c.genai.Models.GenerateContent(ctx, c.model, contents, cfg)
	if err != nil {
		_ = c.logger.Append(log.LogEvent{Event: log.EventGenerationFailed, Error: err.Error()})
		return FallbackDisconnect
	}

	text := strings.TrimSpace(res.Text())
	if text == "" {
		_ = c.logger.Append(log.LogEvent{Event: log.EventGenerationFailed, Reason: "empty response"})
		return FallbackEmpty
	}
	return text
}
