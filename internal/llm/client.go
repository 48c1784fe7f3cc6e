package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
	"golang.org/x/time/rate"

	"github.com/jobscout-app/jobscout-api/internal/apperr"
	"github.com/jobscout-app/jobscout-api/internal/config"
	"github.com/jobscout-app/jobscout-api/internal/content"
)

// Client wraps the multimodal completion provider. It is constructed once at
// startup and injected into the services that need it.
type Client struct {
	model   llms.Model
	limiter *rate.Limiter
	log     zerolog.Logger
}

// New builds the Gemini-backed client. The API key requirement is enforced
// here so a missing key fails at startup instead of on the first request.
func New(ctx context.Context, cfg config.LLMConfig, log zerolog.Logger) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("llm: API key is required")
	}

	model, err := googleai.New(ctx,
		googleai.WithAPIKey(cfg.APIKey),
		googleai.WithDefaultModel(cfg.Model),
	)
	if err != nil {
		return nil, fmt.Errorf("llm: create Gemini client: %w", err)
	}

	return &Client{
		model:   model,
		limiter: rate.NewLimiter(rate.Limit(cfg.RequestsPerMinute/60.0), 1),
		log:     log,
	}, nil
}

// NewWithModel builds a client around an already-constructed model. Tests use
// this to substitute a fake provider.
func NewWithModel(model llms.Model, log zerolog.Logger) *Client {
	return &Client{model: model, log: log}
}

// Request carries one extraction call's inputs. At least one of Message and
// Parts must be set.
type Request struct {
	Instruction string
	Message     string
	Parts       []content.Part
}

// Generate issues a single completion call and returns the model's full text
// response, unparsed. There are no retries: a provider failure propagates to
// the caller as an ExtractionProviderError.
func (c *Client) Generate(ctx context.Context, req Request) (string, error) {
	if strings.TrimSpace(req.Message) == "" && len(req.Parts) == 0 {
		return "", apperr.New(apperr.KindInvalidRequest,
			"either a message or an attachment is required", nil)
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return "", apperr.New(apperr.KindProvider, "waiting for provider rate limit", err)
		}
	}

	prompt := req.Instruction
	if msg := strings.TrimSpace(req.Message); msg != "" {
		prompt += "\n\n" + msg
	}

	parts := make([]llms.ContentPart, 0, len(req.Parts)+1)
	parts = append(parts, llms.TextPart(prompt))
	for _, p := range req.Parts {
		parts = append(parts, llms.BinaryPart(p.MIMEType, p.Data))
	}

	messages := []llms.MessageContent{{
		Role:  llms.ChatMessageTypeHuman,
		Parts: parts,
	}}

	resp, err := c.model.GenerateContent(ctx, messages)
	if err != nil {
		return "", apperr.New(apperr.KindProvider, "model call failed", err)
	}
	if len(resp.Choices) == 0 {
		return "", apperr.New(apperr.KindProvider, "model returned no choices", nil)
	}

	text := resp.Choices[0].Content
	c.log.Debug().Int("response_chars", len(text)).Msg("model call completed")
	return text, nil
}
