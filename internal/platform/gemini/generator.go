package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"time"

	"google.golang.org/genai"

	"github.com/cardforge/cardforge/internal/config"
	"github.com/cardforge/cardforge/internal/domain"
	"github.com/cardforge/cardforge/internal/generation"
)

// contentCaller is the slice of the genai client this package uses.
// *genai.Models satisfies it; tests substitute a fake.
type contentCaller interface {
	GenerateContent(
		ctx context.Context,
		model string,
		contents []*genai.Content,
		config *genai.GenerateContentConfig,
	) (*genai.GenerateContentResponse, error)
}

// Generator implements generation.Generator using the Gemini API.
type Generator struct {
	logger  *slog.Logger
	config  config.LLMConfig
	prompts *generation.PromptBuilder
	models  contentCaller
	model   string
}

// NewGenerator creates a Generator from the provided configuration.
// The API key and model name must be set; an alternate prompt template may
// be supplied via config.PromptTemplatePath.
func NewGenerator(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) (*Generator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("%w: gemini API key cannot be empty", generation.ErrInvalidConfig)
	}

	if cfg.ModelName == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}

	prompts := generation.NewPromptBuilder()
	if cfg.PromptTemplatePath != "" {
		var err error
		prompts, err = generation.NewPromptBuilderFromFile(cfg.PromptTemplatePath)
		if err != nil {
			return nil, err
		}
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v",
			generation.ErrInvalidConfig, err)
	}

	return &Generator{
		logger:  logger,
		config:  cfg,
		prompts: prompts,
		models:  client.Models,
		model:   cfg.ModelName,
	}, nil
}

// GenerateCards builds the prompt for the request, calls the Gemini API and
// decodes the response into flashcards. The whole exchange, retries
// included, is bounded by the configured timeout.
func (g *Generator) GenerateCards(
	ctx context.Context,
	req domain.GenerationRequest,
) ([]domain.Flashcard, error) {
	prompt, err := g.prompts.Build(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", generation.ErrGenerationFailed, err)
	}

	if g.config.TimeoutSeconds > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(g.config.TimeoutSeconds)*time.Second)
		defer cancel()
	}

	text, err := g.generateText(ctx, req.ID.String(), prompt)
	if err != nil {
		return nil, err
	}

	cards, err := generation.DecodeCards(text)
	if err != nil {
		var decodeErr *generation.DecodeError
		if errors.As(err, &decodeErr) {
			g.logger.ErrorContext(ctx, "failed to decode model response",
				"request_id", req.ID.String(),
				"error", decodeErr.Err,
				"response_length", len(decodeErr.Raw))
		}
		return nil, err
	}

	// The decoded count is not enforced against the request; the model
	// occasionally returns a few more or fewer usable cards.
	if len(cards) != req.CardCount {
		g.logger.WarnContext(ctx, "decoded card count differs from requested",
			"request_id", req.ID.String(),
			"requested", req.CardCount,
			"decoded", len(cards))
	}

	return cards, nil
}

// generateText sends the prompt to the Gemini API and returns the raw
// response text. Transient failures are retried up to config.MaxRetries
// times with exponential backoff and jitter; safety blocks and empty
// responses are permanent and returned immediately.
func (g *Generator) generateText(ctx context.Context, requestID, prompt string) (string, error) {
	if prompt == "" {
		return "", generation.ErrEmptyPrompt
	}

	maxRetries := g.config.MaxRetries
	baseDelaySeconds := g.config.RetryDelaySeconds
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	if maxRetries < 0 {
		g.logger.WarnContext(ctx, "invalid max retries value, using default", "max_retries", 3)
		maxRetries = 3
	}

	if baseDelaySeconds < 1 {
		g.logger.WarnContext(ctx, "invalid retry delay value, using default", "base_delay_seconds", 2)
		baseDelaySeconds = 2
	}

	for attempt := 0; ; attempt++ {
		attemptNum := attempt + 1
		g.logger.InfoContext(ctx, "making Gemini API call",
			"request_id", requestID,
			"model", g.model,
			"attempt", attemptNum,
			"max_attempts", maxRetries+1)

		text, transient, err := g.callOnce(ctx, prompt)
		if err == nil {
			g.logger.InfoContext(ctx, "Gemini API call successful",
				"request_id", requestID,
				"attempt", attemptNum,
				"response_length", len(text))
			return text, nil
		}

		g.logger.ErrorContext(ctx, "Gemini API call failed",
			"request_id", requestID,
			"attempt", attemptNum,
			"error", err)

		if !transient {
			return "", err
		}

		if attempt >= maxRetries {
			return "", fmt.Errorf("%w: exceeded maximum retry attempts (%d): %v",
				generation.ErrTransientFailure, maxRetries, err)
		}

		// delay = baseDelay * 2^attempt * (0.5 + rand(0, 0.5))
		backoffSeconds := float64(baseDelaySeconds) * math.Pow(2, float64(attempt))
		jitterFactor := 0.5 + rng.Float64()*0.5
		delay := time.Duration(backoffSeconds * jitterFactor * float64(time.Second))

		g.logger.InfoContext(ctx, "retrying after delay",
			"request_id", requestID,
			"attempt", attemptNum,
			"delay", delay.String())

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return "", fmt.Errorf("%w: %v", generation.ErrTransientFailure, ctx.Err())
		}
	}
}

// callOnce performs a single GenerateContent exchange. transient reports
// whether the failure is worth retrying.
func (g *Generator) callOnce(ctx context.Context, prompt string) (text string, transient bool, err error) {
	resp, err := g.models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		// Network, auth, quota and provider-side faults all surface here;
		// treat them as transient and let the retry budget decide.
		return "", true, fmt.Errorf("gemini API call: %w", err)
	}

	if resp == nil || len(resp.Candidates) == 0 {
		return "", false, fmt.Errorf("%w: no content generated", generation.ErrInvalidResponse)
	}

	candidate := resp.Candidates[0]
	if candidate.FinishReason == genai.FinishReasonSafety {
		return "", false, fmt.Errorf("%w: finish reason %q", generation.ErrContentBlocked, candidate.FinishReason)
	}

	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", false, fmt.Errorf("%w: empty content in response", generation.ErrInvalidResponse)
	}

	for _, part := range candidate.Content.Parts {
		if part != nil {
			text += part.Text
		}
	}

	if text == "" {
		return "", false, fmt.Errorf("%w: response contains no text parts", generation.ErrInvalidResponse)
	}

	return text, false, nil
}
