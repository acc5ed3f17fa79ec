package chatbot

import (
	"context"
	"errors"
	"time"

	"log/slog"

	openai "github.com/sashabaranov/go-openai"

	"github.com/swayogurja/swayog-backend/internal/entity"
)

const (
	// Gemini's OpenAI-compatible endpoint.
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta/openai/"

	defaultRequestTimeout = 30 * time.Second
	maxAttempts           = 3
)

// models is the fallback ladder, tried in order. A rate limit retries the
// same model; any other failure moves on to the next one.
var models = []string{"gemini-2.0-flash", "gemini-1.5-flash"}

type completionClient interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Gemini answers chats through the Gemini API. Every call walks the model
// ladder with bounded retries; it never returns an error, only the canned
// fallback reply when all models fail.
type Gemini struct {
	cli     completionClient
	timeout time.Duration
	// sleep is swapped out in tests so backoff does not wall-clock wait.
	sleep func(ctx context.Context, d time.Duration)
}

func newGemini(c *Config) *Gemini {
	cfg := openai.DefaultConfig(c.APIKey)
	cfg.BaseURL = c.BaseURL
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}

	timeout := c.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	return &Gemini{
		cli:     openai.NewClientWithConfig(cfg),
		timeout: timeout,
		sleep:   sleepCtx,
	}
}

// Chat produces a reply for the visitor's message given the caller-supplied
// conversation history. The history is trusted as sent; the system prompt is
// prepended on every call, nothing is kept between calls.
func (g *Gemini) Chat(ctx context.Context, message string, history []entity.ChatMessage) string {
	messages := make([]openai.ChatCompletionMessage, 0, len(history)+2)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: systemPrompt,
	})
	for _, h := range history {
		role := openai.ChatMessageRoleAssistant
		if h.Sender == "user" {
			role = openai.ChatMessageRoleUser
		}
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    role,
			Content: h.Text,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: message,
	})

	for _, model := range models {
		for attempt := 0; attempt < maxAttempts; attempt++ {
			reply, err := g.complete(ctx, model, messages)
			if err == nil {
				return reply
			}

			if isRateLimited(err) && attempt < maxAttempts-1 {
				wait := time.Duration(attempt+1) * 2 * time.Second
				slog.Default().InfoContext(ctx, "chatbot rate limited, retrying",
					slog.String("model", model),
					slog.Int("attempt", attempt+1),
					slog.Duration("wait", wait),
				)
				g.sleep(ctx, wait)
				continue
			}

			slog.Default().ErrorContext(ctx, "chatbot model failed",
				slog.String("model", model),
				slog.Int("attempt", attempt+1),
				slog.String("error", err.Error()),
			)
			break
		}
	}

	return fallbackReply
}

func (g *Gemini) complete(ctx context.Context, model string, messages []openai.ChatCompletionMessage) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	resp, err := g.cli.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    model,
		Messages: messages,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", errors.New("empty completion")
	}
	return resp.Choices[0].Message.Content, nil
}

func isRateLimited(err error) bool {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.HTTPStatusCode == 429
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return reqErr.HTTPStatusCode == 429
	}
	return false
}

func sleepCtx(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
