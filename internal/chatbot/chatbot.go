package chatbot

import (
	"context"
	"log/slog"
	"time"

	"github.com/swayogurja/swayog-backend/internal/dependency"
	"github.com/swayogurja/swayog-backend/internal/entity"
)

type Config struct {
	APIKey         string        `mapstructure:"api_key"`
	BaseURL        string        `mapstructure:"base_url"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

// New selects the assistant implementation once at process start. Without an
// API key every chat gets the canned contact reply; the endpoint itself stays
// up either way.
func New(c *Config) dependency.Assistant {
	if c.APIKey == "" {
		slog.Default().Warn("GEMINI_API_KEY not set, chatbot will use fallback responses")
		return &fallbackAssistant{}
	}
	return newGemini(c)
}

type fallbackAssistant struct{}

func (fallbackAssistant) Chat(_ context.Context, _ string, _ []entity.ChatMessage) string {
	return fallbackReply
}
