package form

import (
	"github.com/swayogurja/swayog-backend/internal/entity"
)

// ChatRequest is the body of POST /api/chatbot. Message is decoded as any so
// a non-string value can be told apart from a missing one and rejected with
// the same client error either way.
type ChatRequest struct {
	Message any                  `json:"message"`
	History []entity.ChatMessage `json:"history"`
}

// Text returns the message text, false when the message is missing, not a
// string, or empty.
func (r *ChatRequest) Text() (string, bool) {
	s, ok := r.Message.(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}
