package http

import (
	"net/http"

	"log/slog"

	"github.com/go-chi/render"

	"github.com/swayogurja/swayog-backend/internal/form"
)

// chatRecoverer keeps the chatbot envelope intact even when the handler
// blows up: the widget renders the reply field verbatim, so a plain 500
// page would leak into the conversation.
func (s *Server) chatRecoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rvr := recover(); rvr != nil {
				slog.Default().ErrorContext(r.Context(), "chatbot handler panicked", slog.Any("panic", rvr))
				render.Render(w, r, newChatResponse(http.StatusInternalServerError, false,
					"Something went wrong. Please try again."))
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// chat proxies the visitor's question to the assistant. The assistant never
// errors: provider failures surface as the canned contact reply, so the only
// client error here is a missing or non-string message.
func (s *Server) chat(w http.ResponseWriter, r *http.Request) {
	var req form.ChatRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		render.Render(w, r, newChatResponse(http.StatusBadRequest, false, "Please send a valid message."))
		return
	}

	text, ok := req.Text()
	if !ok {
		render.Render(w, r, newChatResponse(http.StatusBadRequest, false, "Please send a valid message."))
		return
	}

	reply := s.assistant.Chat(r.Context(), text, req.History)
	render.Render(w, r, newChatResponse(http.StatusOK, true, reply))
}
