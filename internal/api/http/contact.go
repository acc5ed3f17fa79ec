package http

import (
	"errors"
	"net/http"

	"log/slog"

	"github.com/go-chi/render"

	"github.com/swayogurja/swayog-backend/internal/form"
	"github.com/swayogurja/swayog-backend/internal/mail"
)

// submitContact validates and emails. Nothing is persisted, so a send
// failure is a hard error: a 200 here must mean the message actually left.
func (s *Server) submitContact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	l := slog.Default()

	var req form.SubmitContactRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		render.Render(w, r, newStatusResponse(http.StatusBadRequest, false, "Invalid request body"))
		return
	}

	if err := req.Validate(); err != nil {
		var ve *form.Error
		if errors.As(err, &ve) {
			render.Render(w, r, newStatusResponse(http.StatusBadRequest, false, ve.Message))
			return
		}
		render.Render(w, r, newStatusResponse(http.StatusInternalServerError, false, "Internal server error"))
		return
	}

	if _, err := s.mailer.ReceiverEmail(); err != nil {
		l.ErrorContext(ctx, "contact message rejected, mailer not configured", slog.String("error", err.Error()))
		render.Render(w, r, newStatusResponse(http.StatusInternalServerError, false,
			"Email service is not configured. Please contact the administrator."))
		return
	}

	msg := req.ToMessage()
	if err := s.mailer.SendContactMessage(ctx, &msg); err != nil {
		kind := mail.ClassifyError(err)
		l.ErrorContext(ctx, "can't send contact message",
			slog.String("kind", kind.String()),
			slog.String("error", err.Error()),
		)

		var userMessage string
		switch kind {
		case mail.KindConfiguration:
			userMessage = "Email service is not configured. Please contact the administrator."
		case mail.KindAuthentication:
			userMessage = "Email authentication failed. Please contact the administrator."
		case mail.KindConnection:
			userMessage = "Connection to email server failed. Please try again later."
		default:
			userMessage = "Failed to send email. Please try again later or contact us directly."
		}
		render.Render(w, r, newStatusResponse(http.StatusInternalServerError, false, userMessage))
		return
	}

	render.Render(w, r, newStatusResponse(http.StatusOK, true, "Message sent successfully"))
}
