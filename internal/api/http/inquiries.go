package http

import (
	"errors"
	"net/http"
	"strconv"

	"log/slog"

	"github.com/go-chi/render"

	"github.com/swayogurja/swayog-backend/internal/entity"
	"github.com/swayogurja/swayog-backend/internal/form"
	"github.com/swayogurja/swayog-backend/internal/mail"
)

// submitInquiry validates, persists and then tries to notify. Persistence
// succeeding is sufficient for 201: a notification failure is logged with a
// targeted diagnostic and the stored record is returned anyway.
func (s *Server) submitInquiry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	l := slog.Default()

	var req form.SubmitInquiryRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		render.Render(w, r, errInquiryValidation(&form.Error{Message: "Invalid request body"}))
		return
	}

	if err := req.Validate(); err != nil {
		var ve *form.Error
		if errors.As(err, &ve) {
			render.Render(w, r, errInquiryValidation(ve))
			return
		}
		render.Render(w, r, errInquiryInternal())
		return
	}

	inquiry, err := s.repo.Inquiries().AddInquiry(ctx, req.ToInsert())
	if err != nil {
		l.ErrorContext(ctx, "can't store inquiry", slog.String("error", err.Error()))
		render.Render(w, r, errInquiryInternal())
		return
	}

	if _, err := s.mailer.ReceiverEmail(); err != nil {
		// The record is already saved; skipping the notification is the
		// intended degrade.
		l.WarnContext(ctx, "inquiry saved but notification skipped", slog.String("error", err.Error()))
		render.Render(w, r, newInquiryResponse(&inquiry))
		return
	}

	if err := s.mailer.SendNewInquiry(ctx, &inquiry); err != nil {
		kind := mail.ClassifyError(err)
		l.ErrorContext(ctx, "inquiry saved but notification failed",
			slog.String("kind", kind.String()),
			slog.String("error", err.Error()),
		)
		switch kind {
		case mail.KindAuthentication:
			l.ErrorContext(ctx, "smtp authentication rejected, check EMAIL_USER and EMAIL_PASS")
		case mail.KindConnection:
			l.ErrorContext(ctx, "smtp unreachable, check EMAIL_HOST and EMAIL_PORT")
		}
	}

	render.Render(w, r, newInquiryResponse(&inquiry))
}

// listInquiries is the token-gated operational read path.
func (s *Server) listInquiries(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	var (
		inquiries []entity.Inquiry
		err       error
	)
	if email := r.URL.Query().Get("email"); email != "" {
		inquiries, err = s.repo.Inquiries().GetInquiriesByEmail(ctx, email)
	} else {
		inquiries, err = s.repo.Inquiries().GetInquiriesPaged(ctx, limit, offset)
	}
	if err != nil {
		slog.Default().ErrorContext(ctx, "can't list inquiries", slog.String("error", err.Error()))
		render.Render(w, r, errInquiryInternal())
		return
	}

	render.Render(w, r, &inquiryListResponse{
		Inquiries: inquiries,
		Limit:     limit,
		Offset:    offset,
	})
}
