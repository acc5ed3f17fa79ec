package http

import (
	"net/http"

	"github.com/go-chi/render"

	"github.com/swayogurja/swayog-backend/internal/entity"
	"github.com/swayogurja/swayog-backend/internal/form"
)

// inquiryErrorResponse is the error envelope of the inquiry endpoint. Field
// is present only for validation failures so the client can highlight the
// offending input.
type inquiryErrorResponse struct {
	HTTPStatusCode int `json:"-"`

	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

func (e *inquiryErrorResponse) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.HTTPStatusCode)
	return nil
}

func errInquiryValidation(ve *form.Error) render.Renderer {
	return &inquiryErrorResponse{
		HTTPStatusCode: http.StatusBadRequest,
		Message:        ve.Message,
		Field:          ve.Field,
	}
}

// errInquiryInternal deliberately carries no detail about what broke.
func errInquiryInternal() render.Renderer {
	return &inquiryErrorResponse{
		HTTPStatusCode: http.StatusInternalServerError,
		Message:        "Failed to submit inquiry. Please try again.",
	}
}

type inquiryResponse struct {
	*entity.Inquiry
}

func (rd *inquiryResponse) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, http.StatusCreated)
	return nil
}

func newInquiryResponse(inq *entity.Inquiry) render.Renderer {
	return &inquiryResponse{Inquiry: inq}
}

// statusResponse is the contact endpoint envelope.
type statusResponse struct {
	HTTPStatusCode int `json:"-"`

	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (e *statusResponse) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.HTTPStatusCode)
	return nil
}

func newStatusResponse(code int, success bool, message string) render.Renderer {
	return &statusResponse{
		HTTPStatusCode: code,
		Success:        success,
		Message:        message,
	}
}

// chatResponse is the chatbot endpoint envelope. Errors ride in the reply
// field so the widget can always display it verbatim.
type chatResponse struct {
	HTTPStatusCode int `json:"-"`

	Success bool   `json:"success"`
	Reply   string `json:"reply"`
}

func (e *chatResponse) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.HTTPStatusCode)
	return nil
}

func newChatResponse(code int, success bool, reply string) render.Renderer {
	return &chatResponse{
		HTTPStatusCode: code,
		Success:        success,
		Reply:          reply,
	}
}

type inquiryListResponse struct {
	Inquiries []entity.Inquiry `json:"inquiries"`
	Limit     int              `json:"limit"`
	Offset    int              `json:"offset"`
}

func (rd *inquiryListResponse) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}
