package form

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/swayogurja/swayog-backend/internal/entity"
)

// SubmitContactRequest is the body of POST /api/contact. Nothing here is
// persisted, the fields only feed the notification email.
type SubmitContactRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Subject   string `json:"subject"`
	Message   string `json:"message"`
}

func (r *SubmitContactRequest) Validate() error {
	return validateFirst(
		field("firstName", r.FirstName,
			validation.Required.Error("First name is required")),
		field("lastName", r.LastName,
			validation.Required.Error("Last name is required")),
		field("email", r.Email,
			validation.Required.Error("Invalid email address"),
			is.EmailFormat.Error("Invalid email address")),
		field("subject", r.Subject,
			validation.Required.Error("Subject is required")),
		field("message", r.Message,
			validation.Required.Error("Message is required")),
	)
}

func (r *SubmitContactRequest) ToMessage() entity.ContactMessage {
	return entity.ContactMessage{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Subject:   r.Subject,
		Message:   r.Message,
	}
}
