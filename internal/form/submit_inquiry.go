package form

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/swayogurja/swayog-backend/internal/entity"
)

// SubmitInquiryRequest is the body of POST /api/inquiries.
type SubmitInquiryRequest struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	CustomerNo    string `json:"customerNo"`
	ProjectType   string `json:"projectType"`
	Message       string `json:"message"`
	TermsAccepted *bool  `json:"termsAccepted"`
}

// Validate checks the request field by field in declared order, first
// violation wins. It is a pure function: no side effects, same input always
// yields the same outcome.
func (r *SubmitInquiryRequest) Validate() error {
	return validateFirst(
		field("name", r.Name,
			validation.Required.Error("Name is required")),
		field("email", r.Email,
			validation.Required.Error("Invalid email address"),
			is.EmailFormat.Error("Invalid email address")),
		field("phone", r.Phone,
			validation.Required.Error("Phone number must be at least 10 digits"),
			validation.Length(10, 0).Error("Phone number must be at least 10 digits")),
		field("projectType", r.ProjectType,
			validation.Required.Error("Project type must be one of Residential, Commercial or Industrial"),
			validation.In("Residential", "Commercial", "Industrial").
				Error("Project type must be one of Residential, Commercial or Industrial")),
		field("message", r.Message,
			validation.Required.Error("Message is required")),
		field("termsAccepted", r.TermsAccepted,
			validation.By(termsLiteralTrue)),
	)
}

// termsAccepted is optional, but when the field is present it has to be the
// literal true, not merely truthy.
func termsLiteralTrue(value interface{}) error {
	v, ok := value.(*bool)
	if !ok || v == nil {
		return nil
	}
	if !*v {
		return errors.New("You must accept the terms and conditions")
	}
	return nil
}

func (r *SubmitInquiryRequest) ToInsert() entity.InquiryInsert {
	return entity.InquiryInsert{
		Name:          r.Name,
		Email:         r.Email,
		Phone:         r.Phone,
		CustomerNo:    r.CustomerNo,
		ProjectType:   entity.ProjectType(r.ProjectType),
		Message:       r.Message,
		TermsAccepted: r.TermsAccepted != nil && *r.TermsAccepted,
	}
}
