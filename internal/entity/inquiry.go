package entity

import "time"

type ProjectType string

const (
	ProjectTypeResidential ProjectType = "Residential"
	ProjectTypeCommercial  ProjectType = "Commercial"
	ProjectTypeIndustrial  ProjectType = "Industrial"
)

// ValidProjectTypes lists the only values the inquiries table accepts.
var ValidProjectTypes = []ProjectType{
	ProjectTypeResidential,
	ProjectTypeCommercial,
	ProjectTypeIndustrial,
}

func (pt ProjectType) Valid() bool {
	for _, v := range ValidProjectTypes {
		if pt == v {
			return true
		}
	}
	return false
}

// Inquiry is a persisted quote request submitted from the website.
// Records are append-only: id and created_at are server-assigned exactly
// once and a stored inquiry is never mutated or removed.
type Inquiry struct {
	Id        int       `db:"id" json:"id"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	InquiryInsert
}

type InquiryInsert struct {
	Name          string      `db:"name" json:"name"`
	Email         string      `db:"email" json:"email"`
	Phone         string      `db:"phone" json:"phone"`
	CustomerNo    string      `db:"customer_no" json:"customerNo"`
	ProjectType   ProjectType `db:"project_type" json:"projectType"`
	Message       string      `db:"message" json:"message"`
	TermsAccepted bool        `db:"terms_accepted" json:"termsAccepted"`
}
