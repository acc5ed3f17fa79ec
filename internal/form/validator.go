package form

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Error is a single validation failure: the human-readable message of the
// first violated rule and the dotted path of the offending field.
type Error struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return e.Message
}

type fieldRules struct {
	name  string
	value interface{}
	rules []validation.Rule
}

func field(name string, value interface{}, rules ...validation.Rule) fieldRules {
	return fieldRules{name: name, value: value, rules: rules}
}

// validateFirst evaluates each field's rules in declared order and stops at
// the first violation. Unlike validation.ValidateStruct it never aggregates:
// the caller gets exactly one Error, for the first offending field.
func validateFirst(fields ...fieldRules) error {
	for _, f := range fields {
		if err := validation.Validate(f.value, f.rules...); err != nil {
			return &Error{Field: f.name, Message: err.Error()}
		}
	}
	return nil
}
