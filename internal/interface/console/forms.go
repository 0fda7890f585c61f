package console

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Forms collect the raw text typed for one record. Parsing into domain types
// happens after the form passes validation.

type tutorForm struct {
	Name        string `validate:"required"`
	Specialties string `validate:"required"`
}

type studentForm struct {
	Name             string `validate:"required"`
	Gender           string
	DateOfBirth      string
	EmergencyContact string
}

type bookingForm struct {
	Student string `validate:"required"`
	Subject string `validate:"required"`
	Tutor   string `validate:"required"`
	Date    string
	Hour    string `validate:"required"`
}

func newValidator() *validator.Validate {
	return validator.New(validator.WithRequiredStructEnabled())
}

// describe turns validator errors into a short message for the prompt.
func describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", strings.ToLower(fe.Field())))
		default:
			msgs = append(msgs, fmt.Sprintf("%s is invalid", strings.ToLower(fe.Field())))
		}
	}
	return strings.Join(msgs, ", ")
}
