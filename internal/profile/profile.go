package profile

import (
	"strings"
	"unicode/utf8"

	"go.uber.org/multierr"
)

// minFieldLength is the minimum length of every profile field, in characters
const minFieldLength = 2

// Profile is the local user profile collected on onboarding
type Profile struct {
	Username string `json:"username"`
	JobTitle string `json:"jobTitle"`
}

// ValidationError describes an invalid profile field
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// New trims and validates the fields of a profile.
// All field errors are returned together, combined with multierr.
func New(username, jobTitle string) (Profile, error) {
	p := Profile{
		Username: strings.TrimSpace(username),
		JobTitle: strings.TrimSpace(jobTitle),
	}
	if err := p.Validate(); err != nil {
		return Profile{}, err
	}
	return p, nil
}

// Validate checks an already trimmed profile
func (p Profile) Validate() error {
	return multierr.Combine(
		validateField("username", "Username", p.Username),
		validateField("jobTitle", "Job title", p.JobTitle),
	)
}

func validateField(field, label, value string) error {
	switch {
	case value == "":
		return &ValidationError{Field: field, Message: label + " is required"}
	case utf8.RuneCountInString(value) < minFieldLength:
		return &ValidationError{Field: field, Message: label + " must be at least 2 characters"}
	}
	return nil
}

// FieldErrors maps each invalid field of err to its message
func FieldErrors(err error) map[string]string {
	fields := make(map[string]string)
	for _, e := range multierr.Errors(err) {
		if ve, ok := e.(*ValidationError); ok {
			fields[ve.Field] = ve.Message
		}
	}
	return fields
}
