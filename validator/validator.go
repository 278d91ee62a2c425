package validator

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/contactform/contactapi/models"
)

type Reason string

const (
	MissingField       Reason = "MissingField"
	InvalidType        Reason = "InvalidType"
	NameTooShort       Reason = "NameTooShort"
	MessageTooShort    Reason = "MessageTooShort"
	InvalidEmailFormat Reason = "InvalidEmailFormat"
)

const (
	MinNameLength    = 2
	MinMessageLength = 10
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type ValidationError struct {
	Reason  Reason
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// HTTPError presents the rejection as a 400 carrying the specific reason.
func (e *ValidationError) HTTPError() *models.HTTPError {
	return models.NewValidationFailedError(e.Message, e)
}

func newValidationError(reason Reason, message string) *ValidationError {
	return &ValidationError{Reason: reason, Message: message}
}

// Validate checks a decoded request body and returns the normalized submission.
// The first failing check decides the error.
func Validate(raw map[string]interface{}) (models.ContactSubmission, error) {
	if missing(raw, "name") || missing(raw, "email") || missing(raw, "message") {
		return models.ContactSubmission{}, newValidationError(MissingField, "name, email and message are required")
	}

	name, nameOK := raw["name"].(string)
	email, emailOK := raw["email"].(string)
	message, messageOK := raw["message"].(string)
	if !nameOK || !emailOK || !messageOK {
		return models.ContactSubmission{}, newValidationError(InvalidType, "name, email and message must be strings")
	}

	name = strings.TrimSpace(name)
	message = strings.TrimSpace(message)

	if utf8.RuneCountInString(name) < MinNameLength {
		return models.ContactSubmission{}, newValidationError(NameTooShort, fmt.Sprintf("name must be at least %d characters", MinNameLength))
	}
	if utf8.RuneCountInString(message) < MinMessageLength {
		return models.ContactSubmission{}, newValidationError(MessageTooShort, fmt.Sprintf("message must be at least %d characters", MinMessageLength))
	}
	if !emailPattern.MatchString(email) {
		return models.ContactSubmission{}, newValidationError(InvalidEmailFormat, "invalid email format")
	}

	subject, _ := raw["subject"].(string)

	return models.ContactSubmission{
		Name:    name,
		Email:   strings.ToLower(strings.TrimSpace(email)),
		Subject: strings.TrimSpace(subject),
		Message: message,
	}, nil
}

func missing(raw map[string]interface{}, field string) bool {
	v, ok := raw[field]
	if !ok || v == nil {
		return true
	}
	s, isString := v.(string)
	return isString && s == ""
}
