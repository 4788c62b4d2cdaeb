// Package apperrors defines the error taxonomy shared by services and
// controllers, plus helpers to turn validator errors into response messages.
package apperrors

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var (
	// ErrInvalidInput marks a missing or malformed required field.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDuplicate marks a unique-constraint violation on registration.
	ErrDuplicate = errors.New("username or email already exists")

	// ErrInvalidCredentials marks a failed email/password check.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrUserNotFound marks an email that resolves to no user row.
	ErrUserNotFound = errors.New("user not found")

	// ErrUnknownCategory marks an exercise category outside the known set.
	ErrUnknownCategory = errors.New("unknown exercise category")
)

// ValidationMessage flattens a binding error into a single client-facing
// string. Validator errors get a per-field message; anything else (malformed
// JSON, wrong types) is reported as-is.
func ValidationMessage(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err.Error()
	}

	fe := fieldErrs[0]
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", fe.Field())
	case "gte", "min":
		return fmt.Sprintf("%s must not be negative", fe.Field())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
