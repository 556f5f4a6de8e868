package middleware

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/campushq/discipline/internal/pkg/apperrors"
)

// ValidationError converts a binding failure into the validation taxonomy
// with a readable message instead of validator's struct-path dump.
func ValidationError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		msgs := make([]string, 0, len(verrs))
		for _, e := range verrs {
			msgs = append(msgs, formatValidationError(e))
		}
		return apperrors.NewValidationError(strings.Join(msgs, "; "))
	}
	return apperrors.NewValidationError(err.Error())
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "email":
		return e.Field() + " must be a valid email address"
	default:
		return e.Field() + " validation failed: " + e.Tag()
	}
}
