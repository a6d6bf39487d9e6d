// Package utils provides small shared helpers for request validation.
package utils

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/sue-zadeh/fieldbase/pkg/errors"
)

var defaultValidator = validator.New()

// ValidateStruct validates a request DTO against its `validate` tags and
// returns a Validation AppError with per-field details on failure.
func ValidateStruct(s interface{}) *errors.AppError {
	err := defaultValidator.Struct(s)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return errors.Validation(err.Error())
	}

	appErr := errors.Validation("validation failed")
	for _, fe := range validationErrors {
		appErr.WithDetail(toSnakeCase(fe.Field()), formatValidationError(fe))
	}
	return appErr
}

func formatValidationError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}

func toSnakeCase(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
