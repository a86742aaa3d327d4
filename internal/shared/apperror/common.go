package apperror

import (
	"fmt"
	"net/http"
)

// RequiredField reports a missing mandatory field.
func RequiredField(field string) *AppError {
	return New(CodeInvalidInput, fmt.Sprintf("%s is required", field), http.StatusBadRequest)
}

// InvalidField reports a field that failed validation.
func InvalidField(field string) *AppError {
	return New(CodeInvalidInput, fmt.Sprintf("%s is invalid", field), http.StatusBadRequest)
}

func TooLong(field, limit string) *AppError {
	return New(CodeInvalidInput, fmt.Sprintf("%s must be at most %s characters", field, limit), http.StatusBadRequest)
}
