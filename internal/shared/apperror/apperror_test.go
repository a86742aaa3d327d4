package apperror_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/Chayapol0073-141266/HRM-SDcon/internal/shared/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func TestToHTTP(t *testing.T) {
	t.Run("app error keeps code and status", func(t *testing.T) {
		err := apperror.New(apperror.CodeConflict, "already decided", http.StatusConflict)

		got := apperror.ToHTTP(fmt.Errorf("decide: %w", err))

		assert.Equal(t, http.StatusConflict, got.Status)
		assert.Equal(t, apperror.CodeConflict, got.Code)
		assert.Equal(t, "already decided", got.Message)
	})

	t.Run("unknown error becomes internal", func(t *testing.T) {
		got := apperror.ToHTTP(errors.New("db down"))

		assert.Equal(t, http.StatusInternalServerError, got.Status)
		assert.Equal(t, apperror.CodeInternalError, got.Code)
		assert.Equal(t, "Internal server error", got.Message)
	})
}

func TestWrap(t *testing.T) {
	cause := errors.New("boom")
	err := apperror.Wrap(cause, apperror.CodeInternalError, "store failed", http.StatusInternalServerError)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "store failed: boom", err.Error())
	assert.Nil(t, apperror.Wrap(nil, apperror.CodeInternalError, "x", http.StatusInternalServerError))
}

func TestMapValidationError(t *testing.T) {
	type payload struct {
		LeaveType string `validate:"required"`
		StartDate string `validate:"datetime=2006-01-02"`
		Reason    string `validate:"max=5"`
	}
	v := validator.New()

	err := v.Struct(payload{StartDate: "2026-01-01"})
	mapped := apperror.MapValidationError(err)
	var appErr *apperror.AppError
	assert.ErrorAs(t, mapped, &appErr)
	assert.Equal(t, "Leavetype is required", appErr.Message)

	err = v.Struct(payload{LeaveType: "sick", StartDate: "01/01/2026"})
	mapped = apperror.MapValidationError(err)
	assert.ErrorAs(t, mapped, &appErr)
	assert.Equal(t, "Startdate is invalid", appErr.Message)

	err = v.Struct(payload{LeaveType: "sick", StartDate: "2026-01-01", Reason: "too long"})
	mapped = apperror.MapValidationError(err)
	assert.ErrorAs(t, mapped, &appErr)
	assert.Equal(t, "Reason must be at most 5 characters", appErr.Message)

	mapped = apperror.MapValidationError(errors.New("eof"))
	assert.ErrorAs(t, mapped, &appErr)
	assert.Equal(t, "Invalid input", appErr.Message)
}
