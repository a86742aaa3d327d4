package leavequeryerrors

import (
	"net/http"

	"github.com/Chayapol0073-141266/HRM-SDcon/internal/shared/apperror"
)

var (
	ErrInvalidStatusFilter = apperror.New(
		apperror.CodeInvalidInput,
		"status must be one of ALL, PENDING, APPROVED, REJECTED",
		http.StatusBadRequest,
	)
)
