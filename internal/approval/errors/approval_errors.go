package approvalerrors

import (
	"net/http"

	"github.com/Chayapol0073-141266/HRM-SDcon/internal/shared/apperror"
)

var (
	ErrNoApprovalChainConfigured = apperror.New(
		apperror.CodeInvalidState,
		"no approval chain is configured for this department",
		http.StatusUnprocessableEntity,
	)
	ErrAlreadyFinalized = apperror.New(
		apperror.CodeInvalidState,
		"leave request has already been finalized",
		http.StatusConflict,
	)
	ErrNotAuthorized = apperror.New(
		apperror.CodeForbidden,
		"you are not the approver for the current step",
		http.StatusForbidden,
	)
	// ErrStepNotInChain means a stored request points at a role outside its
	// own chain. It only happens when the record was edited out of band.
	ErrStepNotInChain = apperror.New(
		apperror.CodeInternalError,
		"leave request is in an inconsistent state",
		http.StatusInternalServerError,
	)
	ErrMissingActor = apperror.New(
		apperror.CodeUnauthorized,
		"actor is required",
		http.StatusUnauthorized,
	)
)
