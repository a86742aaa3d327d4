package registryerrors

import (
	"net/http"

	"github.com/Chayapol0073-141266/HRM-SDcon/internal/shared/apperror"
)

var (
	ErrUnknownDepartment = apperror.New(
		apperror.CodeNotFound,
		"department has no approval chain template",
		http.StatusNotFound,
	)
	ErrDuplicateRoleInChain = apperror.New(
		apperror.CodeInvalidInput,
		"a role may appear only once in an approval chain",
		http.StatusBadRequest,
	)
	ErrInvalidDepartmentCode = apperror.New(
		apperror.CodeInvalidInput,
		"department code is required",
		http.StatusBadRequest,
	)
)
