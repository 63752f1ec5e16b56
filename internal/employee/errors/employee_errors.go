package employeeerrors

import (
	"net/http"

	"salary-portal/internal/shared/apperror"
)

var ErrInvalidRequestBody = apperror.New(
	apperror.CodeInvalidInput,
	"Request body is not valid JSON for an employee",
	http.StatusBadRequest,
)
