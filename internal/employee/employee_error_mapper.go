package employee

import (
	"errors"

	employeeerrors "salary-portal/internal/employee/errors"
	"salary-portal/internal/shared/apperror"

	"github.com/go-playground/validator/v10"
)

// mapBindError turns a gin binding failure into an AppError. Tag failures
// on query structs read like "Page Size is invalid"; anything else is a
// malformed body.
func mapBindError(err error) error {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return apperror.MapValidationError(err)
	}

	return employeeerrors.ErrInvalidRequestBody
}
