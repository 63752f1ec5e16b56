package increment

import (
	"errors"

	incrementerrors "salary-portal/internal/increment/errors"
	"salary-portal/internal/shared/apperror"

	"github.com/go-playground/validator/v10"
)

func mapBindError(err error) error {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return apperror.MapValidationError(err)
	}

	return incrementerrors.ErrInvalidRequestBody
}
