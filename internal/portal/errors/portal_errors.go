package portalerrors

import (
	"net/http"

	"salary-portal/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrIncrementNotFound = apperror.New(
		apperror.CodeNotFound,
		"Increment not found",
		http.StatusNotFound,
	)
	ErrEmployeeAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Employee ID already exists",
		http.StatusConflict,
	)
	ErrInvalidEmail = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid email format",
		http.StatusBadRequest,
	)
	ErrSalaryNotPositive = apperror.New(
		apperror.CodeInvalidInput,
		"Salary must be greater than 0",
		http.StatusBadRequest,
	)
	ErrNewSalaryNotGreater = apperror.New(
		apperror.CodeInvalidInput,
		"New salary must be greater than current salary",
		http.StatusBadRequest,
	)
	ErrUnknownDepartment = apperror.New(
		apperror.CodeInvalidInput,
		"Department is not one of the supported departments",
		http.StatusBadRequest,
	)
	ErrUnknownReason = apperror.New(
		apperror.CodeInvalidInput,
		"Reason is not one of the supported increment reasons",
		http.StatusBadRequest,
	)
)

// ErrPersistFailed wraps a storage failure. The in-memory state is untouched
// when this is returned.
func ErrPersistFailed(err error) *apperror.AppError {
	return apperror.Wrap(err, apperror.CodeInternalError, "Failed to save data", http.StatusInternalServerError)
}
