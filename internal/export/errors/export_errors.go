package exporterrors

import (
	"net/http"

	"salary-portal/internal/shared/apperror"
)

var ErrUnknownArtifact = apperror.New(
	apperror.CodeNotFound,
	"Export not found",
	http.StatusNotFound,
)

func ErrRenderFailed(err error) *apperror.AppError {
	return apperror.Wrap(err, apperror.CodeInternalError, "Failed to render export", http.StatusInternalServerError)
}
