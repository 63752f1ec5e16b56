package export

import (
	"net/http"

	exporterrors "salary-portal/internal/export/errors"
	"salary-portal/internal/shared/apperror"
	"salary-portal/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("export.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("export.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("export request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// Download serves /exports/:file as an attachment.
func (h *Handler) Download(c *gin.Context) {
	filename := c.Param("file")
	h.logger.Debug("http download export", zap.String("file", filename))

	name, ok := ArtifactForFile(filename)
	if !ok {
		h.writeServiceError(c, exporterrors.ErrUnknownArtifact)
		return
	}

	file, err := h.service.Render(c.Request.Context(), name)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+file.Name+`"`)
	c.Data(http.StatusOK, file.ContentType, file.Body)
}
