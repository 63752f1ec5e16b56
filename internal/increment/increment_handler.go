package increment

import (
	"net/http"

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
	l := zap.L().Named("increment.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("increment.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("increment request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Create(c *gin.Context) {
	h.logger.Debug("http create increment")
	var req CreateIncrementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http create increment bind failed", zap.Error(err))
		h.writeServiceError(c, mapBindError(err))
		return
	}

	resp, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) GetAll(c *gin.Context) {
	var q ListIncrementsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.writeServiceError(c, mapBindError(err))
		return
	}
	h.logger.Debug("http get all increments",
		zap.String("q", q.Q),
		zap.String("employee_id", q.EmployeeID),
	)

	resp, err := h.service.GetAll(c.Request.Context(), q)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	page, meta := response.Paginate(resp, q.Page, q.PageSize)
	response.Success(c, http.StatusOK, page, &meta)
}

func (h *Handler) GetById(c *gin.Context) {
	targetID := c.Param("id")
	h.logger.Debug("http get increment by id", zap.String("increment_id", targetID))

	resp, err := h.service.GetByID(c.Request.Context(), targetID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	targetID := c.Param("id")
	h.logger.Debug("http delete increment", zap.String("increment_id", targetID))

	if err := h.service.Delete(c.Request.Context(), targetID); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"id": targetID}, nil)
}
