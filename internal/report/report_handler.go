package report

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
	l := zap.L().Named("report.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("report.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("report request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) GetDashboard(c *gin.Context) {
	h.logger.Debug("http get dashboard")
	response.Success(c, http.StatusOK, h.service.Dashboard(c.Request.Context()), nil)
}

func (h *Handler) GetDepartments(c *gin.Context) {
	h.logger.Debug("http get department averages")
	response.Success(c, http.StatusOK, h.service.Departments(c.Request.Context()), nil)
}

func (h *Handler) GetIncrementTrend(c *gin.Context) {
	h.logger.Debug("http get increment trend")
	response.Success(c, http.StatusOK, h.service.IncrementTrend(c.Request.Context()), nil)
}

func (h *Handler) GetSalaryReport(c *gin.Context) {
	h.logger.Debug("http get salary report")
	response.Success(c, http.StatusOK, h.service.SalaryReport(c.Request.Context()), nil)
}

func (h *Handler) GetEmployeeSummary(c *gin.Context) {
	employeeID := c.Param("id")
	h.logger.Debug("http get employee summary", zap.String("employee_id", employeeID))

	resp, err := h.service.EmployeeSummary(c.Request.Context(), employeeID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}
