package report

import (
	"salary-portal/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	logger *zap.Logger,
) {
	reports := r.Group("/reports")
	reports.Use(middleware.ContextLogger(logger))
	{
		reports.GET("/dashboard", handler.GetDashboard)
		reports.GET("/departments", handler.GetDepartments)
		reports.GET("/increment-trend", handler.GetIncrementTrend)
		reports.GET("/salary", handler.GetSalaryReport)
	}

	r.GET("/employees/:id/summary",
		middleware.ContextLogger(logger),
		handler.GetEmployeeSummary,
	)
}
