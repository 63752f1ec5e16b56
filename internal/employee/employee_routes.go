package employee

import (
	"salary-portal/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RegisterRoutes mounts /employees and /options. writeGuards run before
// every mutating route.
func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	logger *zap.Logger,
	writeGuards ...gin.HandlerFunc,
) {
	guarded := func(h gin.HandlerFunc) []gin.HandlerFunc {
		return append(append([]gin.HandlerFunc{}, writeGuards...), h)
	}

	r.GET("/options", middleware.ContextLogger(logger), handler.GetOptions)

	employees := r.Group("/employees")
	employees.Use(middleware.ContextLogger(logger))
	{
		employees.GET("", handler.GetAll)
		employees.GET("/:id", handler.GetById)
		employees.POST("", guarded(handler.Create)...)
		employees.PUT("/:id", guarded(handler.Update)...)
		employees.DELETE("/:id", guarded(handler.Delete)...)
	}
}
