package increment

import (
	"salary-portal/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	logger *zap.Logger,
	writeGuards ...gin.HandlerFunc,
) {
	guarded := func(h gin.HandlerFunc) []gin.HandlerFunc {
		return append(append([]gin.HandlerFunc{}, writeGuards...), h)
	}

	increments := r.Group("/increments")
	increments.Use(middleware.ContextLogger(logger))
	{
		increments.GET("", handler.GetAll)
		increments.GET("/:id", handler.GetById)
		increments.POST("", guarded(handler.Create)...)
		increments.DELETE("/:id", guarded(handler.Delete)...)
	}
}
