package export

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
	exports := r.Group("/exports")
	exports.Use(middleware.ContextLogger(logger))
	{
		exports.GET("/:file", handler.Download)
	}
}
