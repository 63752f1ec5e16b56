package app

import (
	"salary-portal/internal/employee"
	"salary-portal/internal/export"
	"salary-portal/internal/increment"
	"salary-portal/internal/middleware"
	"salary-portal/internal/portal"
	"salary-portal/internal/report"
	"salary-portal/internal/shared/apperror"
	"salary-portal/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

func registerModules(
	router *gin.Engine,
	store *portal.Store,
	rdb *redis.Client,
	cfg Config,
	logger *zap.Logger,
) {
	if logger == nil {
		logger = zap.L()
	}

	// --- Services ---
	employeeService := employee.NewService(store, logger)
	incrementService := increment.NewService(store, logger)
	reportService := report.NewService(store, logger)
	exportService := export.NewService(store, logger)

	// --- Handlers ---
	employeeHandler := employee.NewHandler(employeeService, logger)
	incrementHandler := increment.NewHandler(incrementService, logger)
	reportHandler := report.NewHandler(reportService, logger)
	exportHandler := export.NewHandler(exportService, logger)

	writeGuards := []gin.HandlerFunc{
		middleware.RateLimitByIP(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst),
	}
	if rdb != nil {
		writeGuards = append(writeGuards, middleware.Idempotency(rdb))
	}

	// --- Routes Registration ---
	router.Use(middleware.RequestID())
	router.NoRoute(func(c *gin.Context) {
		response.Error(c, apperror.ErrNotFound.HTTPStatus, apperror.ErrNotFound.Code, apperror.ErrNotFound.Message, nil)
	})
	api := router.Group("/api/v1")
	{
		employee.RegisterRoutes(api, employeeHandler, logger, writeGuards...)
		increment.RegisterRoutes(api, incrementHandler, logger, writeGuards...)
		report.RegisterRoutes(api, reportHandler, logger)
		export.RegisterRoutes(api, exportHandler, logger)
	}
}
