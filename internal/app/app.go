package app

import (
	"context"
	"errors"
	"fmt"

	"salary-portal/internal/events"
	"salary-portal/internal/kvstore"
	"salary-portal/internal/messaging/kafka/producer"
	"salary-portal/internal/portal"
	"salary-portal/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// App holds the long-lived infrastructure behind the HTTP API and the CLI.
type App struct {
	Store *portal.Store
	Redis *redis.Client

	closers []func() error
}

func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		errs = append(errs, a.closers[i]())
	}
	return errors.Join(errs...)
}

// Open connects the configured backends and loads the portal store.
func Open(ctx context.Context, cfg Config, logger *zap.Logger) (*App, error) {
	if logger == nil {
		logger = zap.L()
	}
	a := &App{}

	kv, err := a.openKV(ctx, cfg, logger)
	if err != nil {
		_ = a.Close()
		return nil, err
	}

	if a.Redis == nil && cfg.RedisAddr != "" {
		rdb, err := connection.ConnectRedisWithRetry(cfg.RedisAddr, cfg.ConnectRetries)
		if err != nil {
			_ = a.Close()
			return nil, err
		}
		a.Redis = rdb
		a.closers = append(a.closers, rdb.Close)
	}

	opts := []portal.Option{portal.WithLogger(logger)}
	if cfg.KafkaBroker != "" {
		writer, err := connection.NewKafkaWriter(cfg.KafkaBroker, cfg.ConnectRetries)
		if err != nil {
			_ = a.Close()
			return nil, err
		}
		a.closers = append(a.closers, writer.Close)
		opts = append(opts, portal.WithEventPublisher(
			producer.NewPublisher(writer, events.PortalLifecycleTopic, logger),
		))
	} else {
		logger.Info("KAFKA_BROKER not set, domain events are not published")
	}

	store, err := portal.New(ctx, kv, opts...)
	if err != nil {
		_ = a.Close()
		return nil, fmt.Errorf("load portal store: %w", err)
	}
	a.Store = store

	logger.Info("portal store ready",
		zap.String("storage", cfg.StorageDriver),
		zap.Int("employees", len(store.Snapshot().Employees)),
	)
	return a, nil
}

func (a *App) openKV(ctx context.Context, cfg Config, logger *zap.Logger) (kvstore.Store, error) {
	switch cfg.StorageDriver {
	case "", StorageMemory:
		logger.Warn("using in-memory storage, data is lost on restart")
		return kvstore.NewMemoryStore(), nil

	case StorageRedis:
		if cfg.RedisAddr == "" {
			return nil, errors.New("REDIS_ADDR is required for redis storage")
		}
		rdb, err := connection.ConnectRedisWithRetry(cfg.RedisAddr, cfg.ConnectRetries)
		if err != nil {
			return nil, err
		}
		a.Redis = rdb
		a.closers = append(a.closers, rdb.Close)
		return kvstore.NewRedisStore(rdb, cfg.KVPrefix), nil

	case StoragePostgres:
		db, err := connection.ConnectGORMWithRetry(
			cfg.DB.Host,
			cfg.DB.User,
			cfg.DB.Password,
			cfg.DB.Name,
			cfg.DB.Port,
			cfg.DB.SSLMode,
			cfg.ConnectRetries,
		)
		if err != nil {
			return nil, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, sqlDB.Close)

		gs := kvstore.NewGormStore(db, cfg.KVPrefix)
		if err := gs.Migrate(ctx); err != nil {
			return nil, fmt.Errorf("migrate kv_entries: %w", err)
		}
		return gs, nil

	default:
		return nil, fmt.Errorf("unknown STORAGE_DRIVER %q", cfg.StorageDriver)
	}
}

// BuildApp opens the infrastructure and mounts every module on router.
func BuildApp(ctx context.Context, router *gin.Engine, cfg Config, logger *zap.Logger) (*App, error) {
	a, err := Open(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	registerModules(router, a.Store, a.Redis, cfg, logger)
	return a, nil
}
