package app

import (
	"os"
	"strconv"

	"go.uber.org/zap"
)

const (
	StorageMemory   = "memory"
	StorageRedis    = "redis"
	StoragePostgres = "postgres"
)

type DBConfig struct {
	Host     string
	User     string
	Password string
	Name     string
	Port     string
	SSLMode  string
}

// Config is read from the environment. main loads .env into it first.
type Config struct {
	Port           string
	StorageDriver  string
	KVPrefix       string
	RedisAddr      string
	DB             DBConfig
	KafkaBroker    string
	RateLimitRPS   float64
	RateLimitBurst int
	ConnectRetries int
}

func LoadConfig() Config {
	return Config{
		Port:          envOr("PORT", "3000"),
		StorageDriver: envOr("STORAGE_DRIVER", StorageMemory),
		KVPrefix:      envOr("KV_PREFIX", "salaryPortal_"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		DB: DBConfig{
			Host:     os.Getenv("DB_HOST"),
			User:     os.Getenv("DB_USER"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     os.Getenv("DB_NAME"),
			Port:     envOr("DB_PORT", "5432"),
			SSLMode:  envOr("DB_SSLMODE", "disable"),
		},
		KafkaBroker:    os.Getenv("KAFKA_BROKER"),
		RateLimitRPS:   envFloat("RATE_LIMIT_RPS", 5),
		RateLimitBurst: envInt("RATE_LIMIT_BURST", 10),
		ConnectRetries: envInt("CONNECT_RETRIES", 5),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		zap.L().Named("app.config").Warn("ignoring invalid value", zap.String("key", key), zap.String("value", v))
		return fallback
	}
	return n
}

func envFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f <= 0 {
		zap.L().Named("app.config").Warn("ignoring invalid value", zap.String("key", key), zap.String("value", v))
		return fallback
	}
	return f
}
