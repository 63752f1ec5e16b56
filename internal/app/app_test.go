package app

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"salary-portal/internal/middleware"
	"salary-portal/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type envelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error json.RawMessage `json:"error"`
}

func setupApp(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	apperror.Init()

	r := gin.New()
	a, err := BuildApp(context.Background(), r, Config{
		StorageDriver:  StorageMemory,
		KVPrefix:       "salaryPortal_",
		RateLimitRPS:   100,
		RateLimitBurst: 100,
	}, zap.NewNop())
	if !assert.NoError(t, err) {
		t.FailNow()
	}
	t.Cleanup(func() { _ = a.Close() })
	return r
}

func do(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		for _, k := range []string{"PORT", "STORAGE_DRIVER", "KV_PREFIX", "KAFKA_BROKER", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST"} {
			t.Setenv(k, "")
		}

		cfg := LoadConfig()

		assert.Equal(t, "3000", cfg.Port)
		assert.Equal(t, StorageMemory, cfg.StorageDriver)
		assert.Equal(t, "salaryPortal_", cfg.KVPrefix)
		assert.Equal(t, "", cfg.KafkaBroker)
		assert.Equal(t, 5.0, cfg.RateLimitRPS)
		assert.Equal(t, 10, cfg.RateLimitBurst)
	})

	t.Run("overrides and invalid numbers", func(t *testing.T) {
		t.Setenv("PORT", "8080")
		t.Setenv("STORAGE_DRIVER", StorageRedis)
		t.Setenv("RATE_LIMIT_RPS", "2.5")
		t.Setenv("RATE_LIMIT_BURST", "lots")

		cfg := LoadConfig()

		assert.Equal(t, "8080", cfg.Port)
		assert.Equal(t, StorageRedis, cfg.StorageDriver)
		assert.Equal(t, 2.5, cfg.RateLimitRPS)
		assert.Equal(t, 10, cfg.RateLimitBurst)
	})
}

func TestOpen(t *testing.T) {
	t.Run("unknown driver", func(t *testing.T) {
		_, err := Open(context.Background(), Config{StorageDriver: "sqlite"}, zap.NewNop())
		assert.ErrorContains(t, err, `unknown STORAGE_DRIVER "sqlite"`)
	})

	t.Run("redis driver needs an address", func(t *testing.T) {
		_, err := Open(context.Background(), Config{StorageDriver: StorageRedis}, zap.NewNop())
		assert.ErrorContains(t, err, "REDIS_ADDR is required")
	})

	t.Run("memory driver seeds sample data", func(t *testing.T) {
		a, err := Open(context.Background(), Config{StorageDriver: StorageMemory}, zap.NewNop())
		assert.NoError(t, err)
		assert.Len(t, a.Store.Snapshot().Employees, 3)
		assert.Nil(t, a.Redis)
		assert.NoError(t, a.Close())
	})
}

func TestBuildAppRoutes(t *testing.T) {
	r := setupApp(t)

	t.Run("lists seeded employees", func(t *testing.T) {
		w := do(r, http.MethodGet, "/api/v1/employees", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
		var list []map[string]any
		assert.NoError(t, json.Unmarshal(decode(t, w).Data, &list))
		assert.Len(t, list, 3)
	})

	t.Run("increment raises the salary", func(t *testing.T) {
		w := do(r, http.MethodPost, "/api/v1/increments", map[string]any{
			"employeeId":    "EMP003",
			"newSalary":     66000,
			"reason":        "Promotion",
			"effectiveDate": "2024-07-01",
			"approvedBy":    "Jane Doe",
		})
		assert.Equal(t, http.StatusCreated, w.Code)

		w = do(r, http.MethodGet, "/api/v1/employees/EMP003", nil)
		var emp map[string]any
		assert.NoError(t, json.Unmarshal(decode(t, w).Data, &emp))
		assert.Equal(t, 66000.0, emp["currentSalary"])
	})

	t.Run("employee summary", func(t *testing.T) {
		w := do(r, http.MethodGet, "/api/v1/employees/EMP001/summary", nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("dashboard", func(t *testing.T) {
		w := do(r, http.MethodGet, "/api/v1/reports/dashboard", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, decode(t, w).Ok)
	})

	t.Run("export download", func(t *testing.T) {
		w := do(r, http.MethodGet, "/api/v1/exports/employees.csv", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Content-Disposition"), "employees.csv")
	})

	t.Run("unknown route", func(t *testing.T) {
		w := do(r, http.MethodGet, "/api/v1/payslips", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "NOT_FOUND")
	})

	t.Run("unknown employee", func(t *testing.T) {
		w := do(r, http.MethodGet, "/api/v1/employees/EMP999", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.False(t, decode(t, w).Ok)
	})
}
