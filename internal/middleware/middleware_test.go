package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"salary-portal/internal/middleware"
	"salary-portal/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRequestIDAndContextLogger(t *testing.T) {
	t.Run("propagates incoming id", func(t *testing.T) {
		r := gin.New()
		r.Use(middleware.RequestID())
		r.GET("/ping", middleware.ContextLogger(zap.NewNop()), func(c *gin.Context) {
			ctx := c.Request.Context()
			assert.Equal(t, "rid-123", contextutil.GetRequestID(ctx))
			assert.NotNil(t, contextutil.GetLogger(ctx, nil))
			c.Status(http.StatusNoContent)
		})

		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(middleware.RequestIDHeader, "rid-123")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "rid-123", w.Header().Get(middleware.RequestIDHeader))
	})

	t.Run("generates an id when missing", func(t *testing.T) {
		r := gin.New()
		r.GET("/ping", middleware.ContextLogger(nil), func(c *gin.Context) {
			c.String(http.StatusOK, contextutil.GetRequestID(c.Request.Context()))
		})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

		assert.NotEmpty(t, w.Body.String())
		assert.Equal(t, w.Body.String(), w.Header().Get(middleware.RequestIDHeader))
	})
}

func TestRateLimitByIP(t *testing.T) {
	r := gin.New()
	r.POST("/things", middleware.RateLimitByIP(0.001, 2), func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/things", nil)
		req.RemoteAddr = "10.0.0.1:5000"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusCreated, http.StatusCreated, http.StatusTooManyRequests}, codes)

	req := httptest.NewRequest(http.MethodPost, "/things", nil)
	req.RemoteAddr = "10.0.0.2:5000"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestIdempotency(t *testing.T) {
	cacheKey := middleware.IdempotencyCacheKey("/increments", "abc")
	lockKey := cacheKey + ":lock"

	setup := func(t *testing.T) (*gin.Engine, redismock.ClientMock, *int) {
		rdb, mock := redismock.NewClientMock()
		calls := 0
		r := gin.New()
		r.POST("/increments", middleware.Idempotency(rdb), func(c *gin.Context) {
			calls++
			c.JSON(http.StatusCreated, gin.H{"ok": true})
		})
		return r, mock, &calls
	}

	post := func(r *gin.Engine, key string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/increments", nil)
		if key != "" {
			req.Header.Set(middleware.IdempotencyHeader, key)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("no key passes through", func(t *testing.T) {
		r, mock, calls := setup(t)

		w := post(r, "")

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, 1, *calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("first request stores the response", func(t *testing.T) {
		r, mock, calls := setup(t)

		payload, _ := json.Marshal(middleware.IdempotentResponse{
			Status:      http.StatusCreated,
			ContentType: "application/json; charset=utf-8",
			Body:        `{"ok":true}`,
		})
		mock.ExpectGet(cacheKey).RedisNil()
		mock.ExpectSetNX(lockKey, "locked", 30*time.Second).SetVal(true)
		mock.ExpectSet(cacheKey, string(payload), 24*time.Hour).SetVal("OK")
		mock.ExpectDel(lockKey).SetVal(1)

		w := post(r, "abc")

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, 1, *calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("repeat is replayed", func(t *testing.T) {
		r, mock, calls := setup(t)

		mock.ExpectGet(cacheKey).SetVal(`{"status":201,"contentType":"application/json; charset=utf-8","body":"{\"ok\":true}"}`)

		w := post(r, "abc")

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, `{"ok":true}`, w.Body.String())
		assert.Equal(t, "true", w.Header().Get("Idempotent-Replayed"))
		assert.Equal(t, 0, *calls)
	})

	t.Run("in-flight duplicate is rejected", func(t *testing.T) {
		r, mock, calls := setup(t)

		mock.ExpectGet(cacheKey).RedisNil()
		mock.ExpectSetNX(lockKey, "locked", 30*time.Second).SetVal(false)

		w := post(r, "abc")

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "PROCESSING")
		assert.Equal(t, 0, *calls)
	})
}
