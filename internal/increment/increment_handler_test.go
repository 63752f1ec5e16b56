package increment_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"salary-portal/internal/increment"
	portalerrors "salary-portal/internal/portal/errors"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeIncrementService struct {
	createFn  func(ctx context.Context, req increment.CreateIncrementRequest) (increment.IncrementResponse, error)
	getAllFn  func(ctx context.Context, q increment.ListIncrementsQuery) ([]increment.IncrementResponse, error)
	getByIDFn func(ctx context.Context, id string) (increment.IncrementResponse, error)
	deleteFn  func(ctx context.Context, id string) error
}

func (f *fakeIncrementService) Create(ctx context.Context, req increment.CreateIncrementRequest) (increment.IncrementResponse, error) {
	return f.createFn(ctx, req)
}
func (f *fakeIncrementService) GetAll(ctx context.Context, q increment.ListIncrementsQuery) ([]increment.IncrementResponse, error) {
	return f.getAllFn(ctx, q)
}
func (f *fakeIncrementService) GetByID(ctx context.Context, id string) (increment.IncrementResponse, error) {
	return f.getByIDFn(ctx, id)
}
func (f *fakeIncrementService) Delete(ctx context.Context, id string) error {
	return f.deleteFn(ctx, id)
}

func init() {
	gin.SetMode(gin.TestMode)
}

func TestIncrementHandler_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeIncrementService{
			createFn: func(ctx context.Context, req increment.CreateIncrementRequest) (increment.IncrementResponse, error) {
				assert.Equal(t, "EMP001", req.EmployeeID)
				assert.Equal(t, "90000", req.NewSalary.String())
				return increment.IncrementResponse{
					ID:                  "INC-1",
					EmployeeID:          req.EmployeeID,
					EmployeeName:        "John Smith",
					OldSalary:           decimal.NewFromInt(85000),
					NewSalary:           req.NewSalary,
					IncrementPercentage: decimal.RequireFromString("5.88"),
				}, nil
			},
		}

		h := increment.NewHandler(svc, zap.NewNop())
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"employeeId":"EMP001","newSalary":90000,"reason":"Merit Increase","effectiveDate":"2024-07-01","approvedBy":"Jane Doe"}`
		req := httptest.NewRequest(http.MethodPost, "/increments", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req

		h.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"incrementPercentage":5.88`)
		assert.Contains(t, w.Body.String(), `"employeeName":"John Smith"`)
	})

	t.Run("malformed body", func(t *testing.T) {
		h := increment.NewHandler(&fakeIncrementService{}, zap.NewNop())
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		req := httptest.NewRequest(http.MethodPost, "/increments", strings.NewReader(`{"newSalary":"abc"}`))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "INVALID_INPUT")
	})

	t.Run("salary not greater", func(t *testing.T) {
		svc := &fakeIncrementService{
			createFn: func(ctx context.Context, req increment.CreateIncrementRequest) (increment.IncrementResponse, error) {
				return increment.IncrementResponse{}, portalerrors.ErrNewSalaryNotGreater
			},
		}

		h := increment.NewHandler(svc, zap.NewNop())
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		req := httptest.NewRequest(http.MethodPost, "/increments", strings.NewReader(`{"employeeId":"EMP001","newSalary":100}`))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "New salary must be greater than current salary")
	})

	t.Run("unexpected error", func(t *testing.T) {
		svc := &fakeIncrementService{
			createFn: func(ctx context.Context, req increment.CreateIncrementRequest) (increment.IncrementResponse, error) {
				return increment.IncrementResponse{}, errors.New("disk full")
			},
		}

		h := increment.NewHandler(svc, zap.NewNop())
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		req := httptest.NewRequest(http.MethodPost, "/increments", strings.NewReader(`{"employeeId":"EMP001"}`))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req

		h.Create(c)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "disk full")
	})
}

func TestIncrementHandler_GetAll(t *testing.T) {
	svc := &fakeIncrementService{
		getAllFn: func(ctx context.Context, q increment.ListIncrementsQuery) ([]increment.IncrementResponse, error) {
			assert.Equal(t, "EMP002", q.EmployeeID)
			assert.Equal(t, "promo", q.Q)
			return []increment.IncrementResponse{{ID: "INC002", EmployeeID: "EMP002"}}, nil
		},
	}

	h := increment.NewHandler(svc, zap.NewNop())
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/increments?employee_id=EMP002&q=promo", nil)

	h.GetAll(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "INC002")
}

func TestIncrementHandler_GetByID(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		svc := &fakeIncrementService{
			getByIDFn: func(ctx context.Context, id string) (increment.IncrementResponse, error) {
				assert.Equal(t, "INC404", id)
				return increment.IncrementResponse{}, portalerrors.ErrIncrementNotFound
			},
		}

		h := increment.NewHandler(svc, zap.NewNop())
		r := gin.New()
		r.GET("/increments/:id", h.GetById)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/increments/INC404", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "Increment not found")
	})
}

func TestIncrementHandler_Routes(t *testing.T) {
	limited := 0
	limiter := func(c *gin.Context) {
		limited++
		c.Next()
	}
	svc := &fakeIncrementService{
		deleteFn: func(ctx context.Context, id string) error {
			assert.Equal(t, "INC001", id)
			return nil
		},
		getAllFn: func(ctx context.Context, q increment.ListIncrementsQuery) ([]increment.IncrementResponse, error) {
			return nil, nil
		},
	}

	r := gin.New()
	increment.RegisterRoutes(r.Group("/api/v1"), increment.NewHandler(svc, zap.NewNop()), zap.NewNop(), limiter)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/v1/increments/INC001", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":"INC001"`)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/increments", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, 1, limited)
}
