package increment

import (
	"context"

	"salary-portal/internal/portal"
	portalerrors "salary-portal/internal/portal/errors"
	"salary-portal/internal/shared/contextutil"

	"go.uber.org/zap"
)

type Store interface {
	AddIncrement(ctx context.Context, in portal.IncrementInput) (portal.Increment, error)
	DeleteIncrement(ctx context.Context, id string) error
	FindIncrement(id string) (portal.Increment, bool)
	ListIncrements(f portal.IncrementFilter) []portal.Increment
	EmployeeName(id string) string
}

type Service interface {
	Create(ctx context.Context, req CreateIncrementRequest) (IncrementResponse, error)
	GetAll(ctx context.Context, q ListIncrementsQuery) ([]IncrementResponse, error)
	GetByID(ctx context.Context, id string) (IncrementResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	store  Store
	logger *zap.Logger
}

func NewService(store Store, logger ...*zap.Logger) Service {
	l := zap.L().Named("increment.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("increment.service")
	}
	return &service{store: store, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateIncrementRequest) (IncrementResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("create increment requested",
		zap.String("employee_id", req.EmployeeID),
		zap.String("new_salary", req.NewSalary.String()),
	)

	inc, err := s.store.AddIncrement(ctx, req.toInput())
	if err != nil {
		log.Warn("create increment failed", zap.String("employee_id", req.EmployeeID), zap.Error(err))
		return IncrementResponse{}, err
	}

	log.Info("create increment success",
		zap.String("increment_id", inc.ID),
		zap.String("employee_id", inc.EmployeeID),
	)
	return toResponse(inc, s.store.EmployeeName(inc.EmployeeID)), nil
}

func (s *service) GetAll(ctx context.Context, q ListIncrementsQuery) ([]IncrementResponse, error) {
	incs := s.store.ListIncrements(portal.IncrementFilter{
		EmployeeID: q.EmployeeID,
		Query:      q.Q,
	})

	resp := make([]IncrementResponse, 0, len(incs))
	for _, inc := range incs {
		resp = append(resp, toResponse(inc, s.store.EmployeeName(inc.EmployeeID)))
	}

	contextutil.GetLogger(ctx, s.logger).Debug("get all increments",
		zap.String("employee_id", q.EmployeeID),
		zap.String("q", q.Q),
		zap.Int("count", len(resp)),
	)
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, id string) (IncrementResponse, error) {
	inc, ok := s.store.FindIncrement(id)
	if !ok {
		contextutil.GetLogger(ctx, s.logger).Warn("increment not found", zap.String("increment_id", id))
		return IncrementResponse{}, portalerrors.ErrIncrementNotFound
	}
	return toResponse(inc, s.store.EmployeeName(inc.EmployeeID)), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("delete increment requested", zap.String("increment_id", id))

	if err := s.store.DeleteIncrement(ctx, id); err != nil {
		log.Warn("delete increment failed", zap.String("increment_id", id), zap.Error(err))
		return err
	}

	log.Info("delete increment success", zap.String("increment_id", id))
	return nil
}
