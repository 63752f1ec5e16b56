package employee

import (
	"context"

	"salary-portal/internal/portal"
	portalerrors "salary-portal/internal/portal/errors"
	"salary-portal/internal/shared/contextutil"

	"go.uber.org/zap"
)

// Store is the slice of the domain store this module drives.
type Store interface {
	AddEmployee(ctx context.Context, in portal.EmployeeInput) (portal.Employee, error)
	UpdateEmployee(ctx context.Context, id string, in portal.EmployeeInput) (portal.Employee, error)
	DeleteEmployee(ctx context.Context, id string) (int, error)
	FindEmployee(id string) (portal.Employee, bool)
	ListEmployees(f portal.EmployeeFilter) []portal.Employee
}

type Service interface {
	Create(ctx context.Context, req EmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context, q ListEmployeesQuery) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	Update(ctx context.Context, id string, req EmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) (DeleteEmployeeResponse, error)
	Options(ctx context.Context) OptionsResponse
}

type service struct {
	store  Store
	logger *zap.Logger
}

func NewService(store Store, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{store: store, logger: l}
}

func (s *service) Create(ctx context.Context, req EmployeeRequest) (EmployeeResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("create employee requested", zap.String("employee_id", req.ID))

	emp, err := s.store.AddEmployee(ctx, req.toInput())
	if err != nil {
		log.Warn("create employee failed", zap.String("employee_id", req.ID), zap.Error(err))
		return EmployeeResponse{}, err
	}

	log.Info("create employee success", zap.String("employee_id", emp.ID))
	return toResponse(emp), nil
}

func (s *service) GetAll(ctx context.Context, q ListEmployeesQuery) ([]EmployeeResponse, error) {
	emps := s.store.ListEmployees(portal.EmployeeFilter{
		Department: q.Department,
		Query:      q.Q,
	})

	resp := make([]EmployeeResponse, 0, len(emps))
	for _, e := range emps {
		resp = append(resp, toResponse(e))
	}

	contextutil.GetLogger(ctx, s.logger).Debug("get all employees",
		zap.String("department", q.Department),
		zap.String("q", q.Q),
		zap.Int("count", len(resp)),
	)
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	emp, ok := s.store.FindEmployee(id)
	if !ok {
		contextutil.GetLogger(ctx, s.logger).Warn("employee not found", zap.String("employee_id", id))
		return EmployeeResponse{}, portalerrors.ErrEmployeeNotFound
	}
	return toResponse(emp), nil
}

func (s *service) Update(ctx context.Context, id string, req EmployeeRequest) (EmployeeResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("update employee requested", zap.String("employee_id", id))

	emp, err := s.store.UpdateEmployee(ctx, id, req.toInput())
	if err != nil {
		log.Warn("update employee failed", zap.String("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, err
	}

	log.Info("update employee success", zap.String("employee_id", id))
	return toResponse(emp), nil
}

func (s *service) Delete(ctx context.Context, id string) (DeleteEmployeeResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("delete employee requested", zap.String("employee_id", id))

	removed, err := s.store.DeleteEmployee(ctx, id)
	if err != nil {
		log.Warn("delete employee failed", zap.String("employee_id", id), zap.Error(err))
		return DeleteEmployeeResponse{}, err
	}

	log.Info("delete employee success",
		zap.String("employee_id", id),
		zap.Int("increments_removed", removed),
	)
	return DeleteEmployeeResponse{ID: id, IncrementsRemoved: removed}, nil
}

func (s *service) Options(ctx context.Context) OptionsResponse {
	return OptionsResponse{
		Departments: portal.Departments(),
		Reasons:     portal.IncrementReasons(),
	}
}
