package report

import (
	"context"

	"salary-portal/internal/portal"
	portalerrors "salary-portal/internal/portal/errors"
	"salary-portal/internal/shared/contextutil"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const dashboardFlightKey = "dashboard"

// Source is the read side of the domain store.
type Source interface {
	Snapshot() portal.Snapshot
	FindEmployee(id string) (portal.Employee, bool)
}

type Service interface {
	Dashboard(ctx context.Context) Dashboard
	Departments(ctx context.Context) []DepartmentAverage
	IncrementTrend(ctx context.Context) []MonthlyIncrement
	SalaryReport(ctx context.Context) []EmployeeSummary
	EmployeeSummary(ctx context.Context, employeeID string) (EmployeeSummary, error)
}

type service struct {
	source Source
	sf     *singleflight.Group
	logger *zap.Logger
}

// NewService recomputes every aggregate from a fresh snapshot; nothing is
// cached between calls. Concurrent dashboard requests share one computation.
func NewService(source Source, logger ...*zap.Logger) Service {
	l := zap.L().Named("report.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("report.service")
	}
	return &service{source: source, sf: &singleflight.Group{}, logger: l}
}

func (s *service) Dashboard(ctx context.Context) Dashboard {
	log := contextutil.GetLogger(ctx, s.logger)
	v, _, shared := s.sf.Do(dashboardFlightKey, func() (any, error) {
		snap := s.source.Snapshot()
		log.Debug("build dashboard",
			zap.Int("employees", len(snap.Employees)),
			zap.Int("increments", len(snap.Increments)),
		)
		return BuildDashboard(snap), nil
	})
	if shared {
		log.Debug("dashboard computation shared")
	}
	return v.(Dashboard)
}

func (s *service) Departments(ctx context.Context) []DepartmentAverage {
	return DepartmentAverages(s.source.Snapshot().Employees)
}

func (s *service) IncrementTrend(ctx context.Context) []MonthlyIncrement {
	return MonthlyTrend(s.source.Snapshot().Increments)
}

func (s *service) SalaryReport(ctx context.Context) []EmployeeSummary {
	snap := s.source.Snapshot()
	return SalaryReport(snap.Employees, snap.Increments)
}

func (s *service) EmployeeSummary(ctx context.Context, employeeID string) (EmployeeSummary, error) {
	emp, ok := s.source.FindEmployee(employeeID)
	if !ok {
		contextutil.GetLogger(ctx, s.logger).Warn("employee summary not found", zap.String("employee_id", employeeID))
		return EmployeeSummary{}, portalerrors.ErrEmployeeNotFound
	}
	return Summary(emp, s.source.Snapshot().Increments), nil
}
