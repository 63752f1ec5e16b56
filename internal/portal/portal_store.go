package portal

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"sync"
	"time"

	"salary-portal/internal/events"
	"salary-portal/internal/kvstore"
	portalerrors "salary-portal/internal/portal/errors"
	"salary-portal/internal/shared/contextutil"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	EmployeesKey  = "employees"
	IncrementsKey = "increments"

	dateLayout = "2006-01-02"
)

type Option func(*Store)

func WithLogger(logger *zap.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger.Named("portal.store")
		}
	}
}

// WithClock overrides the source of createdDate.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func WithIDGenerator(gen func() string) Option {
	return func(s *Store) { s.newID = gen }
}

func WithEventPublisher(p EventPublisher) Option {
	return func(s *Store) {
		if p != nil {
			s.publisher = p
		}
	}
}

// Store owns the employee and increment collections. Every mutation works on
// a copy of both, persists the copy, and only then swaps it in, so a failed
// operation leaves memory untouched. In kv, a failed increments write puts
// the previous employees value back; a failure of that rewrite too is only
// logged.
type Store struct {
	mu         sync.RWMutex
	kv         kvstore.Store
	employees  []Employee
	increments []Increment

	validate  *validator.Validate
	now       func() time.Time
	newID     func() string
	publisher EventPublisher
	logger    *zap.Logger
}

// New loads both collections from kv, seeding any absent key with sample
// data, and writes the result back.
func New(ctx context.Context, kv kvstore.Store, opts ...Option) (*Store, error) {
	s := &Store{
		kv:        kv,
		validate:  newValidator(),
		now:       time.Now,
		newID:     func() string { return "INC-" + uuid.NewString() },
		publisher: noopEventPublisher{},
		logger:    zap.L().Named("portal.store"),
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := s.load(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load(ctx context.Context) error {
	employees, seededEmployees, err := loadCollection(ctx, s.kv, EmployeesKey, sampleEmployees)
	if err != nil {
		s.logger.Error("load employees failed", zap.Error(err))
		return err
	}
	increments, seededIncrements, err := loadCollection(ctx, s.kv, IncrementsKey, sampleIncrements)
	if err != nil {
		s.logger.Error("load increments failed", zap.Error(err))
		return err
	}

	if employees == nil {
		employees = []Employee{}
	}
	if increments == nil {
		increments = []Increment{}
	}
	if err := s.persist(ctx, employees, increments, nil); err != nil {
		s.logger.Error("persist loaded collections failed", zap.Error(err))
		return err
	}
	s.employees = employees
	s.increments = increments

	s.logger.Info("portal data loaded",
		zap.Int("employees", len(employees)),
		zap.Int("increments", len(increments)),
		zap.Bool("seeded_employees", seededEmployees),
		zap.Bool("seeded_increments", seededIncrements),
	)
	return nil
}

func loadCollection[T any](
	ctx context.Context,
	kv kvstore.Store,
	key string,
	seed func() []T,
) ([]T, bool, error) {
	raw, ok, err := kv.Get(ctx, key)
	if err != nil {
		return nil, false, fmt.Errorf("read %s: %w", key, err)
	}
	if !ok {
		return seed(), true, nil
	}

	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, false, fmt.Errorf("decode %s: %w", key, err)
	}
	if items == nil {
		items = []T{}
	}
	return items, false, nil
}

// persist writes both collections as full snapshots, employees first. If the
// increments write fails and prev is non-nil, prev is written back under
// EmployeesKey.
func (s *Store) persist(ctx context.Context, employees []Employee, increments []Increment, prev []Employee) error {
	if employees == nil {
		employees = []Employee{}
	}
	if increments == nil {
		increments = []Increment{}
	}

	empJSON, err := json.Marshal(employees)
	if err != nil {
		return portalerrors.ErrPersistFailed(err)
	}
	incJSON, err := json.Marshal(increments)
	if err != nil {
		return portalerrors.ErrPersistFailed(err)
	}

	if err := s.kv.Set(ctx, EmployeesKey, string(empJSON)); err != nil {
		return portalerrors.ErrPersistFailed(err)
	}
	if err := s.kv.Set(ctx, IncrementsKey, string(incJSON)); err != nil {
		if prev != nil {
			s.restoreEmployees(ctx, prev)
		}
		return portalerrors.ErrPersistFailed(err)
	}
	return nil
}

func (s *Store) restoreEmployees(ctx context.Context, prev []Employee) {
	log := contextutil.GetLogger(ctx, s.logger)
	prevJSON, err := json.Marshal(prev)
	if err == nil {
		err = s.kv.Set(ctx, EmployeesKey, string(prevJSON))
	}
	if err != nil {
		log.Error("restore employees failed", zap.Error(err))
	}
}

// workingSet is the copy a mutation edits.
type workingSet struct {
	employees  []Employee
	increments []Increment
}

func (w *workingSet) employeeIndex(id string) int {
	return slices.IndexFunc(w.employees, func(e Employee) bool { return e.ID == id })
}

func (w *workingSet) incrementIndex(id string) int {
	return slices.IndexFunc(w.increments, func(i Increment) bool { return i.ID == id })
}

func (s *Store) mutate(ctx context.Context, fn func(w *workingSet) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	w := &workingSet{
		employees:  slices.Clone(s.employees),
		increments: slices.Clone(s.increments),
	}
	if err := fn(w); err != nil {
		return err
	}
	if err := s.persist(ctx, w.employees, w.increments, s.employees); err != nil {
		return err
	}

	s.employees = w.employees
	s.increments = w.increments
	return nil
}

func (s *Store) publish(ctx context.Context, key, eventType string, payload any) {
	if err := s.publisher.Publish(ctx, key, eventType, payload); err != nil {
		contextutil.GetLogger(ctx, s.logger).Warn("publish event failed",
			zap.String("event_type", eventType),
			zap.String("key", key),
			zap.Error(err),
		)
	}
}

func (s *Store) AddEmployee(ctx context.Context, in EmployeeInput) (Employee, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	in = in.normalize()
	log.Debug("add employee requested", zap.String("employee_id", in.ID))

	if err := s.validateInput(in); err != nil {
		log.Warn("add employee validation failed", zap.String("employee_id", in.ID), zap.Error(err))
		return Employee{}, err
	}

	emp := Employee{
		ID:          in.ID,
		CreatedDate: s.now().UTC().Format(dateLayout),
	}
	in.apply(&emp)

	err := s.mutate(ctx, func(w *workingSet) error {
		if w.employeeIndex(emp.ID) >= 0 {
			return portalerrors.ErrEmployeeAlreadyExists
		}
		w.employees = append(w.employees, emp)
		return nil
	})
	if err != nil {
		log.Warn("add employee failed", zap.String("employee_id", emp.ID), zap.Error(err))
		return Employee{}, err
	}

	s.publish(ctx, emp.ID, events.EventEmployeeCreated, events.EmployeeCreatedEvent{
		EventType:     events.EventEmployeeCreated,
		RequestID:     contextutil.GetRequestID(ctx),
		EmployeeID:    emp.ID,
		Department:    emp.Department,
		CurrentSalary: emp.CurrentSalary.String(),
		OccurredAt:    s.now().UTC(),
	})

	log.Info("add employee success", zap.String("employee_id", emp.ID))
	return emp, nil
}

// UpdateEmployee replaces every mutable field; id and createdDate are kept.
func (s *Store) UpdateEmployee(ctx context.Context, id string, in EmployeeInput) (Employee, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	in = in.normalize()
	in.ID = id
	log.Debug("update employee requested", zap.String("employee_id", id))

	if _, ok := s.FindEmployee(id); !ok {
		log.Warn("update employee not found", zap.String("employee_id", id))
		return Employee{}, portalerrors.ErrEmployeeNotFound
	}
	if err := s.validateInput(in); err != nil {
		log.Warn("update employee validation failed", zap.String("employee_id", id), zap.Error(err))
		return Employee{}, err
	}

	var updated Employee
	err := s.mutate(ctx, func(w *workingSet) error {
		idx := w.employeeIndex(id)
		if idx < 0 {
			return portalerrors.ErrEmployeeNotFound
		}
		in.apply(&w.employees[idx])
		updated = w.employees[idx]
		return nil
	})
	if err != nil {
		log.Warn("update employee failed", zap.String("employee_id", id), zap.Error(err))
		return Employee{}, err
	}

	log.Info("update employee success", zap.String("employee_id", id))
	return updated, nil
}

// DeleteEmployee removes the employee and all of its increments, returning
// how many increments went with it.
func (s *Store) DeleteEmployee(ctx context.Context, id string) (int, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("delete employee requested", zap.String("employee_id", id))

	removed := 0
	err := s.mutate(ctx, func(w *workingSet) error {
		idx := w.employeeIndex(id)
		if idx < 0 {
			return portalerrors.ErrEmployeeNotFound
		}
		w.employees = slices.Delete(w.employees, idx, idx+1)

		kept := make([]Increment, 0, len(w.increments))
		for _, inc := range w.increments {
			if inc.EmployeeID == id {
				removed++
				continue
			}
			kept = append(kept, inc)
		}
		w.increments = kept
		return nil
	})
	if err != nil {
		log.Warn("delete employee failed", zap.String("employee_id", id), zap.Error(err))
		return 0, err
	}

	s.publish(ctx, id, events.EventEmployeeDeleted, events.EmployeeDeletedEvent{
		EventType:         events.EventEmployeeDeleted,
		RequestID:         contextutil.GetRequestID(ctx),
		EmployeeID:        id,
		IncrementsRemoved: removed,
		OccurredAt:        s.now().UTC(),
	})

	log.Info("delete employee success",
		zap.String("employee_id", id),
		zap.Int("increments_removed", removed),
	)
	return removed, nil
}

// AddIncrement records a raise against the employee's current salary and
// moves the employee to the new salary.
func (s *Store) AddIncrement(ctx context.Context, in IncrementInput) (Increment, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	in = in.normalize()
	log.Debug("add increment requested", zap.String("employee_id", in.EmployeeID))

	if err := s.validateInput(in); err != nil {
		log.Warn("add increment validation failed", zap.String("employee_id", in.EmployeeID), zap.Error(err))
		return Increment{}, err
	}

	var inc Increment
	err := s.mutate(ctx, func(w *workingSet) error {
		idx := w.employeeIndex(in.EmployeeID)
		if idx < 0 {
			return portalerrors.ErrEmployeeNotFound
		}
		emp := &w.employees[idx]

		oldSalary := emp.CurrentSalary
		if in.NewSalary.LessThanOrEqual(oldSalary) {
			return portalerrors.ErrNewSalaryNotGreater
		}

		id := s.newID()
		for w.incrementIndex(id) >= 0 {
			id = s.newID()
		}

		inc = Increment{
			ID:                  id,
			EmployeeID:          emp.ID,
			OldSalary:           oldSalary,
			NewSalary:           in.NewSalary,
			IncrementPercentage: incrementPercentage(oldSalary, in.NewSalary),
			Reason:              in.Reason,
			EffectiveDate:       in.EffectiveDate,
			ApprovedBy:          in.ApprovedBy,
			Notes:               in.Notes,
		}
		emp.CurrentSalary = in.NewSalary
		w.increments = append(w.increments, inc)
		return nil
	})
	if err != nil {
		log.Warn("add increment failed", zap.String("employee_id", in.EmployeeID), zap.Error(err))
		return Increment{}, err
	}

	s.publish(ctx, inc.EmployeeID, events.EventIncrementApplied, events.IncrementAppliedEvent{
		EventType:           events.EventIncrementApplied,
		RequestID:           contextutil.GetRequestID(ctx),
		IncrementID:         inc.ID,
		EmployeeID:          inc.EmployeeID,
		OldSalary:           inc.OldSalary.String(),
		NewSalary:           inc.NewSalary.String(),
		IncrementPercentage: inc.IncrementPercentage.String(),
		Reason:              inc.Reason,
		EffectiveDate:       inc.EffectiveDate,
		OccurredAt:          s.now().UTC(),
	})

	log.Info("add increment success",
		zap.String("increment_id", inc.ID),
		zap.String("employee_id", inc.EmployeeID),
		zap.String("increment_percentage", inc.IncrementPercentage.String()),
	)
	return inc, nil
}

// DeleteIncrement removes the record only. The employee keeps its current
// salary; it is not recomputed from the remaining history.
func (s *Store) DeleteIncrement(ctx context.Context, id string) error {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("delete increment requested", zap.String("increment_id", id))

	err := s.mutate(ctx, func(w *workingSet) error {
		idx := w.incrementIndex(id)
		if idx < 0 {
			return portalerrors.ErrIncrementNotFound
		}
		w.increments = slices.Delete(w.increments, idx, idx+1)
		return nil
	})
	if err != nil {
		log.Warn("delete increment failed", zap.String("increment_id", id), zap.Error(err))
		return err
	}

	log.Info("delete increment success", zap.String("increment_id", id))
	return nil
}

func (s *Store) FindEmployee(id string) (Employee, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, e := range s.employees {
		if e.ID == id {
			return e, true
		}
	}
	return Employee{}, false
}

func (s *Store) FindIncrement(id string) (Increment, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, inc := range s.increments {
		if inc.ID == id {
			return inc, true
		}
	}
	return Increment{}, false
}

// EmployeeName returns the employee's name, or "" when the id is unknown.
func (s *Store) EmployeeName(id string) string {
	e, ok := s.FindEmployee(id)
	if !ok {
		return ""
	}
	return e.Name
}

func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Snapshot{
		Employees:  append([]Employee{}, s.employees...),
		Increments: append([]Increment{}, s.increments...),
	}
}
