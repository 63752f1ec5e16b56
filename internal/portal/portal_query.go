package portal

import "strings"

// ListEmployees returns employees in insertion order. Department must match
// exactly; Query is a case-insensitive substring over name, id, department
// and position.
func (s *Store) ListEmployees(f EmployeeFilter) []Employee {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q := strings.ToLower(strings.TrimSpace(f.Query))
	out := make([]Employee, 0, len(s.employees))
	for _, e := range s.employees {
		if f.Department != "" && e.Department != f.Department {
			continue
		}
		if q != "" && !containsAny(q, e.Name, e.ID, e.Department, e.Position) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// ListIncrements returns increments in insertion order. A non-empty Query
// matches employee name, reason or approver, and drops increments whose
// employee no longer exists.
func (s *Store) ListIncrements(f IncrementFilter) []Increment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make(map[string]string, len(s.employees))
	for _, e := range s.employees {
		names[e.ID] = e.Name
	}

	q := strings.ToLower(strings.TrimSpace(f.Query))
	out := make([]Increment, 0, len(s.increments))
	for _, inc := range s.increments {
		if f.EmployeeID != "" && inc.EmployeeID != f.EmployeeID {
			continue
		}
		if q != "" {
			name, ok := names[inc.EmployeeID]
			if !ok || !containsAny(q, name, inc.Reason, inc.ApprovedBy) {
				continue
			}
		}
		out = append(out, inc)
	}
	return out
}

func containsAny(q string, fields ...string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}
