package events

import "time"

const PortalLifecycleTopic = "salary.portal.lifecycle.v1"

const (
	EventEmployeeCreated  = "employee_created"
	EventEmployeeDeleted  = "employee_deleted"
	EventIncrementApplied = "increment_applied"
)

type EmployeeCreatedEvent struct {
	EventType     string    `json:"event_type"`
	RequestID     string    `json:"request_id,omitempty"`
	EmployeeID    string    `json:"employee_id"`
	Department    string    `json:"department"`
	CurrentSalary string    `json:"current_salary"`
	OccurredAt    time.Time `json:"occurred_at"`
}

type EmployeeDeletedEvent struct {
	EventType         string    `json:"event_type"`
	RequestID         string    `json:"request_id,omitempty"`
	EmployeeID        string    `json:"employee_id"`
	IncrementsRemoved int       `json:"increments_removed"`
	OccurredAt        time.Time `json:"occurred_at"`
}
