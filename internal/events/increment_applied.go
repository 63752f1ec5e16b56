package events

import "time"

type IncrementAppliedEvent struct {
	EventType           string    `json:"event_type"`
	RequestID           string    `json:"request_id,omitempty"`
	IncrementID         string    `json:"increment_id"`
	EmployeeID          string    `json:"employee_id"`
	OldSalary           string    `json:"old_salary"`
	NewSalary           string    `json:"new_salary"`
	IncrementPercentage string    `json:"increment_percentage"`
	Reason              string    `json:"reason"`
	EffectiveDate       string    `json:"effective_date"`
	OccurredAt          time.Time `json:"occurred_at"`
}
