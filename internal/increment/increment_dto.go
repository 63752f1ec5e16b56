package increment

import (
	"salary-portal/internal/portal"

	"github.com/shopspring/decimal"
)

// UnknownEmployee labels increments whose employee has been removed.
const UnknownEmployee = "Unknown"

// CreateIncrementRequest never carries the old salary; it is read from the
// employee when the increment is applied.
type CreateIncrementRequest struct {
	EmployeeID    string          `json:"employeeId"`
	NewSalary     decimal.Decimal `json:"newSalary"`
	Reason        string          `json:"reason"`
	EffectiveDate string          `json:"effectiveDate"`
	ApprovedBy    string          `json:"approvedBy"`
	Notes         string          `json:"notes"`
}

func (r CreateIncrementRequest) toInput() portal.IncrementInput {
	return portal.IncrementInput{
		EmployeeID:    r.EmployeeID,
		NewSalary:     r.NewSalary,
		Reason:        r.Reason,
		EffectiveDate: r.EffectiveDate,
		ApprovedBy:    r.ApprovedBy,
		Notes:         r.Notes,
	}
}

type ListIncrementsQuery struct {
	Q          string `form:"q" json:"q"`
	EmployeeID string `form:"employee_id" json:"employee_id"`
	Page       int    `form:"page" json:"page" binding:"omitempty,min=1"`
	PageSize   int    `form:"page_size" json:"page_size" binding:"omitempty,min=1,max=100"`
}

type IncrementResponse struct {
	ID                  string          `json:"id"`
	EmployeeID          string          `json:"employeeId"`
	EmployeeName        string          `json:"employeeName"`
	OldSalary           decimal.Decimal `json:"oldSalary"`
	NewSalary           decimal.Decimal `json:"newSalary"`
	Amount              decimal.Decimal `json:"amount"`
	IncrementPercentage decimal.Decimal `json:"incrementPercentage"`
	Reason              string          `json:"reason"`
	EffectiveDate       string          `json:"effectiveDate"`
	ApprovedBy          string          `json:"approvedBy"`
	Notes               string          `json:"notes"`
}

func toResponse(inc portal.Increment, employeeName string) IncrementResponse {
	if employeeName == "" {
		employeeName = UnknownEmployee
	}
	return IncrementResponse{
		ID:                  inc.ID,
		EmployeeID:          inc.EmployeeID,
		EmployeeName:        employeeName,
		OldSalary:           inc.OldSalary,
		NewSalary:           inc.NewSalary,
		Amount:              inc.Amount(),
		IncrementPercentage: inc.IncrementPercentage,
		Reason:              inc.Reason,
		EffectiveDate:       inc.EffectiveDate,
		ApprovedBy:          inc.ApprovedBy,
		Notes:               inc.Notes,
	}
}
