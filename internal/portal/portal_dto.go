package portal

import (
	"strings"

	"github.com/shopspring/decimal"
)

// EmployeeInput carries every mutable employee field. Address is optional.
type EmployeeInput struct {
	ID            string          `json:"id" validate:"required"`
	Name          string          `json:"name" validate:"required"`
	Email         string          `json:"email" validate:"required,basic_email"`
	Phone         string          `json:"phone" validate:"required"`
	Department    string          `json:"department" validate:"required,department"`
	Position      string          `json:"position" validate:"required"`
	HireDate      string          `json:"hireDate" validate:"required,datetime=2006-01-02"`
	CurrentSalary decimal.Decimal `json:"currentSalary" validate:"required,gt=0"`
	Address       string          `json:"address"`
}

func (in EmployeeInput) normalize() EmployeeInput {
	in.ID = strings.TrimSpace(in.ID)
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Position = strings.TrimSpace(in.Position)
	in.HireDate = strings.TrimSpace(in.HireDate)
	in.Address = strings.TrimSpace(in.Address)
	return in
}

func (in EmployeeInput) apply(e *Employee) {
	e.Name = in.Name
	e.Email = in.Email
	e.Phone = in.Phone
	e.Department = in.Department
	e.Position = in.Position
	e.HireDate = in.HireDate
	e.CurrentSalary = in.CurrentSalary
	e.Address = in.Address
}

// IncrementInput is what a caller supplies for a raise; the old salary is
// always read from the employee.
type IncrementInput struct {
	EmployeeID    string          `json:"employeeId" validate:"required"`
	NewSalary     decimal.Decimal `json:"newSalary" validate:"required,gt=0"`
	Reason        string          `json:"reason" validate:"required,increment_reason"`
	EffectiveDate string          `json:"effectiveDate" validate:"required,datetime=2006-01-02"`
	ApprovedBy    string          `json:"approvedBy" validate:"required"`
	Notes         string          `json:"notes"`
}

func (in IncrementInput) normalize() IncrementInput {
	in.EmployeeID = strings.TrimSpace(in.EmployeeID)
	in.EffectiveDate = strings.TrimSpace(in.EffectiveDate)
	in.ApprovedBy = strings.TrimSpace(in.ApprovedBy)
	in.Notes = strings.TrimSpace(in.Notes)
	return in
}

type EmployeeFilter struct {
	Department string
	Query      string
}

type IncrementFilter struct {
	EmployeeID string
	Query      string
}
