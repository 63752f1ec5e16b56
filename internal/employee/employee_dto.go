package employee

import (
	"salary-portal/internal/portal"

	"github.com/shopspring/decimal"
)

// EmployeeRequest is the body of create and update. On update the id in the
// path wins.
type EmployeeRequest struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Email         string          `json:"email"`
	Phone         string          `json:"phone"`
	Department    string          `json:"department"`
	Position      string          `json:"position"`
	HireDate      string          `json:"hireDate"`
	CurrentSalary decimal.Decimal `json:"currentSalary"`
	Address       string          `json:"address"`
}

func (r EmployeeRequest) toInput() portal.EmployeeInput {
	return portal.EmployeeInput{
		ID:            r.ID,
		Name:          r.Name,
		Email:         r.Email,
		Phone:         r.Phone,
		Department:    r.Department,
		Position:      r.Position,
		HireDate:      r.HireDate,
		CurrentSalary: r.CurrentSalary,
		Address:       r.Address,
	}
}

type ListEmployeesQuery struct {
	Q          string `form:"q" json:"q"`
	Department string `form:"department" json:"department"`
	Page       int    `form:"page" json:"page" binding:"omitempty,min=1"`
	PageSize   int    `form:"page_size" json:"page_size" binding:"omitempty,min=1,max=100"`
}

type EmployeeResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Email         string          `json:"email"`
	Phone         string          `json:"phone"`
	Department    string          `json:"department"`
	Position      string          `json:"position"`
	HireDate      string          `json:"hireDate"`
	CurrentSalary decimal.Decimal `json:"currentSalary"`
	Address       string          `json:"address"`
	CreatedDate   string          `json:"createdDate"`
}

func toResponse(e portal.Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:            e.ID,
		Name:          e.Name,
		Email:         e.Email,
		Phone:         e.Phone,
		Department:    e.Department,
		Position:      e.Position,
		HireDate:      e.HireDate,
		CurrentSalary: e.CurrentSalary,
		Address:       e.Address,
		CreatedDate:   e.CreatedDate,
	}
}

type DeleteEmployeeResponse struct {
	ID                string `json:"id"`
	IncrementsRemoved int    `json:"incrementsRemoved"`
}

// OptionsResponse feeds the department and reason pickers.
type OptionsResponse struct {
	Departments []string `json:"departments"`
	Reasons     []string `json:"reasons"`
}
