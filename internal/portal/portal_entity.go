package portal

import (
	"slices"

	"github.com/shopspring/decimal"
)

func init() {
	// money is stored as plain JSON numbers
	decimal.MarshalJSONWithoutQuotes = true
}

// Employee is persisted under the "employees" key with these json names.
type Employee struct {
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

// Increment is a recorded raise. IncrementPercentage is fixed at write time.
type Increment struct {
	ID                  string          `json:"id"`
	EmployeeID          string          `json:"employeeId"`
	OldSalary           decimal.Decimal `json:"oldSalary"`
	NewSalary           decimal.Decimal `json:"newSalary"`
	IncrementPercentage decimal.Decimal `json:"incrementPercentage"`
	Reason              string          `json:"reason"`
	EffectiveDate       string          `json:"effectiveDate"`
	ApprovedBy          string          `json:"approvedBy"`
	Notes               string          `json:"notes"`
}

// Amount is the raise in currency units.
func (i Increment) Amount() decimal.Decimal {
	return i.NewSalary.Sub(i.OldSalary)
}

// Snapshot is a consistent copy of both collections.
type Snapshot struct {
	Employees  []Employee  `json:"employees"`
	Increments []Increment `json:"increments"`
}

var departments = []string{
	"Engineering",
	"Marketing",
	"HR",
	"Finance",
	"Sales",
	"Operations",
}

var incrementReasons = []string{
	"Annual Performance Review",
	"Promotion",
	"Market Adjustment",
	"Merit Increase",
	"Cost of Living Adjustment",
	"Retention",
	"Special Recognition",
}

func Departments() []string {
	return slices.Clone(departments)
}

func IncrementReasons() []string {
	return slices.Clone(incrementReasons)
}
