package report

import "github.com/shopspring/decimal"

type Headline struct {
	TotalEmployees   int             `json:"totalEmployees"`
	AverageSalary    decimal.Decimal `json:"averageSalary"`
	TotalIncrements  int             `json:"totalIncrements"`
	AverageIncrement decimal.Decimal `json:"averageIncrementPercentage"`
}

// RecentIncrement is an increment joined with its employee's name.
type RecentIncrement struct {
	ID                  string          `json:"id"`
	EmployeeID          string          `json:"employeeId"`
	EmployeeName        string          `json:"employeeName"`
	OldSalary           decimal.Decimal `json:"oldSalary"`
	NewSalary           decimal.Decimal `json:"newSalary"`
	Amount              decimal.Decimal `json:"amount"`
	IncrementPercentage decimal.Decimal `json:"incrementPercentage"`
	Reason              string          `json:"reason"`
	EffectiveDate       string          `json:"effectiveDate"`
}

type SalaryBucket struct {
	Label string          `json:"label"`
	Min   decimal.Decimal `json:"min"`
	// Max is exclusive; nil for the open top bucket.
	Max   *decimal.Decimal `json:"max"`
	Count int              `json:"count"`
}

type DepartmentAverage struct {
	Department    string          `json:"department"`
	Employees     int             `json:"employees"`
	AverageSalary decimal.Decimal `json:"averageSalary"`
	// Rounded is the average to whole currency units.
	Rounded decimal.Decimal `json:"roundedAverageSalary"`
}

type MonthlyIncrement struct {
	Month       string          `json:"month"`
	Count       int             `json:"count"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
}

type EmployeeSummary struct {
	ID                     string          `json:"id"`
	Name                   string          `json:"name"`
	Department             string          `json:"department"`
	Position               string          `json:"position"`
	HireDate               string          `json:"hireDate"`
	CurrentSalary          decimal.Decimal `json:"currentSalary"`
	TotalIncrements        decimal.Decimal `json:"totalIncrements"`
	IncrementCount         int             `json:"incrementCount"`
	AvgIncrementPercentage decimal.Decimal `json:"avgIncrementPercentage"`
}

type Dashboard struct {
	Headline           Headline            `json:"headline"`
	RecentIncrements   []RecentIncrement   `json:"recentIncrements"`
	SalaryDistribution []SalaryBucket      `json:"salaryDistribution"`
	Departments        []DepartmentAverage `json:"departments"`
	IncrementTrend     []MonthlyIncrement  `json:"incrementTrend"`
}
