package export

import (
	"encoding/json"

	"salary-portal/internal/portal"
	"salary-portal/internal/report"
)

const UnknownEmployee = "Unknown"

var (
	EmployeeFields = []string{
		"id", "name", "email", "phone", "department", "position",
		"hireDate", "currentSalary", "address", "createdDate",
	}
	IncrementFields = []string{
		"id", "employeeId", "employeeName", "oldSalary", "newSalary",
		"incrementPercentage", "reason", "effectiveDate", "approvedBy", "notes",
	}
	SalaryReportFields = []string{
		"id", "name", "department", "position", "hireDate", "currentSalary",
		"totalIncrements", "incrementCount", "avgIncrementPercentage",
	}
)

func EmployeesCSV(snap portal.Snapshot) string {
	records := make([]Record, 0, len(snap.Employees))
	for _, e := range snap.Employees {
		records = append(records, Record{
			"id":            e.ID,
			"name":          e.Name,
			"email":         e.Email,
			"phone":         e.Phone,
			"department":    e.Department,
			"position":      e.Position,
			"hireDate":      e.HireDate,
			"currentSalary": e.CurrentSalary,
			"address":       e.Address,
			"createdDate":   e.CreatedDate,
		})
	}
	return ToCSV(records, EmployeeFields)
}

// IncrementsCSV resolves employee names at export time.
func IncrementsCSV(snap portal.Snapshot) string {
	names := make(map[string]string, len(snap.Employees))
	for _, e := range snap.Employees {
		names[e.ID] = e.Name
	}

	records := make([]Record, 0, len(snap.Increments))
	for _, inc := range snap.Increments {
		name, ok := names[inc.EmployeeID]
		if !ok {
			name = UnknownEmployee
		}
		records = append(records, Record{
			"id":                  inc.ID,
			"employeeId":          inc.EmployeeID,
			"employeeName":        name,
			"oldSalary":           inc.OldSalary,
			"newSalary":           inc.NewSalary,
			"incrementPercentage": inc.IncrementPercentage,
			"reason":              inc.Reason,
			"effectiveDate":       inc.EffectiveDate,
			"approvedBy":          inc.ApprovedBy,
			"notes":               inc.Notes,
		})
	}
	return ToCSV(records, IncrementFields)
}

func SalaryReportCSV(snap portal.Snapshot) string {
	rows := report.SalaryReport(snap.Employees, snap.Increments)
	records := make([]Record, 0, len(rows))
	for _, r := range rows {
		records = append(records, Record{
			"id":                     r.ID,
			"name":                   r.Name,
			"department":             r.Department,
			"position":               r.Position,
			"hireDate":               r.HireDate,
			"currentSalary":          r.CurrentSalary,
			"totalIncrements":        r.TotalIncrements,
			"incrementCount":         r.IncrementCount,
			"avgIncrementPercentage": r.AvgIncrementPercentage,
		})
	}
	return ToCSV(records, SalaryReportFields)
}

// FullData is both collections as one indented JSON document.
func FullData(snap portal.Snapshot) ([]byte, error) {
	if snap.Employees == nil {
		snap.Employees = []portal.Employee{}
	}
	if snap.Increments == nil {
		snap.Increments = []portal.Increment{}
	}
	return json.MarshalIndent(snap, "", "  ")
}
