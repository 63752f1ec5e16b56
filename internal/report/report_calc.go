package report

import (
	"cmp"
	"slices"
	"time"

	"salary-portal/internal/portal"

	"github.com/shopspring/decimal"
)

// RecentLimit is how many increments the dashboard lists.
const RecentLimit = 5

const UnknownEmployee = "Unknown Employee"

type bucketBound struct {
	label string
	min   int64
	max   int64 // 0 means unbounded
}

var salaryBuckets = []bucketBound{
	{label: "< $50k", min: 0, max: 50000},
	{label: "$50k - $70k", min: 50000, max: 70000},
	{label: "$70k - $90k", min: 70000, max: 90000},
	{label: "$90k - $120k", min: 90000, max: 120000},
	{label: "> $120k", min: 120000},
}

// mean is the plain arithmetic mean at decimal.DivisionPrecision. Callers
// that display it round on their own.
func mean(sum decimal.Decimal, n int) decimal.Decimal {
	if n == 0 {
		return decimal.Zero
	}
	return sum.Div(decimal.NewFromInt(int64(n)))
}

func nameIndex(employees []portal.Employee) map[string]string {
	names := make(map[string]string, len(employees))
	for _, e := range employees {
		names[e.ID] = e.Name
	}
	return names
}

func HeadlineStats(employees []portal.Employee, increments []portal.Increment) Headline {
	salaries := decimal.Zero
	for _, e := range employees {
		salaries = salaries.Add(e.CurrentSalary)
	}
	pct := decimal.Zero
	for _, inc := range increments {
		pct = pct.Add(inc.IncrementPercentage)
	}

	return Headline{
		TotalEmployees:   len(employees),
		AverageSalary:    mean(salaries, len(employees)),
		TotalIncrements:  len(increments),
		AverageIncrement: mean(pct, len(increments)),
	}
}

// RecentIncrements returns up to limit increments, latest effectiveDate
// first. Equal dates keep collection order.
func RecentIncrements(employees []portal.Employee, increments []portal.Increment, limit int) []RecentIncrement {
	sorted := slices.Clone(increments)
	slices.SortStableFunc(sorted, func(a, b portal.Increment) int {
		return cmp.Compare(b.EffectiveDate, a.EffectiveDate)
	})
	if limit >= 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}

	names := nameIndex(employees)
	out := make([]RecentIncrement, 0, len(sorted))
	for _, inc := range sorted {
		name, ok := names[inc.EmployeeID]
		if !ok {
			name = UnknownEmployee
		}
		out = append(out, RecentIncrement{
			ID:                  inc.ID,
			EmployeeID:          inc.EmployeeID,
			EmployeeName:        name,
			OldSalary:           inc.OldSalary,
			NewSalary:           inc.NewSalary,
			Amount:              inc.Amount(),
			IncrementPercentage: inc.IncrementPercentage,
			Reason:              inc.Reason,
			EffectiveDate:       inc.EffectiveDate,
		})
	}
	return out
}

// SalaryDistribution counts employees per fixed salary band. Every band is
// returned, including empty ones.
func SalaryDistribution(employees []portal.Employee) []SalaryBucket {
	out := make([]SalaryBucket, len(salaryBuckets))
	for i, b := range salaryBuckets {
		out[i] = SalaryBucket{Label: b.label, Min: decimal.NewFromInt(b.min)}
		if b.max > 0 {
			upper := decimal.NewFromInt(b.max)
			out[i].Max = &upper
		}
	}

	for _, e := range employees {
		for i := range out {
			if e.CurrentSalary.LessThan(out[i].Min) {
				continue
			}
			if out[i].Max != nil && !e.CurrentSalary.LessThan(*out[i].Max) {
				continue
			}
			out[i].Count++
			break
		}
	}
	return out
}

// DepartmentAverages groups employees by department in first-seen order.
func DepartmentAverages(employees []portal.Employee) []DepartmentAverage {
	type acc struct {
		count int
		total decimal.Decimal
	}
	var order []string
	groups := make(map[string]*acc)
	for _, e := range employees {
		g, ok := groups[e.Department]
		if !ok {
			g = &acc{}
			groups[e.Department] = g
			order = append(order, e.Department)
		}
		g.count++
		g.total = g.total.Add(e.CurrentSalary)
	}

	out := make([]DepartmentAverage, 0, len(order))
	for _, dept := range order {
		g := groups[dept]
		avg := mean(g.total, g.count)
		out = append(out, DepartmentAverage{
			Department:    dept,
			Employees:     g.count,
			AverageSalary: avg,
			Rounded:       avg.Round(0),
		})
	}
	return out
}

// MonthlyTrend sums raise amounts per YYYY-MM of effectiveDate, oldest month
// first. Increments with an unparseable date are skipped.
func MonthlyTrend(increments []portal.Increment) []MonthlyIncrement {
	groups := make(map[string]*MonthlyIncrement)
	for _, inc := range increments {
		d, err := time.Parse(time.DateOnly, inc.EffectiveDate)
		if err != nil {
			continue
		}
		key := d.Format("2006-01")
		g, ok := groups[key]
		if !ok {
			g = &MonthlyIncrement{Month: key}
			groups[key] = g
		}
		g.Count++
		g.TotalAmount = g.TotalAmount.Add(inc.Amount())
	}

	out := make([]MonthlyIncrement, 0, len(groups))
	for _, g := range groups {
		out = append(out, *g)
	}
	slices.SortFunc(out, func(a, b MonthlyIncrement) int {
		return cmp.Compare(a.Month, b.Month)
	})
	return out
}

// Summary totals one employee's raises.
func Summary(e portal.Employee, increments []portal.Increment) EmployeeSummary {
	total := decimal.Zero
	pct := decimal.Zero
	count := 0
	for _, inc := range increments {
		if inc.EmployeeID != e.ID {
			continue
		}
		total = total.Add(inc.Amount())
		pct = pct.Add(inc.IncrementPercentage)
		count++
	}

	return EmployeeSummary{
		ID:                     e.ID,
		Name:                   e.Name,
		Department:             e.Department,
		Position:               e.Position,
		HireDate:               e.HireDate,
		CurrentSalary:          e.CurrentSalary,
		TotalIncrements:        total,
		IncrementCount:         count,
		AvgIncrementPercentage: mean(pct, count),
	}
}

// SalaryReport returns one row per employee, in collection order.
func SalaryReport(employees []portal.Employee, increments []portal.Increment) []EmployeeSummary {
	out := make([]EmployeeSummary, 0, len(employees))
	for _, e := range employees {
		out = append(out, Summary(e, increments))
	}
	return out
}

func BuildDashboard(snap portal.Snapshot) Dashboard {
	return Dashboard{
		Headline:           HeadlineStats(snap.Employees, snap.Increments),
		RecentIncrements:   RecentIncrements(snap.Employees, snap.Increments, RecentLimit),
		SalaryDistribution: SalaryDistribution(snap.Employees),
		Departments:        DepartmentAverages(snap.Employees),
		IncrementTrend:     MonthlyTrend(snap.Increments),
	}
}
