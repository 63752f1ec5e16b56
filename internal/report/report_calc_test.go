package report_test

import (
	"testing"

	"salary-portal/internal/portal"
	"salary-portal/internal/report"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func emp(id, dept string, salary int64) portal.Employee {
	return portal.Employee{
		ID:            id,
		Name:          "Name " + id,
		Department:    dept,
		Position:      "Staff",
		HireDate:      "2023-01-01",
		CurrentSalary: decimal.NewFromInt(salary),
	}
}

func inc(id, employeeID string, oldSalary, newSalary int64, pct, date string) portal.Increment {
	return portal.Increment{
		ID:                  id,
		EmployeeID:          employeeID,
		OldSalary:           decimal.NewFromInt(oldSalary),
		NewSalary:           decimal.NewFromInt(newSalary),
		IncrementPercentage: decimal.RequireFromString(pct),
		Reason:              "Promotion",
		EffectiveDate:       date,
	}
}

func TestHeadlineStats(t *testing.T) {
	t.Run("empty collections average to zero", func(t *testing.T) {
		h := report.HeadlineStats(nil, nil)

		assert.Equal(t, 0, h.TotalEmployees)
		assert.True(t, h.AverageSalary.IsZero())
		assert.Equal(t, 0, h.TotalIncrements)
		assert.True(t, h.AverageIncrement.IsZero())
	})

	t.Run("means", func(t *testing.T) {
		employees := []portal.Employee{
			emp("E1", "HR", 60000),
			emp("E2", "HR", 70000),
			emp("E3", "Sales", 90000),
		}
		increments := []portal.Increment{
			inc("I1", "E1", 50000, 60000, "20", "2024-01-01"),
			inc("I2", "E2", 56000, 70000, "25", "2024-02-01"),
		}

		h := report.HeadlineStats(employees, increments)

		assert.Equal(t, 3, h.TotalEmployees)
		assert.Equal(t, "73333.3333333333333333", h.AverageSalary.String())
		assert.Equal(t, 2, h.TotalIncrements)
		assert.Equal(t, "22.5", h.AverageIncrement.String())
	})
}

func TestRecentIncrements(t *testing.T) {
	employees := []portal.Employee{emp("E1", "HR", 60000)}
	increments := []portal.Increment{
		inc("I1", "E1", 1, 2, "1", "2024-01-01"),
		inc("I2", "E1", 1, 2, "1", "2024-03-01"),
		inc("I3", "E9", 1, 2, "1", "2024-03-01"),
		inc("I4", "E1", 1, 2, "1", "2023-12-01"),
		inc("I5", "E1", 1, 2, "1", "2024-02-01"),
		inc("I6", "E1", 1, 2, "1", "2024-05-01"),
	}

	got := report.RecentIncrements(employees, increments, report.RecentLimit)

	ids := make([]string, 0, len(got))
	for _, r := range got {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []string{"I6", "I2", "I3", "I5", "I1"}, ids)
	assert.Equal(t, report.UnknownEmployee, got[2].EmployeeName)
	assert.Equal(t, "Name E1", got[0].EmployeeName)
	assert.Equal(t, "1", got[0].Amount.String())

	assert.Equal(t, "I1", increments[0].ID)
}

func TestSalaryDistribution(t *testing.T) {
	t.Run("one per bucket", func(t *testing.T) {
		employees := []portal.Employee{
			emp("E1", "HR", 40000),
			emp("E2", "HR", 65000),
			emp("E3", "HR", 85000),
			emp("E4", "HR", 110000),
			emp("E5", "HR", 150000),
		}

		got := report.SalaryDistribution(employees)

		counts := make([]int, 0, len(got))
		labels := make([]string, 0, len(got))
		for _, b := range got {
			counts = append(counts, b.Count)
			labels = append(labels, b.Label)
		}
		assert.Equal(t, []int{1, 1, 1, 1, 1}, counts)
		assert.Equal(t, []string{"< $50k", "$50k - $70k", "$70k - $90k", "$90k - $120k", "> $120k"}, labels)
		assert.Nil(t, got[4].Max)
	})

	t.Run("lower bound inclusive", func(t *testing.T) {
		got := report.SalaryDistribution([]portal.Employee{
			emp("E1", "HR", 50000),
			emp("E2", "HR", 120000),
			emp("E3", "HR", 69999),
		})

		assert.Equal(t, 0, got[0].Count)
		assert.Equal(t, 2, got[1].Count)
		assert.Equal(t, 1, got[4].Count)
	})
}

func TestDepartmentAverages(t *testing.T) {
	employees := []portal.Employee{
		emp("E1", "Sales", 50000),
		emp("E2", "Engineering", 90000),
		emp("E3", "Sales", 55001),
	}

	got := report.DepartmentAverages(employees)

	assert.Len(t, got, 2)
	assert.Equal(t, "Sales", got[0].Department)
	assert.Equal(t, 2, got[0].Employees)
	assert.Equal(t, "52500.5", got[0].AverageSalary.String())
	assert.Equal(t, "52501", got[0].Rounded.String())
	assert.Equal(t, "Engineering", got[1].Department)
	assert.Equal(t, "90000", got[1].AverageSalary.String())
}

func TestMonthlyTrend(t *testing.T) {
	increments := []portal.Increment{
		inc("I1", "E1", 50000, 55000, "10", "2024-03-15"),
		inc("I2", "E2", 60000, 61000, "1.67", "2023-11-01"),
		inc("I3", "E3", 70000, 72000, "2.86", "2024-03-01"),
		inc("I4", "E4", 1, 2, "100", "not-a-date"),
	}

	got := report.MonthlyTrend(increments)

	assert.Len(t, got, 2)
	assert.Equal(t, "2023-11", got[0].Month)
	assert.Equal(t, 1, got[0].Count)
	assert.Equal(t, "1000", got[0].TotalAmount.String())
	assert.Equal(t, "2024-03", got[1].Month)
	assert.Equal(t, 2, got[1].Count)
	assert.Equal(t, "7000", got[1].TotalAmount.String())
}

func TestSalaryReport(t *testing.T) {
	employees := []portal.Employee{
		emp("E1", "HR", 66000),
		emp("E2", "Sales", 45000),
	}
	increments := []portal.Increment{
		inc("I1", "E1", 50000, 60000, "20", "2023-01-01"),
		inc("I2", "E1", 60000, 66000, "10", "2024-01-01"),
	}

	rows := report.SalaryReport(employees, increments)

	assert.Len(t, rows, 2)
	assert.Equal(t, "E1", rows[0].ID)
	assert.Equal(t, "16000", rows[0].TotalIncrements.String())
	assert.Equal(t, 2, rows[0].IncrementCount)
	assert.Equal(t, "15", rows[0].AvgIncrementPercentage.String())

	assert.Equal(t, 0, rows[1].IncrementCount)
	assert.True(t, rows[1].TotalIncrements.IsZero())
	assert.True(t, rows[1].AvgIncrementPercentage.IsZero())
}

func TestSummaryKeepsNonTerminatingMean(t *testing.T) {
	e := emp("E1", "HR", 70000)
	increments := []portal.Increment{
		inc("I1", "E1", 60000, 63750, "6.25", "2022-01-01"),
		inc("I2", "E1", 63750, 68300, "7.14", "2023-01-01"),
		inc("I3", "E1", 68300, 70000, "3.33", "2024-01-01"),
	}

	got := report.Summary(e, increments)

	assert.Equal(t, 3, got.IncrementCount)
	assert.Equal(t, "5.5733333333333333", got.AvgIncrementPercentage.String())
	assert.Equal(t, "5.57", got.AvgIncrementPercentage.StringFixed(2))
}
