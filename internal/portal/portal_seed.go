package portal

import "github.com/shopspring/decimal"

// Sample data written on first run, when a collection key is absent.

func sampleEmployees() []Employee {
	return []Employee{
		{
			ID:            "EMP001",
			Name:          "John Smith",
			Email:         "john.smith@company.com",
			Phone:         "555-0101",
			Department:    "Engineering",
			Position:      "Software Engineer",
			HireDate:      "2022-03-15",
			CurrentSalary: decimal.NewFromInt(85000),
			Address:       "123 Tech Street, Silicon Valley, CA",
			CreatedDate:   "2022-03-15",
		},
		{
			ID:            "EMP002",
			Name:          "Sarah Johnson",
			Email:         "sarah.johnson@company.com",
			Phone:         "555-0102",
			Department:    "Marketing",
			Position:      "Marketing Manager",
			HireDate:      "2021-07-20",
			CurrentSalary: decimal.NewFromInt(75000),
			Address:       "456 Business Ave, Downtown, NY",
			CreatedDate:   "2021-07-20",
		},
		{
			ID:            "EMP003",
			Name:          "Michael Brown",
			Email:         "michael.brown@company.com",
			Phone:         "555-0103",
			Department:    "HR",
			Position:      "HR Specialist",
			HireDate:      "2023-01-10",
			CurrentSalary: decimal.NewFromInt(60000),
			Address:       "789 Corporate Blvd, Business District, TX",
			CreatedDate:   "2023-01-10",
		},
	}
}

func sampleIncrements() []Increment {
	return []Increment{
		{
			ID:                  "INC001",
			EmployeeID:          "EMP001",
			OldSalary:           decimal.NewFromInt(80000),
			NewSalary:           decimal.NewFromInt(85000),
			IncrementPercentage: decimal.RequireFromString("6.25"),
			Reason:              "Annual Performance Review",
			EffectiveDate:       "2024-01-01",
			ApprovedBy:          "Jane Doe - Engineering Manager",
			Notes:               "Excellent performance and leadership skills demonstrated",
		},
		{
			ID:                  "INC002",
			EmployeeID:          "EMP002",
			OldSalary:           decimal.NewFromInt(70000),
			NewSalary:           decimal.NewFromInt(75000),
			IncrementPercentage: decimal.RequireFromString("7.14"),
			Reason:              "Promotion",
			EffectiveDate:       "2023-12-01",
			ApprovedBy:          "Bob Wilson - Marketing Director",
			Notes:               "Promoted to Marketing Manager role",
		},
	}
}
