package payroll

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nominacol/nomina-backend-go/internal/domain/advance"
	"github.com/nominacol/nomina-backend-go/internal/domain/employee"
	"github.com/nominacol/nomina-backend-go/internal/domain/novelty"
	"github.com/nominacol/nomina-backend-go/internal/domain/payroll"
)

func TestCalculate_FullMonthNoNovelties(t *testing.T) {
	hire := date(2023, time.June, 1)
	emp := employee.Employee{
		ID:           "emp-1",
		Name:         "Ana Torres",
		ContractType: employee.ContractNomina,
		Salary:       decimal.NewFromInt(1800000),
		HireDate:     &hire,
	}

	records := Calculate([]employee.Employee{emp}, nil, nil, payroll.DefaultRates(), "2024-03")

	require.Len(t, records, 1)
	r := records[0]
	assert.Equal(t, 30, r.WorkedDays)
	assert.Equal(t, 30, r.TotalDaysInMonth)
	assert.Equal(t, 0, r.DiscountedDays)
	assert.True(t, r.GrossSalary.Equal(decimal.NewFromInt(1800000)))
}

func TestCalculate_EndToEnd(t *testing.T) {
	hire := date(2023, time.June, 1)
	emp := employee.Employee{
		ID:           "emp-1",
		Name:         "Ana Torres",
		ContractType: employee.ContractNomina,
		Salary:       decimal.NewFromInt(1800000),
		HireDate:     &hire,
	}
	novelties := []novelty.Novelty{
		{ID: "n1", EmployeeID: "emp-1", Type: novelty.TypeAbsence, Date: date(2024, time.March, 12), DiscountDays: 2},
	}
	advances := []advance.Advance{
		{ID: "a1", EmployeeID: "emp-1", Amount: decimal.NewFromInt(100000), Month: "2024-03"},
	}

	records := Calculate([]employee.Employee{emp}, novelties, advances, payroll.DefaultRates(), "2024-03")

	require.Len(t, records, 1)
	r := records[0]
	assert.Equal(t, 28, r.WorkedDays)
	assert.Equal(t, 2, r.DiscountedDays)
	// Daily 60,000 over 28 days.
	assert.True(t, r.GrossSalary.Equal(decimal.NewFromInt(1680000)), "gross %s", r.GrossSalary)
	// 162,000/30 rounds to 5,500 a day.
	assert.True(t, r.TransportAllowance.Equal(decimal.NewFromInt(154000)), "transport %s", r.TransportAllowance)
	assert.True(t, r.TotalEarned.Equal(decimal.NewFromInt(1834000)), "earned %s", r.TotalEarned)

	assert.True(t, r.Deductions.Health.Equal(decimal.NewFromInt(67500)))
	assert.True(t, r.Deductions.Pension.Equal(decimal.NewFromInt(67500)))
	assert.True(t, r.Deductions.Absence.Equal(decimal.NewFromInt(120000)))
	assert.True(t, r.Deductions.Advance.Equal(decimal.NewFromInt(100000)))
	assert.True(t, r.Deductions.Total.Equal(decimal.NewFromInt(355000)), "deductions %s", r.Deductions.Total)

	assert.True(t, r.NetSalary.Equal(decimal.NewFromInt(1479000)), "net %s", r.NetSalary)
}

func TestCalculate_HireMonthProration(t *testing.T) {
	// Hired on the 15th of a 31-day month: 17 payable days.
	hire := date(2024, time.March, 15)
	emp := employee.Employee{
		ID:           "emp-1",
		ContractType: employee.ContractOPS,
		Salary:       decimal.NewFromInt(3000000),
		HireDate:     &hire,
	}

	records := Calculate([]employee.Employee{emp}, nil, nil, payroll.DefaultRates(), "2024-03")

	require.Len(t, records, 1)
	r := records[0]
	assert.Equal(t, 17, r.WorkedDays)
	// Daily 100,000 over 17 days.
	assert.True(t, r.GrossSalary.Equal(decimal.NewFromInt(1700000)))
}

func TestCalculate_SkipsEmployeesHiredLater(t *testing.T) {
	hire := date(2024, time.May, 1)
	emp := employee.Employee{ID: "emp-1", Salary: decimal.NewFromInt(2000000), HireDate: &hire}

	records := Calculate([]employee.Employee{emp}, nil, nil, payroll.DefaultRates(), "2024-03")

	assert.Empty(t, records)
}

func TestCalculate_NilHireDateAlwaysActive(t *testing.T) {
	emp := employee.Employee{ID: "emp-1", ContractType: employee.ContractOPS, Salary: decimal.NewFromInt(2100000)}

	records := Calculate([]employee.Employee{emp}, nil, nil, payroll.DefaultRates(), "2024-02")

	require.Len(t, records, 1)
	assert.Equal(t, 30, records[0].WorkedDays)
}

func TestCalculate_TransportSubsidyEligibility(t *testing.T) {
	rates := payroll.DefaultRates()
	tests := []struct {
		name     string
		contract employee.ContractType
		salary   int64
		want     int64
	}{
		// Daily 5,400 rounds to 5,500 before the 30-day multiply.
		{"salaried under threshold", employee.ContractNomina, 1000000, 165000},
		{"salaried at threshold", employee.ContractNomina, 2600000, 0},
		{"contractor under threshold", employee.ContractOPS, 1000000, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			emp := employee.Employee{ID: "emp-1", ContractType: tt.contract, Salary: decimal.NewFromInt(tt.salary)}
			records := Calculate([]employee.Employee{emp}, nil, nil, rates, "2024-03")
			require.Len(t, records, 1)
			assert.True(t, records[0].TransportAllowance.Equal(decimal.NewFromInt(tt.want)),
				"transport %s", records[0].TransportAllowance)
		})
	}
}

func TestCalculate_NetMayGoNegative(t *testing.T) {
	emp := employee.Employee{ID: "emp-1", ContractType: employee.ContractOPS, Salary: decimal.NewFromInt(1500000)}
	novelties := []novelty.Novelty{
		{ID: "n1", EmployeeID: "emp-1", Type: novelty.TypeAbsence, Date: date(2024, time.March, 2), DiscountDays: 30},
	}
	advances := []advance.Advance{
		{ID: "a1", EmployeeID: "emp-1", Amount: decimal.NewFromInt(400000), Month: "2024-03"},
	}

	records := Calculate([]employee.Employee{emp}, novelties, advances, payroll.DefaultRates(), "2024-03")

	require.Len(t, records, 1)
	r := records[0]
	assert.Equal(t, 0, r.WorkedDays)
	assert.True(t, r.NetSalary.IsNegative(), "net %s", r.NetSalary)
}

func TestCalculate_AdvancesOfOtherMonthsIgnored(t *testing.T) {
	emp := employee.Employee{ID: "emp-1", ContractType: employee.ContractOPS, Salary: decimal.NewFromInt(2100000)}
	advances := []advance.Advance{
		{ID: "a1", EmployeeID: "emp-1", Amount: decimal.NewFromInt(100000), Month: "2024-02"},
	}

	records := Calculate([]employee.Employee{emp}, nil, advances, payroll.DefaultRates(), "2024-03")

	require.Len(t, records, 1)
	assert.True(t, records[0].Deductions.Advance.IsZero())
}

func TestCalculate_RecurringLicenseLandsInBonuses(t *testing.T) {
	emp := employee.Employee{ID: "emp-1", ContractType: employee.ContractOPS, Salary: decimal.NewFromInt(2100000)}
	novelties := []novelty.Novelty{recurringLicense("lic-1", "2024-01")}

	records := Calculate([]employee.Employee{emp}, novelties, nil, payroll.DefaultRates(), "2024-03")

	require.Len(t, records, 1)
	r := records[0]
	require.Len(t, r.Novelties, 1)
	assert.True(t, r.Novelties[0].IsSynthetic())
	assert.True(t, r.Bonuses.StudyLicense.Equal(decimal.NewFromInt(200000)))
}
