package payroll

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/nominacol/nomina-backend-go/internal/domain/advance"
	"github.com/nominacol/nomina-backend-go/internal/domain/employee"
	"github.com/nominacol/nomina-backend-go/internal/domain/payroll"
)

func TestMoneyFormatting(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{500, "500"},
		{1500, "1,500"},
		{162000, "162,000"},
		{1834000, "1,834,000"},
		{-67500, "-67,500"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, money(decimal.NewFromInt(tt.in)))
	}
}

func TestRenderReport(t *testing.T) {
	emp := employee.Employee{
		ID:           "emp-1",
		Name:         "Ana Torres",
		Cedula:       "1020304050",
		ContractType: employee.ContractNomina,
	}
	run := payroll.Run{
		Month: "2024-02",
		AsOf:  date(2024, time.February, 28),
		Records: []payroll.Calculation{
			{
				Employee:         emp,
				WorkedDays:       30,
				TotalDaysInMonth: 30,
				BaseSalary:       decimal.NewFromInt(1800000),
				GrossSalary:      decimal.NewFromInt(1800000),
				TotalEarned:      decimal.NewFromInt(1965000),
				Deductions: payroll.DeductionBreakdown{
					Health:  decimal.NewFromInt(72000),
					Pension: decimal.NewFromInt(72000),
					Total:   decimal.NewFromInt(144000),
				},
				NetSalary: decimal.NewFromInt(1821000),
			},
		},
	}
	advances := []advance.Advance{
		{
			EmployeeID: "emp-1",
			Month:      "2024-02",
			Amount:     decimal.NewFromInt(100000),
			Date:       date(2024, time.February, 15),
		},
	}

	report := RenderReport(run, payroll.DefaultRates(), advances)

	assert.Contains(t, report, "NOMINA - Febrero 2024")
	assert.Contains(t, report, "Días del mes: 29")
	assert.Contains(t, report, "1. Ana Torres")
	assert.Contains(t, report, "Cédula: 1020304050")
	assert.Contains(t, report, "Días Trabajados del Mes: 30/30")
	assert.Contains(t, report, "Salud (4%): $72,000")
	assert.Contains(t, report, "SALARIO NETO: $1,821,000")
	assert.Contains(t, report, "Anticipo Quincena del mes:")
	assert.Contains(t, report, "2024-02-15: $100,000")
	assert.Contains(t, report, "TOTAL NÓMINA NETA: $1,821,000")
	assert.Contains(t, report, "Total Anticipo Quincena: $100,000")
	// No bonuses, so the additions block is omitted entirely.
	assert.NotContains(t, report, "Adiciones:")
}
