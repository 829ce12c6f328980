package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/nominacol/nomina-backend-go/internal/domain/advance"
	"github.com/nominacol/nomina-backend-go/internal/domain/employee"
	"github.com/nominacol/nomina-backend-go/internal/domain/novelty"
	"github.com/nominacol/nomina-backend-go/internal/domain/payroll"
)

func salariedEmployee(salary int64) employee.Employee {
	return employee.Employee{
		ID:           "emp-1",
		Name:         "Ana Torres",
		ContractType: employee.ContractNomina,
		Salary:       decimal.NewFromInt(salary),
	}
}

func TestAggregateDeductions_StatutoryPercentages(t *testing.T) {
	rates := payroll.DefaultRates()
	gross := decimal.NewFromInt(1680000)

	d := AggregateDeductions(nil, gross, salariedEmployee(1800000), nil, rates)

	// 4% of 1,680,000 is 67,200, which rounds up to the half step.
	assert.True(t, d.Health.Equal(decimal.NewFromInt(67500)))
	assert.True(t, d.Pension.Equal(decimal.NewFromInt(67500)))
	assert.True(t, d.Solidarity.IsZero())
	assert.True(t, d.Total.Equal(decimal.NewFromInt(135000)))
}

func TestAggregateDeductions_PensionedSkipsPension(t *testing.T) {
	rates := payroll.DefaultRates()
	emp := salariedEmployee(1800000)
	emp.IsPensioned = true

	d := AggregateDeductions(nil, decimal.NewFromInt(1680000), emp, nil, rates)

	assert.True(t, d.Pension.IsZero())
	assert.True(t, d.Health.Equal(decimal.NewFromInt(67500)))
}

func TestAggregateDeductions_SolidarityBoundary(t *testing.T) {
	rates := payroll.DefaultRates()
	gross := decimal.NewFromInt(5200000)

	below := AggregateDeductions(nil, gross, salariedEmployee(5199999), nil, rates)
	assert.True(t, below.Solidarity.IsZero())

	// Four minimum salaries exactly is inside the bracket.
	at := AggregateDeductions(nil, gross, salariedEmployee(5200000), nil, rates)
	assert.True(t, at.Solidarity.Equal(decimal.NewFromInt(52000)))
}

func TestAggregateDeductions_AbsenceUsesThirtyDayDaily(t *testing.T) {
	rates := payroll.DefaultRates()
	novelties := []novelty.Novelty{
		{Type: novelty.TypeAbsence, DiscountDays: 2},
		{Type: novelty.TypeMedicalLeave, DiscountDays: 1},
	}

	d := AggregateDeductions(novelties, decimal.NewFromInt(1620000), salariedEmployee(1800000), nil, rates)

	// Daily salary 60,000, three discounted days.
	assert.True(t, d.Absence.Equal(decimal.NewFromInt(180000)))
}

func TestAggregateDeductions_AdHocCategories(t *testing.T) {
	rates := payroll.DefaultRates()
	novelties := []novelty.Novelty{
		{Type: novelty.TypePlanCorporativo, BonusAmount: decimal.NewFromInt(25000)},
		{Type: novelty.TypeMultas, BonusAmount: decimal.NewFromInt(10000)},
		{Type: novelty.TypeMultas, BonusAmount: decimal.NewFromInt(5000)},
		{Type: novelty.TypeFondoEmpleados, BonusAmount: decimal.NewFromInt(40000)},
	}

	d := AggregateDeductions(novelties, decimal.Zero, salariedEmployee(1800000), nil, rates)

	assert.True(t, d.PlanCorporativo.Equal(decimal.NewFromInt(25000)))
	assert.True(t, d.Multas.Equal(decimal.NewFromInt(15000)))
	assert.True(t, d.FondoEmpleados.Equal(decimal.NewFromInt(40000)))
	assert.True(t, d.Recordar.IsZero())
	assert.True(t, d.InventariosCruces.IsZero())
	assert.True(t, d.CarteraEmpleados.IsZero())
}

func TestAggregateDeductions_AdvancesUseFullAmount(t *testing.T) {
	rates := payroll.DefaultRates()
	advances := []advance.Advance{
		{Amount: decimal.NewFromInt(100000), EmployeeFund: decimal.NewFromInt(10000)},
		{Amount: decimal.NewFromInt(50000)},
	}

	d := AggregateDeductions(nil, decimal.Zero, salariedEmployee(1800000), advances, rates)

	// Fund withholdings reduce the cash handed over, never the payroll
	// deduction.
	assert.True(t, d.Advance.Equal(decimal.NewFromInt(150000)))
}
