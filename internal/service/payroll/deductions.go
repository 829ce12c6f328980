package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/nominacol/nomina-backend-go/internal/domain/advance"
	"github.com/nominacol/nomina-backend-go/internal/domain/employee"
	"github.com/nominacol/nomina-backend-go/internal/domain/novelty"
	"github.com/nominacol/nomina-backend-go/internal/domain/payroll"
	"github.com/nominacol/nomina-backend-go/internal/pkg/finance"
)

var oneHundred = decimal.NewFromInt(100)

// adHocTargets routes each money-based ad-hoc deduction type to its
// breakdown field.
var adHocTargets = map[novelty.Type]func(*payroll.DeductionBreakdown) *decimal.Decimal{
	novelty.TypePlanCorporativo:   func(d *payroll.DeductionBreakdown) *decimal.Decimal { return &d.PlanCorporativo },
	novelty.TypeRecordar:          func(d *payroll.DeductionBreakdown) *decimal.Decimal { return &d.Recordar },
	novelty.TypeInventariosCruces: func(d *payroll.DeductionBreakdown) *decimal.Decimal { return &d.InventariosCruces },
	novelty.TypeMultas:            func(d *payroll.DeductionBreakdown) *decimal.Decimal { return &d.Multas },
	novelty.TypeFondoEmpleados:    func(d *payroll.DeductionBreakdown) *decimal.Decimal { return &d.FondoEmpleados },
	novelty.TypeCarteraEmpleados:  func(d *payroll.DeductionBreakdown) *decimal.Decimal { return &d.CarteraEmpleados },
}

// AggregateDeductions builds the deduction side of one employee-month.
// Statutory percentages apply to the earned gross; the solidarity and
// pension toggles look at the contractual salary and the pensioned
// flag. Absences are valued at the 30-day daily salary regardless of
// calendar month length. advances must already be filtered to this
// employee and month.
func AggregateDeductions(
	novelties []novelty.Novelty,
	grossSalary decimal.Decimal,
	emp employee.Employee,
	advances []advance.Advance,
	rates payroll.DeductionRates,
) payroll.DeductionBreakdown {
	var d payroll.DeductionBreakdown

	d.Health = finance.RoundToStep(grossSalary.Mul(rates.Health).Div(oneHundred))

	if !emp.IsPensioned {
		d.Pension = finance.RoundToStep(grossSalary.Mul(rates.Pension).Div(oneHundred))
	}

	// Solidarity fund kicks in at four minimum salaries, inclusive.
	threshold := rates.MinimumSalary.Mul(decimal.NewFromInt(4))
	if emp.Salary.GreaterThanOrEqual(threshold) {
		d.Solidarity = finance.RoundToStep(grossSalary.Mul(rates.Solidarity).Div(oneHundred))
	}

	if discountDays := TotalDiscountDays(novelties); discountDays > 0 {
		daily := finance.RoundToStep(emp.Salary.Div(decimal.NewFromInt(payroll.PayrollDays)))
		d.Absence = finance.RoundToStep(daily.Mul(decimal.NewFromInt(int64(discountDays))))
	}

	for _, n := range novelties {
		target, ok := adHocTargets[n.Type]
		if !ok {
			continue
		}
		field := target(&d)
		*field = field.Add(finance.RoundToStep(n.BonusAmount))
	}

	if len(advances) > 0 {
		sum := decimal.Zero
		for _, a := range advances {
			sum = sum.Add(a.Amount)
		}
		d.Advance = finance.RoundToStep(sum)
	}

	d.Total = finance.RoundToStep(d.Health.
		Add(d.Pension).
		Add(d.Solidarity).
		Add(d.Absence).
		Add(d.Advance).
		Add(d.PlanCorporativo).
		Add(d.Recordar).
		Add(d.InventariosCruces).
		Add(d.Multas).
		Add(d.FondoEmpleados).
		Add(d.CarteraEmpleados))
	return d
}
