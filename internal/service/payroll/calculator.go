package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/nominacol/nomina-backend-go/internal/domain/advance"
	"github.com/nominacol/nomina-backend-go/internal/domain/employee"
	"github.com/nominacol/nomina-backend-go/internal/domain/novelty"
	"github.com/nominacol/nomina-backend-go/internal/domain/payroll"
	"github.com/nominacol/nomina-backend-go/internal/pkg/dates"
	"github.com/nominacol/nomina-backend-go/internal/pkg/finance"
)

var payrollDaysDec = decimal.NewFromInt(payroll.PayrollDays)

// Calculate runs one month of payroll over the roster. It is pure:
// everything it needs arrives as arguments, and it touches no clock or
// store. Employees hired after targetMonth are skipped; everyone else
// gets exactly one record, in roster order.
func Calculate(
	employees []employee.Employee,
	novelties []novelty.Novelty,
	advances []advance.Advance,
	rates payroll.DeductionRates,
	targetMonth string,
) []payroll.Calculation {
	noveltiesByEmployee := make(map[string][]novelty.Novelty)
	for _, n := range novelties {
		noveltiesByEmployee[n.EmployeeID] = append(noveltiesByEmployee[n.EmployeeID], n)
	}
	advancesByEmployee := make(map[string][]advance.Advance)
	for _, a := range advances {
		if a.Month == targetMonth {
			advancesByEmployee[a.EmployeeID] = append(advancesByEmployee[a.EmployeeID], a)
		}
	}

	records := make([]payroll.Calculation, 0, len(employees))
	for _, emp := range employees {
		if !emp.ActiveInMonth(targetMonth) {
			continue
		}
		records = append(records, calculateOne(
			emp,
			ResolveMonthly(noveltiesByEmployee[emp.ID], emp.HireDate, targetMonth),
			advancesByEmployee[emp.ID],
			rates,
			targetMonth,
		))
	}
	return records
}

func calculateOne(
	emp employee.Employee,
	effective []novelty.Novelty,
	advances []advance.Advance,
	rates payroll.DeductionRates,
	targetMonth string,
) payroll.Calculation {
	discountDays := TotalDiscountDays(effective)
	workedDays := workedDaysFor(emp, targetMonth, discountDays)

	dailySalary := finance.RoundToStep(emp.Salary.Div(payrollDaysDec))
	grossSalary := finance.RoundToStep(dailySalary.Mul(decimal.NewFromInt(int64(workedDays))))

	transport := transportSubsidy(emp, workedDays, rates)
	bonuses := AggregateBonuses(effective, rates)
	deductions := AggregateDeductions(effective, grossSalary, emp, advances, rates)

	totalEarned := finance.RoundToStep(grossSalary.Add(transport).Add(bonuses.Total))
	netSalary := finance.RoundToStep(totalEarned.Sub(deductions.Total))

	return payroll.Calculation{
		Employee:           emp,
		WorkedDays:         workedDays,
		TotalDaysInMonth:   payroll.PayrollDays,
		BaseSalary:         emp.Salary,
		DiscountedDays:     discountDays,
		TransportAllowance: transport,
		GrossSalary:        grossSalary,
		TotalEarned:        totalEarned,
		Bonuses:            bonuses,
		Deductions:         deductions,
		NetSalary:          netSalary,
		Novelties:          effective,
	}
}

// workedDaysFor derives the payable days for the month. The base is the
// flat 30-day month, except in the hire month where the span from hire
// date to the real calendar month end is used. Absences discount from
// the base, floored at zero.
func workedDaysFor(emp employee.Employee, targetMonth string, discountDays int) int {
	base := payroll.PayrollDays
	if emp.HiredDuring(targetMonth) {
		if end, err := dates.MonthEnd(targetMonth); err == nil {
			base = end.Day() - emp.HireDate.Day() + 1
		}
	}
	worked := base - discountDays
	if worked < 0 {
		worked = 0
	}
	return worked
}

// transportSubsidy pays the prorated legal transport allowance to
// salaried staff earning under two minimum salaries. Contractors never
// receive it.
func transportSubsidy(emp employee.Employee, workedDays int, rates payroll.DeductionRates) decimal.Decimal {
	if emp.ContractType != employee.ContractNomina {
		return decimal.Zero
	}
	if !emp.Salary.LessThan(rates.MinimumSalary.Mul(decimal.NewFromInt(2))) {
		return decimal.Zero
	}
	daily := finance.RoundToStep(rates.TransportAllowance.Div(payrollDaysDec))
	return finance.RoundToStep(daily.Mul(decimal.NewFromInt(int64(workedDays))))
}
