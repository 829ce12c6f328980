package payroll

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/nominacol/nomina-backend-go/internal/domain/employee"
	"github.com/nominacol/nomina-backend-go/internal/domain/novelty"
)

// PayrollDays is the flat month base used for pro-ration. Payroll
// economics use a 30-day month regardless of calendar length; only the
// hire-month cutoff looks at the real month end.
const PayrollDays = 30

// DeductionRates is the rate table for a calculation run. Percentages
// are whole numbers (4 means 4%); everything else is COP. The table is
// editable through settings; the engine treats it as immutable input.
type DeductionRates struct {
	Health             decimal.Decimal `json:"health"`
	Pension            decimal.Decimal `json:"pension"`
	Solidarity         decimal.Decimal `json:"solidarity"`
	TransportAllowance decimal.Decimal `json:"transportAllowance"`
	Sunday1            decimal.Decimal `json:"sunday1"`
	Sunday2            decimal.Decimal `json:"sunday2"`
	Sunday3            decimal.Decimal `json:"sunday3"`
	Overtime           decimal.Decimal `json:"overtime"`
	NightSellers       decimal.Decimal `json:"nightSellers"`
	NightSurcharge     decimal.Decimal `json:"nightSurcharge"`
	OrdinaryHour       decimal.Decimal `json:"ordinaryHour"`
	MinimumSalary      decimal.Decimal `json:"minimumSalary"`
}

// DefaultRates returns the statutory 2024 values used until a clerk
// overrides them.
func DefaultRates() DeductionRates {
	return DeductionRates{
		Health:             decimal.NewFromInt(4),
		Pension:            decimal.NewFromInt(4),
		Solidarity:         decimal.NewFromInt(1),
		TransportAllowance: decimal.NewFromInt(162000),
		Sunday1:            decimal.NewFromInt(37200),
		Sunday2:            decimal.NewFromInt(25500),
		Sunday3:            decimal.NewFromInt(23200),
		Overtime:           decimal.NewFromInt(7800),
		NightSellers:       decimal.NewFromInt(32800),
		NightSurcharge:     decimal.NewFromInt(2200),
		OrdinaryHour:       decimal.NewFromInt(6200),
		MinimumSalary:      decimal.NewFromInt(1300000),
	}
}

// BonusBreakdown is the per-category sum of addition novelties. Each
// category is a sum of already-rounded contributions; Total is rounded
// again on top.
type BonusBreakdown struct {
	FixedCompensation  decimal.Decimal `json:"fixedCompensation"`
	SalesBonus         decimal.Decimal `json:"salesBonus"`
	FixedOvertime      decimal.Decimal `json:"fixedOvertime"`
	UnexpectedOvertime decimal.Decimal `json:"unexpectedOvertime"`
	NightSurcharge     decimal.Decimal `json:"nightSurcharge"`
	SundayWork         decimal.Decimal `json:"sundayWork"`
	GasAllowance       decimal.Decimal `json:"gasAllowance"`
	StudyLicense       decimal.Decimal `json:"studyLicense"`
	Total              decimal.Decimal `json:"total"`
}

// DeductionBreakdown carries every statutory and ad-hoc deduction for
// one employee-month.
type DeductionBreakdown struct {
	Health            decimal.Decimal `json:"health"`
	Pension           decimal.Decimal `json:"pension"`
	Solidarity        decimal.Decimal `json:"solidarity"`
	Absence           decimal.Decimal `json:"absence"`
	Advance           decimal.Decimal `json:"advance"`
	PlanCorporativo   decimal.Decimal `json:"planCorporativo"`
	Recordar          decimal.Decimal `json:"recordar"`
	InventariosCruces decimal.Decimal `json:"inventariosCruces"`
	Multas            decimal.Decimal `json:"multas"`
	FondoEmpleados    decimal.Decimal `json:"fondoEmpleados"`
	CarteraEmpleados  decimal.Decimal `json:"carteraEmpleados"`
	Total             decimal.Decimal `json:"total"`
}

// Calculation is one employee's result for one run. It is created
// fresh per run and never mutated; NetSalary may be negative when
// deductions exceed earnings.
type Calculation struct {
	Employee           employee.Employee  `json:"employee"`
	WorkedDays         int                `json:"workedDays"`
	TotalDaysInMonth   int                `json:"totalDaysInMonth"`
	BaseSalary         decimal.Decimal    `json:"baseSalary"`
	DiscountedDays     int                `json:"discountedDays"`
	TransportAllowance decimal.Decimal    `json:"transportAllowance"`
	GrossSalary        decimal.Decimal    `json:"grossSalary"`
	TotalEarned        decimal.Decimal    `json:"totalEarned"`
	Bonuses            BonusBreakdown     `json:"bonusCalculations"`
	Deductions         DeductionBreakdown `json:"deductions"`
	NetSalary          decimal.Decimal    `json:"netSalary"`
	Novelties          []novelty.Novelty  `json:"novelties"`
}

// Run is a stored calculation for one month. A new run replaces the
// previous one for the same month wholesale.
type Run struct {
	Month     string        `json:"month"`
	AsOf      time.Time     `json:"asOf"`
	Records   []Calculation `json:"records"`
	CreatedAt time.Time     `json:"-"`
}
