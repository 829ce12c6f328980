package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/nominacol/nomina-backend-go/internal/domain/novelty"
	"github.com/nominacol/nomina-backend-go/internal/domain/payroll"
	"github.com/nominacol/nomina-backend-go/internal/pkg/finance"
)

// bonusRule maps one addition-class novelty type to the breakdown
// field it accumulates into and the way its amount is derived. An
// explicit amount on the row always wins; hour- and day-based types
// fall back to hours or days times the configured rate.
type bonusRule struct {
	target func(*payroll.BonusBreakdown) *decimal.Decimal
	amount func(n novelty.Novelty, rates payroll.DeductionRates) decimal.Decimal
}

func explicitAmount(n novelty.Novelty, _ payroll.DeductionRates) decimal.Decimal {
	return n.BonusAmount
}

func hoursAt(rate func(payroll.DeductionRates) decimal.Decimal) func(novelty.Novelty, payroll.DeductionRates) decimal.Decimal {
	return func(n novelty.Novelty, rates payroll.DeductionRates) decimal.Decimal {
		if !n.BonusAmount.IsZero() {
			return n.BonusAmount
		}
		return n.Hours.Mul(rate(rates))
	}
}

func daysAt(rate func(payroll.DeductionRates) decimal.Decimal) func(novelty.Novelty, payroll.DeductionRates) decimal.Decimal {
	return func(n novelty.Novelty, rates payroll.DeductionRates) decimal.Decimal {
		if !n.BonusAmount.IsZero() {
			return n.BonusAmount
		}
		return decimal.NewFromInt(int64(n.Days)).Mul(rate(rates))
	}
}

var bonusRules = map[novelty.Type]bonusRule{
	novelty.TypeFixedCompensation: {
		target: func(b *payroll.BonusBreakdown) *decimal.Decimal { return &b.FixedCompensation },
		amount: explicitAmount,
	},
	novelty.TypeSalesBonus: {
		target: func(b *payroll.BonusBreakdown) *decimal.Decimal { return &b.SalesBonus },
		amount: explicitAmount,
	},
	novelty.TypeGasAllowance: {
		target: func(b *payroll.BonusBreakdown) *decimal.Decimal { return &b.GasAllowance },
		amount: explicitAmount,
	},
	novelty.TypeStudyLicense: {
		target: func(b *payroll.BonusBreakdown) *decimal.Decimal { return &b.StudyLicense },
		amount: explicitAmount,
	},
	novelty.TypeFixedOvertime: {
		target: func(b *payroll.BonusBreakdown) *decimal.Decimal { return &b.FixedOvertime },
		amount: hoursAt(func(r payroll.DeductionRates) decimal.Decimal { return r.OrdinaryHour }),
	},
	novelty.TypeUnexpectedOvertime: {
		target: func(b *payroll.BonusBreakdown) *decimal.Decimal { return &b.UnexpectedOvertime },
		amount: hoursAt(func(r payroll.DeductionRates) decimal.Decimal { return r.Overtime }),
	},
	novelty.TypeNightSurcharge: {
		target: func(b *payroll.BonusBreakdown) *decimal.Decimal { return &b.NightSurcharge },
		amount: hoursAt(func(r payroll.DeductionRates) decimal.Decimal { return r.NightSurcharge }),
	},
	novelty.TypeSundayWork: {
		target: func(b *payroll.BonusBreakdown) *decimal.Decimal { return &b.SundayWork },
		amount: daysAt(func(r payroll.DeductionRates) decimal.Decimal { return r.Sunday1 }),
	},
}

// AggregateBonuses folds the addition-class novelties of one effective
// set into a per-category breakdown. Every contribution is rounded to
// the pay grid before it is summed, and the total is rounded once more,
// so the breakdown always carries grid-aligned figures.
func AggregateBonuses(novelties []novelty.Novelty, rates payroll.DeductionRates) payroll.BonusBreakdown {
	var b payroll.BonusBreakdown
	for _, n := range novelties {
		rule, ok := bonusRules[n.Type]
		if !ok {
			continue
		}
		contribution := finance.RoundToStep(rule.amount(n, rates))
		field := rule.target(&b)
		*field = field.Add(contribution)
	}
	b.Total = finance.RoundToStep(b.FixedCompensation.
		Add(b.SalesBonus).
		Add(b.FixedOvertime).
		Add(b.UnexpectedOvertime).
		Add(b.NightSurcharge).
		Add(b.SundayWork).
		Add(b.GasAllowance).
		Add(b.StudyLicense))
	return b
}
