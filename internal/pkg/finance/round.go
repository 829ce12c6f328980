package finance

import "github.com/shopspring/decimal"

var (
	step     = decimal.NewFromInt(1000)
	halfStep = decimal.NewFromInt(500)
)

// RoundToStep rounds a COP amount to the payroll grid: values land on
// multiples of 500, with remainders above 500 carried up to the next
// thousand. Every monetary subtotal in a calculation goes through this
// immediately after it is computed, so rounding accumulates across
// intermediate figures. That accumulation is part of the historical
// numbers and must not be collapsed into a single final rounding.
//
// The remainder is normalized to [0, 1000) so the law stays idempotent
// for negative amounts (a net salary can be negative).
func RoundToStep(amount decimal.Decimal) decimal.Decimal {
	r := amount.Mod(step)
	if r.IsNegative() {
		r = r.Add(step)
	}
	base := amount.Sub(r)

	switch {
	case r.IsZero():
		return base
	case r.LessThanOrEqual(halfStep):
		return base.Add(halfStep)
	default:
		return base.Add(step)
	}
}
