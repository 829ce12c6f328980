package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/nominacol/nomina-backend-go/internal/domain/novelty"
	"github.com/nominacol/nomina-backend-go/internal/domain/payroll"
)

func TestAggregateBonuses_MoneyTypes(t *testing.T) {
	rates := payroll.DefaultRates()
	novelties := []novelty.Novelty{
		{Type: novelty.TypeFixedCompensation, BonusAmount: decimal.NewFromInt(100000)},
		{Type: novelty.TypeSalesBonus, BonusAmount: decimal.NewFromInt(80300)},
		{Type: novelty.TypeGasAllowance, BonusAmount: decimal.NewFromInt(45000)},
		{Type: novelty.TypeStudyLicense, BonusAmount: decimal.NewFromInt(200000)},
	}

	b := AggregateBonuses(novelties, rates)

	assert.True(t, b.FixedCompensation.Equal(decimal.NewFromInt(100000)))
	// 80300 sits on the lower half of its grid cell.
	assert.True(t, b.SalesBonus.Equal(decimal.NewFromInt(80500)))
	assert.True(t, b.GasAllowance.Equal(decimal.NewFromInt(45000)))
	assert.True(t, b.StudyLicense.Equal(decimal.NewFromInt(200000)))
	assert.True(t, b.Total.Equal(decimal.NewFromInt(425500)))
}

func TestAggregateBonuses_HoursFallBackToRate(t *testing.T) {
	rates := payroll.DefaultRates()
	novelties := []novelty.Novelty{
		{Type: novelty.TypeFixedOvertime, Hours: decimal.NewFromInt(10)},
		{Type: novelty.TypeUnexpectedOvertime, Hours: decimal.NewFromInt(3)},
		{Type: novelty.TypeNightSurcharge, Hours: decimal.NewFromInt(5)},
	}

	b := AggregateBonuses(novelties, rates)

	// 10h at the 6200 ordinary rate, 3h at 7800, 5h at 2200.
	assert.True(t, b.FixedOvertime.Equal(decimal.NewFromInt(62000)))
	assert.True(t, b.UnexpectedOvertime.Equal(decimal.NewFromInt(23500)))
	assert.True(t, b.NightSurcharge.Equal(decimal.NewFromInt(11000)))
}

func TestAggregateBonuses_ExplicitAmountWinsOverHours(t *testing.T) {
	rates := payroll.DefaultRates()
	novelties := []novelty.Novelty{
		{Type: novelty.TypeFixedOvertime, Hours: decimal.NewFromInt(10), BonusAmount: decimal.NewFromInt(90000)},
	}

	b := AggregateBonuses(novelties, rates)

	assert.True(t, b.FixedOvertime.Equal(decimal.NewFromInt(90000)))
}

func TestAggregateBonuses_SundayWorkByDays(t *testing.T) {
	rates := payroll.DefaultRates()
	novelties := []novelty.Novelty{
		{Type: novelty.TypeSundayWork, Days: 2},
	}

	b := AggregateBonuses(novelties, rates)

	assert.True(t, b.SundayWork.Equal(decimal.NewFromInt(74500)), "got %s", b.SundayWork)
}

func TestAggregateBonuses_IgnoresDeductionTypes(t *testing.T) {
	rates := payroll.DefaultRates()
	novelties := []novelty.Novelty{
		{Type: novelty.TypeAbsence, DiscountDays: 2},
		{Type: novelty.TypeMultas, BonusAmount: decimal.NewFromInt(30000)},
	}

	b := AggregateBonuses(novelties, rates)

	assert.True(t, b.Total.IsZero())
}

func TestAggregateBonuses_SameTypeAccumulates(t *testing.T) {
	rates := payroll.DefaultRates()
	novelties := []novelty.Novelty{
		{Type: novelty.TypeSalesBonus, BonusAmount: decimal.NewFromInt(30000)},
		{Type: novelty.TypeSalesBonus, BonusAmount: decimal.NewFromInt(20000)},
	}

	b := AggregateBonuses(novelties, rates)

	assert.True(t, b.SalesBonus.Equal(decimal.NewFromInt(50000)))
}
