package payroll

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nominacol/nomina-backend-go/internal/domain/novelty"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func recurringLicense(id string, startMonth string) novelty.Novelty {
	start, _ := time.Parse("2006-01", startMonth)
	return novelty.Novelty{
		ID:          id,
		EmployeeID:  "emp-1",
		Type:        novelty.TypeStudyLicense,
		Date:        start,
		Description: "Licencia de estudio",
		BonusAmount: decimal.NewFromInt(200000),
		Unit:        novelty.UnitMoney,
		IsRecurring: true,
		StartMonth:  startMonth,
	}
}

func TestResolveMonthly_PicksNoveltiesOfTargetMonth(t *testing.T) {
	all := []novelty.Novelty{
		{ID: "n1", Type: novelty.TypeAbsence, Date: date(2024, time.March, 10), DiscountDays: 2},
		{ID: "n2", Type: novelty.TypeAbsence, Date: date(2024, time.April, 3), DiscountDays: 1},
		{ID: "n3", Type: novelty.TypeSalesBonus, Date: date(2024, time.March, 25), BonusAmount: decimal.NewFromInt(50000)},
	}

	effective := ResolveMonthly(all, nil, "2024-03")

	require.Len(t, effective, 2)
	assert.Equal(t, "n1", effective[0].ID)
	assert.Equal(t, "n3", effective[1].ID)
}

func TestResolveMonthly_HiredAfterTargetMonth(t *testing.T) {
	hire := date(2024, time.May, 1)
	all := []novelty.Novelty{
		{ID: "n1", Type: novelty.TypeAbsence, Date: date(2024, time.March, 10), DiscountDays: 2},
	}

	assert.Empty(t, ResolveMonthly(all, &hire, "2024-03"))
}

func TestResolveMonthly_SynthesizesRecurringLicense(t *testing.T) {
	all := []novelty.Novelty{recurringLicense("lic-1", "2024-01")}

	effective := ResolveMonthly(all, nil, "2024-03")

	require.Len(t, effective, 1)
	got := effective[0]
	assert.Equal(t, "recurring-lic-1-2024-03", got.ID)
	assert.Equal(t, date(2024, time.March, 1), got.Date)
	assert.Equal(t, "Licencia de estudio (Licencia recurrente desde 2024-01)", got.Description)
	assert.True(t, got.IsSynthetic())
	assert.True(t, got.BonusAmount.Equal(decimal.NewFromInt(200000)))
}

func TestResolveMonthly_BeforeStartMonth(t *testing.T) {
	all := []novelty.Novelty{recurringLicense("lic-1", "2024-04")}

	assert.Empty(t, ResolveMonthly(all, nil, "2024-03"))
}

func TestResolveMonthly_OriginMonthUsesOriginRow(t *testing.T) {
	all := []novelty.Novelty{recurringLicense("lic-1", "2024-01")}

	effective := ResolveMonthly(all, nil, "2024-01")

	require.Len(t, effective, 1)
	assert.Equal(t, "lic-1", effective[0].ID)
	assert.False(t, effective[0].IsSynthetic())
}

func TestResolveMonthly_ExplicitRowSuppressesSynthesis(t *testing.T) {
	all := []novelty.Novelty{
		recurringLicense("lic-1", "2024-01"),
		{
			ID:          "lic-march",
			EmployeeID:  "emp-1",
			Type:        novelty.TypeStudyLicense,
			Date:        date(2024, time.March, 5),
			BonusAmount: decimal.NewFromInt(250000),
			Unit:        novelty.UnitMoney,
		},
	}

	effective := ResolveMonthly(all, nil, "2024-03")

	require.Len(t, effective, 1)
	assert.Equal(t, "lic-march", effective[0].ID)
}

func TestResolveMonthly_DeletedOriginStopsSynthesis(t *testing.T) {
	all := []novelty.Novelty{recurringLicense("lic-1", "2024-01")}

	require.Len(t, ResolveMonthly(all, nil, "2024-06"), 1)

	// Origin gone: later months no longer materialize anything.
	assert.Empty(t, ResolveMonthly(nil, nil, "2024-06"))
}

func TestResolveMonthly_OneSynthesizedPerOrigin(t *testing.T) {
	all := []novelty.Novelty{
		recurringLicense("lic-1", "2024-01"),
		recurringLicense("lic-2", "2024-02"),
	}

	effective := ResolveMonthly(all, nil, "2024-03")

	require.Len(t, effective, 2)
	assert.Equal(t, "recurring-lic-1-2024-03", effective[0].ID)
	assert.Equal(t, "recurring-lic-2-2024-03", effective[1].ID)
}

func TestResolveMonthly_IsIdempotent(t *testing.T) {
	all := []novelty.Novelty{recurringLicense("lic-1", "2024-01")}

	first := ResolveMonthly(all, nil, "2024-05")
	second := ResolveMonthly(all, nil, "2024-05")

	assert.Equal(t, first, second)
}

func TestTotalDiscountDays(t *testing.T) {
	novelties := []novelty.Novelty{
		{Type: novelty.TypeAbsence, DiscountDays: 2},
		{Type: novelty.TypeLate, DiscountDays: 1},
		{Type: novelty.TypeSalesBonus, BonusAmount: decimal.NewFromInt(50000)},
	}

	assert.Equal(t, 3, TotalDiscountDays(novelties))
}
