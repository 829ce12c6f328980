package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/nominacol/nomina-backend-go/internal/domain/payroll"
	"github.com/nominacol/nomina-backend-go/internal/pkg/database"
)

// ratesRepositoryImpl stores the single editable rate table in a
// one-row table keyed by a fixed id.
type ratesRepositoryImpl struct {
	db *database.DB
}

func NewRatesRepository(db *database.DB) payroll.RatesRepository {
	return &ratesRepositoryImpl{db: db}
}

const ratesColumns = `
	health, pension, solidarity, transport_allowance, sunday1, sunday2, sunday3,
	overtime, night_sellers, night_surcharge, ordinary_hour, minimum_salary
`

func scanRates(row pgx.Row) (payroll.DeductionRates, error) {
	var r payroll.DeductionRates
	err := row.Scan(
		&r.Health, &r.Pension, &r.Solidarity, &r.TransportAllowance,
		&r.Sunday1, &r.Sunday2, &r.Sunday3, &r.Overtime,
		&r.NightSellers, &r.NightSurcharge, &r.OrdinaryHour, &r.MinimumSalary,
	)
	return r, err
}

func (r *ratesRepositoryImpl) Get(ctx context.Context) (payroll.DeductionRates, error) {
	q := GetQuerier(ctx, r.db)

	rates, err := scanRates(q.QueryRow(ctx, `SELECT `+ratesColumns+` FROM deduction_rates WHERE id = 1`))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.DeductionRates{}, payroll.ErrRatesNotFound
		}
		return payroll.DeductionRates{}, fmt.Errorf("get deduction rates: %w", err)
	}
	return rates, nil
}

func (r *ratesRepositoryImpl) Upsert(ctx context.Context, rates payroll.DeductionRates) (payroll.DeductionRates, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO deduction_rates (id, health, pension, solidarity, transport_allowance,
			sunday1, sunday2, sunday3, overtime, night_sellers, night_surcharge,
			ordinary_hour, minimum_salary, updated_at)
		VALUES (1, $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW())
		ON CONFLICT (id) DO UPDATE SET
			health = EXCLUDED.health,
			pension = EXCLUDED.pension,
			solidarity = EXCLUDED.solidarity,
			transport_allowance = EXCLUDED.transport_allowance,
			sunday1 = EXCLUDED.sunday1,
			sunday2 = EXCLUDED.sunday2,
			sunday3 = EXCLUDED.sunday3,
			overtime = EXCLUDED.overtime,
			night_sellers = EXCLUDED.night_sellers,
			night_surcharge = EXCLUDED.night_surcharge,
			ordinary_hour = EXCLUDED.ordinary_hour,
			minimum_salary = EXCLUDED.minimum_salary,
			updated_at = NOW()
		RETURNING ` + ratesColumns

	stored, err := scanRates(q.QueryRow(ctx, query,
		rates.Health, rates.Pension, rates.Solidarity, rates.TransportAllowance,
		rates.Sunday1, rates.Sunday2, rates.Sunday3, rates.Overtime,
		rates.NightSellers, rates.NightSurcharge, rates.OrdinaryHour, rates.MinimumSalary,
	))
	if err != nil {
		return payroll.DeductionRates{}, fmt.Errorf("upsert deduction rates: %w", err)
	}
	return stored, nil
}
