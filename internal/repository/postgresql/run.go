package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/nominacol/nomina-backend-go/internal/domain/payroll"
	"github.com/nominacol/nomina-backend-go/internal/pkg/database"
)

// runRepositoryImpl stores one row per month; the per-employee records
// live in a JSONB column since they are only ever read back whole.
type runRepositoryImpl struct {
	db *database.DB
}

func NewRunRepository(db *database.DB) payroll.RunRepository {
	return &runRepositoryImpl{db: db}
}

func (r *runRepositoryImpl) Replace(ctx context.Context, run payroll.Run) error {
	q := GetQuerier(ctx, r.db)

	records, err := json.Marshal(run.Records)
	if err != nil {
		return fmt.Errorf("marshal run records: %w", err)
	}

	query := `
		INSERT INTO payroll_runs (month, as_of, records, created_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (month) DO UPDATE SET
			as_of = EXCLUDED.as_of,
			records = EXCLUDED.records,
			created_at = NOW()
	`
	if _, err := q.Exec(ctx, query, run.Month, run.AsOf, records); err != nil {
		return fmt.Errorf("store run %s: %w", run.Month, err)
	}
	return nil
}

func (r *runRepositoryImpl) GetByMonth(ctx context.Context, month string) (payroll.Run, error) {
	q := GetQuerier(ctx, r.db)

	var run payroll.Run
	var records []byte
	err := q.QueryRow(ctx,
		`SELECT month, as_of, records, created_at FROM payroll_runs WHERE month = $1`,
		month).Scan(&run.Month, &run.AsOf, &records, &run.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.Run{}, payroll.ErrRunNotFound
		}
		return payroll.Run{}, fmt.Errorf("get run %s: %w", month, err)
	}

	if err := json.Unmarshal(records, &run.Records); err != nil {
		return payroll.Run{}, fmt.Errorf("unmarshal run records: %w", err)
	}
	return run, nil
}

func (r *runRepositoryImpl) ListMonths(ctx context.Context) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT month FROM payroll_runs ORDER BY month DESC`)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var months []string
	for rows.Next() {
		var month string
		if err := rows.Scan(&month); err != nil {
			return nil, err
		}
		months = append(months, month)
	}
	return months, rows.Err()
}
