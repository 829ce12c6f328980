package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/nominacol/nomina-backend-go/internal/domain/advance"
	"github.com/nominacol/nomina-backend-go/internal/pkg/database"
)

type advanceRepositoryImpl struct {
	db *database.DB
}

func NewAdvanceRepository(db *database.DB) advance.Repository {
	return &advanceRepositoryImpl{db: db}
}

const advanceColumns = `
	id, employee_id, employee_name, amount, employee_fund, employee_loan,
	date, month, description, created_at, updated_at
`

func scanAdvance(row pgx.Row) (advance.Advance, error) {
	var a advance.Advance
	err := row.Scan(
		&a.ID, &a.EmployeeID, &a.EmployeeName, &a.Amount, &a.EmployeeFund,
		&a.EmployeeLoan, &a.Date, &a.Month, &a.Description, &a.CreatedAt, &a.UpdatedAt,
	)
	return a, err
}

func (r *advanceRepositoryImpl) Create(ctx context.Context, a advance.Advance) (advance.Advance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO advances (id, employee_id, employee_name, amount, employee_fund,
			employee_loan, date, month, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING ` + advanceColumns

	created, err := scanAdvance(q.QueryRow(ctx, query,
		a.ID, a.EmployeeID, a.EmployeeName, a.Amount, a.EmployeeFund,
		a.EmployeeLoan, a.Date, a.Month, a.Description,
	))
	if err != nil {
		return advance.Advance{}, fmt.Errorf("insert advance: %w", err)
	}
	return created, nil
}

func (r *advanceRepositoryImpl) GetByID(ctx context.Context, id string) (advance.Advance, error) {
	q := GetQuerier(ctx, r.db)

	a, err := scanAdvance(q.QueryRow(ctx, `SELECT `+advanceColumns+` FROM advances WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return advance.Advance{}, advance.ErrAdvanceNotFound
		}
		return advance.Advance{}, fmt.Errorf("get advance %s: %w", id, err)
	}
	return a, nil
}

func (r *advanceRepositoryImpl) GetAll(ctx context.Context) ([]advance.Advance, error) {
	return r.queryMany(ctx, `SELECT `+advanceColumns+` FROM advances ORDER BY date DESC`)
}

func (r *advanceRepositoryImpl) GetByMonth(ctx context.Context, month string) ([]advance.Advance, error) {
	return r.queryMany(ctx,
		`SELECT `+advanceColumns+` FROM advances WHERE month = $1 ORDER BY date`,
		month)
}

func (r *advanceRepositoryImpl) queryMany(ctx context.Context, query string, args ...interface{}) ([]advance.Advance, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query advances: %w", err)
	}
	defer rows.Close()

	var advances []advance.Advance
	for rows.Next() {
		a, err := scanAdvance(rows)
		if err != nil {
			return nil, err
		}
		advances = append(advances, a)
	}
	return advances, rows.Err()
}

func (r *advanceRepositoryImpl) Update(ctx context.Context, a advance.Advance) (advance.Advance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE advances
		SET amount = $2, employee_fund = $3, employee_loan = $4, date = $5,
			month = $6, description = $7, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + advanceColumns

	updated, err := scanAdvance(q.QueryRow(ctx, query,
		a.ID, a.Amount, a.EmployeeFund, a.EmployeeLoan, a.Date, a.Month, a.Description,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return advance.Advance{}, advance.ErrAdvanceNotFound
		}
		return advance.Advance{}, fmt.Errorf("update advance %s: %w", a.ID, err)
	}
	return updated, nil
}

func (r *advanceRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM advances WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete advance %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return advance.ErrAdvanceNotFound
	}
	return nil
}
