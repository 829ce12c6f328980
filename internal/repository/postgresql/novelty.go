package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/nominacol/nomina-backend-go/internal/domain/novelty"
	"github.com/nominacol/nomina-backend-go/internal/pkg/database"
)

type noveltyRepositoryImpl struct {
	db *database.DB
}

func NewNoveltyRepository(db *database.DB) novelty.Repository {
	return &noveltyRepositoryImpl{db: db}
}

const noveltyColumns = `
	id, employee_id, employee_name, type, date, description, discount_days,
	bonus_amount, hours, days, unit_type, is_recurring, start_month, created_at, updated_at
`

func scanNovelty(row pgx.Row) (novelty.Novelty, error) {
	var n novelty.Novelty
	err := row.Scan(
		&n.ID, &n.EmployeeID, &n.EmployeeName, &n.Type, &n.Date, &n.Description,
		&n.DiscountDays, &n.BonusAmount, &n.Hours, &n.Days, &n.Unit,
		&n.IsRecurring, &n.StartMonth, &n.CreatedAt, &n.UpdatedAt,
	)
	return n, err
}

func (r *noveltyRepositoryImpl) Create(ctx context.Context, n novelty.Novelty) (novelty.Novelty, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO novelties (id, employee_id, employee_name, type, date, description,
			discount_days, bonus_amount, hours, days, unit_type, is_recurring, start_month,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, NOW(), NOW())
		RETURNING ` + noveltyColumns

	created, err := scanNovelty(q.QueryRow(ctx, query,
		n.ID, n.EmployeeID, n.EmployeeName, n.Type, n.Date, n.Description,
		n.DiscountDays, n.BonusAmount, n.Hours, n.Days, n.Unit, n.IsRecurring, n.StartMonth,
	))
	if err != nil {
		return novelty.Novelty{}, fmt.Errorf("insert novelty: %w", err)
	}
	return created, nil
}

func (r *noveltyRepositoryImpl) GetByID(ctx context.Context, id string) (novelty.Novelty, error) {
	q := GetQuerier(ctx, r.db)

	n, err := scanNovelty(q.QueryRow(ctx, `SELECT `+noveltyColumns+` FROM novelties WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return novelty.Novelty{}, novelty.ErrNoveltyNotFound
		}
		return novelty.Novelty{}, fmt.Errorf("get novelty %s: %w", id, err)
	}
	return n, nil
}

func (r *noveltyRepositoryImpl) GetAll(ctx context.Context) ([]novelty.Novelty, error) {
	return r.queryMany(ctx, `SELECT `+noveltyColumns+` FROM novelties ORDER BY date, created_at`)
}

func (r *noveltyRepositoryImpl) GetByEmployeeID(ctx context.Context, employeeID string) ([]novelty.Novelty, error) {
	return r.queryMany(ctx,
		`SELECT `+noveltyColumns+` FROM novelties WHERE employee_id = $1 ORDER BY date, created_at`,
		employeeID)
}

func (r *noveltyRepositoryImpl) queryMany(ctx context.Context, query string, args ...interface{}) ([]novelty.Novelty, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query novelties: %w", err)
	}
	defer rows.Close()

	var novelties []novelty.Novelty
	for rows.Next() {
		n, err := scanNovelty(rows)
		if err != nil {
			return nil, err
		}
		novelties = append(novelties, n)
	}
	return novelties, rows.Err()
}

func (r *noveltyRepositoryImpl) Update(ctx context.Context, n novelty.Novelty) (novelty.Novelty, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE novelties
		SET date = $2, description = $3, discount_days = $4, bonus_amount = $5,
			hours = $6, days = $7, is_recurring = $8, start_month = $9, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + noveltyColumns

	updated, err := scanNovelty(q.QueryRow(ctx, query,
		n.ID, n.Date, n.Description, n.DiscountDays, n.BonusAmount,
		n.Hours, n.Days, n.IsRecurring, n.StartMonth,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return novelty.Novelty{}, novelty.ErrNoveltyNotFound
		}
		return novelty.Novelty{}, fmt.Errorf("update novelty %s: %w", n.ID, err)
	}
	return updated, nil
}

func (r *noveltyRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM novelties WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete novelty %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return novelty.ErrNoveltyNotFound
	}
	return nil
}
