package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/nominacol/nomina-backend-go/internal/domain/auth"
	"github.com/nominacol/nomina-backend-go/internal/pkg/database"
)

type clerkRepositoryImpl struct {
	db *database.DB
}

func NewClerkRepository(db *database.DB) auth.ClerkRepository {
	return &clerkRepositoryImpl{db: db}
}

const clerkColumns = `id, username, password_hash, name, created_at, updated_at`

func scanClerk(row pgx.Row) (auth.Clerk, error) {
	var c auth.Clerk
	err := row.Scan(&c.ID, &c.Username, &c.PasswordHash, &c.Name, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

func (r *clerkRepositoryImpl) GetByUsername(ctx context.Context, username string) (auth.Clerk, error) {
	q := GetQuerier(ctx, r.db)

	c, err := scanClerk(q.QueryRow(ctx, `SELECT `+clerkColumns+` FROM clerks WHERE username = $1`, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return auth.Clerk{}, auth.ErrClerkNotFound
		}
		return auth.Clerk{}, fmt.Errorf("get clerk by username: %w", err)
	}
	return c, nil
}

func (r *clerkRepositoryImpl) GetByID(ctx context.Context, id string) (auth.Clerk, error) {
	q := GetQuerier(ctx, r.db)

	c, err := scanClerk(q.QueryRow(ctx, `SELECT `+clerkColumns+` FROM clerks WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return auth.Clerk{}, auth.ErrClerkNotFound
		}
		return auth.Clerk{}, fmt.Errorf("get clerk %s: %w", id, err)
	}
	return c, nil
}
