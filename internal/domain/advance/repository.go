package advance

import "context"

type Repository interface {
	Create(ctx context.Context, a Advance) (Advance, error)
	GetByID(ctx context.Context, id string) (Advance, error)
	GetAll(ctx context.Context) ([]Advance, error)
	GetByMonth(ctx context.Context, month string) ([]Advance, error)
	Update(ctx context.Context, a Advance) (Advance, error)
	Delete(ctx context.Context, id string) error
}
