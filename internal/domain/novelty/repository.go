package novelty

import "context"

type Repository interface {
	Create(ctx context.Context, n Novelty) (Novelty, error)
	GetByID(ctx context.Context, id string) (Novelty, error)
	GetAll(ctx context.Context) ([]Novelty, error)
	GetByEmployeeID(ctx context.Context, employeeID string) ([]Novelty, error)
	Update(ctx context.Context, n Novelty) (Novelty, error)
	Delete(ctx context.Context, id string) error
}
