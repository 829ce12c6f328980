package novelty

import "context"

// Service defines business logic for novelty rows. Reads return stored
// rows only; the materialization of recurring licenses into a month is
// the calculation engine's job.
type Service interface {
	CreateNovelty(ctx context.Context, req CreateNoveltyRequest) (Novelty, error)
	GetNovelty(ctx context.Context, id string) (Novelty, error)
	ListNovelties(ctx context.Context) ([]Novelty, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Novelty, error)
	UpdateNovelty(ctx context.Context, req UpdateNoveltyRequest) (Novelty, error)
	DeleteNovelty(ctx context.Context, id string) error
}
