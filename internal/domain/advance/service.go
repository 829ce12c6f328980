package advance

import "context"

type Service interface {
	CreateAdvance(ctx context.Context, req CreateAdvanceRequest) (Advance, error)
	GetAdvance(ctx context.Context, id string) (Advance, error)
	ListAdvances(ctx context.Context) ([]Advance, error)
	ListByMonth(ctx context.Context, month string) ([]Advance, error)
	UpdateAdvance(ctx context.Context, req UpdateAdvanceRequest) (Advance, error)
	DeleteAdvance(ctx context.Context, id string) error
}
