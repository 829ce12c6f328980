package employee

import "context"

type Repository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	GetAll(ctx context.Context) ([]Employee, error)
	Update(ctx context.Context, emp Employee) (Employee, error)
	Delete(ctx context.Context, id string) error
	ExistsByCedula(ctx context.Context, cedula string, excludeID *string) (bool, error)

	// UpdateWorkedDaysTotal stores the recomputed tenure counter.
	UpdateWorkedDaysTotal(ctx context.Context, id string, workedDays int) error
}
