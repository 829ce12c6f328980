package employee

import "context"

// Service defines business logic for roster operations.
type Service interface {
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (Employee, error)
	GetEmployee(ctx context.Context, id string) (Employee, error)
	ListEmployees(ctx context.Context) ([]Employee, error)
	UpdateEmployee(ctx context.Context, req UpdateEmployeeRequest) (Employee, error)
	DeleteEmployee(ctx context.Context, id string) error

	// RefreshTenure recomputes every employee's cumulative worked-days
	// counter from the hire date. The scheduler calls it hourly.
	RefreshTenure(ctx context.Context) error
}
