package payroll

import "context"

// Service runs and stores monthly calculations and owns the editable
// rate table.
type Service interface {
	// Calculate loads the roster, novelties, advances and rates, runs
	// the month and stores the result, replacing any previous run for
	// the same month.
	Calculate(ctx context.Context, req CalculateRequest) (Run, error)

	GetRun(ctx context.Context, month string) (Run, error)
	ListRuns(ctx context.Context) ([]RunSummary, error)

	GetRates(ctx context.Context) (DeductionRates, error)
	UpdateRates(ctx context.Context, req UpdateRatesRequest) (DeductionRates, error)

	// ExportRun renders the stored run as the plain-text payroll report
	// handed to accounting.
	ExportRun(ctx context.Context, month string) (string, error)
}
