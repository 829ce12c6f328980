package payroll

import "context"

// RatesRepository holds the single editable rate table.
type RatesRepository interface {
	Get(ctx context.Context) (DeductionRates, error)
	Upsert(ctx context.Context, rates DeductionRates) (DeductionRates, error)
}

// RunRepository stores calculation runs keyed by month.
type RunRepository interface {
	// Replace atomically swaps the stored run for run.Month.
	Replace(ctx context.Context, run Run) error
	GetByMonth(ctx context.Context, month string) (Run, error)
	ListMonths(ctx context.Context) ([]string, error)
}
