package payroll

import "errors"

var (
	ErrRunNotFound   = errors.New("payroll run not found for month")
	ErrRatesNotFound = errors.New("deduction rates not configured")
)
