package employee

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/nominacol/nomina-backend-go/internal/pkg/dates"
)

// ContractType gates transport-subsidy eligibility.
type ContractType string

const (
	ContractOPS    ContractType = "OPS"
	ContractNomina ContractType = "NOMINA"
)

type Employee struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Cedula       string          `json:"cedula"`
	DateOfBirth  *time.Time      `json:"dateOfBirth,omitempty"`
	Phone        string          `json:"phone"`
	Email        string          `json:"email"`
	EPS          string          `json:"eps"`
	ContractType ContractType    `json:"contractType"`
	Salary       decimal.Decimal `json:"salary"`
	IsPensioned  bool            `json:"isPensioned"`

	// HireDate is nil for legacy rows imported without one; such
	// employees are treated as active in every month.
	HireDate *time.Time `json:"createdDate,omitempty"`

	// WorkedDaysTotal is the cumulative tenure counter recomputed
	// periodically from the hire date. It never feeds a single month's
	// calculation; it only appears on reports.
	WorkedDaysTotal int `json:"workedDays"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// ActiveInMonth reports whether the employee was on the roster at any
// point during the keyed month: hired on or before its last day, or has
// no recorded hire date at all.
func (e Employee) ActiveInMonth(monthKey string) bool {
	if e.HireDate == nil {
		return true
	}
	end, err := dates.MonthEnd(monthKey)
	if err != nil {
		return false
	}
	return !e.HireDate.After(end)
}

// HiredDuring reports whether the hire date falls inside the keyed month.
func (e Employee) HiredDuring(monthKey string) bool {
	return e.HireDate != nil && dates.MonthOf(*e.HireDate) == monthKey
}
