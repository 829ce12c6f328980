package advance

import (
	"time"

	"github.com/shopspring/decimal"
)

// Advance is a mid-period cash advance offset against one payroll month.
// EmployeeFund and EmployeeLoan are withheld from the cash handed over,
// not from payroll: the payroll deduction always uses the full Amount.
type Advance struct {
	ID           string          `json:"id"`
	EmployeeID   string          `json:"employeeId"`
	EmployeeName string          `json:"employeeName"`
	Amount       decimal.Decimal `json:"amount"`
	EmployeeFund decimal.Decimal `json:"employeeFund"`
	EmployeeLoan decimal.Decimal `json:"employeeLoan"`
	Date         time.Time       `json:"date"`
	Month        string          `json:"month"`
	Description  string          `json:"description"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// NetToEmployee is the cash actually disbursed.
func (a Advance) NetToEmployee() decimal.Decimal {
	return a.Amount.Sub(a.EmployeeFund).Sub(a.EmployeeLoan)
}
