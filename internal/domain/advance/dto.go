package advance

import (
	"github.com/shopspring/decimal"

	"github.com/nominacol/nomina-backend-go/internal/pkg/validator"
)

type CreateAdvanceRequest struct {
	EmployeeID   string           `json:"employeeId"`
	Amount       decimal.Decimal  `json:"amount"`
	EmployeeFund *decimal.Decimal `json:"employeeFund,omitempty"`
	EmployeeLoan *decimal.Decimal `json:"employeeLoan,omitempty"`
	Date         string           `json:"date"`
	Month        string           `json:"month"`
	Description  string           `json:"description"`
}

func (r *CreateAdvanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employeeId", Message: "is required"})
	}
	if !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be positive"})
	}
	if r.EmployeeFund != nil && r.EmployeeFund.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "employeeFund", Message: "must be non-negative"})
	}
	if r.EmployeeLoan != nil && r.EmployeeLoan.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "employeeLoan", Message: "must be non-negative"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be YYYY-MM-DD"})
	}
	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be YYYY-MM"})
	}

	withheld := decimal.Zero
	if r.EmployeeFund != nil {
		withheld = withheld.Add(*r.EmployeeFund)
	}
	if r.EmployeeLoan != nil {
		withheld = withheld.Add(*r.EmployeeLoan)
	}
	if withheld.GreaterThan(r.Amount) {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "fund and loan withholdings exceed the advance"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateAdvanceRequest struct {
	ID           string           `json:"-"`
	Amount       *decimal.Decimal `json:"amount,omitempty"`
	EmployeeFund *decimal.Decimal `json:"employeeFund,omitempty"`
	EmployeeLoan *decimal.Decimal `json:"employeeLoan,omitempty"`
	Date         *string          `json:"date,omitempty"`
	Month        *string          `json:"month,omitempty"`
	Description  *string          `json:"description,omitempty"`
}

func (r *UpdateAdvanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Amount != nil && !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be positive"})
	}
	if r.Date != nil {
		if _, ok := validator.IsValidDate(*r.Date); !ok {
			errs = append(errs, validator.ValidationError{Field: "date", Message: "must be YYYY-MM-DD"})
		}
	}
	if r.Month != nil && !validator.IsValidMonth(*r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be YYYY-MM"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
