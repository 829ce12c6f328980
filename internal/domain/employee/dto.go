package employee

import (
	"github.com/shopspring/decimal"

	"github.com/nominacol/nomina-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	Name         string          `json:"name"`
	Cedula       string          `json:"cedula"`
	DateOfBirth  *string         `json:"dateOfBirth,omitempty"`
	Phone        string          `json:"phone"`
	Email        string          `json:"email"`
	EPS          string          `json:"eps"`
	ContractType string          `json:"contractType"`
	Salary       decimal.Decimal `json:"salary"`
	IsPensioned  bool            `json:"isPensioned"`
	HireDate     *string         `json:"createdDate,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if !validator.IsValidCedula(r.Cedula) {
		errs = append(errs, validator.ValidationError{Field: "cedula", Message: "must be 6 to 10 digits"})
	}
	if r.ContractType != string(ContractOPS) && r.ContractType != string(ContractNomina) {
		errs = append(errs, validator.ValidationError{Field: "contractType", Message: "must be 'OPS' or 'NOMINA'"})
	}
	if r.Salary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "salary", Message: "must be non-negative"})
	}
	if r.DateOfBirth != nil {
		if _, ok := validator.IsValidDate(*r.DateOfBirth); !ok {
			errs = append(errs, validator.ValidationError{Field: "dateOfBirth", Message: "must be YYYY-MM-DD"})
		}
	}
	if r.HireDate != nil {
		if _, ok := validator.IsValidDate(*r.HireDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "createdDate", Message: "must be YYYY-MM-DD"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID           string           `json:"-"`
	Name         *string          `json:"name,omitempty"`
	Cedula       *string          `json:"cedula,omitempty"`
	DateOfBirth  *string          `json:"dateOfBirth,omitempty"`
	Phone        *string          `json:"phone,omitempty"`
	Email        *string          `json:"email,omitempty"`
	EPS          *string          `json:"eps,omitempty"`
	ContractType *string          `json:"contractType,omitempty"`
	Salary       *decimal.Decimal `json:"salary,omitempty"`
	IsPensioned  *bool            `json:"isPensioned,omitempty"`
	HireDate     *string          `json:"createdDate,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "must not be empty"})
	}
	if r.Cedula != nil && !validator.IsValidCedula(*r.Cedula) {
		errs = append(errs, validator.ValidationError{Field: "cedula", Message: "must be 6 to 10 digits"})
	}
	if r.ContractType != nil && *r.ContractType != string(ContractOPS) && *r.ContractType != string(ContractNomina) {
		errs = append(errs, validator.ValidationError{Field: "contractType", Message: "must be 'OPS' or 'NOMINA'"})
	}
	if r.Salary != nil && r.Salary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "salary", Message: "must be non-negative"})
	}
	if r.HireDate != nil {
		if _, ok := validator.IsValidDate(*r.HireDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "createdDate", Message: "must be YYYY-MM-DD"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
