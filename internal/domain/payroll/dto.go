package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/nominacol/nomina-backend-go/internal/pkg/validator"
)

type CalculateRequest struct {
	Month string `json:"month"`
	AsOf  string `json:"asOf,omitempty"`
}

func (r *CalculateRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be YYYY-MM"})
	}
	if r.AsOf != "" {
		if _, ok := validator.IsValidDate(r.AsOf); !ok {
			errs = append(errs, validator.ValidationError{Field: "asOf", Message: "must be YYYY-MM-DD"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateRatesRequest struct {
	Health             *decimal.Decimal `json:"health,omitempty"`
	Pension            *decimal.Decimal `json:"pension,omitempty"`
	Solidarity         *decimal.Decimal `json:"solidarity,omitempty"`
	TransportAllowance *decimal.Decimal `json:"transportAllowance,omitempty"`
	Sunday1            *decimal.Decimal `json:"sunday1,omitempty"`
	Sunday2            *decimal.Decimal `json:"sunday2,omitempty"`
	Sunday3            *decimal.Decimal `json:"sunday3,omitempty"`
	Overtime           *decimal.Decimal `json:"overtime,omitempty"`
	NightSellers       *decimal.Decimal `json:"nightSellers,omitempty"`
	NightSurcharge     *decimal.Decimal `json:"nightSurcharge,omitempty"`
	OrdinaryHour       *decimal.Decimal `json:"ordinaryHour,omitempty"`
	MinimumSalary      *decimal.Decimal `json:"minimumSalary,omitempty"`
}

func (r *UpdateRatesRequest) Validate() error {
	var errs validator.ValidationErrors

	check := func(field string, v *decimal.Decimal) {
		if v != nil && v.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: field, Message: "must be non-negative"})
		}
	}
	check("health", r.Health)
	check("pension", r.Pension)
	check("solidarity", r.Solidarity)
	check("transportAllowance", r.TransportAllowance)
	check("sunday1", r.Sunday1)
	check("sunday2", r.Sunday2)
	check("sunday3", r.Sunday3)
	check("overtime", r.Overtime)
	check("nightSellers", r.NightSellers)
	check("nightSurcharge", r.NightSurcharge)
	check("ordinaryHour", r.OrdinaryHour)
	check("minimumSalary", r.MinimumSalary)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Apply overlays the request onto an existing rate table.
func (r *UpdateRatesRequest) Apply(rates DeductionRates) DeductionRates {
	if r.Health != nil {
		rates.Health = *r.Health
	}
	if r.Pension != nil {
		rates.Pension = *r.Pension
	}
	if r.Solidarity != nil {
		rates.Solidarity = *r.Solidarity
	}
	if r.TransportAllowance != nil {
		rates.TransportAllowance = *r.TransportAllowance
	}
	if r.Sunday1 != nil {
		rates.Sunday1 = *r.Sunday1
	}
	if r.Sunday2 != nil {
		rates.Sunday2 = *r.Sunday2
	}
	if r.Sunday3 != nil {
		rates.Sunday3 = *r.Sunday3
	}
	if r.Overtime != nil {
		rates.Overtime = *r.Overtime
	}
	if r.NightSellers != nil {
		rates.NightSellers = *r.NightSellers
	}
	if r.NightSurcharge != nil {
		rates.NightSurcharge = *r.NightSurcharge
	}
	if r.OrdinaryHour != nil {
		rates.OrdinaryHour = *r.OrdinaryHour
	}
	if r.MinimumSalary != nil {
		rates.MinimumSalary = *r.MinimumSalary
	}
	return rates
}

// RunSummary aggregates a stored run for list views.
type RunSummary struct {
	Month         string          `json:"month"`
	EmployeeCount int             `json:"employeeCount"`
	TotalGross    decimal.Decimal `json:"totalGross"`
	TotalNet      decimal.Decimal `json:"totalNet"`
}
