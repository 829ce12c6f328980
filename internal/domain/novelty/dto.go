package novelty

import (
	"github.com/shopspring/decimal"

	"github.com/nominacol/nomina-backend-go/internal/pkg/validator"
)

type CreateNoveltyRequest struct {
	EmployeeID   string           `json:"employeeId"`
	Type         string           `json:"type"`
	Date         string           `json:"date"`
	Description  string           `json:"description"`
	DiscountDays int              `json:"discountDays"`
	BonusAmount  decimal.Decimal  `json:"bonusAmount"`
	Hours        *decimal.Decimal `json:"hours,omitempty"`
	Days         *int             `json:"days,omitempty"`
	IsRecurring  *bool            `json:"isRecurring,omitempty"`
	StartMonth   *string          `json:"startMonth,omitempty"`
}

func (r *CreateNoveltyRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employeeId", Message: "is required"})
	}

	spec, known := Specs[Type(r.Type)]
	if !known {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "is not a recognized novelty type"})
	}

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be YYYY-MM-DD"})
	}

	if known {
		switch spec.Unit {
		case UnitDays:
			if spec.Class == ClassDeduction && r.DiscountDays <= 0 {
				errs = append(errs, validator.ValidationError{Field: "discountDays", Message: "must be positive"})
			}
			if spec.Class == ClassAddition && (r.Days == nil || *r.Days <= 0) && r.BonusAmount.IsZero() {
				errs = append(errs, validator.ValidationError{Field: "days", Message: "days or bonusAmount is required"})
			}
		case UnitMoney:
			if r.BonusAmount.IsNegative() {
				errs = append(errs, validator.ValidationError{Field: "bonusAmount", Message: "must be non-negative"})
			}
		case UnitHours:
			if (r.Hours == nil || !r.Hours.IsPositive()) && r.BonusAmount.IsZero() {
				errs = append(errs, validator.ValidationError{Field: "hours", Message: "hours or bonusAmount is required"})
			}
		}
	}

	if r.StartMonth != nil && !validator.IsValidMonth(*r.StartMonth) {
		errs = append(errs, validator.ValidationError{Field: "startMonth", Message: "must be YYYY-MM"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateNoveltyRequest struct {
	ID           string           `json:"-"`
	Date         *string          `json:"date,omitempty"`
	Description  *string          `json:"description,omitempty"`
	DiscountDays *int             `json:"discountDays,omitempty"`
	BonusAmount  *decimal.Decimal `json:"bonusAmount,omitempty"`
	Hours        *decimal.Decimal `json:"hours,omitempty"`
	Days         *int             `json:"days,omitempty"`
	IsRecurring  *bool            `json:"isRecurring,omitempty"`
	StartMonth   *string          `json:"startMonth,omitempty"`
}

func (r *UpdateNoveltyRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Date != nil {
		if _, ok := validator.IsValidDate(*r.Date); !ok {
			errs = append(errs, validator.ValidationError{Field: "date", Message: "must be YYYY-MM-DD"})
		}
	}
	if r.BonusAmount != nil && r.BonusAmount.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "bonusAmount", Message: "must be non-negative"})
	}
	if r.DiscountDays != nil && *r.DiscountDays < 0 {
		errs = append(errs, validator.ValidationError{Field: "discountDays", Message: "must be non-negative"})
	}
	if r.StartMonth != nil && !validator.IsValidMonth(*r.StartMonth) {
		errs = append(errs, validator.ValidationError{Field: "startMonth", Message: "must be YYYY-MM"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
