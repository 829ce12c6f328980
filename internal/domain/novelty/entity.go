package novelty

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nominacol/nomina-backend-go/internal/pkg/dates"
)

// Type is the closed set of novelty kinds. The engine dispatches on it
// through Specs, so adding a type means adding a table entry.
type Type string

const (
	// Day-based deductions
	TypeAbsence      Type = "ABSENCE"
	TypeLate         Type = "LATE"
	TypeEarlyLeave   Type = "EARLY_LEAVE"
	TypeMedicalLeave Type = "MEDICAL_LEAVE"
	TypeVacation     Type = "VACATION"

	// Money-based additions
	TypeFixedCompensation Type = "FIXED_COMPENSATION"
	TypeSalesBonus        Type = "SALES_BONUS"
	TypeGasAllowance      Type = "GAS_ALLOWANCE"
	TypeStudyLicense      Type = "STUDY_LICENSE"

	// Hour-based additions
	TypeFixedOvertime      Type = "FIXED_OVERTIME"
	TypeUnexpectedOvertime Type = "UNEXPECTED_OVERTIME"
	TypeNightSurcharge     Type = "NIGHT_SURCHARGE"

	// Day-based addition
	TypeSundayWork Type = "SUNDAY_WORK"

	// Money-based ad-hoc deductions
	TypePlanCorporativo   Type = "PLAN_CORPORATIVO"
	TypeRecordar          Type = "RECORDAR"
	TypeInventariosCruces Type = "INVENTARIOS_CRUCES"
	TypeMultas            Type = "MULTAS"
	TypeFondoEmpleados    Type = "FONDO_EMPLEADOS"
	TypeCarteraEmpleados  Type = "CARTERA_EMPLEADOS"
)

type UnitType string

const (
	UnitDays  UnitType = "DAYS"
	UnitMoney UnitType = "MONEY"
	UnitHours UnitType = "HOURS"
)

// Class splits the type set into the side of the ledger it lands on.
type Class string

const (
	ClassAddition  Class = "addition"
	ClassDeduction Class = "deduction"
)

// Spec declares the fixed unit and ledger side of a novelty type.
type Spec struct {
	Unit  UnitType
	Class Class
}

// Specs is the dispatch table for the closed type set.
var Specs = map[Type]Spec{
	TypeAbsence:      {Unit: UnitDays, Class: ClassDeduction},
	TypeLate:         {Unit: UnitDays, Class: ClassDeduction},
	TypeEarlyLeave:   {Unit: UnitDays, Class: ClassDeduction},
	TypeMedicalLeave: {Unit: UnitDays, Class: ClassDeduction},
	TypeVacation:     {Unit: UnitDays, Class: ClassDeduction},

	TypeFixedCompensation: {Unit: UnitMoney, Class: ClassAddition},
	TypeSalesBonus:        {Unit: UnitMoney, Class: ClassAddition},
	TypeGasAllowance:      {Unit: UnitMoney, Class: ClassAddition},
	TypeStudyLicense:      {Unit: UnitMoney, Class: ClassAddition},

	TypeFixedOvertime:      {Unit: UnitHours, Class: ClassAddition},
	TypeUnexpectedOvertime: {Unit: UnitHours, Class: ClassAddition},
	TypeNightSurcharge:     {Unit: UnitHours, Class: ClassAddition},

	TypeSundayWork: {Unit: UnitDays, Class: ClassAddition},

	TypePlanCorporativo:   {Unit: UnitMoney, Class: ClassDeduction},
	TypeRecordar:          {Unit: UnitMoney, Class: ClassDeduction},
	TypeInventariosCruces: {Unit: UnitMoney, Class: ClassDeduction},
	TypeMultas:            {Unit: UnitMoney, Class: ClassDeduction},
	TypeFondoEmpleados:    {Unit: UnitMoney, Class: ClassDeduction},
	TypeCarteraEmpleados:  {Unit: UnitMoney, Class: ClassDeduction},
}

// AbsenceTypes are the day-based deductions that discount worked days.
var AbsenceTypes = map[Type]bool{
	TypeAbsence:      true,
	TypeLate:         true,
	TypeEarlyLeave:   true,
	TypeMedicalLeave: true,
	TypeVacation:     true,
}

// SyntheticIDPrefix marks rows materialized from a recurring origin.
// Synthetic ids are "recurring-<originID>-<month>", deterministic so
// re-resolution is idempotent and never collides with stored rows.
const SyntheticIDPrefix = "recurring-"

type Novelty struct {
	ID           string          `json:"id"`
	EmployeeID   string          `json:"employeeId"`
	EmployeeName string          `json:"employeeName"`
	Type         Type            `json:"type"`
	Date         time.Time       `json:"date"`
	Description  string          `json:"description"`
	DiscountDays int             `json:"discountDays"`
	BonusAmount  decimal.Decimal `json:"bonusAmount"`
	Hours        decimal.Decimal `json:"hours,omitempty"`
	Days         int             `json:"days,omitempty"`
	Unit         UnitType        `json:"unitType"`

	// Recurrence: only study licenses set these. The origin row is the
	// schedule; deleting it stops all future synthesis.
	IsRecurring bool   `json:"isRecurring,omitempty"`
	StartMonth  string `json:"startMonth,omitempty"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// MonthKey returns the event's "YYYY-MM" month.
func (n Novelty) MonthKey() string {
	return dates.MonthOf(n.Date)
}

// IsSynthetic reports whether the row was materialized by the resolver
// rather than stored.
func (n Novelty) IsSynthetic() bool {
	return strings.HasPrefix(n.ID, SyntheticIDPrefix)
}
