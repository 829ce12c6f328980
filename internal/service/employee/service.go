package employee

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/nominacol/nomina-backend-go/internal/domain/employee"
	"github.com/nominacol/nomina-backend-go/internal/pkg/database"
	"github.com/nominacol/nomina-backend-go/internal/repository/postgresql"
)

// bogota pins tenure arithmetic to the company's local day regardless
// of where the server runs.
var bogota = time.FixedZone("America/Bogota", -5*60*60)

type EmployeeServiceImpl struct {
	db           *database.DB
	employeeRepo employee.Repository
}

func NewEmployeeService(db *database.DB, employeeRepo employee.Repository) employee.Service {
	return &EmployeeServiceImpl{
		db:           db,
		employeeRepo: employeeRepo,
	}
}

func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}

	exists, err := s.employeeRepo.ExistsByCedula(ctx, req.Cedula, nil)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("check cedula: %w", err)
	}
	if exists {
		return employee.Employee{}, employee.ErrCedulaExists
	}

	emp := employee.Employee{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Cedula:       req.Cedula,
		Phone:        req.Phone,
		Email:        req.Email,
		EPS:          req.EPS,
		ContractType: employee.ContractType(req.ContractType),
		Salary:       req.Salary,
		IsPensioned:  req.IsPensioned,
	}
	if req.DateOfBirth != nil {
		dob, err := time.Parse("2006-01-02", *req.DateOfBirth)
		if err != nil {
			return employee.Employee{}, fmt.Errorf("parse dateOfBirth: %w", err)
		}
		emp.DateOfBirth = &dob
	}
	if req.HireDate != nil {
		hire, err := time.Parse("2006-01-02", *req.HireDate)
		if err != nil {
			return employee.Employee{}, fmt.Errorf("parse createdDate: %w", err)
		}
		emp.HireDate = &hire
	} else {
		now := time.Now().UTC().Truncate(24 * time.Hour)
		emp.HireDate = &now
	}
	emp.WorkedDaysTotal = tenureDays(*emp.HireDate, time.Now())

	return s.employeeRepo.Create(ctx, emp)
}

func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.Employee, error) {
	return s.employeeRepo.GetByID(ctx, id)
}

func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context) ([]employee.Employee, error) {
	return s.employeeRepo.GetAll(ctx)
}

func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.ID)
	if err != nil {
		return employee.Employee{}, err
	}

	if req.Cedula != nil && *req.Cedula != emp.Cedula {
		exists, err := s.employeeRepo.ExistsByCedula(ctx, *req.Cedula, &req.ID)
		if err != nil {
			return employee.Employee{}, fmt.Errorf("check cedula: %w", err)
		}
		if exists {
			return employee.Employee{}, employee.ErrCedulaExists
		}
		emp.Cedula = *req.Cedula
	}
	if req.Name != nil {
		emp.Name = *req.Name
	}
	if req.Phone != nil {
		emp.Phone = *req.Phone
	}
	if req.Email != nil {
		emp.Email = *req.Email
	}
	if req.EPS != nil {
		emp.EPS = *req.EPS
	}
	if req.ContractType != nil {
		emp.ContractType = employee.ContractType(*req.ContractType)
	}
	if req.Salary != nil {
		emp.Salary = *req.Salary
	}
	if req.IsPensioned != nil {
		emp.IsPensioned = *req.IsPensioned
	}
	if req.DateOfBirth != nil {
		dob, err := time.Parse("2006-01-02", *req.DateOfBirth)
		if err != nil {
			return employee.Employee{}, fmt.Errorf("parse dateOfBirth: %w", err)
		}
		emp.DateOfBirth = &dob
	}
	if req.HireDate != nil {
		hire, err := time.Parse("2006-01-02", *req.HireDate)
		if err != nil {
			return employee.Employee{}, fmt.Errorf("parse createdDate: %w", err)
		}
		emp.HireDate = &hire
		emp.WorkedDaysTotal = tenureDays(hire, time.Now())
	}

	return s.employeeRepo.Update(ctx, emp)
}

func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, id string) error {
	return s.employeeRepo.Delete(ctx, id)
}

// RefreshTenure recomputes the cumulative worked-days counter for the
// whole roster. Employees without a hire date keep whatever was stored.
func (s *EmployeeServiceImpl) RefreshTenure(ctx context.Context) error {
	employees, err := s.employeeRepo.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("load roster: %w", err)
	}

	now := time.Now()
	updated := 0
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		for _, emp := range employees {
			if emp.HireDate == nil {
				continue
			}
			days := tenureDays(*emp.HireDate, now)
			if days == emp.WorkedDaysTotal {
				continue
			}
			if err := s.employeeRepo.UpdateWorkedDaysTotal(txCtx, emp.ID, days); err != nil {
				return fmt.Errorf("update tenure for %s: %w", emp.ID, err)
			}
			updated++
		}
		return nil
	})
	if err != nil {
		return err
	}

	if updated > 0 {
		slog.Info("tenure counters refreshed", "updated", updated, "roster", len(employees))
	}
	return nil
}

// tenureDays counts the calendar days elapsed since hire, local to
// Bogota, counting the hire day itself as day one.
func tenureDays(hireDate, now time.Time) int {
	localMidnight := time.Date(hireDate.Year(), hireDate.Month(), hireDate.Day(), 0, 0, 0, 0, bogota)
	elapsed := now.Sub(localMidnight)
	days := int(math.Ceil(elapsed.Hours() / 24))
	if days < 1 {
		days = 1
	}
	return days
}
