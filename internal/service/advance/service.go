package advance

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nominacol/nomina-backend-go/internal/domain/advance"
	"github.com/nominacol/nomina-backend-go/internal/domain/employee"
	"github.com/nominacol/nomina-backend-go/internal/pkg/database"
)

type AdvanceServiceImpl struct {
	db           *database.DB
	advanceRepo  advance.Repository
	employeeRepo employee.Repository
}

func NewAdvanceService(db *database.DB, advanceRepo advance.Repository, employeeRepo employee.Repository) advance.Service {
	return &AdvanceServiceImpl{
		db:           db,
		advanceRepo:  advanceRepo,
		employeeRepo: employeeRepo,
	}
}

func (s *AdvanceServiceImpl) CreateAdvance(ctx context.Context, req advance.CreateAdvanceRequest) (advance.Advance, error) {
	if err := req.Validate(); err != nil {
		return advance.Advance{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return advance.Advance{}, err
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return advance.Advance{}, fmt.Errorf("parse date: %w", err)
	}

	a := advance.Advance{
		ID:           uuid.NewString(),
		EmployeeID:   emp.ID,
		EmployeeName: emp.Name,
		Amount:       req.Amount,
		Date:         date,
		Month:        req.Month,
		Description:  req.Description,
	}
	if req.EmployeeFund != nil {
		a.EmployeeFund = *req.EmployeeFund
	}
	if req.EmployeeLoan != nil {
		a.EmployeeLoan = *req.EmployeeLoan
	}

	return s.advanceRepo.Create(ctx, a)
}

func (s *AdvanceServiceImpl) GetAdvance(ctx context.Context, id string) (advance.Advance, error) {
	return s.advanceRepo.GetByID(ctx, id)
}

func (s *AdvanceServiceImpl) ListAdvances(ctx context.Context) ([]advance.Advance, error) {
	return s.advanceRepo.GetAll(ctx)
}

func (s *AdvanceServiceImpl) ListByMonth(ctx context.Context, month string) ([]advance.Advance, error) {
	return s.advanceRepo.GetByMonth(ctx, month)
}

func (s *AdvanceServiceImpl) UpdateAdvance(ctx context.Context, req advance.UpdateAdvanceRequest) (advance.Advance, error) {
	if err := req.Validate(); err != nil {
		return advance.Advance{}, err
	}

	a, err := s.advanceRepo.GetByID(ctx, req.ID)
	if err != nil {
		return advance.Advance{}, err
	}

	if req.Amount != nil {
		a.Amount = *req.Amount
	}
	if req.EmployeeFund != nil {
		a.EmployeeFund = *req.EmployeeFund
	}
	if req.EmployeeLoan != nil {
		a.EmployeeLoan = *req.EmployeeLoan
	}
	if req.Date != nil {
		date, err := time.Parse("2006-01-02", *req.Date)
		if err != nil {
			return advance.Advance{}, fmt.Errorf("parse date: %w", err)
		}
		a.Date = date
	}
	if req.Month != nil {
		a.Month = *req.Month
	}
	if req.Description != nil {
		a.Description = *req.Description
	}

	if a.EmployeeFund.Add(a.EmployeeLoan).GreaterThan(a.Amount) {
		return advance.Advance{}, fmt.Errorf("fund and loan withholdings exceed the advance")
	}

	return s.advanceRepo.Update(ctx, a)
}

func (s *AdvanceServiceImpl) DeleteAdvance(ctx context.Context, id string) error {
	return s.advanceRepo.Delete(ctx, id)
}
