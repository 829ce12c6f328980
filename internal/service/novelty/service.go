package novelty

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nominacol/nomina-backend-go/internal/domain/employee"
	"github.com/nominacol/nomina-backend-go/internal/domain/novelty"
	"github.com/nominacol/nomina-backend-go/internal/pkg/dates"
	"github.com/nominacol/nomina-backend-go/internal/pkg/database"
)

type NoveltyServiceImpl struct {
	db           *database.DB
	noveltyRepo  novelty.Repository
	employeeRepo employee.Repository
}

func NewNoveltyService(db *database.DB, noveltyRepo novelty.Repository, employeeRepo employee.Repository) novelty.Service {
	return &NoveltyServiceImpl{
		db:           db,
		noveltyRepo:  noveltyRepo,
		employeeRepo: employeeRepo,
	}
}

func (s *NoveltyServiceImpl) CreateNovelty(ctx context.Context, req novelty.CreateNoveltyRequest) (novelty.Novelty, error) {
	if err := req.Validate(); err != nil {
		return novelty.Novelty{}, err
	}

	spec, ok := novelty.Specs[novelty.Type(req.Type)]
	if !ok {
		return novelty.Novelty{}, novelty.ErrUnknownType
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return novelty.Novelty{}, err
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return novelty.Novelty{}, fmt.Errorf("parse date: %w", err)
	}

	n := novelty.Novelty{
		ID:           uuid.NewString(),
		EmployeeID:   emp.ID,
		EmployeeName: emp.Name,
		Type:         novelty.Type(req.Type),
		Date:         date,
		Description:  req.Description,
		DiscountDays: req.DiscountDays,
		BonusAmount:  req.BonusAmount,
		Unit:         spec.Unit,
	}
	if req.Hours != nil {
		n.Hours = *req.Hours
	}
	if req.Days != nil {
		n.Days = *req.Days
	}
	if req.IsRecurring != nil {
		n.IsRecurring = *req.IsRecurring
	}
	if req.StartMonth != nil {
		n.StartMonth = *req.StartMonth
	}

	// Study licenses are always treated as a recurring schedule rooted
	// at the month of the row's date unless stated otherwise.
	if n.Type == novelty.TypeStudyLicense {
		n.IsRecurring = true
		if n.StartMonth == "" {
			n.StartMonth = dates.MonthOf(n.Date)
		}
	}

	return s.noveltyRepo.Create(ctx, n)
}

func (s *NoveltyServiceImpl) GetNovelty(ctx context.Context, id string) (novelty.Novelty, error) {
	return s.noveltyRepo.GetByID(ctx, id)
}

func (s *NoveltyServiceImpl) ListNovelties(ctx context.Context) ([]novelty.Novelty, error) {
	return s.noveltyRepo.GetAll(ctx)
}

func (s *NoveltyServiceImpl) ListByEmployee(ctx context.Context, employeeID string) ([]novelty.Novelty, error) {
	return s.noveltyRepo.GetByEmployeeID(ctx, employeeID)
}

func (s *NoveltyServiceImpl) UpdateNovelty(ctx context.Context, req novelty.UpdateNoveltyRequest) (novelty.Novelty, error) {
	if err := req.Validate(); err != nil {
		return novelty.Novelty{}, err
	}

	n, err := s.noveltyRepo.GetByID(ctx, req.ID)
	if err != nil {
		return novelty.Novelty{}, err
	}

	if req.Date != nil {
		date, err := time.Parse("2006-01-02", *req.Date)
		if err != nil {
			return novelty.Novelty{}, fmt.Errorf("parse date: %w", err)
		}
		n.Date = date
	}
	if req.Description != nil {
		n.Description = *req.Description
	}
	if req.DiscountDays != nil {
		n.DiscountDays = *req.DiscountDays
	}
	if req.BonusAmount != nil {
		n.BonusAmount = *req.BonusAmount
	}
	if req.Hours != nil {
		n.Hours = *req.Hours
	}
	if req.Days != nil {
		n.Days = *req.Days
	}
	if req.IsRecurring != nil {
		n.IsRecurring = *req.IsRecurring
	}
	if req.StartMonth != nil {
		n.StartMonth = *req.StartMonth
	}

	if n.Type == novelty.TypeStudyLicense && n.IsRecurring && n.StartMonth == "" {
		n.StartMonth = dates.MonthOf(n.Date)
	}
	if n.BonusAmount.IsNegative() {
		n.BonusAmount = decimal.Zero
	}

	return s.noveltyRepo.Update(ctx, n)
}

func (s *NoveltyServiceImpl) DeleteNovelty(ctx context.Context, id string) error {
	return s.noveltyRepo.Delete(ctx, id)
}
