package payroll

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nominacol/nomina-backend-go/internal/domain/advance"
	"github.com/nominacol/nomina-backend-go/internal/domain/employee"
	"github.com/nominacol/nomina-backend-go/internal/domain/novelty"
	"github.com/nominacol/nomina-backend-go/internal/domain/payroll"
	"github.com/nominacol/nomina-backend-go/internal/pkg/database"
)

type PayrollServiceImpl struct {
	db           *database.DB
	employeeRepo employee.Repository
	noveltyRepo  novelty.Repository
	advanceRepo  advance.Repository
	ratesRepo    payroll.RatesRepository
	runRepo      payroll.RunRepository
}

func NewPayrollService(
	db *database.DB,
	employeeRepo employee.Repository,
	noveltyRepo novelty.Repository,
	advanceRepo advance.Repository,
	ratesRepo payroll.RatesRepository,
	runRepo payroll.RunRepository,
) payroll.Service {
	return &PayrollServiceImpl{
		db:           db,
		employeeRepo: employeeRepo,
		noveltyRepo:  noveltyRepo,
		advanceRepo:  advanceRepo,
		ratesRepo:    ratesRepo,
		runRepo:      runRepo,
	}
}

// Calculate snapshots the roster, novelties, advances and rates, runs
// the month through the pure engine and stores the result. Re-running
// a month replaces its previous run wholesale.
func (s *PayrollServiceImpl) Calculate(ctx context.Context, req payroll.CalculateRequest) (payroll.Run, error) {
	if err := req.Validate(); err != nil {
		return payroll.Run{}, err
	}

	asOf := time.Now()
	if req.AsOf != "" {
		parsed, err := time.Parse("2006-01-02", req.AsOf)
		if err != nil {
			return payroll.Run{}, fmt.Errorf("parse asOf: %w", err)
		}
		asOf = parsed
	}

	employees, err := s.employeeRepo.GetAll(ctx)
	if err != nil {
		return payroll.Run{}, fmt.Errorf("load roster: %w", err)
	}
	novelties, err := s.noveltyRepo.GetAll(ctx)
	if err != nil {
		return payroll.Run{}, fmt.Errorf("load novelties: %w", err)
	}
	advances, err := s.advanceRepo.GetByMonth(ctx, req.Month)
	if err != nil {
		return payroll.Run{}, fmt.Errorf("load advances: %w", err)
	}
	rates, err := s.GetRates(ctx)
	if err != nil {
		return payroll.Run{}, err
	}

	run := payroll.Run{
		Month:   req.Month,
		AsOf:    asOf,
		Records: Calculate(employees, novelties, advances, rates, req.Month),
	}

	if err := s.runRepo.Replace(ctx, run); err != nil {
		return payroll.Run{}, fmt.Errorf("store run: %w", err)
	}
	return run, nil
}

func (s *PayrollServiceImpl) GetRun(ctx context.Context, month string) (payroll.Run, error) {
	return s.runRepo.GetByMonth(ctx, month)
}

func (s *PayrollServiceImpl) ListRuns(ctx context.Context) ([]payroll.RunSummary, error) {
	months, err := s.runRepo.ListMonths(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]payroll.RunSummary, 0, len(months))
	for _, month := range months {
		run, err := s.runRepo.GetByMonth(ctx, month)
		if err != nil {
			return nil, fmt.Errorf("load run %s: %w", month, err)
		}
		summary := payroll.RunSummary{Month: month, EmployeeCount: len(run.Records)}
		for _, r := range run.Records {
			summary.TotalGross = summary.TotalGross.Add(r.TotalEarned)
			summary.TotalNet = summary.TotalNet.Add(r.NetSalary)
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

// GetRates returns the stored rate table, falling back to the statutory
// defaults when nothing was ever configured.
func (s *PayrollServiceImpl) GetRates(ctx context.Context) (payroll.DeductionRates, error) {
	rates, err := s.ratesRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, payroll.ErrRatesNotFound) {
			return payroll.DefaultRates(), nil
		}
		return payroll.DeductionRates{}, err
	}
	return rates, nil
}

func (s *PayrollServiceImpl) UpdateRates(ctx context.Context, req payroll.UpdateRatesRequest) (payroll.DeductionRates, error) {
	if err := req.Validate(); err != nil {
		return payroll.DeductionRates{}, err
	}

	current, err := s.GetRates(ctx)
	if err != nil {
		return payroll.DeductionRates{}, err
	}

	return s.ratesRepo.Upsert(ctx, req.Apply(current))
}

func (s *PayrollServiceImpl) ExportRun(ctx context.Context, month string) (string, error) {
	run, err := s.runRepo.GetByMonth(ctx, month)
	if err != nil {
		return "", err
	}
	rates, err := s.GetRates(ctx)
	if err != nil {
		return "", err
	}
	advances, err := s.advanceRepo.GetByMonth(ctx, month)
	if err != nil {
		return "", fmt.Errorf("load advances: %w", err)
	}
	return RenderReport(run, rates, advances), nil
}
