package novelty

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nominacol/nomina-backend-go/internal/domain/employee"
	"github.com/nominacol/nomina-backend-go/internal/domain/novelty"
)

type fakeNoveltyRepo struct {
	novelty.Repository
	created *novelty.Novelty
}

func (f *fakeNoveltyRepo) Create(ctx context.Context, n novelty.Novelty) (novelty.Novelty, error) {
	f.created = &n
	return n, nil
}

type fakeEmployeeRepo struct {
	employee.Repository
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	if id != "emp-1" {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return employee.Employee{ID: "emp-1", Name: "Ana Torres"}, nil
}

func TestCreateNovelty_StudyLicenseDefaultsToRecurring(t *testing.T) {
	repo := &fakeNoveltyRepo{}
	svc := NewNoveltyService(nil, repo, &fakeEmployeeRepo{})

	created, err := svc.CreateNovelty(context.Background(), novelty.CreateNoveltyRequest{
		EmployeeID:  "emp-1",
		Type:        string(novelty.TypeStudyLicense),
		Date:        "2024-03-05",
		BonusAmount: decimal.NewFromInt(200000),
	})

	require.NoError(t, err)
	assert.True(t, created.IsRecurring)
	assert.Equal(t, "2024-03", created.StartMonth)
	assert.Equal(t, novelty.UnitMoney, created.Unit)
	assert.Equal(t, "Ana Torres", created.EmployeeName)
}

func TestCreateNovelty_ExplicitStartMonthWins(t *testing.T) {
	repo := &fakeNoveltyRepo{}
	svc := NewNoveltyService(nil, repo, &fakeEmployeeRepo{})

	start := "2024-01"
	created, err := svc.CreateNovelty(context.Background(), novelty.CreateNoveltyRequest{
		EmployeeID:  "emp-1",
		Type:        string(novelty.TypeStudyLicense),
		Date:        "2024-03-05",
		BonusAmount: decimal.NewFromInt(200000),
		StartMonth:  &start,
	})

	require.NoError(t, err)
	assert.Equal(t, "2024-01", created.StartMonth)
}

func TestCreateNovelty_UnknownEmployee(t *testing.T) {
	svc := NewNoveltyService(nil, &fakeNoveltyRepo{}, &fakeEmployeeRepo{})

	_, err := svc.CreateNovelty(context.Background(), novelty.CreateNoveltyRequest{
		EmployeeID:   "ghost",
		Type:         string(novelty.TypeAbsence),
		Date:         "2024-03-05",
		DiscountDays: 1,
	})

	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestCreateNovelty_RejectsUnknownType(t *testing.T) {
	svc := NewNoveltyService(nil, &fakeNoveltyRepo{}, &fakeEmployeeRepo{})

	_, err := svc.CreateNovelty(context.Background(), novelty.CreateNoveltyRequest{
		EmployeeID: "emp-1",
		Type:       "LOTTERY",
		Date:       "2024-03-05",
	})

	assert.Error(t, err)
}

func TestCreateNovelty_AbsenceNeedsDiscountDays(t *testing.T) {
	svc := NewNoveltyService(nil, &fakeNoveltyRepo{}, &fakeEmployeeRepo{})

	_, err := svc.CreateNovelty(context.Background(), novelty.CreateNoveltyRequest{
		EmployeeID: "emp-1",
		Type:       string(novelty.TypeAbsence),
		Date:       "2024-03-05",
	})

	assert.Error(t, err)
}
