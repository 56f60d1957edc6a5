package mocks

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/NotSleepp/possbien/internal/domain/repository"
)

// MockAnalyticsRepository mock de repository.AnalyticsRepository.
type MockAnalyticsRepository struct {
	mock.Mock
}

var _ repository.AnalyticsRepository = (*MockAnalyticsRepository)(nil)

func (m *MockAnalyticsRepository) SalesBetween(ctx context.Context, companyID string, from time.Time, to time.Time) (repository.SalesAggregate, error) {
	args := m.Called(ctx, companyID, from, to)
	return args.Get(0).(repository.SalesAggregate), args.Error(1)
}

func (m *MockAnalyticsRepository) DailySalesBetween(ctx context.Context, companyID string, from time.Time, to time.Time) ([]repository.DailySales, error) {
	args := m.Called(ctx, companyID, from, to)
	v, _ := args.Get(0).([]repository.DailySales)
	return v, args.Error(1)
}

func (m *MockAnalyticsRepository) TopProducts(ctx context.Context, companyID string, from time.Time, to time.Time, limit int) ([]repository.TopProduct, error) {
	args := m.Called(ctx, companyID, from, to, limit)
	v, _ := args.Get(0).([]repository.TopProduct)
	return v, args.Error(1)
}

func (m *MockAnalyticsRepository) CountBelowMinimum(ctx context.Context, companyID string) (int, error) {
	args := m.Called(ctx, companyID)
	return args.Int(0), args.Error(1)
}

func (m *MockAnalyticsRepository) ReplenishmentCandidates(ctx context.Context, companyID string, warehouseID string) ([]repository.ReplenishmentCandidate, error) {
	args := m.Called(ctx, companyID, warehouseID)
	v, _ := args.Get(0).([]repository.ReplenishmentCandidate)
	return v, args.Error(1)
}

func (m *MockAnalyticsRepository) UnitsSoldByProduct(ctx context.Context, companyID string, from time.Time, to time.Time) (map[string]decimal.Decimal, error) {
	args := m.Called(ctx, companyID, from, to)
	v, _ := args.Get(0).(map[string]decimal.Decimal)
	return v, args.Error(1)
}
