package mocks

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/NotSleepp/possbien/internal/domain/entity"
	"github.com/NotSleepp/possbien/internal/domain/repository"
)

// MockStockRepository mock de repository.StockRepository.
type MockStockRepository struct {
	mock.Mock
}

var _ repository.StockRepository = (*MockStockRepository)(nil)

func (m *MockStockRepository) Create(ctx context.Context, stock *entity.Stock) error {
	args := m.Called(ctx, stock)
	return args.Error(0)
}

func (m *MockStockRepository) GetByID(ctx context.Context, companyID string, id string) (*entity.Stock, error) {
	args := m.Called(ctx, companyID, id)
	v, _ := args.Get(0).(*entity.Stock)
	return v, args.Error(1)
}

func (m *MockStockRepository) GetForUpdate(ctx context.Context, companyID string, productID string, warehouseID string) (*entity.Stock, error) {
	args := m.Called(ctx, companyID, productID, warehouseID)
	v, _ := args.Get(0).(*entity.Stock)
	return v, args.Error(1)
}

func (m *MockStockRepository) ListByCompany(ctx context.Context, companyID string, limit int, offset int) ([]*entity.Stock, error) {
	args := m.Called(ctx, companyID, limit, offset)
	v, _ := args.Get(0).([]*entity.Stock)
	return v, args.Error(1)
}

func (m *MockStockRepository) ListByProduct(ctx context.Context, companyID string, productID string) ([]*entity.Stock, error) {
	args := m.Called(ctx, companyID, productID)
	v, _ := args.Get(0).([]*entity.Stock)
	return v, args.Error(1)
}

func (m *MockStockRepository) ListByWarehouse(ctx context.Context, companyID string, warehouseID string) ([]*entity.Stock, error) {
	args := m.Called(ctx, companyID, warehouseID)
	v, _ := args.Get(0).([]*entity.Stock)
	return v, args.Error(1)
}

func (m *MockStockRepository) ListBelowMinimum(ctx context.Context, companyID string) ([]*entity.Stock, error) {
	args := m.Called(ctx, companyID)
	v, _ := args.Get(0).([]*entity.Stock)
	return v, args.Error(1)
}

func (m *MockStockRepository) UpdateQuantity(ctx context.Context, id string, quantity decimal.Decimal) error {
	args := m.Called(ctx, id, quantity)
	return args.Error(0)
}

func (m *MockStockRepository) UpdateMinStock(ctx context.Context, id string, minStock decimal.Decimal) error {
	args := m.Called(ctx, id, minStock)
	return args.Error(0)
}

func (m *MockStockRepository) SoftDelete(ctx context.Context, companyID string, id string) error {
	args := m.Called(ctx, companyID, id)
	return args.Error(0)
}

// MockStockMovementRepository mock de repository.StockMovementRepository.
type MockStockMovementRepository struct {
	mock.Mock
}

var _ repository.StockMovementRepository = (*MockStockMovementRepository)(nil)

func (m *MockStockMovementRepository) Create(ctx context.Context, movement *entity.StockMovement) error {
	args := m.Called(ctx, movement)
	return args.Error(0)
}

func (m *MockStockMovementRepository) ListByProduct(ctx context.Context, companyID string, productID string, limit int, offset int) ([]*entity.StockMovement, error) {
	args := m.Called(ctx, companyID, productID, limit, offset)
	v, _ := args.Get(0).([]*entity.StockMovement)
	return v, args.Error(1)
}
