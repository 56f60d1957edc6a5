package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/NotSleepp/possbien/internal/domain/entity"
	"github.com/NotSleepp/possbien/internal/domain/repository"
)

// MockWarehouseRepository mock de repository.WarehouseRepository.
type MockWarehouseRepository struct {
	mock.Mock
}

var _ repository.WarehouseRepository = (*MockWarehouseRepository)(nil)

func (m *MockWarehouseRepository) Create(ctx context.Context, warehouse *entity.Warehouse) error {
	args := m.Called(ctx, warehouse)
	return args.Error(0)
}

func (m *MockWarehouseRepository) GetByID(ctx context.Context, companyID string, id string) (*entity.Warehouse, error) {
	args := m.Called(ctx, companyID, id)
	v, _ := args.Get(0).(*entity.Warehouse)
	return v, args.Error(1)
}

func (m *MockWarehouseRepository) ListByCompany(ctx context.Context, companyID string, limit int, offset int) ([]*entity.Warehouse, error) {
	args := m.Called(ctx, companyID, limit, offset)
	v, _ := args.Get(0).([]*entity.Warehouse)
	return v, args.Error(1)
}

func (m *MockWarehouseRepository) ListByBranch(ctx context.Context, companyID string, branchID string) ([]*entity.Warehouse, error) {
	args := m.Called(ctx, companyID, branchID)
	v, _ := args.Get(0).([]*entity.Warehouse)
	return v, args.Error(1)
}

func (m *MockWarehouseRepository) Update(ctx context.Context, warehouse *entity.Warehouse) error {
	args := m.Called(ctx, warehouse)
	return args.Error(0)
}

func (m *MockWarehouseRepository) SoftDelete(ctx context.Context, companyID string, id string) error {
	args := m.Called(ctx, companyID, id)
	return args.Error(0)
}
