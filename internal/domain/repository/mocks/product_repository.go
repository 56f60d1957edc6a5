package mocks

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/NotSleepp/possbien/internal/domain/entity"
	"github.com/NotSleepp/possbien/internal/domain/repository"
)

// MockProductRepository mock de repository.ProductRepository.
type MockProductRepository struct {
	mock.Mock
}

var _ repository.ProductRepository = (*MockProductRepository)(nil)

func (m *MockProductRepository) Create(ctx context.Context, product *entity.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) GetByID(ctx context.Context, companyID string, id string) (*entity.Product, error) {
	args := m.Called(ctx, companyID, id)
	v, _ := args.Get(0).(*entity.Product)
	return v, args.Error(1)
}

func (m *MockProductRepository) ListByCompany(ctx context.Context, companyID string, limit int, offset int) ([]*entity.Product, error) {
	args := m.Called(ctx, companyID, limit, offset)
	v, _ := args.Get(0).([]*entity.Product)
	return v, args.Error(1)
}

func (m *MockProductRepository) ListByCategory(ctx context.Context, companyID string, categoryID string, limit int, offset int) ([]*entity.Product, error) {
	args := m.Called(ctx, companyID, categoryID, limit, offset)
	v, _ := args.Get(0).([]*entity.Product)
	return v, args.Error(1)
}

func (m *MockProductRepository) Search(ctx context.Context, companyID string, folded string, limit int) ([]*entity.Product, error) {
	args := m.Called(ctx, companyID, folded, limit)
	v, _ := args.Get(0).([]*entity.Product)
	return v, args.Error(1)
}

func (m *MockProductRepository) Update(ctx context.Context, product *entity.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) UpdateCost(ctx context.Context, productID string, cost decimal.Decimal) error {
	args := m.Called(ctx, productID, cost)
	return args.Error(0)
}

func (m *MockProductRepository) UpdateImageKey(ctx context.Context, companyID string, productID string, key string) error {
	args := m.Called(ctx, companyID, productID, key)
	return args.Error(0)
}

func (m *MockProductRepository) SoftDelete(ctx context.Context, companyID string, id string) error {
	args := m.Called(ctx, companyID, id)
	return args.Error(0)
}
