package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/NotSleepp/possbien/internal/domain/entity"
	"github.com/NotSleepp/possbien/internal/domain/repository"
)

// MockSaleRepository mock de repository.SaleRepository.
type MockSaleRepository struct {
	mock.Mock
}

var _ repository.SaleRepository = (*MockSaleRepository)(nil)

func (m *MockSaleRepository) Create(ctx context.Context, sale *entity.Sale) error {
	args := m.Called(ctx, sale)
	return args.Error(0)
}

func (m *MockSaleRepository) GetByID(ctx context.Context, companyID string, id string) (*entity.Sale, error) {
	args := m.Called(ctx, companyID, id)
	v, _ := args.Get(0).(*entity.Sale)
	return v, args.Error(1)
}

func (m *MockSaleRepository) GetForUpdate(ctx context.Context, companyID string, id string) (*entity.Sale, error) {
	args := m.Called(ctx, companyID, id)
	v, _ := args.Get(0).(*entity.Sale)
	return v, args.Error(1)
}

func (m *MockSaleRepository) ListByCompany(ctx context.Context, companyID string, limit int, offset int) ([]*entity.Sale, error) {
	args := m.Called(ctx, companyID, limit, offset)
	v, _ := args.Get(0).([]*entity.Sale)
	return v, args.Error(1)
}

func (m *MockSaleRepository) MarkVoided(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockSequenceRepository mock de repository.SequenceRepository.
type MockSequenceRepository struct {
	mock.Mock
}

var _ repository.SequenceRepository = (*MockSequenceRepository)(nil)

func (m *MockSequenceRepository) Next(ctx context.Context, companyID string, kind string) (int64, error) {
	args := m.Called(ctx, companyID, kind)
	return args.Get(0).(int64), args.Error(1)
}
