package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/NotSleepp/possbien/internal/domain/entity"
	"github.com/NotSleepp/possbien/internal/domain/repository"
)

// MockCategoryRepository mock de repository.CategoryRepository.
type MockCategoryRepository struct {
	mock.Mock
}

var _ repository.CategoryRepository = (*MockCategoryRepository)(nil)

func (m *MockCategoryRepository) Create(ctx context.Context, category *entity.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) GetByID(ctx context.Context, companyID string, id string) (*entity.Category, error) {
	args := m.Called(ctx, companyID, id)
	v, _ := args.Get(0).(*entity.Category)
	return v, args.Error(1)
}

func (m *MockCategoryRepository) ListByCompany(ctx context.Context, companyID string, limit int, offset int) ([]*entity.Category, error) {
	args := m.Called(ctx, companyID, limit, offset)
	v, _ := args.Get(0).([]*entity.Category)
	return v, args.Error(1)
}

func (m *MockCategoryRepository) Update(ctx context.Context, category *entity.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) SoftDelete(ctx context.Context, companyID string, id string) error {
	args := m.Called(ctx, companyID, id)
	return args.Error(0)
}

func (m *MockCategoryRepository) CountDependents(ctx context.Context, companyID string, id string) (int, error) {
	args := m.Called(ctx, companyID, id)
	return args.Int(0), args.Error(1)
}
