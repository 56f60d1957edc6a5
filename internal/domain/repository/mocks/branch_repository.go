package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/NotSleepp/possbien/internal/domain/entity"
	"github.com/NotSleepp/possbien/internal/domain/repository"
)

// MockBranchRepository mock de repository.BranchRepository.
type MockBranchRepository struct {
	mock.Mock
}

var _ repository.BranchRepository = (*MockBranchRepository)(nil)

func (m *MockBranchRepository) Create(ctx context.Context, branch *entity.Branch) error {
	args := m.Called(ctx, branch)
	return args.Error(0)
}

func (m *MockBranchRepository) GetByID(ctx context.Context, companyID string, id string) (*entity.Branch, error) {
	args := m.Called(ctx, companyID, id)
	v, _ := args.Get(0).(*entity.Branch)
	return v, args.Error(1)
}

func (m *MockBranchRepository) ListByCompany(ctx context.Context, companyID string, limit int, offset int) ([]*entity.Branch, error) {
	args := m.Called(ctx, companyID, limit, offset)
	v, _ := args.Get(0).([]*entity.Branch)
	return v, args.Error(1)
}

func (m *MockBranchRepository) Update(ctx context.Context, branch *entity.Branch) error {
	args := m.Called(ctx, branch)
	return args.Error(0)
}

func (m *MockBranchRepository) SoftDelete(ctx context.Context, companyID string, id string) error {
	args := m.Called(ctx, companyID, id)
	return args.Error(0)
}
