package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/NotSleepp/possbien/internal/domain/entity"
	"github.com/NotSleepp/possbien/internal/domain/repository"
)

// MockUserRepository mock de repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

var _ repository.UserRepository = (*MockUserRepository)(nil)

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, companyID string, id string) (*entity.User, error) {
	args := m.Called(ctx, companyID, id)
	v, _ := args.Get(0).(*entity.User)
	return v, args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	v, _ := args.Get(0).(*entity.User)
	return v, args.Error(1)
}

func (m *MockUserRepository) ListByCompany(ctx context.Context, companyID string, limit int, offset int) ([]*entity.User, error) {
	args := m.Called(ctx, companyID, limit, offset)
	v, _ := args.Get(0).([]*entity.User)
	return v, args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) SoftDelete(ctx context.Context, companyID string, id string) error {
	args := m.Called(ctx, companyID, id)
	return args.Error(0)
}

func (m *MockUserRepository) TouchLastAccess(ctx context.Context, id string, at time.Time) error {
	args := m.Called(ctx, id, at)
	return args.Error(0)
}

func (m *MockUserRepository) ReplaceBranches(ctx context.Context, userID string, branchIDs []string) error {
	args := m.Called(ctx, userID, branchIDs)
	return args.Error(0)
}
