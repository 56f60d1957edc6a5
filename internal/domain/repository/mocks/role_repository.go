package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/NotSleepp/possbien/internal/domain/entity"
	"github.com/NotSleepp/possbien/internal/domain/repository"
)

// MockRoleRepository mock de repository.RoleRepository.
type MockRoleRepository struct {
	mock.Mock
}

var _ repository.RoleRepository = (*MockRoleRepository)(nil)

func (m *MockRoleRepository) Create(ctx context.Context, role *entity.Role) error {
	args := m.Called(ctx, role)
	return args.Error(0)
}

func (m *MockRoleRepository) GetByID(ctx context.Context, companyID string, id string) (*entity.Role, error) {
	args := m.Called(ctx, companyID, id)
	v, _ := args.Get(0).(*entity.Role)
	return v, args.Error(1)
}

func (m *MockRoleRepository) ListByCompany(ctx context.Context, companyID string, limit int, offset int) ([]*entity.Role, error) {
	args := m.Called(ctx, companyID, limit, offset)
	v, _ := args.Get(0).([]*entity.Role)
	return v, args.Error(1)
}

func (m *MockRoleRepository) Update(ctx context.Context, role *entity.Role) error {
	args := m.Called(ctx, role)
	return args.Error(0)
}

func (m *MockRoleRepository) SoftDelete(ctx context.Context, companyID string, id string) error {
	args := m.Called(ctx, companyID, id)
	return args.Error(0)
}

func (m *MockRoleRepository) CountActiveUsers(ctx context.Context, companyID string, roleID string) (int, error) {
	args := m.Called(ctx, companyID, roleID)
	return args.Int(0), args.Error(1)
}

// MockPermissionRepository mock de repository.PermissionRepository.
type MockPermissionRepository struct {
	mock.Mock
}

var _ repository.PermissionRepository = (*MockPermissionRepository)(nil)

func (m *MockPermissionRepository) Create(ctx context.Context, perm *entity.Permission) error {
	args := m.Called(ctx, perm)
	return args.Error(0)
}

func (m *MockPermissionRepository) GetByID(ctx context.Context, companyID string, id string) (*entity.Permission, error) {
	args := m.Called(ctx, companyID, id)
	v, _ := args.Get(0).(*entity.Permission)
	return v, args.Error(1)
}

func (m *MockPermissionRepository) ListByCompany(ctx context.Context, companyID string, limit int, offset int) ([]*entity.Permission, error) {
	args := m.Called(ctx, companyID, limit, offset)
	v, _ := args.Get(0).([]*entity.Permission)
	return v, args.Error(1)
}

func (m *MockPermissionRepository) ListByRole(ctx context.Context, companyID string, roleID string) ([]*entity.Permission, error) {
	args := m.Called(ctx, companyID, roleID)
	v, _ := args.Get(0).([]*entity.Permission)
	return v, args.Error(1)
}

func (m *MockPermissionRepository) CodesByRole(ctx context.Context, roleID string) ([]string, error) {
	args := m.Called(ctx, roleID)
	v, _ := args.Get(0).([]string)
	return v, args.Error(1)
}

func (m *MockPermissionRepository) Update(ctx context.Context, perm *entity.Permission) error {
	args := m.Called(ctx, perm)
	return args.Error(0)
}

func (m *MockPermissionRepository) SoftDelete(ctx context.Context, companyID string, id string) error {
	args := m.Called(ctx, companyID, id)
	return args.Error(0)
}
