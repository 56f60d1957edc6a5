package mocks

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/NotSleepp/possbien/internal/domain/entity"
	"github.com/NotSleepp/possbien/internal/domain/repository"
)

// MockCashRegisterRepository mock de repository.CashRegisterRepository.
type MockCashRegisterRepository struct {
	mock.Mock
}

var _ repository.CashRegisterRepository = (*MockCashRegisterRepository)(nil)

func (m *MockCashRegisterRepository) Create(ctx context.Context, register *entity.CashRegister) error {
	args := m.Called(ctx, register)
	return args.Error(0)
}

func (m *MockCashRegisterRepository) GetByID(ctx context.Context, companyID string, id string) (*entity.CashRegister, error) {
	args := m.Called(ctx, companyID, id)
	v, _ := args.Get(0).(*entity.CashRegister)
	return v, args.Error(1)
}

func (m *MockCashRegisterRepository) GetForUpdate(ctx context.Context, companyID string, id string) (*entity.CashRegister, error) {
	args := m.Called(ctx, companyID, id)
	v, _ := args.Get(0).(*entity.CashRegister)
	return v, args.Error(1)
}

func (m *MockCashRegisterRepository) ListByCompany(ctx context.Context, companyID string, limit int, offset int) ([]*entity.CashRegister, error) {
	args := m.Called(ctx, companyID, limit, offset)
	v, _ := args.Get(0).([]*entity.CashRegister)
	return v, args.Error(1)
}

func (m *MockCashRegisterRepository) ListByBranch(ctx context.Context, companyID string, branchID string) ([]*entity.CashRegister, error) {
	args := m.Called(ctx, companyID, branchID)
	v, _ := args.Get(0).([]*entity.CashRegister)
	return v, args.Error(1)
}

func (m *MockCashRegisterRepository) Update(ctx context.Context, register *entity.CashRegister) error {
	args := m.Called(ctx, register)
	return args.Error(0)
}

func (m *MockCashRegisterRepository) UpdateStatus(ctx context.Context, id string, status string) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockCashRegisterRepository) SoftDelete(ctx context.Context, companyID string, id string) error {
	args := m.Called(ctx, companyID, id)
	return args.Error(0)
}

// MockCashSessionRepository mock de repository.CashSessionRepository.
type MockCashSessionRepository struct {
	mock.Mock
}

var _ repository.CashSessionRepository = (*MockCashSessionRepository)(nil)

func (m *MockCashSessionRepository) Create(ctx context.Context, session *entity.CashSession) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockCashSessionRepository) GetByID(ctx context.Context, companyID string, id string) (*entity.CashSession, error) {
	args := m.Called(ctx, companyID, id)
	v, _ := args.Get(0).(*entity.CashSession)
	return v, args.Error(1)
}

func (m *MockCashSessionRepository) GetOpenByRegister(ctx context.Context, companyID string, registerID string) (*entity.CashSession, error) {
	args := m.Called(ctx, companyID, registerID)
	v, _ := args.Get(0).(*entity.CashSession)
	return v, args.Error(1)
}

func (m *MockCashSessionRepository) Close(ctx context.Context, session *entity.CashSession) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockCashSessionRepository) TotalsByPaymentMethod(ctx context.Context, sessionID string) (map[string]decimal.Decimal, error) {
	args := m.Called(ctx, sessionID)
	v, _ := args.Get(0).(map[string]decimal.Decimal)
	return v, args.Error(1)
}
