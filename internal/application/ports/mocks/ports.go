package mocks

import (
	"context"
	"io"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/NotSleepp/possbien/internal/application/ports"
	"github.com/NotSleepp/possbien/internal/domain/entity"
)

// MockObjectStorage mock de ports.ObjectStorage.
type MockObjectStorage struct {
	mock.Mock
}

var _ ports.ObjectStorage = (*MockObjectStorage)(nil)

func (m *MockObjectStorage) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	args := m.Called(ctx, key, r, size, contentType)
	return args.Error(0)
}

func (m *MockObjectStorage) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockObjectStorage) PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error) {
	args := m.Called(ctx, key, expiry)
	return args.String(0), args.Error(1)
}

// MockPDFGenerator mock de ports.ReceiptPDFGenerator.
type MockPDFGenerator struct {
	mock.Mock
}

var _ ports.ReceiptPDFGenerator = (*MockPDFGenerator)(nil)

func (m *MockPDFGenerator) SaleTicket(ctx context.Context, company *entity.Company, sale *entity.Sale) ([]byte, error) {
	args := m.Called(ctx, company, sale)
	v, _ := args.Get(0).([]byte)
	return v, args.Error(1)
}

func (m *MockPDFGenerator) CashClosingReport(ctx context.Context, report ports.ClosingReport) ([]byte, error) {
	args := m.Called(ctx, report)
	v, _ := args.Get(0).([]byte)
	return v, args.Error(1)
}

// MockPermissionCache mock de ports.PermissionCache.
type MockPermissionCache struct {
	mock.Mock
}

var _ ports.PermissionCache = (*MockPermissionCache)(nil)

func (m *MockPermissionCache) Get(ctx context.Context, roleID string) ([]string, bool, error) {
	args := m.Called(ctx, roleID)
	v, _ := args.Get(0).([]string)
	return v, args.Bool(1), args.Error(2)
}

func (m *MockPermissionCache) Set(ctx context.Context, roleID string, codes []string) error {
	args := m.Called(ctx, roleID, codes)
	return args.Error(0)
}

func (m *MockPermissionCache) Invalidate(ctx context.Context, roleID string) error {
	args := m.Called(ctx, roleID)
	return args.Error(0)
}

// MockTokenBlacklist mock de ports.TokenBlacklist.
type MockTokenBlacklist struct {
	mock.Mock
}

var _ ports.TokenBlacklist = (*MockTokenBlacklist)(nil)

func (m *MockTokenBlacklist) AddToBlacklist(ctx context.Context, jti string, ttl time.Duration) error {
	args := m.Called(ctx, jti, ttl)
	return args.Error(0)
}

func (m *MockTokenBlacklist) IsBlacklisted(ctx context.Context, jti string) (bool, error) {
	args := m.Called(ctx, jti)
	return args.Bool(0), args.Error(1)
}

func (m *MockTokenBlacklist) RevokeUser(ctx context.Context, userID string, at time.Time, ttl time.Duration) error {
	args := m.Called(ctx, userID, at, ttl)
	return args.Error(0)
}

func (m *MockTokenBlacklist) IsUserRevoked(ctx context.Context, userID string, issuedAt time.Time) (bool, error) {
	args := m.Called(ctx, userID, issuedAt)
	return args.Bool(0), args.Error(1)
}

// SalesRecorder guarda las métricas recibidas.
type SalesRecorder struct {
	Completed []string
	Totals    []decimal.Decimal
	Voided    int
}

var _ ports.SalesRecorder = (*SalesRecorder)(nil)

func (r *SalesRecorder) SaleCompleted(method string, total decimal.Decimal) {
	r.Completed = append(r.Completed, method)
	r.Totals = append(r.Totals, total)
}

func (r *SalesRecorder) SaleVoided() { r.Voided++ }
