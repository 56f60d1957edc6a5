// Package mocks contiene mocks testify de los puertos de repositorio para tests de casos de uso.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/NotSleepp/possbien/internal/domain/entity"
	"github.com/NotSleepp/possbien/internal/domain/repository"
)

// MockCompanyRepository mock de repository.CompanyRepository.
type MockCompanyRepository struct {
	mock.Mock
}

var _ repository.CompanyRepository = (*MockCompanyRepository)(nil)

func (m *MockCompanyRepository) Create(ctx context.Context, company *entity.Company) error {
	args := m.Called(ctx, company)
	return args.Error(0)
}

func (m *MockCompanyRepository) GetByID(ctx context.Context, id string) (*entity.Company, error) {
	args := m.Called(ctx, id)
	v, _ := args.Get(0).(*entity.Company)
	return v, args.Error(1)
}

func (m *MockCompanyRepository) Update(ctx context.Context, company *entity.Company) error {
	args := m.Called(ctx, company)
	return args.Error(0)
}

func (m *MockCompanyRepository) SoftDelete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
