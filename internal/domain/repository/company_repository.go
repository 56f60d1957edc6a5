package repository

import (
	"context"

	"github.com/NotSleepp/possbien/internal/domain/entity"
)

// CompanyRepository puerto de persistencia para empresas. GetByID devuelve (nil, nil) si no existe o está eliminada.
type CompanyRepository interface {
	Create(ctx context.Context, company *entity.Company) error
	GetByID(ctx context.Context, id string) (*entity.Company, error)
	Update(ctx context.Context, company *entity.Company) error
	SoftDelete(ctx context.Context, id string) error
}
