package repository

import (
	"context"

	"github.com/NotSleepp/possbien/internal/domain/entity"
)

// BranchRepository puerto de persistencia para sucursales (siempre acotado a la empresa).
type BranchRepository interface {
	Create(ctx context.Context, branch *entity.Branch) error
	GetByID(ctx context.Context, companyID, id string) (*entity.Branch, error)
	ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.Branch, error)
	Update(ctx context.Context, branch *entity.Branch) error
	SoftDelete(ctx context.Context, companyID, id string) error
}
