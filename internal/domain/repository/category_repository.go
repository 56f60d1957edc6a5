package repository

import (
	"context"

	"github.com/NotSleepp/possbien/internal/domain/entity"
)

// CategoryRepository puerto de persistencia para categorías.
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, companyID, id string) (*entity.Category, error)
	ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.Category, error)
	Update(ctx context.Context, category *entity.Category) error
	SoftDelete(ctx context.Context, companyID, id string) error
	// CountDependents cuenta subcategorías y productos activos que cuelgan de la categoría.
	CountDependents(ctx context.Context, companyID, id string) (int, error)
}
