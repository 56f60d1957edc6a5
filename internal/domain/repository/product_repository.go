package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/NotSleepp/possbien/internal/domain/entity"
)

// ProductRepository puerto de persistencia para productos.
// Las implementaciones deben poder usarse con pool o con una transacción.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, companyID, id string) (*entity.Product, error)
	ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.Product, error)
	ListByCategory(ctx context.Context, companyID, categoryID string, limit, offset int) ([]*entity.Product, error)
	// Search compara contra la llave normalizada (sin tildes) de nombre, SKU y código de barras.
	Search(ctx context.Context, companyID, folded string, limit int) ([]*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	UpdateCost(ctx context.Context, productID string, cost decimal.Decimal) error
	UpdateImageKey(ctx context.Context, companyID, productID, key string) error
	SoftDelete(ctx context.Context, companyID, id string) error
}
