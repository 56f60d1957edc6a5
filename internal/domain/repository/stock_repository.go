package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/NotSleepp/possbien/internal/domain/entity"
)

// StockRepository puerto de persistencia para existencias por almacén.
type StockRepository interface {
	Create(ctx context.Context, stock *entity.Stock) error
	GetByID(ctx context.Context, companyID, id string) (*entity.Stock, error)
	// GetForUpdate bloquea la fila (SELECT ... FOR UPDATE). Solo tiene sentido dentro de una tx.
	GetForUpdate(ctx context.Context, companyID, productID, warehouseID string) (*entity.Stock, error)
	ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.Stock, error)
	ListByProduct(ctx context.Context, companyID, productID string) ([]*entity.Stock, error)
	ListByWarehouse(ctx context.Context, companyID, warehouseID string) ([]*entity.Stock, error)
	ListBelowMinimum(ctx context.Context, companyID string) ([]*entity.Stock, error)
	UpdateQuantity(ctx context.Context, id string, quantity decimal.Decimal) error
	UpdateMinStock(ctx context.Context, id string, minStock decimal.Decimal) error
	SoftDelete(ctx context.Context, companyID, id string) error
}
