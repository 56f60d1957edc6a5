package repository

import (
	"context"

	"github.com/NotSleepp/possbien/internal/domain/entity"
)

// StockMovementRepository puerto de persistencia para el kardex (solo inserción y lectura).
type StockMovementRepository interface {
	Create(ctx context.Context, movement *entity.StockMovement) error
	// ListByProduct devuelve los movimientos del producto, del más reciente al más antiguo.
	ListByProduct(ctx context.Context, companyID, productID string, limit, offset int) ([]*entity.StockMovement, error)
}
