package repository

import (
	"context"

	"github.com/NotSleepp/possbien/internal/domain/entity"
)

// SaleRepository puerto de persistencia para ventas y sus líneas.
type SaleRepository interface {
	// Create inserta la venta y todas sus líneas.
	Create(ctx context.Context, sale *entity.Sale) error
	// GetByID devuelve la venta con sus líneas (incluye el nombre del producto).
	GetByID(ctx context.Context, companyID, id string) (*entity.Sale, error)
	// GetForUpdate como GetByID con la cabecera bloqueada hasta el fin de la tx.
	GetForUpdate(ctx context.Context, companyID, id string) (*entity.Sale, error)
	ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.Sale, error)
	// MarkVoided anula solo si sigue completada; si no, domain.ErrSaleVoided.
	MarkVoided(ctx context.Context, id string) error
}

// SequenceRepository consecutivos por empresa y tipo de documento.
type SequenceRepository interface {
	// Next incrementa y devuelve el siguiente valor de forma atómica.
	Next(ctx context.Context, companyID, kind string) (int64, error)
}
