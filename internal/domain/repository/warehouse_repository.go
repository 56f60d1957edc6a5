package repository

import (
	"context"

	"github.com/NotSleepp/possbien/internal/domain/entity"
)

// WarehouseRepository puerto de persistencia para almacenes.
type WarehouseRepository interface {
	Create(ctx context.Context, warehouse *entity.Warehouse) error
	GetByID(ctx context.Context, companyID, id string) (*entity.Warehouse, error)
	ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.Warehouse, error)
	ListByBranch(ctx context.Context, companyID, branchID string) ([]*entity.Warehouse, error)
	Update(ctx context.Context, warehouse *entity.Warehouse) error
	SoftDelete(ctx context.Context, companyID, id string) error
}
