package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/NotSleepp/possbien/internal/domain/entity"
	"github.com/NotSleepp/possbien/internal/domain/repository"
)

var _ repository.WarehouseRepository = (*WarehouseRepo)(nil)

const warehouseColumns = `id, id_empresa, id_sucursal, nombre, direccion, eliminado, created_at, updated_at`

// WarehouseRepo almacenes sobre PostgreSQL (pool o tx).
type WarehouseRepo struct {
	q Querier
}

// NewWarehouseRepository construye el adaptador de almacenes.
func NewWarehouseRepository(q Querier) *WarehouseRepo {
	return &WarehouseRepo{q: q}
}

func scanWarehouse(row pgx.Row) (*entity.Warehouse, error) {
	var w entity.Warehouse
	if err := row.Scan(&w.ID, &w.CompanyID, &w.BranchID, &w.Name, &w.Address, &w.Deleted, &w.CreatedAt, &w.UpdatedAt); err != nil {
		return nil, err
	}
	return &w, nil
}

// Create persiste un nuevo almacén.
func (r *WarehouseRepo) Create(ctx context.Context, w *entity.Warehouse) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO almacenes (id, id_empresa, id_sucursal, nombre, direccion, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		w.ID, w.CompanyID, w.BranchID, w.Name, w.Address, w.CreatedAt, w.UpdatedAt,
	)
	return mapWriteError("insert warehouse", err)
}

// GetByID obtiene un almacén de la empresa.
func (r *WarehouseRepo) GetByID(ctx context.Context, companyID, id string) (*entity.Warehouse, error) {
	w, err := scanWarehouse(r.q.QueryRow(ctx,
		`SELECT `+warehouseColumns+` FROM almacenes WHERE id = $1 AND id_empresa = $2 AND eliminado = false`,
		id, companyID))
	if err != nil {
		if noRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get warehouse: %w", err)
	}
	return w, nil
}

// ListByCompany lista almacenes por empresa con paginación.
func (r *WarehouseRepo) ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.Warehouse, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+warehouseColumns+` FROM almacenes WHERE id_empresa = $1 AND eliminado = false
		 ORDER BY nombre LIMIT $2 OFFSET $3`, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list warehouses: %w", err)
	}
	return collect(rows, "list warehouses", scanWarehouse)
}

// ListByBranch lista los almacenes de una sucursal.
func (r *WarehouseRepo) ListByBranch(ctx context.Context, companyID, branchID string) ([]*entity.Warehouse, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+warehouseColumns+` FROM almacenes WHERE id_empresa = $1 AND id_sucursal = $2 AND eliminado = false
		 ORDER BY nombre`, companyID, branchID)
	if err != nil {
		return nil, fmt.Errorf("list warehouses by branch: %w", err)
	}
	return collect(rows, "list warehouses by branch", scanWarehouse)
}

// Update actualiza nombre, dirección y sucursal.
func (r *WarehouseRepo) Update(ctx context.Context, w *entity.Warehouse) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE almacenes SET id_sucursal = $3, nombre = $4, direccion = $5, updated_at = $6
		WHERE id = $1 AND id_empresa = $2 AND eliminado = false`,
		w.ID, w.CompanyID, w.BranchID, w.Name, w.Address, w.UpdatedAt,
	)
	if err != nil {
		return mapWriteError("update warehouse", err)
	}
	return mustAffect(tag, "almacén")
}

// SoftDelete marca el almacén como eliminado.
func (r *WarehouseRepo) SoftDelete(ctx context.Context, companyID, id string) error {
	tag, err := r.q.Exec(ctx,
		`UPDATE almacenes SET eliminado = true, updated_at = now() WHERE id = $1 AND id_empresa = $2 AND eliminado = false`,
		id, companyID)
	if err != nil {
		return fmt.Errorf("delete warehouse: %w", err)
	}
	return mustAffect(tag, "almacén")
}
