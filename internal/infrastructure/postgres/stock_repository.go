package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/NotSleepp/possbien/internal/domain/entity"
	"github.com/NotSleepp/possbien/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

const stockColumns = `id, id_empresa, id_producto, id_almacen, cantidad, stock_minimo, eliminado, created_at, updated_at`

// StockRepo implementa StockRepository. Con una tx, GetForUpdate bloquea la fila hasta el commit.
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de existencias (pool o tx).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

func scanStock(row pgx.Row) (*entity.Stock, error) {
	var s entity.Stock
	if err := row.Scan(&s.ID, &s.CompanyID, &s.ProductID, &s.WarehouseID, &s.Quantity, &s.MinStock, &s.Deleted, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *StockRepo) Create(ctx context.Context, s *entity.Stock) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO stock (id, id_empresa, id_producto, id_almacen, cantidad, stock_minimo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		s.ID, s.CompanyID, s.ProductID, s.WarehouseID, s.Quantity, s.MinStock, s.CreatedAt, s.UpdatedAt,
	)
	return mapWriteError("insert stock", err)
}

func (r *StockRepo) one(ctx context.Context, op, sql string, args ...any) (*entity.Stock, error) {
	s, err := scanStock(r.q.QueryRow(ctx, sql, args...))
	if err != nil {
		if noRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return s, nil
}

func (r *StockRepo) GetByID(ctx context.Context, companyID, id string) (*entity.Stock, error) {
	return r.one(ctx, "get stock",
		`SELECT `+stockColumns+` FROM stock WHERE id = $1 AND id_empresa = $2 AND eliminado = false`, id, companyID)
}

// GetForUpdate toma un bloqueo de fila sobre el par producto/almacén.
func (r *StockRepo) GetForUpdate(ctx context.Context, companyID, productID, warehouseID string) (*entity.Stock, error) {
	return r.one(ctx, "lock stock",
		`SELECT `+stockColumns+` FROM stock
		 WHERE id_empresa = $1 AND id_producto = $2 AND id_almacen = $3 AND eliminado = false
		 FOR UPDATE`, companyID, productID, warehouseID)
}

func (r *StockRepo) list(ctx context.Context, op, sql string, args ...any) ([]*entity.Stock, error) {
	rows, err := r.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return collect(rows, op, scanStock)
}

func (r *StockRepo) ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.Stock, error) {
	return r.list(ctx, "list stock",
		`SELECT `+stockColumns+` FROM stock WHERE id_empresa = $1 AND eliminado = false
		 ORDER BY created_at LIMIT $2 OFFSET $3`, companyID, limit, offset)
}

func (r *StockRepo) ListByProduct(ctx context.Context, companyID, productID string) ([]*entity.Stock, error) {
	return r.list(ctx, "list stock by product",
		`SELECT `+stockColumns+` FROM stock WHERE id_empresa = $1 AND id_producto = $2 AND eliminado = false
		 ORDER BY created_at`, companyID, productID)
}

func (r *StockRepo) ListByWarehouse(ctx context.Context, companyID, warehouseID string) ([]*entity.Stock, error) {
	return r.list(ctx, "list stock by warehouse",
		`SELECT `+stockColumns+` FROM stock WHERE id_empresa = $1 AND id_almacen = $2 AND eliminado = false
		 ORDER BY created_at`, companyID, warehouseID)
}

// ListBelowMinimum filas con cantidad < stock_minimo.
func (r *StockRepo) ListBelowMinimum(ctx context.Context, companyID string) ([]*entity.Stock, error) {
	return r.list(ctx, "list stock below minimum",
		`SELECT `+stockColumns+` FROM stock WHERE id_empresa = $1 AND eliminado = false AND cantidad < stock_minimo
		 ORDER BY (stock_minimo - cantidad) DESC`, companyID)
}

func (r *StockRepo) UpdateQuantity(ctx context.Context, id string, quantity decimal.Decimal) error {
	tag, err := r.q.Exec(ctx, `UPDATE stock SET cantidad = $2, updated_at = now() WHERE id = $1`, id, quantity)
	if err != nil {
		return fmt.Errorf("update stock quantity: %w", err)
	}
	return mustAffect(tag, "stock")
}

func (r *StockRepo) UpdateMinStock(ctx context.Context, id string, minStock decimal.Decimal) error {
	tag, err := r.q.Exec(ctx, `UPDATE stock SET stock_minimo = $2, updated_at = now() WHERE id = $1 AND eliminado = false`, id, minStock)
	if err != nil {
		return mapWriteError("update min stock", err)
	}
	return mustAffect(tag, "stock")
}

func (r *StockRepo) SoftDelete(ctx context.Context, companyID, id string) error {
	tag, err := r.q.Exec(ctx,
		`UPDATE stock SET eliminado = true, updated_at = now() WHERE id = $1 AND id_empresa = $2 AND eliminado = false`,
		id, companyID)
	if err != nil {
		return fmt.Errorf("delete stock: %w", err)
	}
	return mustAffect(tag, "stock")
}
