package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/NotSleepp/possbien/internal/domain/entity"
	"github.com/NotSleepp/possbien/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

const movementColumns = `id, id_empresa, id_transaccion, id_producto, id_almacen, tipo, cantidad,
	costo_unitario, costo_total, referencia, COALESCE(creado_por::text, ''), created_at`

// StockMovementRepo kardex: solo inserta y lee.
type StockMovementRepo struct {
	q Querier
}

func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

func scanMovement(row pgx.Row) (*entity.StockMovement, error) {
	var m entity.StockMovement
	err := row.Scan(&m.ID, &m.CompanyID, &m.TransactionID, &m.ProductID, &m.WarehouseID, &m.Type, &m.Quantity,
		&m.UnitCost, &m.TotalCost, &m.Reference, &m.CreatedBy, &m.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *StockMovementRepo) Create(ctx context.Context, m *entity.StockMovement) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO movimientos_stock (id, id_empresa, id_transaccion, id_producto, id_almacen, tipo, cantidad,
		                               costo_unitario, costo_total, referencia, creado_por, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		m.ID, m.CompanyID, m.TransactionID, m.ProductID, m.WarehouseID, m.Type, m.Quantity,
		m.UnitCost, m.TotalCost, m.Reference, nullable(m.CreatedBy), m.CreatedAt,
	)
	return mapWriteError("insert stock movement", err)
}

// ListByProduct del más reciente al más antiguo.
func (r *StockMovementRepo) ListByProduct(ctx context.Context, companyID, productID string, limit, offset int) ([]*entity.StockMovement, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+movementColumns+` FROM movimientos_stock WHERE id_empresa = $1 AND id_producto = $2
		 ORDER BY created_at DESC, id LIMIT $3 OFFSET $4`, companyID, productID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list stock movements: %w", err)
	}
	return collect(rows, "list stock movements", scanMovement)
}
