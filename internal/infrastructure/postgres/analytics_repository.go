package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/NotSleepp/possbien/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura para el dashboard y la reposición.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// SalesBetween conteo y total de ventas completadas en [from, to).
// COALESCE devuelve cero si el período no tiene ventas.
func (r *AnalyticsRepo) SalesBetween(ctx context.Context, companyID string, from, to time.Time) (repository.SalesAggregate, error) {
	const query = `
	SELECT COUNT(*), COALESCE(SUM(total), 0)
	FROM ventas
	WHERE id_empresa = $1
	  AND estado     = 'completada'
	  AND created_at >= $2 AND created_at < $3`

	var agg repository.SalesAggregate
	if err := r.q.QueryRow(ctx, query, companyID, from, to).Scan(&agg.Count, &agg.Total); err != nil {
		return repository.SalesAggregate{}, fmt.Errorf("analytics.SalesBetween: %w", err)
	}
	return agg, nil
}

// DailySalesBetween agrupa por día calendario en UTC. Los días sin ventas no aparecen.
func (r *AnalyticsRepo) DailySalesBetween(ctx context.Context, companyID string, from, to time.Time) ([]repository.DailySales, error) {
	const query = `
	SELECT
	    date_trunc('day', created_at AT TIME ZONE 'UTC') AS dia,
	    COUNT(*)                                         AS ventas,
	    COALESCE(SUM(total), 0)                          AS total
	FROM ventas
	WHERE id_empresa = $1
	  AND estado     = 'completada'
	  AND created_at >= $2 AND created_at < $3
	GROUP BY dia
	ORDER BY dia`

	rows, err := r.q.Query(ctx, query, companyID, from, to)
	if err != nil {
		return nil, fmt.Errorf("analytics.DailySalesBetween: %w", err)
	}
	defer rows.Close()

	results := []repository.DailySales{}
	for rows.Next() {
		var d repository.DailySales
		if err := rows.Scan(&d.Day, &d.Count, &d.Total); err != nil {
			return nil, fmt.Errorf("analytics.DailySalesBetween scan: %w", err)
		}
		d.Day = time.Date(d.Day.Year(), d.Day.Month(), d.Day.Day(), 0, 0, 0, 0, time.UTC)
		results = append(results, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("analytics.DailySalesBetween rows: %w", err)
	}
	return results, nil
}

// TopProducts los `limit` productos con más unidades vendidas en el período.
func (r *AnalyticsRepo) TopProducts(ctx context.Context, companyID string, from, to time.Time, limit int) ([]repository.TopProduct, error) {
	const query = `
	SELECT
	    p.id::text        AS product_id,
	    p.sku,
	    p.nombre,
	    SUM(d.cantidad)   AS unidades,
	    SUM(d.total)      AS ingresos
	FROM detalle_ventas d
	JOIN ventas    v ON v.id = d.id_venta
	JOIN productos p ON p.id = d.id_producto
	WHERE v.id_empresa = $1
	  AND v.estado     = 'completada'
	  AND v.created_at >= $2 AND v.created_at < $3
	GROUP BY p.id, p.sku, p.nombre
	ORDER BY unidades DESC, ingresos DESC
	LIMIT $4`

	rows, err := r.q.Query(ctx, query, companyID, from, to, limit)
	if err != nil {
		return nil, fmt.Errorf("analytics.TopProducts: %w", err)
	}
	defer rows.Close()

	results := []repository.TopProduct{}
	for rows.Next() {
		var t repository.TopProduct
		if err := rows.Scan(&t.ProductID, &t.SKU, &t.Name, &t.Quantity, &t.Revenue); err != nil {
			return nil, fmt.Errorf("analytics.TopProducts scan: %w", err)
		}
		results = append(results, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("analytics.TopProducts rows: %w", err)
	}
	return results, nil
}

// CountBelowMinimum filas de stock activas con cantidad < stock_minimo.
func (r *AnalyticsRepo) CountBelowMinimum(ctx context.Context, companyID string) (int, error) {
	const query = `
	SELECT COUNT(*)
	FROM stock s
	JOIN productos p ON p.id = s.id_producto AND p.eliminado = false
	WHERE s.id_empresa = $1
	  AND s.eliminado  = false
	  AND s.cantidad   < s.stock_minimo`

	var n int
	if err := r.q.QueryRow(ctx, query, companyID).Scan(&n); err != nil {
		return 0, fmt.Errorf("analytics.CountBelowMinimum: %w", err)
	}
	return n, nil
}

// ReplenishmentCandidates filas bajo el mínimo con SKU, nombre y costo del producto.
// warehouseID vacío incluye todos los almacenes.
func (r *AnalyticsRepo) ReplenishmentCandidates(ctx context.Context, companyID, warehouseID string) ([]repository.ReplenishmentCandidate, error) {
	const query = `
	SELECT s.id_producto::text, s.id_almacen::text, p.sku, p.nombre, s.cantidad, s.stock_minimo, p.costo
	FROM stock s
	JOIN productos p ON p.id = s.id_producto AND p.eliminado = false
	WHERE s.id_empresa = $1
	  AND s.eliminado  = false
	  AND s.cantidad   < s.stock_minimo
	  AND ($2 = '' OR s.id_almacen::text = $2)
	ORDER BY p.nombre`

	rows, err := r.q.Query(ctx, query, companyID, warehouseID)
	if err != nil {
		return nil, fmt.Errorf("analytics.ReplenishmentCandidates: %w", err)
	}
	defer rows.Close()

	results := []repository.ReplenishmentCandidate{}
	for rows.Next() {
		var c repository.ReplenishmentCandidate
		if err := rows.Scan(&c.ProductID, &c.WarehouseID, &c.SKU, &c.ProductName, &c.Quantity, &c.MinStock, &c.Cost); err != nil {
			return nil, fmt.Errorf("analytics.ReplenishmentCandidates scan: %w", err)
		}
		results = append(results, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("analytics.ReplenishmentCandidates rows: %w", err)
	}
	return results, nil
}

// UnitsSoldByProduct unidades de ventas completadas por producto en [from, to).
func (r *AnalyticsRepo) UnitsSoldByProduct(ctx context.Context, companyID string, from, to time.Time) (map[string]decimal.Decimal, error) {
	const query = `
	SELECT d.id_producto::text, SUM(d.cantidad)
	FROM detalle_ventas d
	JOIN ventas v ON v.id = d.id_venta
	WHERE v.id_empresa = $1
	  AND v.estado     = 'completada'
	  AND v.created_at >= $2 AND v.created_at < $3
	GROUP BY d.id_producto`

	rows, err := r.q.Query(ctx, query, companyID, from, to)
	if err != nil {
		return nil, fmt.Errorf("analytics.UnitsSoldByProduct: %w", err)
	}
	defer rows.Close()

	sold := make(map[string]decimal.Decimal)
	for rows.Next() {
		var id string
		var qty decimal.Decimal
		if err := rows.Scan(&id, &qty); err != nil {
			return nil, fmt.Errorf("analytics.UnitsSoldByProduct scan: %w", err)
		}
		sold[id] = qty
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("analytics.UnitsSoldByProduct rows: %w", err)
	}
	return sold, nil
}
