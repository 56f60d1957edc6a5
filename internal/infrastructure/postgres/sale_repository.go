package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/NotSleepp/possbien/internal/domain"
	"github.com/NotSleepp/possbien/internal/domain/entity"
	"github.com/NotSleepp/possbien/internal/domain/repository"
)

var (
	_ repository.SaleRepository     = (*SaleRepo)(nil)
	_ repository.SequenceRepository = (*SequenceRepo)(nil)
)

const saleColumns = `id, id_empresa, id_caja, id_sesion, id_almacen, id_usuario, numero, subtotal, impuesto, total,
	metodo_pago, monto_recibido, cambio, estado, created_at, updated_at`

// SaleRepo ventas y detalle_ventas. Create debe ejecutarse dentro de la tx del checkout.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador de ventas (pool o tx).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

func scanSale(row pgx.Row) (*entity.Sale, error) {
	var s entity.Sale
	err := row.Scan(&s.ID, &s.CompanyID, &s.CashRegisterID, &s.SessionID, &s.WarehouseID, &s.UserID, &s.Number,
		&s.Subtotal, &s.Tax, &s.Total, &s.PaymentMethod, &s.AmountReceived, &s.Change, &s.Status, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Create inserta la cabecera y luego cada línea.
func (r *SaleRepo) Create(ctx context.Context, s *entity.Sale) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO ventas (id, id_empresa, id_caja, id_sesion, id_almacen, id_usuario, numero, subtotal, impuesto,
		                    total, metodo_pago, monto_recibido, cambio, estado, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`,
		s.ID, s.CompanyID, s.CashRegisterID, s.SessionID, s.WarehouseID, s.UserID, s.Number, s.Subtotal, s.Tax,
		s.Total, s.PaymentMethod, s.AmountReceived, s.Change, s.Status, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return mapWriteError("insert sale", err)
	}
	for _, it := range s.Items {
		_, err := r.q.Exec(ctx, `
			INSERT INTO detalle_ventas (id, id_venta, id_producto, cantidad, precio_unitario, tasa_impuesto,
			                            subtotal, impuesto, total)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			it.ID, s.ID, it.ProductID, it.Quantity, it.UnitPrice, it.TaxRate, it.Subtotal, it.Tax, it.Total,
		)
		if err != nil {
			return mapWriteError("insert sale item", err)
		}
	}
	return nil
}

// GetByID carga la venta con sus líneas y el nombre de cada producto.
func (r *SaleRepo) GetByID(ctx context.Context, companyID, id string) (*entity.Sale, error) {
	return r.get(ctx, companyID, id, "")
}

// GetForUpdate igual que GetByID pero bloquea la cabecera hasta el fin de la tx.
// Dos anulaciones de la misma venta se ejecutan una detrás de otra.
func (r *SaleRepo) GetForUpdate(ctx context.Context, companyID, id string) (*entity.Sale, error) {
	return r.get(ctx, companyID, id, " FOR UPDATE")
}

func (r *SaleRepo) get(ctx context.Context, companyID, id, lock string) (*entity.Sale, error) {
	s, err := scanSale(r.q.QueryRow(ctx,
		`SELECT `+saleColumns+` FROM ventas WHERE id = $1 AND id_empresa = $2`+lock, id, companyID))
	if err != nil {
		if noRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}

	rows, err := r.q.Query(ctx, `
		SELECT d.id, d.id_venta, d.id_producto, p.nombre, d.cantidad, d.precio_unitario, d.tasa_impuesto,
		       d.subtotal, d.impuesto, d.total
		FROM detalle_ventas d
		JOIN productos p ON p.id = d.id_producto
		WHERE d.id_venta = $1
		ORDER BY p.nombre`, s.ID)
	if err != nil {
		return nil, fmt.Errorf("get sale items: %w", err)
	}
	defer rows.Close()

	s.Items = []entity.SaleItem{}
	for rows.Next() {
		var it entity.SaleItem
		if err := rows.Scan(&it.ID, &it.SaleID, &it.ProductID, &it.ProductName, &it.Quantity, &it.UnitPrice,
			&it.TaxRate, &it.Subtotal, &it.Tax, &it.Total); err != nil {
			return nil, fmt.Errorf("get sale items scan: %w", err)
		}
		s.Items = append(s.Items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get sale items rows: %w", err)
	}
	return s, nil
}

// ListByCompany cabeceras sin líneas, de la más reciente a la más antigua.
func (r *SaleRepo) ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.Sale, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+saleColumns+` FROM ventas WHERE id_empresa = $1
		 ORDER BY numero DESC LIMIT $2 OFFSET $3`, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	return collect(rows, "list sales", scanSale)
}

// MarkVoided pasa la venta de completada a anulada. Si ya no estaba completada no toca la fila
// y devuelve domain.ErrSaleVoided.
func (r *SaleRepo) MarkVoided(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx,
		`UPDATE ventas SET estado = $2, updated_at = now() WHERE id = $1 AND estado = $3`,
		id, entity.SaleStatusVoided, entity.SaleStatusCompleted)
	if err != nil {
		return fmt.Errorf("void sale: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrSaleVoided
	}
	return nil
}

// SequenceRepo consecutivos por empresa. La fila se crea en el primer uso.
type SequenceRepo struct {
	q Querier
}

func NewSequenceRepository(q Querier) *SequenceRepo {
	return &SequenceRepo{q: q}
}

// Next el upsert bloquea la fila del consecutivo hasta el fin de la tx; no hay huecos si la tx hace rollback.
func (r *SequenceRepo) Next(ctx context.Context, companyID, kind string) (int64, error) {
	var v int64
	err := r.q.QueryRow(ctx, `
		INSERT INTO consecutivos (id_empresa, tipo, valor) VALUES ($1, $2, 1)
		ON CONFLICT (id_empresa, tipo) DO UPDATE SET valor = consecutivos.valor + 1
		RETURNING valor`, companyID, kind).Scan(&v)
	if err != nil {
		return 0, fmt.Errorf("next sequence %s: %w", kind, err)
	}
	return v, nil
}
