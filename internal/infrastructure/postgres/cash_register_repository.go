package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/NotSleepp/possbien/internal/domain/entity"
	"github.com/NotSleepp/possbien/internal/domain/repository"
)

var (
	_ repository.CashRegisterRepository = (*CashRegisterRepo)(nil)
	_ repository.CashSessionRepository  = (*CashSessionRepo)(nil)
)

const cashRegisterColumns = `id, id_empresa, id_sucursal, nombre, estado, eliminado, created_at, updated_at`

// CashRegisterRepo cajas registradoras.
type CashRegisterRepo struct {
	q Querier
}

func NewCashRegisterRepository(q Querier) *CashRegisterRepo {
	return &CashRegisterRepo{q: q}
}

func scanCashRegister(row pgx.Row) (*entity.CashRegister, error) {
	var c entity.CashRegister
	if err := row.Scan(&c.ID, &c.CompanyID, &c.BranchID, &c.Name, &c.Status, &c.Deleted, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CashRegisterRepo) Create(ctx context.Context, c *entity.CashRegister) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO cajas (id, id_empresa, id_sucursal, nombre, estado, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		c.ID, c.CompanyID, c.BranchID, c.Name, c.Status, c.CreatedAt, c.UpdatedAt,
	)
	return mapWriteError("insert cash register", err)
}

func (r *CashRegisterRepo) one(ctx context.Context, op, sql string, args ...any) (*entity.CashRegister, error) {
	c, err := scanCashRegister(r.q.QueryRow(ctx, sql, args...))
	if err != nil {
		if noRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return c, nil
}

func (r *CashRegisterRepo) GetByID(ctx context.Context, companyID, id string) (*entity.CashRegister, error) {
	return r.one(ctx, "get cash register",
		`SELECT `+cashRegisterColumns+` FROM cajas WHERE id = $1 AND id_empresa = $2 AND eliminado = false`, id, companyID)
}

// GetForUpdate bloquea la caja; aperturas y cierres concurrentes esperan su turno.
func (r *CashRegisterRepo) GetForUpdate(ctx context.Context, companyID, id string) (*entity.CashRegister, error) {
	return r.one(ctx, "lock cash register",
		`SELECT `+cashRegisterColumns+` FROM cajas WHERE id = $1 AND id_empresa = $2 AND eliminado = false FOR UPDATE`,
		id, companyID)
}

func (r *CashRegisterRepo) ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.CashRegister, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+cashRegisterColumns+` FROM cajas WHERE id_empresa = $1 AND eliminado = false
		 ORDER BY nombre LIMIT $2 OFFSET $3`, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list cash registers: %w", err)
	}
	return collect(rows, "list cash registers", scanCashRegister)
}

func (r *CashRegisterRepo) ListByBranch(ctx context.Context, companyID, branchID string) ([]*entity.CashRegister, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+cashRegisterColumns+` FROM cajas WHERE id_empresa = $1 AND id_sucursal = $2 AND eliminado = false
		 ORDER BY nombre`, companyID, branchID)
	if err != nil {
		return nil, fmt.Errorf("list cash registers by branch: %w", err)
	}
	return collect(rows, "list cash registers by branch", scanCashRegister)
}

func (r *CashRegisterRepo) Update(ctx context.Context, c *entity.CashRegister) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE cajas SET id_sucursal = $3, nombre = $4, updated_at = $5
		WHERE id = $1 AND id_empresa = $2 AND eliminado = false`,
		c.ID, c.CompanyID, c.BranchID, c.Name, c.UpdatedAt,
	)
	if err != nil {
		return mapWriteError("update cash register", err)
	}
	return mustAffect(tag, "caja")
}

func (r *CashRegisterRepo) UpdateStatus(ctx context.Context, id, status string) error {
	tag, err := r.q.Exec(ctx, `UPDATE cajas SET estado = $2, updated_at = now() WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update cash register status: %w", err)
	}
	return mustAffect(tag, "caja")
}

func (r *CashRegisterRepo) SoftDelete(ctx context.Context, companyID, id string) error {
	tag, err := r.q.Exec(ctx,
		`UPDATE cajas SET eliminado = true, updated_at = now() WHERE id = $1 AND id_empresa = $2 AND eliminado = false`,
		id, companyID)
	if err != nil {
		return fmt.Errorf("delete cash register: %w", err)
	}
	return mustAffect(tag, "caja")
}

const cashSessionColumns = `id, id_empresa, id_caja, id_usuario, monto_apertura, monto_contado, monto_esperado,
	diferencia, estado, abierta_en, cerrada_en`

// CashSessionRepo turnos de caja. El índice ux_sesiones_caja_abierta impide dos sesiones abiertas por caja.
type CashSessionRepo struct {
	q Querier
}

func NewCashSessionRepository(q Querier) *CashSessionRepo {
	return &CashSessionRepo{q: q}
}

func scanCashSession(row pgx.Row) (*entity.CashSession, error) {
	var s entity.CashSession
	err := row.Scan(&s.ID, &s.CompanyID, &s.CashRegisterID, &s.UserID, &s.OpeningAmount, &s.CountedAmount,
		&s.ExpectedAmount, &s.Difference, &s.Status, &s.OpenedAt, &s.ClosedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *CashSessionRepo) Create(ctx context.Context, s *entity.CashSession) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO sesiones_caja (id, id_empresa, id_caja, id_usuario, monto_apertura, estado, abierta_en)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		s.ID, s.CompanyID, s.CashRegisterID, s.UserID, s.OpeningAmount, s.Status, s.OpenedAt,
	)
	return mapWriteError("insert cash session", err)
}

func (r *CashSessionRepo) one(ctx context.Context, op, sql string, args ...any) (*entity.CashSession, error) {
	s, err := scanCashSession(r.q.QueryRow(ctx, sql, args...))
	if err != nil {
		if noRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return s, nil
}

func (r *CashSessionRepo) GetByID(ctx context.Context, companyID, id string) (*entity.CashSession, error) {
	return r.one(ctx, "get cash session",
		`SELECT `+cashSessionColumns+` FROM sesiones_caja WHERE id = $1 AND id_empresa = $2`, id, companyID)
}

func (r *CashSessionRepo) GetOpenByRegister(ctx context.Context, companyID, registerID string) (*entity.CashSession, error) {
	return r.one(ctx, "get open cash session",
		`SELECT `+cashSessionColumns+` FROM sesiones_caja
		 WHERE id_caja = $1 AND id_empresa = $2 AND estado = 'abierta'`, registerID, companyID)
}

// Close guarda el arqueo y marca la sesión como cerrada.
func (r *CashSessionRepo) Close(ctx context.Context, s *entity.CashSession) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE sesiones_caja
		SET monto_contado = $2, monto_esperado = $3, diferencia = $4, estado = $5, cerrada_en = $6
		WHERE id = $1 AND estado = 'abierta'`,
		s.ID, s.CountedAmount, s.ExpectedAmount, s.Difference, s.Status, s.ClosedAt,
	)
	if err != nil {
		return fmt.Errorf("close cash session: %w", err)
	}
	return mustAffect(tag, "sesión de caja")
}

// TotalsByPaymentMethod solo ventas completadas; las anuladas no cuentan en el arqueo.
func (r *CashSessionRepo) TotalsByPaymentMethod(ctx context.Context, sessionID string) (map[string]decimal.Decimal, error) {
	rows, err := r.q.Query(ctx, `
		SELECT metodo_pago, COALESCE(SUM(total), 0)
		FROM ventas
		WHERE id_sesion = $1 AND estado = 'completada'
		GROUP BY metodo_pago`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("session totals: %w", err)
	}
	defer rows.Close()

	totals := make(map[string]decimal.Decimal)
	for rows.Next() {
		var method string
		var total decimal.Decimal
		if err := rows.Scan(&method, &total); err != nil {
			return nil, fmt.Errorf("session totals scan: %w", err)
		}
		totals[method] = total
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("session totals rows: %w", err)
	}
	return totals, nil
}
