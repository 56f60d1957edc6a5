package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/NotSleepp/possbien/internal/domain/entity"
	"github.com/NotSleepp/possbien/internal/domain/repository"
)

var _ repository.BranchRepository = (*BranchRepo)(nil)

const branchColumns = `id, id_empresa, nombre, direccion, telefono, eliminado, created_at, updated_at`

// BranchRepo sucursales sobre PostgreSQL (pool o tx).
type BranchRepo struct {
	q Querier
}

// NewBranchRepository construye el adaptador de sucursales.
func NewBranchRepository(q Querier) *BranchRepo {
	return &BranchRepo{q: q}
}

func scanBranch(row pgx.Row) (*entity.Branch, error) {
	var b entity.Branch
	if err := row.Scan(&b.ID, &b.CompanyID, &b.Name, &b.Address, &b.Phone, &b.Deleted, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BranchRepo) Create(ctx context.Context, b *entity.Branch) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO sucursales (id, id_empresa, nombre, direccion, telefono, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		b.ID, b.CompanyID, b.Name, b.Address, b.Phone, b.CreatedAt, b.UpdatedAt,
	)
	return mapWriteError("insert branch", err)
}

func (r *BranchRepo) GetByID(ctx context.Context, companyID, id string) (*entity.Branch, error) {
	b, err := scanBranch(r.q.QueryRow(ctx,
		`SELECT `+branchColumns+` FROM sucursales WHERE id = $1 AND id_empresa = $2 AND eliminado = false`,
		id, companyID))
	if err != nil {
		if noRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get branch: %w", err)
	}
	return b, nil
}

func (r *BranchRepo) ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.Branch, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+branchColumns+` FROM sucursales WHERE id_empresa = $1 AND eliminado = false
		 ORDER BY nombre LIMIT $2 OFFSET $3`, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list branches: %w", err)
	}
	return collect(rows, "list branches", scanBranch)
}

func (r *BranchRepo) Update(ctx context.Context, b *entity.Branch) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE sucursales SET nombre = $3, direccion = $4, telefono = $5, updated_at = $6
		WHERE id = $1 AND id_empresa = $2 AND eliminado = false`,
		b.ID, b.CompanyID, b.Name, b.Address, b.Phone, b.UpdatedAt,
	)
	if err != nil {
		return mapWriteError("update branch", err)
	}
	return mustAffect(tag, "sucursal")
}

func (r *BranchRepo) SoftDelete(ctx context.Context, companyID, id string) error {
	tag, err := r.q.Exec(ctx,
		`UPDATE sucursales SET eliminado = true, updated_at = now() WHERE id = $1 AND id_empresa = $2 AND eliminado = false`,
		id, companyID)
	if err != nil {
		return fmt.Errorf("delete branch: %w", err)
	}
	return mustAffect(tag, "sucursal")
}
