package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/NotSleepp/possbien/internal/domain/entity"
	"github.com/NotSleepp/possbien/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

const categoryColumns = `id, id_empresa, id_padre, nombre, codigo, color, eliminado, created_at, updated_at`

// CategoryRepo categorías de productos sobre PostgreSQL.
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador de categorías.
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

func scanCategory(row pgx.Row) (*entity.Category, error) {
	var c entity.Category
	if err := row.Scan(&c.ID, &c.CompanyID, &c.ParentID, &c.Name, &c.Code, &c.Color, &c.Deleted, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CategoryRepo) Create(ctx context.Context, c *entity.Category) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO categorias (id, id_empresa, id_padre, nombre, codigo, color, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		c.ID, c.CompanyID, c.ParentID, c.Name, c.Code, c.Color, c.CreatedAt, c.UpdatedAt,
	)
	return mapWriteError("insert category", err)
}

func (r *CategoryRepo) GetByID(ctx context.Context, companyID, id string) (*entity.Category, error) {
	c, err := scanCategory(r.q.QueryRow(ctx,
		`SELECT `+categoryColumns+` FROM categorias WHERE id = $1 AND id_empresa = $2 AND eliminado = false`, id, companyID))
	if err != nil {
		if noRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return c, nil
}

func (r *CategoryRepo) ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.Category, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+categoryColumns+` FROM categorias WHERE id_empresa = $1 AND eliminado = false
		 ORDER BY nombre LIMIT $2 OFFSET $3`, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return collect(rows, "list categories", scanCategory)
}

func (r *CategoryRepo) Update(ctx context.Context, c *entity.Category) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE categorias SET id_padre = $3, nombre = $4, codigo = $5, color = $6, updated_at = $7
		WHERE id = $1 AND id_empresa = $2 AND eliminado = false`,
		c.ID, c.CompanyID, c.ParentID, c.Name, c.Code, c.Color, c.UpdatedAt,
	)
	if err != nil {
		return mapWriteError("update category", err)
	}
	return mustAffect(tag, "categoría")
}

func (r *CategoryRepo) SoftDelete(ctx context.Context, companyID, id string) error {
	tag, err := r.q.Exec(ctx,
		`UPDATE categorias SET eliminado = true, updated_at = now() WHERE id = $1 AND id_empresa = $2 AND eliminado = false`,
		id, companyID)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return mustAffect(tag, "categoría")
}

// CountDependents subcategorías más productos activos bajo la categoría.
func (r *CategoryRepo) CountDependents(ctx context.Context, companyID, id string) (int, error) {
	var n int
	err := r.q.QueryRow(ctx, `
		SELECT (SELECT COUNT(*) FROM categorias WHERE id_empresa = $1 AND id_padre = $2 AND eliminado = false)
		     + (SELECT COUNT(*) FROM productos  WHERE id_empresa = $1 AND id_categoria = $2 AND eliminado = false)`,
		companyID, id).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count category dependents: %w", err)
	}
	return n, nil
}
