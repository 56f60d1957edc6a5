package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/NotSleepp/possbien/internal/domain/entity"
	"github.com/NotSleepp/possbien/internal/domain/repository"
)

var _ repository.CompanyRepository = (*CompanyRepo)(nil)

const companyColumns = `id, nombre, nit, direccion, telefono, email, moneda, estado, eliminado, created_at, updated_at`

// CompanyRepo implementación del puerto CompanyRepository sobre PostgreSQL.
type CompanyRepo struct {
	q Querier
}

// NewCompanyRepository construye el adaptador de persistencia para empresas.
func NewCompanyRepository(q Querier) *CompanyRepo {
	return &CompanyRepo{q: q}
}

func scanCompany(row pgx.Row) (*entity.Company, error) {
	var c entity.Company
	err := row.Scan(&c.ID, &c.Name, &c.NIT, &c.Address, &c.Phone, &c.Email, &c.Currency, &c.Status,
		&c.Deleted, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create persiste una nueva empresa.
func (r *CompanyRepo) Create(ctx context.Context, c *entity.Company) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO empresas (id, nombre, nit, direccion, telefono, email, moneda, estado, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		c.ID, c.Name, c.NIT, c.Address, c.Phone, c.Email, c.Currency, c.Status, c.CreatedAt, c.UpdatedAt,
	)
	return mapWriteError("insert company", err)
}

// GetByID obtiene una empresa no eliminada.
func (r *CompanyRepo) GetByID(ctx context.Context, id string) (*entity.Company, error) {
	c, err := scanCompany(r.q.QueryRow(ctx,
		`SELECT `+companyColumns+` FROM empresas WHERE id = $1 AND eliminado = false`, id))
	if err != nil {
		if noRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	return c, nil
}

// Update actualiza los datos editables de la empresa.
func (r *CompanyRepo) Update(ctx context.Context, c *entity.Company) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE empresas SET nombre = $2, nit = $3, direccion = $4, telefono = $5, email = $6, moneda = $7,
		       estado = $8, updated_at = $9
		WHERE id = $1 AND eliminado = false`,
		c.ID, c.Name, c.NIT, c.Address, c.Phone, c.Email, c.Currency, c.Status, c.UpdatedAt,
	)
	if err != nil {
		return mapWriteError("update company", err)
	}
	return mustAffect(tag, "empresa")
}

// SoftDelete marca la empresa como eliminada.
func (r *CompanyRepo) SoftDelete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx,
		`UPDATE empresas SET eliminado = true, updated_at = now() WHERE id = $1 AND eliminado = false`, id)
	if err != nil {
		return fmt.Errorf("delete company: %w", err)
	}
	return mustAffect(tag, "empresa")
}
