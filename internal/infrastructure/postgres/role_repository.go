package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/NotSleepp/possbien/internal/domain/entity"
	"github.com/NotSleepp/possbien/internal/domain/repository"
)

var (
	_ repository.RoleRepository       = (*RoleRepo)(nil)
	_ repository.PermissionRepository = (*PermissionRepo)(nil)
)

const (
	roleColumns       = `id, id_empresa, nombre, descripcion, eliminado, created_at, updated_at`
	permissionColumns = `id, id_empresa, id_rol, codigo, descripcion, eliminado, created_at, updated_at`
)

// RoleRepo roles sobre PostgreSQL.
type RoleRepo struct {
	q Querier
}

// NewRoleRepository construye el adaptador de roles.
func NewRoleRepository(q Querier) *RoleRepo {
	return &RoleRepo{q: q}
}

func scanRole(row pgx.Row) (*entity.Role, error) {
	var r entity.Role
	if err := row.Scan(&r.ID, &r.CompanyID, &r.Name, &r.Description, &r.Deleted, &r.CreatedAt, &r.UpdatedAt); err != nil {
		return nil, err
	}
	return &r, nil
}

func (r *RoleRepo) Create(ctx context.Context, role *entity.Role) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO roles (id, id_empresa, nombre, descripcion, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		role.ID, role.CompanyID, role.Name, role.Description, role.CreatedAt, role.UpdatedAt,
	)
	return mapWriteError("insert role", err)
}

func (r *RoleRepo) GetByID(ctx context.Context, companyID, id string) (*entity.Role, error) {
	role, err := scanRole(r.q.QueryRow(ctx,
		`SELECT `+roleColumns+` FROM roles WHERE id = $1 AND id_empresa = $2 AND eliminado = false`, id, companyID))
	if err != nil {
		if noRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get role: %w", err)
	}
	return role, nil
}

func (r *RoleRepo) ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.Role, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+roleColumns+` FROM roles WHERE id_empresa = $1 AND eliminado = false ORDER BY nombre LIMIT $2 OFFSET $3`,
		companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	return collect(rows, "list roles", scanRole)
}

func (r *RoleRepo) Update(ctx context.Context, role *entity.Role) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE roles SET nombre = $3, descripcion = $4, updated_at = $5
		WHERE id = $1 AND id_empresa = $2 AND eliminado = false`,
		role.ID, role.CompanyID, role.Name, role.Description, role.UpdatedAt,
	)
	if err != nil {
		return mapWriteError("update role", err)
	}
	return mustAffect(tag, "rol")
}

// SoftDelete elimina el rol y sus permisos.
func (r *RoleRepo) SoftDelete(ctx context.Context, companyID, id string) error {
	tag, err := r.q.Exec(ctx,
		`UPDATE roles SET eliminado = true, updated_at = now() WHERE id = $1 AND id_empresa = $2 AND eliminado = false`,
		id, companyID)
	if err != nil {
		return fmt.Errorf("delete role: %w", err)
	}
	if err := mustAffect(tag, "rol"); err != nil {
		return err
	}
	if _, err := r.q.Exec(ctx,
		`UPDATE permisos SET eliminado = true, updated_at = now() WHERE id_rol = $1 AND eliminado = false`, id); err != nil {
		return fmt.Errorf("delete role permissions: %w", err)
	}
	return nil
}

func (r *RoleRepo) CountActiveUsers(ctx context.Context, companyID, roleID string) (int, error) {
	var n int
	err := r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM usuarios WHERE id_empresa = $1 AND id_rol = $2 AND eliminado = false`,
		companyID, roleID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count role users: %w", err)
	}
	return n, nil
}

// PermissionRepo permisos por rol sobre PostgreSQL.
type PermissionRepo struct {
	q Querier
}

// NewPermissionRepository construye el adaptador de permisos.
func NewPermissionRepository(q Querier) *PermissionRepo {
	return &PermissionRepo{q: q}
}

func scanPermission(row pgx.Row) (*entity.Permission, error) {
	var p entity.Permission
	if err := row.Scan(&p.ID, &p.CompanyID, &p.RoleID, &p.Code, &p.Description, &p.Deleted, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PermissionRepo) Create(ctx context.Context, p *entity.Permission) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO permisos (id, id_empresa, id_rol, codigo, descripcion, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		p.ID, p.CompanyID, p.RoleID, p.Code, p.Description, p.CreatedAt, p.UpdatedAt,
	)
	return mapWriteError("insert permission", err)
}

func (r *PermissionRepo) GetByID(ctx context.Context, companyID, id string) (*entity.Permission, error) {
	p, err := scanPermission(r.q.QueryRow(ctx,
		`SELECT `+permissionColumns+` FROM permisos WHERE id = $1 AND id_empresa = $2 AND eliminado = false`, id, companyID))
	if err != nil {
		if noRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get permission: %w", err)
	}
	return p, nil
}

func (r *PermissionRepo) ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.Permission, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+permissionColumns+` FROM permisos WHERE id_empresa = $1 AND eliminado = false
		 ORDER BY codigo LIMIT $2 OFFSET $3`, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list permissions: %w", err)
	}
	return collect(rows, "list permissions", scanPermission)
}

func (r *PermissionRepo) ListByRole(ctx context.Context, companyID, roleID string) ([]*entity.Permission, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+permissionColumns+` FROM permisos WHERE id_empresa = $1 AND id_rol = $2 AND eliminado = false
		 ORDER BY codigo`, companyID, roleID)
	if err != nil {
		return nil, fmt.Errorf("list role permissions: %w", err)
	}
	return collect(rows, "list role permissions", scanPermission)
}

// CodesByRole devuelve solo los códigos activos del rol.
func (r *PermissionRepo) CodesByRole(ctx context.Context, roleID string) ([]string, error) {
	rows, err := r.q.Query(ctx,
		`SELECT codigo FROM permisos WHERE id_rol = $1 AND eliminado = false ORDER BY codigo`, roleID)
	if err != nil {
		return nil, fmt.Errorf("role codes: %w", err)
	}
	defer rows.Close()
	codes := make([]string, 0)
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("role codes: scan: %w", err)
		}
		codes = append(codes, c)
	}
	return codes, rows.Err()
}

func (r *PermissionRepo) Update(ctx context.Context, p *entity.Permission) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE permisos SET codigo = $3, descripcion = $4, updated_at = $5
		WHERE id = $1 AND id_empresa = $2 AND eliminado = false`,
		p.ID, p.CompanyID, p.Code, p.Description, p.UpdatedAt,
	)
	if err != nil {
		return mapWriteError("update permission", err)
	}
	return mustAffect(tag, "permiso")
}

func (r *PermissionRepo) SoftDelete(ctx context.Context, companyID, id string) error {
	tag, err := r.q.Exec(ctx,
		`UPDATE permisos SET eliminado = true, updated_at = now() WHERE id = $1 AND id_empresa = $2 AND eliminado = false`,
		id, companyID)
	if err != nil {
		return fmt.Errorf("delete permission: %w", err)
	}
	return mustAffect(tag, "permiso")
}
