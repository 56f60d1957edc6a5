package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/NotSleepp/possbien/internal/domain"
	"github.com/NotSleepp/possbien/internal/domain/entity"
	"github.com/NotSleepp/possbien/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// userColumns incluye las sucursales asignadas como arreglo.
const userColumns = `u.id, u.id_empresa, u.id_rol, u.nombre, u.email, u.password_hash, u.estado, u.ultimo_acceso,
	ARRAY(SELECT us.id_sucursal::text FROM usuarios_sucursales us WHERE us.id_usuario = u.id ORDER BY us.id_sucursal),
	u.eliminado, u.created_at, u.updated_at`

// UserRepo implementación del puerto UserRepository sobre PostgreSQL (pool o tx).
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

func scanUser(row pgx.Row) (*entity.User, error) {
	var u entity.User
	err := row.Scan(&u.ID, &u.CompanyID, &u.RoleID, &u.Name, &u.Email, &u.PasswordHash, &u.Status,
		&u.LastAccessAt, &u.BranchIDs, &u.Deleted, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Create persiste un nuevo usuario. Las sucursales se asignan con ReplaceBranches.
func (r *UserRepo) Create(ctx context.Context, u *entity.User) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO usuarios (id, id_empresa, id_rol, nombre, email, password_hash, estado, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		u.ID, u.CompanyID, u.RoleID, u.Name, u.Email, u.PasswordHash, u.Status, u.CreatedAt, u.UpdatedAt,
	)
	return mapWriteError("insert user", err)
}

// GetByID obtiene un usuario de la empresa con sus sucursales.
func (r *UserRepo) GetByID(ctx context.Context, companyID, id string) (*entity.User, error) {
	return r.one(ctx, "get user",
		`SELECT `+userColumns+` FROM usuarios u WHERE u.id = $1 AND u.id_empresa = $2 AND u.eliminado = false`,
		id, companyID)
}

// GetByEmail obtiene un usuario por email (cualquier empresa).
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.one(ctx, "get user by email",
		`SELECT `+userColumns+` FROM usuarios u WHERE lower(u.email) = lower($1) AND u.eliminado = false`,
		email)
}

func (r *UserRepo) one(ctx context.Context, op, query string, args ...any) (*entity.User, error) {
	u, err := scanUser(r.q.QueryRow(ctx, query, args...))
	if err != nil {
		if noRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return u, nil
}

// ListByCompany lista usuarios por empresa con paginación.
func (r *UserRepo) ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.User, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+userColumns+` FROM usuarios u WHERE u.id_empresa = $1 AND u.eliminado = false
		 ORDER BY u.nombre LIMIT $2 OFFSET $3`, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return collect(rows, "list users", scanUser)
}

// Update actualiza rol, nombre, email, estado y hash.
func (r *UserRepo) Update(ctx context.Context, u *entity.User) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE usuarios SET id_rol = $3, nombre = $4, email = $5, password_hash = $6, estado = $7, updated_at = $8
		WHERE id = $1 AND id_empresa = $2 AND eliminado = false`,
		u.ID, u.CompanyID, u.RoleID, u.Name, u.Email, u.PasswordHash, u.Status, u.UpdatedAt,
	)
	if err != nil {
		return mapWriteError("update user", err)
	}
	return mustAffectUser(tag)
}

// SoftDelete marca el usuario como eliminado.
func (r *UserRepo) SoftDelete(ctx context.Context, companyID, id string) error {
	tag, err := r.q.Exec(ctx,
		`UPDATE usuarios SET eliminado = true, updated_at = now() WHERE id = $1 AND id_empresa = $2 AND eliminado = false`,
		id, companyID)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return mustAffectUser(tag)
}

// TouchLastAccess registra el último login.
func (r *UserRepo) TouchLastAccess(ctx context.Context, id string, at time.Time) error {
	if _, err := r.q.Exec(ctx, `UPDATE usuarios SET ultimo_acceso = $2 WHERE id = $1`, id, at); err != nil {
		return fmt.Errorf("touch last access: %w", err)
	}
	return nil
}

// ReplaceBranches borra las asignaciones actuales e inserta branchIDs.
func (r *UserRepo) ReplaceBranches(ctx context.Context, userID string, branchIDs []string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM usuarios_sucursales WHERE id_usuario = $1`, userID); err != nil {
		return fmt.Errorf("clear user branches: %w", err)
	}
	if len(branchIDs) == 0 {
		return nil
	}
	_, err := r.q.Exec(ctx, `
		INSERT INTO usuarios_sucursales (id_usuario, id_sucursal)
		SELECT $1, unnest($2::uuid[])`, userID, branchIDs)
	return mapWriteError("insert user branches", err)
}

func mustAffectUser(tag interface{ RowsAffected() int64 }) error {
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}
