package repository

import (
	"context"

	"github.com/NotSleepp/possbien/internal/domain/entity"
)

// RoleRepository puerto de persistencia para roles.
type RoleRepository interface {
	Create(ctx context.Context, role *entity.Role) error
	GetByID(ctx context.Context, companyID, id string) (*entity.Role, error)
	ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.Role, error)
	Update(ctx context.Context, role *entity.Role) error
	SoftDelete(ctx context.Context, companyID, id string) error
	// CountActiveUsers cuenta usuarios no eliminados con este rol.
	CountActiveUsers(ctx context.Context, companyID, roleID string) (int, error)
}

// PermissionRepository puerto de persistencia para permisos de rol.
type PermissionRepository interface {
	Create(ctx context.Context, perm *entity.Permission) error
	GetByID(ctx context.Context, companyID, id string) (*entity.Permission, error)
	ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.Permission, error)
	ListByRole(ctx context.Context, companyID, roleID string) ([]*entity.Permission, error)
	// CodesByRole devuelve solo los códigos (lo que consume el middleware de permisos).
	CodesByRole(ctx context.Context, roleID string) ([]string, error)
	Update(ctx context.Context, perm *entity.Permission) error
	SoftDelete(ctx context.Context, companyID, id string) error
}
