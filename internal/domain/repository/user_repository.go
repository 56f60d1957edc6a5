package repository

import (
	"context"
	"time"

	"github.com/NotSleepp/possbien/internal/domain/entity"
)

// UserRepository puerto de persistencia para usuarios y sus sucursales asignadas.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	// GetByID y ListByCompany devuelven BranchIDs llenos.
	GetByID(ctx context.Context, companyID, id string) (*entity.User, error)
	// GetByEmail busca entre todos los usuarios no eliminados (login).
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	SoftDelete(ctx context.Context, companyID, id string) error
	TouchLastAccess(ctx context.Context, id string, at time.Time) error
	// ReplaceBranches deja exactamente branchIDs como sucursales del usuario.
	ReplaceBranches(ctx context.Context, userID string, branchIDs []string) error
}
