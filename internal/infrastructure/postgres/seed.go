package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/NotSleepp/possbien/internal/domain"
	"github.com/NotSleepp/possbien/internal/domain/entity"
)

// SeedInput datos de la primera empresa y su administrador.
type SeedInput struct {
	CompanyName string
	CompanyNIT  string
	AdminName   string
	AdminEmail  string
	Password    string
	// Platform crea el rol reservado de plataforma en lugar de admin.
	Platform bool
}

// SeedResult ids creados. Skipped indica que el email ya existía y no se tocó nada.
type SeedResult struct {
	CompanyID string
	RoleID    string
	UserID    string
	Skipped   bool
}

// Seed crea en una sola transacción la empresa, el rol admin (o plataforma) con "*" y el
// usuario administrador.
// Es idempotente por email: si el administrador ya existe no escribe nada.
func Seed(ctx context.Context, db DB, in SeedInput) (*SeedResult, error) {
	if strings.TrimSpace(in.AdminEmail) == "" || in.Password == "" {
		return nil, domain.Errorf(domain.ErrInvalidInput, "email y password del administrador son obligatorios")
	}
	existing, err := NewUserRepository(db).GetByEmail(ctx, in.AdminEmail)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return &SeedResult{CompanyID: existing.CompanyID, RoleID: existing.RoleID, UserID: existing.ID, Skipped: true}, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	roleName, roleDesc := entity.RoleAdmin, "Administrador con acceso total"
	if in.Platform {
		roleName, roleDesc = entity.RolePlatform, "Operador de la plataforma"
	}

	now := time.Now()
	company := &entity.Company{
		ID:        uuid.NewString(),
		Name:      in.CompanyName,
		NIT:       in.CompanyNIT,
		Currency:  "COP",
		Status:    entity.CompanyStatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	role := &entity.Role{
		ID:          uuid.NewString(),
		CompanyID:   company.ID,
		Name:        roleName,
		Description: roleDesc,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	perm := &entity.Permission{
		ID:          uuid.NewString(),
		CompanyID:   company.ID,
		RoleID:      role.ID,
		Code:        entity.PermissionWildcard,
		Description: "Todos los permisos",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	user := &entity.User{
		ID:           uuid.NewString(),
		CompanyID:    company.ID,
		RoleID:       role.ID,
		Name:         in.AdminName,
		Email:        strings.ToLower(strings.TrimSpace(in.AdminEmail)),
		PasswordHash: string(hash),
		Status:       entity.UserStatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = pgx.BeginFunc(ctx, db, func(tx pgx.Tx) error {
		if err := NewCompanyRepository(tx).Create(ctx, company); err != nil {
			return err
		}
		if err := NewRoleRepository(tx).Create(ctx, role); err != nil {
			return err
		}
		if err := NewPermissionRepository(tx).Create(ctx, perm); err != nil {
			return err
		}
		return NewUserRepository(tx).Create(ctx, user)
	})
	if err != nil {
		return nil, fmt.Errorf("seed: %w", err)
	}
	return &SeedResult{CompanyID: company.ID, RoleID: role.ID, UserID: user.ID}, nil
}
