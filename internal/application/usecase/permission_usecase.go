package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/NotSleepp/possbien/internal/application/dto"
	"github.com/NotSleepp/possbien/internal/application/ports"
	"github.com/NotSleepp/possbien/internal/domain/entity"
	"github.com/NotSleepp/possbien/internal/domain/repository"
)

// PermissionUseCase CRUD de permisos. Toda mutación invalida la caché del rol afectado.
type PermissionUseCase struct {
	repo  repository.PermissionRepository
	roles repository.RoleRepository
	cache ports.PermissionCache
}

// NewPermissionUseCase construye el caso de uso. cache puede ser nil.
func NewPermissionUseCase(repo repository.PermissionRepository, roles repository.RoleRepository, cache ports.PermissionCache) *PermissionUseCase {
	return &PermissionUseCase{repo: repo, roles: roles, cache: cache}
}

// Create concede un código de permiso a un rol de la empresa.
func (uc *PermissionUseCase) Create(ctx context.Context, companyID string, in dto.CreatePermissionRequest) (*dto.PermissionResponse, error) {
	if err := uc.ensureRole(ctx, companyID, in.RoleID); err != nil {
		return nil, err
	}
	now := time.Now()
	p := &entity.Permission{
		ID:          uuid.New().String(),
		CompanyID:   companyID,
		RoleID:      in.RoleID,
		Code:        in.Code,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, duplicateAs(err, "el rol ya tiene ese permiso")
	}
	invalidatePermissions(ctx, uc.cache, p.RoleID)
	return toPermissionResponse(p), nil
}

// GetByID obtiene un permiso.
func (uc *PermissionUseCase) GetByID(ctx context.Context, companyID, id string) (*dto.PermissionResponse, error) {
	p, err := uc.get(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	return toPermissionResponse(p), nil
}

// List lista los permisos de la empresa.
func (uc *PermissionUseCase) List(ctx context.Context, companyID string, limit, offset int) ([]dto.PermissionResponse, error) {
	list, err := uc.repo.ListByCompany(ctx, companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	return toPermissionResponses(list), nil
}

// ListByRole lista los permisos de un rol.
func (uc *PermissionUseCase) ListByRole(ctx context.Context, companyID, roleID string) ([]dto.PermissionResponse, error) {
	if err := uc.ensureRole(ctx, companyID, roleID); err != nil {
		return nil, err
	}
	list, err := uc.repo.ListByRole(ctx, companyID, roleID)
	if err != nil {
		return nil, err
	}
	return toPermissionResponses(list), nil
}

// Update cambia código o descripción de un permiso.
func (uc *PermissionUseCase) Update(ctx context.Context, companyID, id string, in dto.UpdatePermissionRequest) (*dto.PermissionResponse, error) {
	p, err := uc.get(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if in.Code != nil {
		p.Code = *in.Code
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	p.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, duplicateAs(err, "el rol ya tiene ese permiso")
	}
	invalidatePermissions(ctx, uc.cache, p.RoleID)
	return toPermissionResponse(p), nil
}

// Delete revoca el permiso.
func (uc *PermissionUseCase) Delete(ctx context.Context, companyID, id string) (*dto.PermissionResponse, error) {
	p, err := uc.get(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.SoftDelete(ctx, companyID, id); err != nil {
		return nil, err
	}
	invalidatePermissions(ctx, uc.cache, p.RoleID)
	p.Deleted = true
	return toPermissionResponse(p), nil
}

func (uc *PermissionUseCase) get(ctx context.Context, companyID, id string) (*entity.Permission, error) {
	p, err := uc.repo.GetByID(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, notFound("permiso")
	}
	return p, nil
}

func (uc *PermissionUseCase) ensureRole(ctx context.Context, companyID, roleID string) error {
	r, err := uc.roles.GetByID(ctx, companyID, roleID)
	if err != nil {
		return err
	}
	if r == nil {
		return notFound("rol")
	}
	return nil
}

func toPermissionResponses(list []*entity.Permission) []dto.PermissionResponse {
	out := make([]dto.PermissionResponse, 0, len(list))
	for _, p := range list {
		out = append(out, *toPermissionResponse(p))
	}
	return out
}

func toPermissionResponse(p *entity.Permission) *dto.PermissionResponse {
	return &dto.PermissionResponse{
		ID:          p.ID,
		CompanyID:   p.CompanyID,
		RoleID:      p.RoleID,
		Code:        p.Code,
		Description: p.Description,
		Deleted:     p.Deleted,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
