package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/NotSleepp/possbien/internal/application/dto"
	"github.com/NotSleepp/possbien/internal/application/ports"
	"github.com/NotSleepp/possbien/internal/domain"
	"github.com/NotSleepp/possbien/internal/domain/entity"
	"github.com/NotSleepp/possbien/internal/domain/repository"
)

// RoleUseCase CRUD de roles. Un rol con usuarios activos no se elimina.
type RoleUseCase struct {
	repo  repository.RoleRepository
	cache ports.PermissionCache
}

// NewRoleUseCase construye el caso de uso. cache puede ser nil.
func NewRoleUseCase(repo repository.RoleRepository, cache ports.PermissionCache) *RoleUseCase {
	return &RoleUseCase{repo: repo, cache: cache}
}

// Create crea un rol. Nombre único por empresa.
func (uc *RoleUseCase) Create(ctx context.Context, companyID string, in dto.CreateRoleRequest) (*dto.RoleResponse, error) {
	if entity.IsReservedRoleName(in.Name) {
		return nil, reservedRoleErr()
	}
	now := time.Now()
	r := &entity.Role{
		ID:          uuid.New().String(),
		CompanyID:   companyID,
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, r); err != nil {
		return nil, duplicateAs(err, "ya existe un rol con ese nombre")
	}
	return toRoleResponse(r), nil
}

// GetByID obtiene un rol.
func (uc *RoleUseCase) GetByID(ctx context.Context, companyID, id string) (*dto.RoleResponse, error) {
	r, err := uc.get(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	return toRoleResponse(r), nil
}

// List lista roles de la empresa.
func (uc *RoleUseCase) List(ctx context.Context, companyID string, limit, offset int) ([]dto.RoleResponse, error) {
	list, err := uc.repo.ListByCompany(ctx, companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.RoleResponse, 0, len(list))
	for _, r := range list {
		out = append(out, *toRoleResponse(r))
	}
	return out, nil
}

// Update actualiza parcialmente un rol.
func (uc *RoleUseCase) Update(ctx context.Context, companyID, id string, in dto.UpdateRoleRequest) (*dto.RoleResponse, error) {
	r, err := uc.get(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		if entity.IsReservedRoleName(*in.Name) {
			return nil, reservedRoleErr()
		}
		r.Name = strings.TrimSpace(*in.Name)
	}
	if in.Description != nil {
		r.Description = *in.Description
	}
	r.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, r); err != nil {
		return nil, duplicateAs(err, "ya existe un rol con ese nombre")
	}
	return toRoleResponse(r), nil
}

// Delete elimina el rol si ningún usuario activo lo tiene asignado.
func (uc *RoleUseCase) Delete(ctx context.Context, companyID, id string) (*dto.RoleResponse, error) {
	r, err := uc.get(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	n, err := uc.repo.CountActiveUsers(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if n > 0 {
		return nil, domain.Errorf(domain.ErrConflict, "el rol tiene %d usuario(s) asignado(s)", n)
	}
	if err := uc.repo.SoftDelete(ctx, companyID, id); err != nil {
		return nil, err
	}
	invalidatePermissions(ctx, uc.cache, id)
	r.Deleted = true
	return toRoleResponse(r), nil
}

func (uc *RoleUseCase) get(ctx context.Context, companyID, id string) (*entity.Role, error) {
	r, err := uc.repo.GetByID(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, notFound("rol")
	}
	return r, nil
}

// invalidatePermissions descarta los permisos cacheados del rol; la caché expira sola si falla.
func reservedRoleErr() error {
	return domain.Errorf(domain.ErrInvalidInput, "el nombre de rol '%s' está reservado", entity.RolePlatform)
}

func invalidatePermissions(ctx context.Context, cache ports.PermissionCache, roleID string) {
	if cache == nil {
		return
	}
	_ = cache.Invalidate(ctx, roleID)
}

func toRoleResponse(r *entity.Role) *dto.RoleResponse {
	return &dto.RoleResponse{
		ID:          r.ID,
		CompanyID:   r.CompanyID,
		Name:        r.Name,
		Description: r.Description,
		Deleted:     r.Deleted,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}
