package auth

import (
	"context"

	"github.com/NotSleepp/possbien/internal/application/ports"
	"github.com/NotSleepp/possbien/internal/domain/entity"
	"github.com/NotSleepp/possbien/internal/domain/repository"
)

// PermissionService resuelve los códigos de permiso de un rol con caché delante del repositorio.
type PermissionService struct {
	repo  repository.PermissionRepository
	cache ports.PermissionCache
}

// NewPermissionService construye el servicio. cache puede ser nil.
func NewPermissionService(repo repository.PermissionRepository, cache ports.PermissionCache) *PermissionService {
	return &PermissionService{repo: repo, cache: cache}
}

// Codes devuelve los códigos del rol; en fallo de caché consulta el repositorio y llena la caché.
func (s *PermissionService) Codes(ctx context.Context, roleID string) ([]string, error) {
	if s.cache != nil {
		if codes, ok, err := s.cache.Get(ctx, roleID); err == nil && ok {
			return codes, nil
		}
	}
	codes, err := s.repo.CodesByRole(ctx, roleID)
	if err != nil {
		return nil, err
	}
	if codes == nil {
		codes = []string{}
	}
	if s.cache != nil {
		_ = s.cache.Set(ctx, roleID, codes)
	}
	return codes, nil
}

// HasPermission indica si el rol tiene el código requerido (acepta comodines "*" y "modulo:*").
func (s *PermissionService) HasPermission(ctx context.Context, roleID, code string) (bool, error) {
	codes, err := s.Codes(ctx, roleID)
	if err != nil {
		return false, err
	}
	return entity.HasPermission(codes, code), nil
}
