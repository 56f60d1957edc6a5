// Package auth contiene login, logout, usuario actual y la resolución de permisos por rol.
package auth

import (
	"context"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/NotSleepp/possbien/internal/application/dto"
	"github.com/NotSleepp/possbien/internal/application/ports"
	"github.com/NotSleepp/possbien/internal/application/usecase"
	"github.com/NotSleepp/possbien/internal/domain"
	"github.com/NotSleepp/possbien/internal/domain/entity"
	"github.com/NotSleepp/possbien/internal/domain/repository"
	"github.com/NotSleepp/possbien/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación.
type AuthUseCase struct {
	userRepo    repository.UserRepository
	roleRepo    repository.RoleRepository
	companyRepo repository.CompanyRepository
	perms       *PermissionService
	blacklist   ports.TokenBlacklist
	jwtCfg      JWTConfig
	now         func() time.Time
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(
	userRepo repository.UserRepository,
	roleRepo repository.RoleRepository,
	companyRepo repository.CompanyRepository,
	perms *PermissionService,
	blacklist ports.TokenBlacklist,
	jwtCfg JWTConfig,
) *AuthUseCase {
	return &AuthUseCase{
		userRepo:    userRepo,
		roleRepo:    roleRepo,
		companyRepo: companyRepo,
		perms:       perms,
		blacklist:   blacklist,
		jwtCfg:      jwtCfg,
		now:         time.Now,
	}
}

// Login verifica email/password, genera JWT y retorna token + usuario.
// Usuario inexistente o password incorrecto devuelven el mismo domain.ErrInvalidCredentials.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(ctx, normalize(in.Email))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	if user.Status != entity.UserStatusActive {
		return nil, domain.Errorf(domain.ErrForbidden, "el usuario está inactivo")
	}
	company, err := uc.companyRepo.GetByID(ctx, user.CompanyID)
	if err != nil {
		return nil, err
	}
	if company == nil || company.Status != entity.CompanyStatusActive {
		return nil, domain.Errorf(domain.ErrForbidden, "la empresa del usuario no está activa")
	}
	role, err := uc.roleRepo.GetByID(ctx, user.CompanyID, user.RoleID)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, domain.Errorf(domain.ErrForbidden, "el usuario no tiene un rol válido")
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, jwt.Identity{
		UserID:    user.ID,
		CompanyID: user.CompanyID,
		RoleID:    role.ID,
		Role:      role.Name,
	}, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	if err := uc.userRepo.TouchLastAccess(ctx, user.ID, now); err != nil {
		return nil, err
	}
	user.LastAccessAt = &now
	return &dto.LoginResponse{
		Token: token,
		User:  *usecase.ToUserResponse(user),
	}, nil
}

// Logout invalida el token (jti) hasta su expiración.
func (uc *AuthUseCase) Logout(ctx context.Context, jti string, ttl time.Duration) error {
	if jti == "" || ttl <= 0 {
		return nil
	}
	return uc.blacklist.AddToBlacklist(ctx, jti, ttl)
}

// Me devuelve el usuario autenticado con su rol y códigos de permiso.
func (uc *AuthUseCase) Me(ctx context.Context, companyID, userID string) (*dto.MeResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, companyID, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	role, err := uc.roleRepo.GetByID(ctx, companyID, user.RoleID)
	if err != nil {
		return nil, err
	}
	roleName := ""
	if role != nil {
		roleName = role.Name
	}
	codes, err := uc.perms.Codes(ctx, user.RoleID)
	if err != nil {
		return nil, err
	}
	return &dto.MeResponse{
		User:        *usecase.ToUserResponse(user),
		Role:        roleName,
		Permissions: codes,
	}, nil
}

func normalize(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
