package http

import (
	"context"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/NotSleepp/possbien/internal/application/dto"
	"github.com/NotSleepp/possbien/internal/application/ports"
	"github.com/NotSleepp/possbien/pkg/jwt"
)

// Locals keys cargadas por AuthMiddleware.
const (
	LocalUserID    = "user_id"
	LocalCompanyID = "company_id"
	LocalRoleID    = "role_id"
	LocalRole      = "role"
	LocalClaims    = "claims"
)

// AuthMiddleware valida el Bearer Token JWT, rechaza tokens revocados (por JTI o por usuario)
// y carga la identidad en c.Locals.
// blacklist puede ser nil.
func AuthMiddleware(jwtSecret string, blacklist ports.TokenBlacklist) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return deny(c, fiber.StatusUnauthorized, "TOKEN_FALTANTE", "header Authorization requerido")
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return deny(c, fiber.StatusUnauthorized, "TOKEN_INVALIDO", "formato: Bearer <token>")
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return deny(c, fiber.StatusUnauthorized, "TOKEN_FALTANTE", "token vacío")
		}
		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return deny(c, fiber.StatusUnauthorized, "TOKEN_INVALIDO", "token inválido o expirado")
		}
		if blacklist != nil && claims.ID != "" {
			revoked, err := blacklist.IsBlacklisted(c.UserContext(), claims.ID)
			if err != nil {
				requestLogger(c).Error().Err(err).Msg("consulta de lista negra de tokens")
				return deny(c, fiber.StatusServiceUnavailable, "SESION_NO_VERIFICABLE", "no se pudo validar la sesión, intente más tarde")
			}
			if revoked {
				return deny(c, fiber.StatusUnauthorized, "TOKEN_INVALIDO", "la sesión fue cerrada")
			}
		}
		if blacklist != nil {
			var issuedAt time.Time
			if claims.IssuedAt != nil {
				issuedAt = claims.IssuedAt.Time
			}
			revoked, err := blacklist.IsUserRevoked(c.UserContext(), claims.UserID, issuedAt)
			if err != nil {
				requestLogger(c).Error().Err(err).Str("user_id", claims.UserID).Msg("consulta de revocación de usuario")
				return deny(c, fiber.StatusServiceUnavailable, "SESION_NO_VERIFICABLE", "no se pudo validar la sesión, intente más tarde")
			}
			if revoked {
				return deny(c, fiber.StatusUnauthorized, "TOKEN_INVALIDO", "el usuario fue desactivado o modificado, inicie sesión de nuevo")
			}
		}
		c.Locals(LocalUserID, claims.UserID)
		c.Locals(LocalCompanyID, claims.CompanyID)
		c.Locals(LocalRoleID, claims.RoleID)
		c.Locals(LocalRole, claims.Role)
		c.Locals(LocalClaims, claims)
		return c.Next()
	}
}

// RequireRole permite el paso solo si el rol del token está en roles (sin distinguir mayúsculas).
// Debe usarse después de AuthMiddleware.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return deny(c, fiber.StatusUnauthorized, "ROL_FALTANTE", "el token no contiene un rol")
		}
		for _, r := range roles {
			if strings.EqualFold(r, role) {
				return c.Next()
			}
		}
		return deny(c, fiber.StatusForbidden, "PROHIBIDO", "su rol no tiene acceso a este recurso")
	}
}

// permissionChecker lo implementa *auth.PermissionService.
type permissionChecker interface {
	HasPermission(ctx context.Context, roleID, code string) (bool, error)
}

// RequirePermission verifica que el rol del token tenga el código (ej. "ventas:crear").
//   - 401 si el token no trae rol.
//   - 403 si el rol no tiene el permiso.
//   - 503 si falla la consulta de permisos.
func RequirePermission(checker permissionChecker, code string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		roleID := GetRoleID(c)
		if roleID == "" {
			return deny(c, fiber.StatusUnauthorized, "ROL_FALTANTE", "el token no contiene un rol")
		}
		ok, err := checker.HasPermission(c.UserContext(), roleID, code)
		if err != nil {
			requestLogger(c).Error().Err(err).Str("permiso", code).Msg("consulta de permisos")
			return deny(c, fiber.StatusServiceUnavailable, "PERMISOS_NO_DISPONIBLES", "no se pudieron verificar los permisos, intente más tarde")
		}
		if !ok {
			return deny(c, fiber.StatusForbidden, "PROHIBIDO", "no tiene el permiso '"+code+"'")
		}
		return c.Next()
	}
}

func deny(c *fiber.Ctx, status int, code, msg string) error {
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: msg, RequestID: GetRequestID(c)})
}

func localString(c *fiber.Ctx, key string) string {
	s, _ := c.Locals(key).(string)
	return s
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string { return localString(c, LocalUserID) }

// GetCompanyID devuelve el CompanyID del contexto (después del middleware de auth).
func GetCompanyID(c *fiber.Ctx) string { return localString(c, LocalCompanyID) }

// GetRoleID devuelve el id del rol del token.
func GetRoleID(c *fiber.Ctx) string { return localString(c, LocalRoleID) }

// GetRole devuelve el nombre del rol del token.
func GetRole(c *fiber.Ctx) string { return localString(c, LocalRole) }

// GetClaims devuelve los claims del token o nil.
func GetClaims(c *fiber.Ctx) *jwt.Claims {
	claims, _ := c.Locals(LocalClaims).(*jwt.Claims)
	return claims
}
