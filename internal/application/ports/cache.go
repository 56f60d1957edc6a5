package ports

import (
	"context"
	"time"
)

// PermissionCache caché de códigos de permiso por rol.
type PermissionCache interface {
	// Get devuelve (codes, true, nil) en acierto y (nil, false, nil) en fallo de caché.
	Get(ctx context.Context, roleID string) ([]string, bool, error)
	Set(ctx context.Context, roleID string, codes []string) error
	Invalidate(ctx context.Context, roleID string) error
}

// TokenBlacklist invalida tokens JWT antes de su expiración: uno por JTI (logout)
// o todos los de un usuario emitidos hasta un instante (baja, desactivación, cambio de rol o password).
type TokenBlacklist interface {
	AddToBlacklist(ctx context.Context, jti string, ttl time.Duration) error
	IsBlacklisted(ctx context.Context, jti string) (bool, error)
	// RevokeUser invalida los tokens de userID emitidos en o antes de at. ttl debe cubrir la vida del token.
	RevokeUser(ctx context.Context, userID string, at time.Time, ttl time.Duration) error
	IsUserRevoked(ctx context.Context, userID string, issuedAt time.Time) (bool, error)
}
