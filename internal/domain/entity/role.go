package entity

import (
	"strings"
	"time"
)

// RoleAdmin nombre del rol creado por el seed con el permiso comodín.
const RoleAdmin = "admin"

// RolePlatform rol reservado del operador de la plataforma: da de alta empresas nuevas.
// Solo lo crea `posctl seed --plataforma`; la API no permite usar este nombre.
const RolePlatform = "plataforma"

// IsReservedRoleName indica si name no puede asignarse desde la API.
func IsReservedRoleName(name string) bool {
	return strings.EqualFold(strings.TrimSpace(name), RolePlatform)
}

// PermissionWildcard concede cualquier permiso.
const PermissionWildcard = "*"

// Role agrupa permisos y se asigna a usuarios de una empresa.
type Role struct {
	ID          string
	CompanyID   string
	Name        string
	Description string
	Deleted     bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Permission código modulo:accion concedido a un rol (ej. "ventas:crear", "productos:*" o "*").
type Permission struct {
	ID          string
	CompanyID   string
	RoleID      string
	Code        string
	Description string
	Deleted     bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// HasPermission indica si alguno de los códigos concedidos cubre required.
// "*" cubre todo; "modulo:*" cubre cualquier acción del módulo.
func HasPermission(granted []string, required string) bool {
	module, _, _ := strings.Cut(required, ":")
	for _, g := range granted {
		switch {
		case g == PermissionWildcard, g == required:
			return true
		case strings.HasSuffix(g, ":*") && strings.TrimSuffix(g, ":*") == module:
			return true
		}
	}
	return false
}
