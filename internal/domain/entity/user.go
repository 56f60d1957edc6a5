package entity

import "time"

// Estados de un usuario.
const (
	UserStatusActive   = "activo"
	UserStatusInactive = "inactivo"
)

// User representa un usuario del sistema (pertenece a una Company y tiene un Role).
type User struct {
	ID           string
	CompanyID    string
	RoleID       string
	Name         string
	Email        string
	PasswordHash string // bcrypt; nunca sale del servicio
	Status       string // activo, inactivo
	LastAccessAt *time.Time
	BranchIDs    []string // sucursales asignadas (usuarios_sucursales)
	Deleted      bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
