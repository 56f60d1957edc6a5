package dto

import "time"

// CreateUserRequest entrada para crear un usuario (password en texto, se hashea en el use case).
type CreateUserRequest struct {
	RoleID    string   `json:"id_rol" validate:"required,uuid"`
	Name      string   `json:"nombre" validate:"required,min=2,max=200"`
	Email     string   `json:"email" validate:"required,email"`
	Password  string   `json:"password" validate:"required,min=8,max=72"`
	BranchIDs []string `json:"sucursales" validate:"omitempty,dive,uuid"`
}

// UpdateUserRequest actualización parcial de un usuario. Password se vuelve a hashear.
type UpdateUserRequest struct {
	RoleID    *string   `json:"id_rol" validate:"omitempty,uuid"`
	Name      *string   `json:"nombre" validate:"omitempty,min=2,max=200"`
	Email     *string   `json:"email" validate:"omitempty,email"`
	Password  *string   `json:"password" validate:"omitempty,min=8,max=72"`
	Status    *string   `json:"estado" validate:"omitempty,oneof=activo inactivo"`
	BranchIDs *[]string `json:"sucursales" validate:"omitempty,dive,uuid"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID           string     `json:"id"`
	CompanyID    string     `json:"id_empresa"`
	RoleID       string     `json:"id_rol"`
	Name         string     `json:"nombre"`
	Email        string     `json:"email"`
	Status       string     `json:"estado"`
	LastAccessAt *time.Time `json:"ultimo_acceso"`
	BranchIDs    []string   `json:"sucursales"`
	Deleted      bool       `json:"eliminado"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida con token JWT y el usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"usuario"`
}

// MeResponse usuario actual con su rol y permisos.
type MeResponse struct {
	User        UserResponse `json:"usuario"`
	Role        string       `json:"rol"`
	Permissions []string     `json:"permisos"`
}
