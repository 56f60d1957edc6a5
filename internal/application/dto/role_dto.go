package dto

import "time"

// CreateRoleRequest entrada para crear un rol.
type CreateRoleRequest struct {
	Name        string `json:"nombre" validate:"required,min=2,max=100"`
	Description string `json:"descripcion" validate:"max=300"`
}

// UpdateRoleRequest actualización parcial de un rol.
type UpdateRoleRequest struct {
	Name        *string `json:"nombre" validate:"omitempty,min=2,max=100"`
	Description *string `json:"descripcion" validate:"omitempty,max=300"`
}

// RoleResponse salida de un rol.
type RoleResponse struct {
	ID          string    `json:"id"`
	CompanyID   string    `json:"id_empresa"`
	Name        string    `json:"nombre"`
	Description string    `json:"descripcion"`
	Deleted     bool      `json:"eliminado"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreatePermissionRequest entrada para conceder un permiso a un rol.
type CreatePermissionRequest struct {
	RoleID      string `json:"id_rol" validate:"required,uuid"`
	Code        string `json:"codigo" validate:"required,permcode"`
	Description string `json:"descripcion" validate:"max=300"`
}

// UpdatePermissionRequest actualización parcial de un permiso.
type UpdatePermissionRequest struct {
	Code        *string `json:"codigo" validate:"omitempty,permcode"`
	Description *string `json:"descripcion" validate:"omitempty,max=300"`
}

// PermissionResponse salida de un permiso.
type PermissionResponse struct {
	ID          string    `json:"id"`
	CompanyID   string    `json:"id_empresa"`
	RoleID      string    `json:"id_rol"`
	Code        string    `json:"codigo"`
	Description string    `json:"descripcion"`
	Deleted     bool      `json:"eliminado"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
