package dto

import "time"

// CreateWarehouseRequest entrada para crear un almacén.
type CreateWarehouseRequest struct {
	BranchID string `json:"id_sucursal" validate:"required,uuid"`
	Name     string `json:"nombre" validate:"required,min=2,max=150"`
	Address  string `json:"direccion" validate:"max=300"`
}

// UpdateWarehouseRequest actualización parcial de un almacén.
type UpdateWarehouseRequest struct {
	BranchID *string `json:"id_sucursal" validate:"omitempty,uuid"`
	Name     *string `json:"nombre" validate:"omitempty,min=2,max=150"`
	Address  *string `json:"direccion" validate:"omitempty,max=300"`
}

// WarehouseResponse salida de un almacén.
type WarehouseResponse struct {
	ID        string    `json:"id"`
	CompanyID string    `json:"id_empresa"`
	BranchID  string    `json:"id_sucursal"`
	Name      string    `json:"nombre"`
	Address   string    `json:"direccion"`
	Deleted   bool      `json:"eliminado"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
