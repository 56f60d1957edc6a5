package dto

import "time"

// CreateBranchRequest entrada para crear una sucursal.
type CreateBranchRequest struct {
	Name    string `json:"nombre" validate:"required,min=2,max=150"`
	Address string `json:"direccion" validate:"max=300"`
	Phone   string `json:"telefono" validate:"max=30"`
}

// UpdateBranchRequest actualización parcial de una sucursal.
type UpdateBranchRequest struct {
	Name    *string `json:"nombre" validate:"omitempty,min=2,max=150"`
	Address *string `json:"direccion" validate:"omitempty,max=300"`
	Phone   *string `json:"telefono" validate:"omitempty,max=30"`
}

// BranchResponse salida de una sucursal.
type BranchResponse struct {
	ID        string    `json:"id"`
	CompanyID string    `json:"id_empresa"`
	Name      string    `json:"nombre"`
	Address   string    `json:"direccion"`
	Phone     string    `json:"telefono"`
	Deleted   bool      `json:"eliminado"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
