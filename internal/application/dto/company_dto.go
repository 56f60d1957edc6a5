package dto

import "time"

// CreateCompanyRequest alta de una empresa nueva junto con su primer administrador.
type CreateCompanyRequest struct {
	Name     string              `json:"nombre" validate:"required,min=2,max=200"`
	NIT      string              `json:"nit" validate:"required,min=5,max=20"`
	Address  string              `json:"direccion" validate:"max=300"`
	Phone    string              `json:"telefono" validate:"max=30"`
	Email    string              `json:"email" validate:"omitempty,email"`
	Currency string              `json:"moneda" validate:"omitempty,len=3"`
	Admin    CompanyAdminRequest `json:"administrador"`
}

// CompanyAdminRequest usuario administrador (rol admin con "*") de la empresa nueva.
type CompanyAdminRequest struct {
	Name     string `json:"nombre" validate:"required,min=2,max=200"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// UpdateCompanyRequest actualización parcial de una empresa.
type UpdateCompanyRequest struct {
	Name     *string `json:"nombre" validate:"omitempty,min=2,max=200"`
	NIT      *string `json:"nit" validate:"omitempty,min=5,max=20"`
	Address  *string `json:"direccion" validate:"omitempty,max=300"`
	Phone    *string `json:"telefono" validate:"omitempty,max=30"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Currency *string `json:"moneda" validate:"omitempty,len=3"`
	Status   *string `json:"estado" validate:"omitempty,oneof=activa inactiva"`
}

// CompanyResponse salida de una empresa.
type CompanyResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"nombre"`
	NIT       string    `json:"nit"`
	Address   string    `json:"direccion"`
	Phone     string    `json:"telefono"`
	Email     string    `json:"email"`
	Currency  string    `json:"moneda"`
	Status    string    `json:"estado"`
	Deleted   bool      `json:"eliminado"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	// AdminUserID solo viene en la respuesta del alta.
	AdminUserID string `json:"id_usuario_admin,omitempty"`
}
