package dto

import "time"

// CreateCategoryRequest entrada para crear una categoría. Código vacío = slug del nombre.
type CreateCategoryRequest struct {
	ParentID *string `json:"id_padre" validate:"omitempty,uuid"`
	Name     string  `json:"nombre" validate:"required,min=2,max=150"`
	Code     string  `json:"codigo" validate:"max=100"`
	Color    string  `json:"color" validate:"omitempty,hexcolor"`
}

// UpdateCategoryRequest actualización parcial. id_padre "" deja la categoría como raíz.
type UpdateCategoryRequest struct {
	ParentID *string `json:"id_padre"`
	Name     *string `json:"nombre" validate:"omitempty,min=2,max=150"`
	Code     *string `json:"codigo" validate:"omitempty,max=100"`
	Color    *string `json:"color" validate:"omitempty,hexcolor"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID        string    `json:"id"`
	CompanyID string    `json:"id_empresa"`
	ParentID  *string   `json:"id_padre"`
	Name      string    `json:"nombre"`
	Code      string    `json:"codigo"`
	Color     string    `json:"color"`
	Deleted   bool      `json:"eliminado"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
