package entity

import "time"

// Category representa una categoría de productos (jerárquica opcional).
type Category struct {
	ID        string
	CompanyID string
	ParentID  *string // nil si es raíz
	Name      string
	Code      string // único por empresa; slug del nombre si no se envía
	Color     string
	Deleted   bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
