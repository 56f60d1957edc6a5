package entity

import "time"

// Branch representa una sucursal (punto de venta físico) de una empresa.
type Branch struct {
	ID        string
	CompanyID string
	Name      string
	Address   string
	Phone     string
	Deleted   bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
