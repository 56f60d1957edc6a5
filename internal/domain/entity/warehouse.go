package entity

import "time"

// Warehouse representa un almacén de una sucursal donde se guarda inventario.
type Warehouse struct {
	ID        string
	CompanyID string
	BranchID  string
	Name      string
	Address   string
	Deleted   bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
