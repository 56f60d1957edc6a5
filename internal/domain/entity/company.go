package entity

import "time"

// Estados de una empresa.
const (
	CompanyStatusActive   = "activa"
	CompanyStatusInactive = "inactiva"
)

// Company representa una organización/tenant del sistema (multi-tenant).
type Company struct {
	ID        string
	Name      string
	NIT       string // único entre empresas no eliminadas
	Address   string
	Phone     string
	Email     string
	Currency  string // ISO 4217, COP por defecto
	Status    string // activa, inactiva
	Deleted   bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
