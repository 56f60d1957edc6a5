package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de caja y de sesión de caja.
const (
	CashStatusOpen   = "abierta"
	CashStatusClosed = "cerrada"
)

// CashRegister representa una caja registradora de una sucursal.
type CashRegister struct {
	ID        string
	CompanyID string
	BranchID  string
	Name      string
	Status    string // abierta, cerrada
	Deleted   bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CashSession turno de caja entre apertura y cierre.
type CashSession struct {
	ID             string
	CompanyID      string
	CashRegisterID string
	UserID         string
	OpeningAmount  decimal.Decimal
	CountedAmount  decimal.Decimal
	ExpectedAmount decimal.Decimal
	Difference     decimal.Decimal
	Status         string
	OpenedAt       time.Time
	ClosedAt       *time.Time
}

// IsOpen indica si la sesión sigue abierta.
func (s *CashSession) IsOpen() bool { return s.Status == CashStatusOpen }
