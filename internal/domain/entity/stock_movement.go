package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento del kardex.
const (
	MovementTypeIn       = "ENTRADA"
	MovementTypeOut      = "SALIDA"
	MovementTypeAdjust   = "AJUSTE"
	MovementTypeTransfer = "TRANSFERENCIA"
)

// StockMovement registro inmutable del kardex. Quantity es negativa en salidas y ajustes a la baja.
type StockMovement struct {
	ID            string
	CompanyID     string
	TransactionID string // agrupa las dos patas de una transferencia
	ProductID     string
	WarehouseID   string
	Type          string
	Quantity      decimal.Decimal
	UnitCost      decimal.Decimal
	TotalCost     decimal.Decimal
	Reference     string
	CreatedBy     string
	CreatedAt     time.Time
}
