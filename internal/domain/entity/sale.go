package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Métodos de pago admitidos.
const (
	PaymentCash     = "efectivo"
	PaymentCard     = "tarjeta"
	PaymentTransfer = "transferencia"
)

// Estados de una venta.
const (
	SaleStatusCompleted = "completada"
	SaleStatusVoided    = "anulada"
)

// SequenceSale tipo de consecutivo usado para numerar ventas.
const SequenceSale = "venta"

// Sale venta registrada en una sesión de caja.
type Sale struct {
	ID             string
	CompanyID      string
	CashRegisterID string
	SessionID      string
	WarehouseID    string
	UserID         string
	Number         int64
	Subtotal       decimal.Decimal
	Tax            decimal.Decimal
	Total          decimal.Decimal
	PaymentMethod  string
	AmountReceived decimal.Decimal
	Change         decimal.Decimal
	Status         string
	Items          []SaleItem
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// SaleItem línea de una venta. ProductName solo se llena en lecturas.
type SaleItem struct {
	ID          string
	SaleID      string
	ProductID   string
	ProductName string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	TaxRate     decimal.Decimal
	Subtotal    decimal.Decimal
	Tax         decimal.Decimal
	Total       decimal.Decimal
}
