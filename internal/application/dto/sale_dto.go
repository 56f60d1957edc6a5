package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateSaleRequest checkout del carrito del POS.
type CreateSaleRequest struct {
	CashRegisterID string            `json:"id_caja" validate:"required,uuid"`
	WarehouseID    string            `json:"id_almacen" validate:"required,uuid"`
	PaymentMethod  string            `json:"metodo_pago" validate:"required,oneof=efectivo tarjeta transferencia"`
	AmountReceived decimal.Decimal   `json:"monto_recibido" validate:"gte=0"`
	Items          []SaleItemRequest `json:"items" validate:"required,min=1,dive"`
}

// SaleItemRequest línea del carrito. Sin precio_unitario se usa el precio de venta del producto.
type SaleItemRequest struct {
	ProductID string           `json:"id_producto" validate:"required,uuid"`
	Quantity  decimal.Decimal  `json:"cantidad" validate:"gt=0"`
	UnitPrice *decimal.Decimal `json:"precio_unitario"`
}

// SaleResponse salida de una venta.
type SaleResponse struct {
	ID             string             `json:"id"`
	Number         int64              `json:"numero"`
	CashRegisterID string             `json:"id_caja"`
	SessionID      string             `json:"id_sesion"`
	WarehouseID    string             `json:"id_almacen"`
	UserID         string             `json:"id_usuario"`
	Subtotal       decimal.Decimal    `json:"subtotal"`
	Tax            decimal.Decimal    `json:"impuesto"`
	Total          decimal.Decimal    `json:"total"`
	PaymentMethod  string             `json:"metodo_pago"`
	AmountReceived decimal.Decimal    `json:"monto_recibido"`
	Change         decimal.Decimal    `json:"cambio"`
	Status         string             `json:"estado"`
	Items          []SaleItemResponse `json:"items,omitempty"`
	CreatedAt      time.Time          `json:"created_at"`
}

// SaleItemResponse línea de una venta.
type SaleItemResponse struct {
	ProductID   string          `json:"id_producto"`
	ProductName string          `json:"nombre_producto,omitempty"`
	Quantity    decimal.Decimal `json:"cantidad"`
	UnitPrice   decimal.Decimal `json:"precio_unitario"`
	TaxRate     decimal.Decimal `json:"tasa_impuesto"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	Tax         decimal.Decimal `json:"impuesto"`
	Total       decimal.Decimal `json:"total"`
}
