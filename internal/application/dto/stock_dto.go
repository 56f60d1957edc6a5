package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateStockRequest alta del par producto/almacén con su cantidad inicial.
type CreateStockRequest struct {
	ProductID   string          `json:"id_producto" validate:"required,uuid"`
	WarehouseID string          `json:"id_almacen" validate:"required,uuid"`
	Quantity    decimal.Decimal `json:"cantidad" validate:"gte=0"`
	MinStock    decimal.Decimal `json:"stock_minimo" validate:"gte=0"`
}

// UpdateStockRequest solo permite cambiar el stock mínimo; la cantidad cambia vía movimientos.
type UpdateStockRequest struct {
	MinStock *decimal.Decimal `json:"stock_minimo"`
}

// StockResponse salida de una fila de stock.
type StockResponse struct {
	ID           string          `json:"id"`
	CompanyID    string          `json:"id_empresa"`
	ProductID    string          `json:"id_producto"`
	WarehouseID  string          `json:"id_almacen"`
	Quantity     decimal.Decimal `json:"cantidad"`
	MinStock     decimal.Decimal `json:"stock_minimo"`
	BelowMinimum bool            `json:"bajo_minimo"`
	Deleted      bool            `json:"eliminado"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}
