package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterMovementRequest body para POST /api/stock/movimientos.
// TRANSFERENCIA usa id_almacen_origen e id_almacen_destino; el resto usa id_almacen.
type RegisterMovementRequest struct {
	Type            string           `json:"tipo" validate:"required,oneof=ENTRADA SALIDA AJUSTE TRANSFERENCIA"`
	ProductID       string           `json:"id_producto" validate:"required,uuid"`
	WarehouseID     string           `json:"id_almacen" validate:"omitempty,uuid"`
	FromWarehouseID string           `json:"id_almacen_origen" validate:"omitempty,uuid"`
	ToWarehouseID   string           `json:"id_almacen_destino" validate:"omitempty,uuid"`
	Quantity        decimal.Decimal  `json:"cantidad"`
	UnitCost        *decimal.Decimal `json:"costo_unitario"`
	Reference       string           `json:"referencia" validate:"max=200"`
}

// MovementResponse salida de un movimiento del kardex.
type MovementResponse struct {
	ID            string          `json:"id"`
	TransactionID string          `json:"id_transaccion"`
	ProductID     string          `json:"id_producto"`
	WarehouseID   string          `json:"id_almacen"`
	Type          string          `json:"tipo"`
	Quantity      decimal.Decimal `json:"cantidad"`
	UnitCost      decimal.Decimal `json:"costo_unitario"`
	TotalCost     decimal.Decimal `json:"costo_total"`
	Reference     string          `json:"referencia"`
	CreatedBy     string          `json:"creado_por"`
	CreatedAt     time.Time       `json:"created_at"`
}

// ReplenishmentSuggestionDTO fila de la lista de reposición (GET /api/stock/reposicion).
type ReplenishmentSuggestionDTO struct {
	Priority      int             `json:"prioridad"`
	ProductID     string          `json:"id_producto"`
	WarehouseID   string          `json:"id_almacen"`
	SKU           string          `json:"sku"`
	ProductName   string          `json:"nombre_producto"`
	CurrentStock  decimal.Decimal `json:"stock_actual"`
	MinStock      decimal.Decimal `json:"stock_minimo"`
	IdealStock    decimal.Decimal `json:"stock_ideal"`
	SuggestedQty  decimal.Decimal `json:"cantidad_sugerida"`
	UnitCost      decimal.Decimal `json:"costo_unitario"`
	EstimatedCost decimal.Decimal `json:"costo_estimado"`
	UnitsSold     decimal.Decimal `json:"unidades_vendidas_30_dias"`
}
