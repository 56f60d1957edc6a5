package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stock representa la existencia de un producto en un almacén (par único).
type Stock struct {
	ID          string
	CompanyID   string
	ProductID   string
	WarehouseID string
	Quantity    decimal.Decimal
	MinStock    decimal.Decimal
	Deleted     bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// BelowMinimum indica si la cantidad está por debajo del mínimo configurado.
func (s *Stock) BelowMinimum() bool {
	return s.Quantity.LessThan(s.MinStock)
}
