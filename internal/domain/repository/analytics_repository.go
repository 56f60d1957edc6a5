package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// SalesAggregate conteo y suma de ventas completadas en un rango.
type SalesAggregate struct {
	Count int
	Total decimal.Decimal
}

// DailySales punto de la serie diaria del dashboard.
type DailySales struct {
	Day   time.Time
	Count int
	Total decimal.Decimal
}

// TopProduct producto más vendido en el período.
type TopProduct struct {
	ProductID string
	SKU       string
	Name      string
	Quantity  decimal.Decimal
	Revenue   decimal.Decimal
}

// ReplenishmentCandidate fila de stock bajo el mínimo.
type ReplenishmentCandidate struct {
	ProductID   string
	WarehouseID string
	SKU         string
	ProductName string
	Quantity    decimal.Decimal
	MinStock    decimal.Decimal
	Cost        decimal.Decimal
}

// AnalyticsRepository consultas read-only para el dashboard y la reposición.
type AnalyticsRepository interface {
	// SalesBetween agrega ventas completadas con created_at en [from, to).
	SalesBetween(ctx context.Context, companyID string, from, to time.Time) (SalesAggregate, error)
	// DailySalesBetween devuelve un punto por día con ventas (los días sin ventas no aparecen).
	DailySalesBetween(ctx context.Context, companyID string, from, to time.Time) ([]DailySales, error)
	TopProducts(ctx context.Context, companyID string, from, to time.Time, limit int) ([]TopProduct, error)
	CountBelowMinimum(ctx context.Context, companyID string) (int, error)
	// ReplenishmentCandidates filas de stock bajo el mínimo con datos del producto; warehouseID vacío = todos.
	ReplenishmentCandidates(ctx context.Context, companyID, warehouseID string) ([]ReplenishmentCandidate, error)
	// UnitsSoldByProduct unidades vendidas (ventas completadas) por producto en [from, to).
	UnitsSoldByProduct(ctx context.Context, companyID string, from, to time.Time) (map[string]decimal.Decimal, error)
}
