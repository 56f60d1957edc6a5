package dto

import "github.com/shopspring/decimal"

// DashboardSummaryResponse respuesta de GET /api/dashboard/resumen.
type DashboardSummaryResponse struct {
	Today         SalesTotalDTO   `json:"hoy"`
	Month         SalesTotalDTO   `json:"mes"`
	Last7Days     []DailyPointDTO `json:"ultimos_7_dias"` // siempre 7 puntos, de más antiguo a hoy
	TopProducts   []TopProductDTO `json:"top_productos"`
	LowStockCount int             `json:"stock_bajo_minimo"`
	DateLabel     string          `json:"periodo"` // ej: "Octubre 2026"
}

// SalesTotalDTO número de ventas y total vendido.
type SalesTotalDTO struct {
	Count int             `json:"cantidad"`
	Total decimal.Decimal `json:"total"`
}

// DailyPointDTO punto de la gráfica de ventas diarias.
type DailyPointDTO struct {
	Date  string          `json:"fecha"` // YYYY-MM-DD
	Count int             `json:"cantidad"`
	Total decimal.Decimal `json:"total"`
}

// TopProductDTO producto del top de ventas del mes.
type TopProductDTO struct {
	ProductID string          `json:"id_producto"`
	SKU       string          `json:"sku"`
	Name      string          `json:"nombre"`
	Quantity  decimal.Decimal `json:"cantidad"`
	Revenue   decimal.Decimal `json:"ingresos"`
}
