package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto vendible en el POS.
type Product struct {
	ID          string
	CompanyID   string
	CategoryID  *string
	SKU         string
	Barcode     string
	Name        string
	Description string
	Price       decimal.Decimal // precio de venta antes de impuestos
	Cost        decimal.Decimal // costo promedio ponderado
	TaxRate     decimal.Decimal // 0, 5 o 19 (%)
	UnitMeasure string
	ImageKey    string // llave del objeto en el almacenamiento; vacío si no tiene imagen
	Deleted     bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ValidTaxRate indica si la tasa es una de las tarifas de IVA admitidas.
func ValidTaxRate(rate decimal.Decimal) bool {
	for _, r := range []int64{0, 5, 19} {
		if rate.Equal(decimal.NewFromInt(r)) {
			return true
		}
	}
	return false
}
