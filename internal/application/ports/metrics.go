package ports

import "github.com/shopspring/decimal"

// SalesRecorder métricas de negocio del POS.
type SalesRecorder interface {
	SaleCompleted(paymentMethod string, total decimal.Decimal)
	SaleVoided()
}

// NopSalesRecorder descarta las métricas.
type NopSalesRecorder struct{}

func (NopSalesRecorder) SaleCompleted(string, decimal.Decimal) {}
func (NopSalesRecorder) SaleVoided()                           {}
