package ports

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/NotSleepp/possbien/internal/domain/entity"
)

// ClosingReport datos del reporte de cierre de una sesión de caja.
type ClosingReport struct {
	Company  *entity.Company
	Register *entity.CashRegister
	Session  *entity.CashSession
	Cashier  string
	// Totals total vendido por método de pago (solo ventas completadas).
	Totals map[string]decimal.Decimal
}

// ReceiptPDFGenerator genera los documentos imprimibles del POS.
type ReceiptPDFGenerator interface {
	SaleTicket(ctx context.Context, company *entity.Company, sale *entity.Sale) ([]byte, error)
	CashClosingReport(ctx context.Context, report ClosingReport) ([]byte, error)
}
