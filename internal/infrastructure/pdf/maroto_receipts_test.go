package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NotSleepp/possbien/internal/application/ports"
	"github.com/NotSleepp/possbien/internal/domain/entity"
)

func TestMoney(t *testing.T) {
	assert.Equal(t, "$0", money(decimal.Zero, "COP"))
	assert.Equal(t, "$25.800", money(decimal.NewFromInt(25800), "COP"))
	assert.Equal(t, "-$5.000", money(decimal.NewFromInt(-5000), ""))
	assert.Equal(t, "-$1.250.000", money(decimal.NewFromInt(-1250000), "COP"))
	assert.Equal(t, "$1.000 USD", money(decimal.NewFromInt(1000), "USD"))
}

func TestThousands(t *testing.T) {
	assert.Equal(t, "999", thousands("999"))
	assert.Equal(t, "1.000", thousands("1000"))
	assert.Equal(t, "12.345.678", thousands("12345678"))
}

func company() *entity.Company {
	return &entity.Company{ID: "emp-1", Name: "Tienda La 14", NIT: "900123456-7", Address: "Cra 7 # 12-40", Currency: "COP"}
}

func TestSaleTicket_GeneraPDF(t *testing.T) {
	d := decimal.NewFromInt
	sale := &entity.Sale{
		ID: "6f1c1c1e-8c1a-4f55-9a57-1c9d5d0b7a11", Number: 7, PaymentMethod: entity.PaymentCash,
		Subtotal: d(21681), Tax: d(4119), Total: d(25800), AmountReceived: d(30000), Change: d(4200),
		Status: entity.SaleStatusVoided, CreatedAt: time.Date(2026, 3, 2, 15, 4, 0, 0, time.UTC),
		Items: []entity.SaleItem{{ProductName: "Arroz Diana 500g", Quantity: d(2), Total: d(25800)}},
	}

	out, err := NewMarotoReceipts().SaleTicket(context.Background(), company(), sale)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestCashClosingReport_GeneraPDF(t *testing.T) {
	closed := time.Date(2026, 3, 2, 20, 0, 0, 0, time.UTC)
	report := ports.ClosingReport{
		Company:  company(),
		Register: &entity.CashRegister{Name: "Caja 1"},
		Session: &entity.CashSession{
			OpeningAmount: decimal.NewFromInt(100000), ExpectedAmount: decimal.NewFromInt(350000),
			CountedAmount: decimal.NewFromInt(345000), Difference: decimal.NewFromInt(-5000),
			OpenedAt: closed.Add(-10 * time.Hour), ClosedAt: &closed,
		},
		Cashier: "Ana",
		Totals:  map[string]decimal.Decimal{entity.PaymentCash: decimal.NewFromInt(250000)},
	}

	out, err := NewMarotoReceipts().CashClosingReport(context.Background(), report)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}
