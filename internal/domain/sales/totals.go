// Package sales calcula los totales de una venta del POS.
package sales

import (
	"github.com/shopspring/decimal"

	"github.com/NotSleepp/possbien/internal/domain/entity"
)

var hundred = decimal.NewFromInt(100)

// Line entrada para el cálculo de una línea.
type Line struct {
	ProductID string
	Quantity  decimal.Decimal
	UnitPrice decimal.Decimal
	TaxRate   decimal.Decimal // porcentaje
}

// Totals resultado del cálculo de una venta.
type Totals struct {
	Items    []entity.SaleItem
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

// Compute calcula subtotal, impuesto y total por línea y de la venta.
// Los precios no incluyen impuesto. Cada valor de línea se redondea a 2 decimales
// y los totales son la suma de las líneas ya redondeadas.
func Compute(lines []Line) Totals {
	t := Totals{
		Items:    make([]entity.SaleItem, 0, len(lines)),
		Subtotal: decimal.Zero,
		Tax:      decimal.Zero,
		Total:    decimal.Zero,
	}
	for _, l := range lines {
		sub := l.Quantity.Mul(l.UnitPrice).Round(2)
		tax := sub.Mul(l.TaxRate).Div(hundred).Round(2)
		total := sub.Add(tax)
		t.Items = append(t.Items, entity.SaleItem{
			ProductID: l.ProductID,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
			TaxRate:   l.TaxRate,
			Subtotal:  sub,
			Tax:       tax,
			Total:     total,
		})
		t.Subtotal = t.Subtotal.Add(sub)
		t.Tax = t.Tax.Add(tax)
		t.Total = t.Total.Add(total)
	}
	return t
}

// Change devuelve el cambio de un pago. En efectivo falla si received < total;
// con tarjeta o transferencia el recibido es el total y el cambio es cero.
func Change(method string, total, received decimal.Decimal) (decimal.Decimal, decimal.Decimal, bool) {
	if method != entity.PaymentCash {
		return total, decimal.Zero, true
	}
	if received.LessThan(total) {
		return received, decimal.Zero, false
	}
	return received, received.Sub(total), true
}
