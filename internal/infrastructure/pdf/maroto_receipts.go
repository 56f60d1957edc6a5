// Package pdf genera los documentos imprimibles del POS con Maroto v2.
//
// Tiquete de venta (rollo de 80 mm):
//
//	┌──────────────────────────────┐
//	│  Empresa + NIT + dirección   │
//	│  Venta N° / fecha / caja     │
//	│  Cant | Producto | Total     │
//	│  Subtotal / IVA / TOTAL      │
//	│  Pago / recibido / cambio    │
//	│  QR con el id de la venta    │
//	└──────────────────────────────┘
//
// El reporte de cierre de caja usa página A4.
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/NotSleepp/possbien/internal/application/ports"
	"github.com/NotSleepp/possbien/internal/domain/entity"
)

// ── Paleta ────────────────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorRed     = &props.Color{Red: 180, Green: 20, Blue: 20}
)

const (
	ticketWidthMM  = 80
	ticketHeightMM = 200
)

var paymentLabels = map[string]string{
	entity.PaymentCash:     "Efectivo",
	entity.PaymentCard:     "Tarjeta",
	entity.PaymentTransfer: "Transferencia",
}

var _ ports.ReceiptPDFGenerator = (*MarotoReceipts)(nil)

// MarotoReceipts implementa ports.ReceiptPDFGenerator.
type MarotoReceipts struct{}

func NewMarotoReceipts() *MarotoReceipts { return &MarotoReceipts{} }

// SaleTicket tiquete de la venta con sus líneas. Las ventas anuladas llevan la marca ANULADA.
func (g *MarotoReceipts) SaleTicket(_ context.Context, company *entity.Company, sale *entity.Sale) ([]byte, error) {
	cfg := config.NewBuilder().
		WithDimensions(ticketWidthMM, ticketHeightMM).
		WithLeftMargin(4).WithRightMargin(4).
		WithTopMargin(4).WithBottomMargin(4).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 7}).
		WithTitle(fmt.Sprintf("Venta #%d", sale.Number), true).
		WithAuthor(company.Name, true).
		Build()

	m := maroto.New(cfg)
	m.AddRows(ticketHeaderRows(company, sale)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(ticketItemsHeader())
	m.AddRows(ticketItemRows(sale.Items, company.Currency)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(ticketTotalsRows(sale, company.Currency)...)
	m.AddRows(row.New(30).Add(col.New(12).Add(code.NewQr(sale.ID, props.Rect{Percent: 80, Center: true}))))
	m.AddRows(row.New(6).Add(col.New(12).Add(
		text.New("Gracias por su compra", props.Text{Size: 7, Align: align.Center, Color: colorGray, Top: 1}),
	)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar tiquete: %w", err)
	}
	return doc.GetBytes(), nil
}

// CashClosingReport arqueo de la sesión: apertura, ventas por método, esperado, contado y diferencia.
func (g *MarotoReceipts) CashClosingReport(_ context.Context, r ports.ClosingReport) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(15).WithBottomMargin(15).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 10}).
		WithTitle("Cierre de caja "+r.Register.Name, true).
		WithAuthor(r.Company.Name, true).
		Build()

	m := maroto.New(cfg)
	m.AddRows(closingHeaderRow(r))
	m.AddRows(line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(closingSessionRows(r)...)
	m.AddRows(line.NewRow(2, props.Line{Color: colorGray, Thickness: 0.2}))
	m.AddRows(closingTotalsRows(r)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar cierre de caja: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Tiquete ───────────────────────────────────────────────────────────────────

func ticketHeaderRows(company *entity.Company, sale *entity.Sale) []core.Row {
	center := func(s string, size float64, style fontstyle.Type) core.Row {
		return row.New(size/2 + 2).Add(col.New(12).Add(
			text.New(s, props.Text{Size: size, Style: style, Align: align.Center}),
		))
	}
	rows := []core.Row{
		center(company.Name, 10, fontstyle.Bold),
		center("NIT: "+company.NIT, 7, fontstyle.Normal),
	}
	if company.Address != "" {
		rows = append(rows, center(company.Address, 7, fontstyle.Normal))
	}
	rows = append(rows,
		center(fmt.Sprintf("Venta N° %d", sale.Number), 9, fontstyle.Bold),
		center(sale.CreatedAt.Format("02/01/2006 15:04"), 7, fontstyle.Normal),
	)
	if sale.Status == entity.SaleStatusVoided {
		rows = append(rows, row.New(8).Add(col.New(12).Add(
			text.New("ANULADA", props.Text{Size: 12, Style: fontstyle.Bold, Align: align.Center, Color: colorRed, Top: 1}),
		)))
	}
	return rows
}

func ticketItemsHeader() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{Style: fontstyle.Bold, Size: 7, Align: a, Top: 1}))
	}
	return row.New(5).Add(
		h("Cant", 2, align.Left),
		h("Producto", 6, align.Left),
		h("Total", 4, align.Right),
	)
}

func ticketItemRows(items []entity.SaleItem, currency string) []core.Row {
	rows := make([]core.Row, 0, len(items))
	for _, it := range items {
		rows = append(rows, row.New(5).Add(
			col.New(2).Add(text.New(it.Quantity.String(), props.Text{Size: 7, Top: 1})),
			col.New(6).Add(text.New(it.ProductName, props.Text{Size: 7, Top: 1})),
			col.New(4).Add(text.New(money(it.Total, currency), props.Text{Size: 7, Align: align.Right, Top: 1})),
		))
	}
	return rows
}

func ticketTotalsRows(sale *entity.Sale, currency string) []core.Row {
	rows := []core.Row{
		labelValue("Subtotal", money(sale.Subtotal, currency), 7, false),
		labelValue("IVA", money(sale.Tax, currency), 7, false),
		labelValue("TOTAL", money(sale.Total, currency), 9, true),
		labelValue("Pago", paymentLabel(sale.PaymentMethod), 7, false),
	}
	if sale.PaymentMethod == entity.PaymentCash {
		rows = append(rows,
			labelValue("Recibido", money(sale.AmountReceived, currency), 7, false),
			labelValue("Cambio", money(sale.Change, currency), 7, false),
		)
	}
	return rows
}

// ── Cierre de caja ────────────────────────────────────────────────────────────

func closingHeaderRow(r ports.ClosingReport) core.Row {
	return row.New(20).Add(
		col.New(7).Add(
			text.New(r.Company.Name, props.Text{Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1}),
			text.New("NIT: "+r.Company.NIT, props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("CIERRE DE CAJA", props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Top: 1}),
			text.New(r.Register.Name, props.Text{Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 8}),
		),
	)
}

func closingSessionRows(r ports.ClosingReport) []core.Row {
	closed := "sin cerrar"
	if r.Session.ClosedAt != nil {
		closed = r.Session.ClosedAt.Format("02/01/2006 15:04")
	}
	return []core.Row{
		labelValue("Cajero", r.Cashier, 10, false),
		labelValue("Apertura", r.Session.OpenedAt.Format("02/01/2006 15:04"), 10, false),
		labelValue("Cierre", closed, 10, false),
	}
}

func closingTotalsRows(r ports.ClosingReport) []core.Row {
	cur := r.Company.Currency
	rows := []core.Row{labelValue("Monto de apertura", money(r.Session.OpeningAmount, cur), 10, false)}
	for _, method := range []string{entity.PaymentCash, entity.PaymentCard, entity.PaymentTransfer} {
		total, ok := r.Totals[method]
		if !ok {
			total = decimal.Zero
		}
		rows = append(rows, labelValue("Ventas "+paymentLabel(method), money(total, cur), 10, false))
	}
	rows = append(rows,
		line.NewRow(2, props.Line{Color: colorGray, Thickness: 0.2}),
		labelValue("Efectivo esperado", money(r.Session.ExpectedAmount, cur), 10, true),
		labelValue("Efectivo contado", money(r.Session.CountedAmount, cur), 10, true),
	)
	diff := labelValue("Diferencia", money(r.Session.Difference, cur), 11, true)
	if r.Session.Difference.IsNegative() {
		diff = row.New(8).Add(
			col.New(6).Add(text.New("Diferencia", props.Text{Style: fontstyle.Bold, Size: 11, Top: 1})),
			col.New(6).Add(text.New(money(r.Session.Difference, cur), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Color: colorRed, Top: 1,
			})),
		)
	}
	return append(rows, diff)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func labelValue(label, value string, size float64, bold bool) core.Row {
	style := fontstyle.Normal
	if bold {
		style = fontstyle.Bold
	}
	return row.New(size/2 + 3).Add(
		col.New(6).Add(text.New(label, props.Text{Size: size, Style: style, Top: 1})),
		col.New(6).Add(text.New(value, props.Text{Size: size, Style: style, Align: align.Right, Top: 1})),
	)
}

func paymentLabel(method string) string {
	if l, ok := paymentLabels[method]; ok {
		return l
	}
	return method
}

// money formatea sin decimales con puntos de miles: -5000 -> "-$5.000".
func money(d decimal.Decimal, currency string) string {
	s := "$" + thousands(d.Abs().StringFixed(0))
	if currency != "" && currency != "COP" {
		s += " " + currency
	}
	if d.Round(0).IsNegative() {
		return "-" + s
	}
	return s
}

// thousands inserta puntos de miles en un entero sin signo: "1000000" -> "1.000.000".
func thousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return string(buf)
}
