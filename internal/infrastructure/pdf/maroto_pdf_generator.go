// Package pdf genera la representación impresa de una factura.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Emisor              │  N° Factura + Fecha          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: Nombre + Tipo/Número de identificación            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Producto | Precio | Desc% | IVA% | Valor total       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Precio / Descuento / IVA / TOTAL A PAGAR           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: QR con el id de la factura + leyenda               │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

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

	"github.com/jhoicas/facturacion-api/internal/application/billing"
	"github.com/jhoicas/facturacion-api/internal/domain/entity"
)

var _ billing.InvoicePDFGenerator = (*MarotoPDFGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

var hundred = decimal.NewFromInt(100)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa billing.InvoicePDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	issuer string
}

// NewMarotoPDFGenerator construye el generador; issuer es el nombre que encabeza el documento.
func NewMarotoPDFGenerator(issuer string) *MarotoPDFGenerator {
	return &MarotoPDFGenerator{issuer: nonEmpty(issuer, "Facturación")}
}

// GenerateInvoicePDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateInvoicePDF(_ context.Context, invoice *entity.Invoice) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Factura "+invoiceNumber(invoice), true).
		WithAuthor(g.issuer, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(invoice, g.issuer))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(customerRow(invoice.Customer))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(tableDetailRow(invoice))

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(invoice))

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(invoice))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: emisor (izq) y N° Factura + Fecha (der).
func headerRow(invoice *entity.Invoice, issuer string) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(issuer, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New("FACTURA DE VENTA", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(invoiceNumber(invoice), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+invoice.Date.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// customerRow: datos del cliente. La relación puede no venir cargada.
func customerRow(customer *entity.Customer) core.Row {
	name, ident := "-", "-"
	if customer != nil {
		name = customer.Name
		ident = strings.TrimSpace(customer.IDType + " " + customer.IDNumber)
	}
	return row.New(14).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(name, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New("Identificación: "+nonEmpty(ident, "-"), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla con fondo azul simulado.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Producto", 5, align.Left),
		h("Precio", 2, align.Right),
		h("Desc.%", 1, align.Center),
		h("IVA%", 1, align.Center),
		h("Valor total", 3, align.Right),
	)
}

// tableDetailRow: la factura tiene un único producto.
func tableDetailRow(invoice *entity.Invoice) core.Row {
	return row.New(7).Add(
		col.New(5).Add(text.New(invoice.ProductName,
			props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
		col.New(2).Add(text.New("$"+formatMoney(invoice.Price),
			props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		col.New(1).Add(text.New(invoice.Discount.String()+"%",
			props.Text{Size: 8, Align: align.Center, Top: 1})),
		col.New(1).Add(text.New(invoice.Tax.String()+"%",
			props.Text{Size: 8, Align: align.Center, Top: 1})),
		col.New(3).Add(text.New("$"+formatMoney(invoice.Total),
			props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
	)
}

// totalsRow: bloque de totales alineado a la derecha. Descuento e IVA se muestran como montos
// sobre el precio; el total es el valor guardado en la factura.
func totalsRow(invoice *entity.Invoice) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grand := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1,
		})
	}

	discount, tax := lineAmounts(invoice)
	return row.New(30).Add(
		col.New(3),
		col.New(3).Add(
			label("Precio:"),
			label("Descuento:"),
			label("IVA:"),
			label("TOTAL A PAGAR:"),
		),
		col.New(3).Add(
			value("$"+formatMoney(invoice.Price)),
			value("-$"+formatMoney(discount)),
			value("$"+formatMoney(tax)),
			grand("$"+formatMoney(invoice.Total)),
		),
		col.New(3),
	)
}

// footerRow: QR con el id de la factura y leyenda.
func footerRow(invoice *entity.Invoice) core.Row {
	return row.New(40).Add(
		col.New(3).Add(code.NewQr(invoice.ID, props.Rect{Percent: 95, Center: true})),
		col.New(9).Add(
			text.New("Identificador de la factura:", props.Text{
				Style: fontstyle.Bold, Size: 8, Top: 4, Left: 3,
			}),
			text.New(invoice.ID, props.Text{Size: 8, Top: 9, Left: 3, Color: colorGray}),
			text.New("Conserve este documento como soporte de la compra.", props.Text{
				Size: 7, Top: 20, Left: 3, Color: colorGray,
			}),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

// lineAmounts devuelve los montos de descuento e IVA calculados sobre el precio.
func lineAmounts(invoice *entity.Invoice) (discount, tax decimal.Decimal) {
	discount = invoice.Price.Mul(invoice.Discount).Div(hundred).Round(2)
	tax = invoice.Price.Mul(invoice.Tax).Div(hundred).Round(2)
	return discount, tax
}

// invoiceNumber número corto visible: primeros 8 caracteres del id en mayúsculas.
func invoiceNumber(invoice *entity.Invoice) string {
	id := invoice.ID
	if len(id) > 8 {
		id = id[:8]
	}
	return "N° " + strings.ToUpper(id)
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatMoney formatea con puntos de miles y coma decimal.
// Ej: 25000 → "25.000,00", 1319.5 → "1.319,50"
func formatMoney(d decimal.Decimal) string {
	s := d.Abs().StringFixed(2)
	intPart, frac, _ := strings.Cut(s, ".")
	n := len(intPart)
	buf := make([]byte, 0, n+n/3+3)
	for i, c := range []byte(intPart) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	out := string(buf) + "," + frac
	if d.IsNegative() {
		out = "-" + out
	}
	return out
}
