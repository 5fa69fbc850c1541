// Package pdf genera la representación gráfica (PDF) de las facturas de venta
// y de servicio de un ingenio usando Maroto v2.
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
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
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/sistemaarroz/ingenio-api/internal/application/billing"
	"github.com/sistemaarroz/ingenio-api/internal/domain/entity"
	"github.com/sistemaarroz/ingenio-api/internal/domain/repository"
)

var (
	colorPrimario = &props.Color{Red: 27, Green: 94, Blue: 32}
	colorGris     = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// es formatea montos con separadores en español ("1.234,50").
var es = message.NewPrinter(language.Spanish)

// MarotoFacturaGenerator implementa billing.GeneradorPDF usando Maroto v2.
type MarotoFacturaGenerator struct{}

// NewMarotoFacturaGenerator construye el generador.
func NewMarotoFacturaGenerator() *MarotoFacturaGenerator { return &MarotoFacturaGenerator{} }

var _ billing.GeneradorPDF = (*MarotoFacturaGenerator)(nil)

// GenerarFactura genera el PDF de una factura pública y devuelve sus bytes.
func (g *MarotoFacturaGenerator) GenerarFactura(f *billing.Factura) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Factura "+f.UUID, true).
		WithAuthor(f.Cabecera.Ingenio.Nombre, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(cabeceraRow(f))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimario, Thickness: 0.5}))
	m.AddRows(emisorRow(&f.Cabecera.Ingenio))
	m.AddRows(contraparteRow(f))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimario, Thickness: 0.3}))

	m.AddRows(tablaHeaderRow())
	for _, r := range tablaDetalleRows(f.Detalles) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimario, Thickness: 0.3}))
	m.AddRows(totalesRow(f))

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGris, Thickness: 0.3}))
	m.AddRows(pieRow(f))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// tituloFactura según el tipo de transacción.
func tituloFactura(tipo string) string {
	switch tipo {
	case entity.TipoServicioSecado:
		return "FACTURA DE SERVICIO DE SECADO"
	case entity.TipoServicioPelado:
		return "FACTURA DE SERVICIO DE PELADO"
	default:
		return "FACTURA DE VENTA"
	}
}

func cabeceraRow(f *billing.Factura) core.Row {
	ingenio := f.Cabecera.Ingenio
	fecha := f.Cabecera.Transaccion.Fecha.Format("02/01/2006")

	return row.New(18).Add(
		col.New(7).Add(
			text.New(ingenio.Nombre, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimario, Top: 1,
			}),
			text.New("NIT: "+nonEmpty(ingenio.NIT, "—"), props.Text{
				Size: 9, Top: 9, Color: colorGris,
			}),
		),
		col.New(5).Add(
			text.New(tituloFactura(f.Cabecera.Transaccion.Tipo), props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimario, Top: 1,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGris,
			}),
		),
	)
}

func emisorRow(ingenio *entity.Ingenio) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("DATOS DEL INGENIO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimario, Top: 1,
			}),
			text.New(fmt.Sprintf("Dirección: %s   |   Cel: %s",
				nonEmpty(ingenio.Direccion, "—"),
				nonEmpty(ingenio.Celular, "—"),
			), props.Text{Size: 8, Top: 7, Color: colorGris}),
		),
	)
}

func contraparteRow(f *billing.Factura) core.Row {
	rol := "COMPRADOR"
	if f.Cabecera.Transaccion.Tipo != entity.TipoVenta {
		rol = "CLIENTE"
	}
	return row.New(12).Add(
		col.New(12).Add(
			text.New(rol, props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimario, Top: 1,
			}),
			text.New(f.Cabecera.Transaccion.Nombre, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
		),
	)
}

func tablaHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimario, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Lote", 3, align.Left),
		h("Producto", 3, align.Left),
		h("Cant.", 2, align.Right),
		h("P. Unit.", 2, align.Right),
		h("Subtotal", 2, align.Right),
	)
}

func tablaDetalleRows(detalles []*repository.DetalleVista) []core.Row {
	result := make([]core.Row, 0, len(detalles))
	for _, d := range detalles {
		producto := d.ProductoNombre
		if d.Detalle.Variedad != "" {
			producto += " (" + d.Detalle.Variedad + ")"
		}
		result = append(result, row.New(7).Add(
			col.New(3).Add(text.New(d.Detalle.Lote, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(3).Add(text.New(producto, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(
				fmt.Sprintf("%s %s", formatoCantidad(d.Detalle.Cantidad), d.Detalle.Unidad),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				formatoMonto(d.Detalle.PrecioUnitario),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				formatoMonto(d.Detalle.Subtotal),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

func totalesRow(f *billing.Factura) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	granLabel := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimario, Right: 2,
		})
	}
	granValue := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimario, Right: 1,
		})
	}
	return row.New(26).Add(
		col.New(4),
		col.New(4).Add(
			label("Subtotal:"),
			label("IVA:"),
			granLabel("TOTAL:"),
		),
		col.New(4).Add(
			value(formatoMonto(f.Subtotal)),
			value(formatoMonto(f.IVA)),
			granValue(formatoMonto(f.Total)),
		),
	)
}

func pieRow(f *billing.Factura) core.Row {
	return row.New(10).Add(
		col.New(12).Add(
			text.New("Verificación: "+f.UUID, props.Text{
				Size: 7, Color: colorGris, Top: 1,
			}),
			text.New("Cualquier persona con este código puede consultar la factura en línea.", props.Text{
				Size: 6.5, Color: colorGris, Top: 6,
			}),
		),
	)
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatoMonto "$ 1.234,50" con separadores en español.
func formatoMonto(d decimal.Decimal) string {
	return es.Sprintf("$ %.2f", d.InexactFloat64())
}

// formatoCantidad sin símbolo de moneda, dos decimales.
func formatoCantidad(d decimal.Decimal) string {
	return es.Sprintf("%.2f", d.InexactFloat64())
}
