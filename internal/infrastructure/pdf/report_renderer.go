// Package pdf genera la versión imprimible de los reportes financieros.
//
// Layout de la página A4 (horizontal si la tabla tiene muchas columnas):
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título del reporte     │  Período + Moneda          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: encabezado sobre fondo primario, filas alternadas    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: fecha de generación                                 │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/retail-analytics-api/pkg/export"
	"github.com/jhoicas/retail-analytics-api/pkg/money"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
	colorStripe  = &props.Color{Red: 240, Green: 244, Blue: 248}
)

const notAvailable = "N/A"

// ── Renderer ──────────────────────────────────────────────────────────────────

// ReportRenderer serializa una export.Table como PDF usando Maroto v2.
type ReportRenderer struct {
	locale string
	now    func() time.Time
}

// NewReportRenderer construye el renderer; locale decide separadores y símbolo de moneda.
func NewReportRenderer(locale string) *ReportRenderer {
	if locale == "" {
		locale = "es-CO"
	}
	return &ReportRenderer{locale: locale, now: time.Now}
}

func (*ReportRenderer) Format() string      { return "pdf" }
func (*ReportRenderer) ContentType() string { return "application/pdf" }

// Render genera el documento y devuelve sus bytes.
func (r *ReportRenderer) Render(t export.Table) ([]byte, error) {
	f, err := money.NewFormatter(t.Currency, r.locale)
	if err != nil {
		return nil, fmt.Errorf("pdf: %w", err)
	}
	weights, grid := columnWeights(t.Headers)

	builder := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithMaxGridSize(grid).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle(t.Title, true)
	if len(t.Headers) > 6 {
		builder = builder.WithOrientation(orientation.Horizontal)
	}
	m := maroto.New(builder.Build())

	if err := m.RegisterHeader(titleRow(t, grid), line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.5})); err != nil {
		return nil, fmt.Errorf("pdf: registrar encabezado: %w", err)
	}

	m.AddRows(tableHeaderRow(t.Headers, weights))
	for i, cells := range t.Rows {
		m.AddRows(tableDataRow(t.Headers, weights, cells, f, i%2 == 1))
	}
	if len(t.Rows) == 0 {
		m.AddRows(row.New(8).Add(col.New(grid).Add(
			text.New("Sin datos para el período", props.Text{Size: 8, Align: align.Center, Top: 2, Color: colorGray}),
		)))
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(row.New(5).Add(col.New(grid).Add(
		text.New("Generado el "+r.now().Format("2006-01-02 15:04"), props.Text{Size: 6.5, Color: colorGray}),
	)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// titleRow: título (izq) y período + moneda (der). Se repite en cada página.
func titleRow(t export.Table, grid int) core.Row {
	left := grid * 2 / 3
	return row.New(14).Add(
		col.New(left).Add(
			text.New(t.Title, props.Text{Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1}),
		),
		col.New(grid-left).Add(
			text.New(t.Subtitle, props.Text{Size: 8, Align: align.Right, Top: 2, Color: colorGray}),
			text.New("Moneda: "+t.Currency, props.Text{Size: 8, Align: align.Right, Top: 7, Color: colorGray}),
		),
	)
}

func tableHeaderRow(headers []export.Header, weights []int) core.Row {
	cols := make([]core.Col, len(headers))
	for i, h := range headers {
		cols[i] = col.New(weights[i]).Add(text.New(h.Title, props.Text{
			Style: fontstyle.Bold, Size: 7.5, Align: alignFor(h.Kind),
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(cols...).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

func tableDataRow(headers []export.Header, weights []int, cells []any, f *money.Formatter, striped bool) core.Row {
	cols := make([]core.Col, len(headers))
	for i, h := range headers {
		var v any
		if i < len(cells) {
			v = cells[i]
		}
		cols[i] = col.New(weights[i]).Add(text.New(formatCell(v, h.Kind, f), props.Text{
			Size: 7.5, Align: alignFor(h.Kind), Top: 1.5, Left: 1, Right: 1,
		}))
	}
	r := row.New(6).Add(cols...)
	if striped {
		r = r.WithStyle(&props.Cell{BackgroundColor: colorStripe})
	}
	return r
}

// ── helpers ───────────────────────────────────────────────────────────────────

// columnWeights texto ocupa 3 unidades de la grilla y el resto 2.
func columnWeights(headers []export.Header) ([]int, int) {
	weights := make([]int, len(headers))
	total := 0
	for i, h := range headers {
		weights[i] = 2
		if h.Kind == export.Text {
			weights[i] = 3
		}
		total += weights[i]
	}
	if total == 0 {
		total = 12
	}
	return weights, total
}

func alignFor(k export.Kind) align.Type {
	switch k {
	case export.Text:
		return align.Left
	case export.Date:
		return align.Center
	default:
		return align.Right
	}
}

// formatCell montos con símbolo de la moneda; indefinidos como N/A.
func formatCell(v any, k export.Kind, f *money.Formatter) string {
	var d decimal.Decimal
	switch x := v.(type) {
	case nil:
		return notAvailable
	case *decimal.Decimal:
		if x == nil {
			return notAvailable
		}
		d = *x
	case decimal.Decimal:
		d = x
	case bool:
		if x {
			return "Sí"
		}
		return "No"
	default:
		if s := export.Plain(v); s != "" {
			return s
		}
		return notAvailable
	}

	switch k {
	case export.Money:
		return f.Format(d)
	case export.Percent:
		return f.FormatNumber(d, 2) + "%"
	case export.Integer:
		return f.FormatNumber(d, 0)
	default:
		return f.FormatNumber(d, 2)
	}
}
