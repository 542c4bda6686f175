// Package xlsx exporta tablas de reportes como hojas de cálculo con excelize.
package xlsx

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/retail-analytics-api/pkg/export"
)

// SheetName nombre de la hoja con los datos.
const SheetName = "Reporte"

const (
	fmtMoney   = "#,##0.00"
	fmtNumber  = "#,##0.00"
	fmtPercent = `0.00"%"`
	fmtInteger = "#,##0"
)

// ReportRenderer serializa una export.Table como libro XLSX de una hoja.
type ReportRenderer struct{}

func NewReportRenderer() *ReportRenderer { return &ReportRenderer{} }

func (*ReportRenderer) Format() string { return "xlsx" }
func (*ReportRenderer) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

// Render escribe encabezado en la fila 1 y los datos desde la fila 2.
// Los montos quedan como números (no texto) para que la hoja pueda sumarlos.
func (r *ReportRenderer) Render(t export.Table) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, fmt.Errorf("xlsx: hoja: %w", err)
	}
	if err := f.SetDocProps(&excelize.DocProperties{
		Title:       t.Title,
		Description: t.Subtitle,
		Category:    t.Currency,
		Creator:     "retail-analytics-api",
	}); err != nil {
		return nil, fmt.Errorf("xlsx: propiedades: %w", err)
	}

	styles, err := newStyles(f)
	if err != nil {
		return nil, err
	}

	for i, h := range t.Headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(SheetName, cell, h.Title); err != nil {
			return nil, fmt.Errorf("xlsx: encabezado %s: %w", cell, err)
		}
	}
	if len(t.Headers) > 0 {
		last, _ := excelize.CoordinatesToCellName(len(t.Headers), 1)
		if err := f.SetCellStyle(SheetName, "A1", last, styles.header); err != nil {
			return nil, fmt.Errorf("xlsx: estilo encabezado: %w", err)
		}
	}

	for n, cells := range t.Rows {
		for i, h := range t.Headers {
			if i >= len(cells) {
				break
			}
			cell, _ := excelize.CoordinatesToCellName(i+1, n+2)
			v, ok := cellValue(cells[i])
			if !ok {
				continue
			}
			if err := f.SetCellValue(SheetName, cell, v); err != nil {
				return nil, fmt.Errorf("xlsx: celda %s: %w", cell, err)
			}
			if style, ok := styles.byKind[h.Kind]; ok {
				if err := f.SetCellStyle(SheetName, cell, cell, style); err != nil {
					return nil, fmt.Errorf("xlsx: estilo %s: %w", cell, err)
				}
			}
		}
	}

	for i, h := range t.Headers {
		colName, _ := excelize.ColumnNumberToName(i + 1)
		width := 14.0
		if h.Kind == export.Text {
			width = 28
		}
		if err := f.SetColWidth(SheetName, colName, colName, width); err != nil {
			return nil, fmt.Errorf("xlsx: ancho %s: %w", colName, err)
		}
	}

	if err := f.SetPanes(SheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return nil, fmt.Errorf("xlsx: congelar encabezado: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx: escribir: %w", err)
	}
	return buf.Bytes(), nil
}

type sheetStyles struct {
	header int
	byKind map[export.Kind]int
}

func newStyles(f *excelize.File) (sheetStyles, error) {
	s := sheetStyles{byKind: make(map[export.Kind]int)}
	var err error
	s.header, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"00467F"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return s, fmt.Errorf("xlsx: estilo encabezado: %w", err)
	}
	for kind, numFmt := range map[export.Kind]string{
		export.Money:   fmtMoney,
		export.Number:  fmtNumber,
		export.Percent: fmtPercent,
		export.Integer: fmtInteger,
	} {
		nf := numFmt
		id, err := f.NewStyle(&excelize.Style{CustomNumFmt: &nf})
		if err != nil {
			return s, fmt.Errorf("xlsx: formato numérico: %w", err)
		}
		s.byKind[kind] = id
	}
	return s, nil
}

// cellValue convierte una celda tipada; ok=false deja la celda vacía (valor indefinido).
func cellValue(v any) (any, bool) {
	switch x := v.(type) {
	case nil:
		return nil, false
	case decimal.Decimal:
		return x.InexactFloat64(), true
	case *decimal.Decimal:
		if x == nil {
			return nil, false
		}
		return x.InexactFloat64(), true
	case *int:
		if x == nil {
			return nil, false
		}
		return *x, true
	case time.Time, *time.Time:
		s := export.Plain(x)
		return s, s != ""
	case int, int64, bool, string:
		return x, true
	default:
		s := export.Plain(v)
		return s, s != ""
	}
}
