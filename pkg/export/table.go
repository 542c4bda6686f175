// Package export construye tablas genéricas a partir de filas tipadas y las
// serializa. Una misma especificación de columnas alimenta CSV, XLSX y PDF.
package export

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// Kind tipo de dato de una columna; los renderers lo usan para el formato de celda.
type Kind int

const (
	Text Kind = iota
	Integer
	Number
	Money
	Percent
	Date
)

// Column describe cómo extraer una celda de una fila de tipo T.
type Column[T any] struct {
	Header string
	Kind   Kind
	Value  func(row T) any
}

// Header metadatos de columna en una tabla ya construida.
type Header struct {
	Title string
	Kind  Kind
}

// Table tabla lista para serializar. Las celdas conservan su tipo
// (string, int, decimal.Decimal, *decimal.Decimal, time.Time, bool).
type Table struct {
	Title    string
	Subtitle string
	Currency string // ISO 4217; lo usan los formatos que muestran moneda
	Headers  []Header
	Rows     [][]any
}

// NewTable aplica las columnas a cada fila.
func NewTable[T any](title string, rows []T, columns []Column[T]) Table {
	t := Table{
		Title:   title,
		Headers: make([]Header, len(columns)),
		Rows:    make([][]any, 0, len(rows)),
	}
	for i, c := range columns {
		t.Headers[i] = Header{Title: c.Header, Kind: c.Kind}
	}
	for _, r := range rows {
		cells := make([]any, len(columns))
		for i, c := range columns {
			cells[i] = c.Value(r)
		}
		t.Rows = append(t.Rows, cells)
	}
	return t
}

// Plain representación textual sin formato de moneda: números con punto decimal,
// fechas YYYY-MM-DD y valores indefinidos como celda vacía.
func Plain(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case decimal.Decimal:
		return x.String()
	case *decimal.Decimal:
		if x == nil {
			return ""
		}
		return x.String()
	case time.Time:
		return x.Format("2006-01-02")
	case *time.Time:
		if x == nil {
			return ""
		}
		return x.Format("2006-01-02")
	case bool:
		return strconv.FormatBool(x)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case *int:
		if x == nil {
			return ""
		}
		return strconv.Itoa(*x)
	default:
		return ""
	}
}
