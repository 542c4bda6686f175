package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
)

// ToCSV serializa filas tipadas con una fila de encabezado fija.
func ToCSV[T any](rows []T, columns []Column[T]) ([]byte, error) {
	return NewTable("", rows, columns).CSV()
}

// CSV serializa la tabla separada por comas, encabezado primero.
func (t Table) CSV() ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := make([]string, len(t.Headers))
	for i, h := range t.Headers {
		header[i] = h.Title
	}
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("csv: encabezado: %w", err)
	}
	record := make([]string, len(t.Headers))
	for n, row := range t.Rows {
		for i := range record {
			record[i] = ""
			if i < len(row) {
				record[i] = Plain(row[i])
			}
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("csv: fila %d: %w", n+1, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("csv: %w", err)
	}
	return buf.Bytes(), nil
}

// CSVRenderer adapta Table.CSV a la interfaz de renderers de reportes.
type CSVRenderer struct{}

func (CSVRenderer) Format() string      { return "csv" }
func (CSVRenderer) ContentType() string { return "text/csv; charset=utf-8" }

func (CSVRenderer) Render(t Table) ([]byte, error) { return t.CSV() }
