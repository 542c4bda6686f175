package pdf

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/retail-analytics-api/pkg/export"
	"github.com/jhoicas/retail-analytics-api/pkg/money"
)

func sampleTable() export.Table {
	roi := decimal.NewFromFloat(36.3)
	return export.Table{
		Title:    "ROI mensual",
		Subtitle: "2024-01-01 a 2024-03-31",
		Currency: "COP",
		Headers: []export.Header{
			{Title: "month", Kind: export.Text},
			{Title: "netProfit", Kind: export.Money},
			{Title: "roi", Kind: export.Percent},
		},
		Rows: [][]any{
			{"2024-01", decimal.NewFromInt(363), &roi},
			{"2024-02", decimal.NewFromInt(-20), (*decimal.Decimal)(nil)},
		},
	}
}

func TestReportRenderer_GeneraPDF(t *testing.T) {
	r := NewReportRenderer("es-CO")

	data, err := r.Render(sampleTable())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")), "el archivo debe empezar con la firma PDF")
	assert.Equal(t, "pdf", r.Format())
	assert.Equal(t, "application/pdf", r.ContentType())
}

func TestReportRenderer_TablaVaciaYHorizontal(t *testing.T) {
	headers := make([]export.Header, 8)
	for i := range headers {
		headers[i] = export.Header{Title: "c", Kind: export.Number}
	}
	data, err := NewReportRenderer("").Render(export.Table{Title: "Vacío", Currency: "USD", Headers: headers})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestReportRenderer_MonedaInvalida(t *testing.T) {
	tbl := sampleTable()
	tbl.Currency = "XXXX"
	_, err := NewReportRenderer("es-CO").Render(tbl)
	assert.Error(t, err)
}

func TestFormatCell(t *testing.T) {
	f, err := money.NewFormatter("USD", "en-US")
	require.NoError(t, err)

	assert.Equal(t, notAvailable, formatCell(nil, export.Money, f))
	assert.Equal(t, notAvailable, formatCell((*decimal.Decimal)(nil), export.Percent, f))
	assert.Equal(t, "12.50%", formatCell(decimal.NewFromFloat(12.5), export.Percent, f))
	assert.Contains(t, formatCell(decimal.NewFromInt(1500), export.Money, f), "1,500.00")
	assert.Equal(t, "Sí", formatCell(true, export.Text, f))
	assert.Equal(t, "7", formatCell(7, export.Integer, f))
}

func TestColumnWeights(t *testing.T) {
	w, total := columnWeights([]export.Header{{Kind: export.Text}, {Kind: export.Money}, {Kind: export.Percent}})
	assert.Equal(t, []int{3, 2, 2}, w)
	assert.Equal(t, 7, total)
}
