package reports

import "github.com/jhoicas/retail-analytics-api/pkg/export"

// TableRenderer serializa una tabla de reporte en un formato descargable.
// Implementaciones: export.CSVRenderer, xlsx.ReportRenderer, pdf.ReportRenderer.
type TableRenderer interface {
	Format() string      // "csv", "xlsx", "pdf"
	ContentType() string // MIME del archivo generado
	Render(t export.Table) ([]byte, error)
}

// ExportFile archivo generado por Export.
type ExportFile struct {
	Filename    string
	ContentType string
	Data        []byte
}
