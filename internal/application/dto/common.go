package dto

// RangeRequest parámetros de rango comunes a todos los reportes.
// Ambas fechas son inclusivas; por defecto primer día del mes actual → hoy.
type RangeRequest struct {
	StartDate string `query:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate   string `query:"end_date" validate:"omitempty,datetime=2006-01-02"`
}

// PeriodDTO rango de fechas del reporte.
type PeriodDTO struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Days      int    `json:"days"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
