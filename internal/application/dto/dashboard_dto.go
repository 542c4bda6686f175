package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO respuesta de GET /api/reports/dashboard.
// Contiene los KPIs principales del día y del mes en curso, más el Top-5 productos del mes.
type DashboardSummaryDTO struct {
	Currency string `json:"currency"`

	// Métricas del día actual (00:00 – 23:59)
	TodaySales       decimal.Decimal `json:"today_sales"`        // ingresos de hoy
	TodayGrossProfit decimal.Decimal `json:"today_gross_profit"` // revenue - COGS de hoy
	TodayMargin      decimal.Decimal `json:"today_margin"`       // margen bruto % de hoy

	// Métricas del mes en curso (día 1 – hoy)
	MonthlySales       decimal.Decimal `json:"monthly_sales"`
	MonthlyGrossProfit decimal.Decimal `json:"monthly_gross_profit"`
	MonthlyMargin      decimal.Decimal `json:"monthly_margin"`
	MonthlyNetProfit   decimal.Decimal `json:"monthly_net_profit"` // descuenta gastos operativos del mes

	// Top 5 productos por ingreso del mes (ordenados de mayor a menor revenue)
	TopProducts []TopProductDTO `json:"top_products"`

	// Metadatos del período
	DateLabel string `json:"date_label"` // ej: "Febrero 2026"
}

// TopProductDTO resumen de un producto para el widget del dashboard.
// Derivado de ProductRankDTO pero más ligero (sin acumulados Pareto).
type TopProductDTO struct {
	ProductID        string          `json:"product_id"`
	ProductName      string          `json:"product_name"`
	QuantitySold     int             `json:"quantity_sold"`
	TotalRevenue     decimal.Decimal `json:"total_revenue"`
	MarginPercentage decimal.Decimal `json:"margin_percentage"` // (revenue - cogs) / revenue * 100
}
