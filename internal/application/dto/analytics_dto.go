package dto

import "github.com/shopspring/decimal"

// ── Query parameters ──────────────────────────────────────────────────────────

// RankingRequest parámetros para GET /api/reports/products/ranking.
type RankingRequest struct {
	StartDate string `query:"start_date" validate:"omitempty,datetime=2006-01-02"` // por defecto primer día del mes actual
	EndDate   string `query:"end_date" validate:"omitempty,datetime=2006-01-02"`   // por defecto hoy
	TopN      int    `query:"top_n" validate:"omitempty,min=1,max=200"`            // default 20
}

// ── Por producto ──────────────────────────────────────────────────────────────

// ProductRankDTO margen y rentabilidad por producto.
type ProductRankDTO struct {
	Rank             int             `json:"rank"` // posición (1 = más rentable)
	ProductID        string          `json:"product_id"`
	ProductName      string          `json:"product_name"`
	Category         string          `json:"category"`
	UnitsSold        int             `json:"units_sold"`
	GrossRevenue     decimal.Decimal `json:"gross_revenue"`
	TotalCOGS        decimal.Decimal `json:"total_cogs"`
	GrossProfit      decimal.Decimal `json:"gross_profit"`           // GrossRevenue - TotalCOGS
	MarginPct        decimal.Decimal `json:"margin_pct"`             // GrossProfit / GrossRevenue * 100
	RevenuePct       decimal.Decimal `json:"revenue_pct"`            // participación % en ingresos totales
	CumulativeRevPct decimal.Decimal `json:"cumulative_revenue_pct"` // acumulado descendente
	IsTopPareto      bool            `json:"is_top_pareto"`          // true si forma parte del top 80% de ingresos
}

// ProductRankingDTO respuesta de GET /api/reports/products/ranking.
type ProductRankingDTO struct {
	Period         PeriodDTO        `json:"period"`
	Currency       string           `json:"currency"`
	Ranking        []ProductRankDTO `json:"ranking"`         // top N por utilidad
	ParetoProducts []ProductRankDTO `json:"pareto_products"` // los que generan ~80% de los ingresos
}
