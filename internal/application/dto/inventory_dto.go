package dto

import "github.com/shopspring/decimal"

// LowStockItemDTO sugerencia de reposición para un producto en o bajo su stock mínimo.
type LowStockItemDTO struct {
	ProductID          string          `json:"product_id"`
	ProductName        string          `json:"product_name"`
	Category           string          `json:"category"`
	CurrentStock       int             `json:"current_stock"`
	MinStock           int             `json:"min_stock"`
	IdealStock         int             `json:"ideal_stock"`          // ceil(MinStock * 1.5)
	SuggestedOrderQty  int             `json:"suggested_order_qty"`  // IdealStock - CurrentStock
	UnitCost           decimal.Decimal `json:"unit_cost"`            // precio de compra
	EstimatedOrderCost decimal.Decimal `json:"estimated_order_cost"` // SuggestedOrderQty * UnitCost
	GrossMarginPct     decimal.Decimal `json:"gross_margin_pct"`     // % margen histórico o estimado
	UnitsSold          int             `json:"units_sold"`           // volumen en el período de referencia
	Priority           int             `json:"priority"`             // 1 = más urgente
}

// LowStockReportDTO respuesta de GET /api/reports/low-stock.
type LowStockReportDTO struct {
	Period   PeriodDTO         `json:"period"` // período usado para priorizar por ventas
	Currency string            `json:"currency"`
	Items    []LowStockItemDTO `json:"items"`
}
