package dto

import "github.com/shopspring/decimal"

// ── Query parameters ──────────────────────────────────────────────────────────

// BreakEvenRequest parámetros para GET /api/reports/break-even.
type BreakEvenRequest struct {
	StartDate string `query:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate   string `query:"end_date" validate:"omitempty,datetime=2006-01-02"`
	All       bool   `query:"all"` // true = todo el histórico, ignora las fechas
}

// ScenarioDTO escenario what-if. Un multiplicador omitido vale 1.
type ScenarioDTO struct {
	Name                    string           `json:"name" validate:"required,max=60"`
	FixedCostsMultiplier    *decimal.Decimal `json:"fixed_costs_multiplier,omitempty"`
	VariableCostsMultiplier *decimal.Decimal `json:"variable_costs_multiplier,omitempty"`
	RevenueMultiplier       *decimal.Decimal `json:"revenue_multiplier,omitempty"`
}

// ScenariosRequest cuerpo de POST /api/reports/break-even/scenarios.
// Sin escenarios se evalúa el conjunto estándar (base, optimista, pesimista).
type ScenariosRequest struct {
	StartDate string        `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate   string        `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
	All       bool          `json:"all"`
	Scenarios []ScenarioDTO `json:"scenarios" validate:"omitempty,max=20,dive"`
}

// ExportRequest parámetros de GET /api/reports/{report}/export.
type ExportRequest struct {
	StartDate string `query:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate   string `query:"end_date" validate:"omitempty,datetime=2006-01-02"`
	Format    string `query:"format" validate:"omitempty,oneof=csv xlsx pdf"`
	All       bool   `query:"all"` // solo break-even: todo el histórico
}

// ── COGS ──────────────────────────────────────────────────────────────────────

// ProductCOGSDTO costo de ventas de un producto en el período.
type ProductCOGSDTO struct {
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Quantity int             `json:"quantity"`
	Cost     decimal.Decimal `json:"cost"`
	Revenue  decimal.Decimal `json:"revenue"`
	Profit   decimal.Decimal `json:"profit"`
	Margin   decimal.Decimal `json:"margin"` // Profit / Revenue * 100
}

// DailyCOGSDTO bucket diario del reporte de COGS.
type DailyCOGSDTO struct {
	Date    string          `json:"date"`
	COGS    decimal.Decimal `json:"cogs"`
	Revenue decimal.Decimal `json:"revenue"`
	Profit  decimal.Decimal `json:"profit"`
}

// COGSReportDTO respuesta de GET /api/reports/cogs.
type COGSReportDTO struct {
	Period         PeriodDTO                  `json:"period"`
	Currency       string                     `json:"currency"`
	TotalCOGS      decimal.Decimal            `json:"total_cogs"`
	TotalRevenue   decimal.Decimal            `json:"total_revenue"`
	GrossProfit    decimal.Decimal            `json:"gross_profit"`
	GrossMargin    decimal.Decimal            `json:"gross_margin"`
	ItemsSold      int                        `json:"items_sold"`
	SalesCount     int                        `json:"sales_count"`
	COGSByProduct  map[string]ProductCOGSDTO  `json:"cogs_by_product"` // clave: product_id
	COGSByCategory map[string]decimal.Decimal `json:"cogs_by_category"`
	DailyData      []DailyCOGSDTO             `json:"daily_data"`
}

// ── Utilidad neta ─────────────────────────────────────────────────────────────

// ExpenseDTO gasto operativo del período.
type ExpenseDTO struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	PaymentDate string          `json:"payment_date"`
}

// DailyNetProfitDTO bucket diario del reporte de utilidad neta.
type DailyNetProfitDTO struct {
	Date              string          `json:"date"`
	Revenue           decimal.Decimal `json:"revenue"`
	COGS              decimal.Decimal `json:"cogs"`
	GrossProfit       decimal.Decimal `json:"gross_profit"`
	OperatingExpenses decimal.Decimal `json:"operating_expenses"`
	NetProfit         decimal.Decimal `json:"net_profit"`
}

// NetProfitReportDTO respuesta de GET /api/reports/net-profit.
type NetProfitReportDTO struct {
	Period                      PeriodDTO                  `json:"period"`
	Currency                    string                     `json:"currency"`
	TotalRevenue                decimal.Decimal            `json:"total_revenue"`
	TotalCOGS                   decimal.Decimal            `json:"total_cogs"`
	GrossProfit                 decimal.Decimal            `json:"gross_profit"`
	GrossMargin                 decimal.Decimal            `json:"gross_margin"`
	TotalOperatingExpenses      decimal.Decimal            `json:"total_operating_expenses"`
	OperatingExpenses           []ExpenseDTO               `json:"operating_expenses"`
	OperatingExpensesByCategory map[string]decimal.Decimal `json:"operating_expenses_by_category"`
	NetProfit                   decimal.Decimal            `json:"net_profit"`
	NetMargin                   decimal.Decimal            `json:"net_margin"`
	ItemsSold                   int                        `json:"items_sold"`
	SalesCount                  int                        `json:"sales_count"`
	DailyData                   []DailyNetProfitDTO        `json:"daily_data"`
}

// ── Punto de equilibrio ───────────────────────────────────────────────────────

// BreakEvenFormulasDTO variables y fórmulas costo-volumen-utilidad.
// Los campos puntero son null cuando el valor no está definido.
type BreakEvenFormulasDTO struct {
	FixedCosts              decimal.Decimal  `json:"fixed_costs"`
	VariableCostsPerUnit    decimal.Decimal  `json:"variable_costs_per_unit"`
	RevenuePerUnit          decimal.Decimal  `json:"revenue_per_unit"`
	ContributionMargin      decimal.Decimal  `json:"contribution_margin"`
	ContributionMarginRatio decimal.Decimal  `json:"contribution_margin_ratio"`
	BreakEvenUnits          *decimal.Decimal `json:"break_even_units"`
	BreakEvenSales          *decimal.Decimal `json:"break_even_sales"`
}

// BreakEvenReportDTO respuesta de GET /api/reports/break-even.
type BreakEvenReportDTO struct {
	Period                 PeriodDTO        `json:"period"`
	Currency               string           `json:"currency"`
	TotalInvestment        decimal.Decimal  `json:"total_investment"`
	CumulativeProfit       decimal.Decimal  `json:"cumulative_profit"`
	BreakEvenPoint         *decimal.Decimal `json:"break_even_point"`
	BreakEvenPercentage    decimal.Decimal  `json:"break_even_percentage"`
	AverageDailyProfit     decimal.Decimal  `json:"average_daily_profit"`
	DaysToBreakEven        *int             `json:"days_to_break_even"`
	ProjectedBreakEvenDate *string          `json:"projected_break_even_date"`
	BreakEvenFormulasDTO
}

// ScenarioResultDTO fórmulas recalculadas para un escenario.
type ScenarioResultDTO struct {
	Name                    string          `json:"name"`
	FixedCostsMultiplier    decimal.Decimal `json:"fixed_costs_multiplier"`
	VariableCostsMultiplier decimal.Decimal `json:"variable_costs_multiplier"`
	RevenueMultiplier       decimal.Decimal `json:"revenue_multiplier"`
	BreakEvenFormulasDTO
}

// ScenariosReportDTO respuesta de POST /api/reports/break-even/scenarios.
type ScenariosReportDTO struct {
	Period    PeriodDTO            `json:"period"`
	Currency  string               `json:"currency"`
	Base      BreakEvenFormulasDTO `json:"base"`
	Scenarios []ScenarioResultDTO  `json:"scenarios"`
}

// ── ROI ───────────────────────────────────────────────────────────────────────

// MonthlyROIDTO bucket mensual; Investment es acumulado, no la inversión del mes.
type MonthlyROIDTO struct {
	Month      string          `json:"month"`
	NetProfit  decimal.Decimal `json:"net_profit"`
	Investment decimal.Decimal `json:"investment"`
	ROI        decimal.Decimal `json:"roi"`
}

// InvestmentDTO inversión considerada en el ROI.
type InvestmentDTO struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date"`
}

// ROIReportDTO respuesta de GET /api/reports/roi.
type ROIReportDTO struct {
	Period                PeriodDTO                  `json:"period"`
	Currency              string                     `json:"currency"`
	TotalInvestment       decimal.Decimal            `json:"total_investment"`
	NetProfit             decimal.Decimal            `json:"net_profit"`
	ROI                   decimal.Decimal            `json:"roi"`
	AnnualizedROI         *decimal.Decimal           `json:"annualized_roi"`
	PaybackPeriod         *decimal.Decimal           `json:"payback_period"`   // meses
	BreakEvenPoint        *string                    `json:"break_even_point"` // YYYY-MM
	ProfitabilityIndex    *decimal.Decimal           `json:"profitability_index"`
	AverageMonthlyProfit  decimal.Decimal            `json:"average_monthly_profit"`
	MonthlyData           []MonthlyROIDTO            `json:"monthly_data"`
	InvestmentsByCategory map[string]decimal.Decimal `json:"investments_by_category"`
	Investments           []InvestmentDTO            `json:"investments"`
}

// ── Valor de inventario ───────────────────────────────────────────────────────

// ProductStockValueDTO valorización de un producto.
type ProductStockValueDTO struct {
	ProductID       string          `json:"product_id"`
	Name            string          `json:"name"`
	Category        string          `json:"category"`
	Stock           int             `json:"stock"`
	Price           decimal.Decimal `json:"price"`
	PurchasePrice   decimal.Decimal `json:"purchase_price"`
	RetailValue     decimal.Decimal `json:"retail_value"`
	CostValue       decimal.Decimal `json:"cost_value"`
	PotentialProfit decimal.Decimal `json:"potential_profit"`
	MarginPotential decimal.Decimal `json:"margin_potential"`
	HasSales        bool            `json:"has_sales"`
}

// CategoryStockValueDTO rollup por categoría con el corte activo/inactivo.
type CategoryStockValueDTO struct {
	Category           string          `json:"category"`
	ProductCount       int             `json:"product_count"`
	ActiveCount        int             `json:"active_count"`
	InactiveCount      int             `json:"inactive_count"`
	TotalValue         decimal.Decimal `json:"total_value"`
	ActiveTotalValue   decimal.Decimal `json:"active_total_value"`
	InactiveTotalValue decimal.Decimal `json:"inactive_total_value"`
	TotalCostValue     decimal.Decimal `json:"total_cost_value"`
}

// StockValueReportDTO respuesta de GET /api/reports/stock-value.
type StockValueReportDTO struct {
	Currency               string                  `json:"currency"`
	TotalRetailValue       decimal.Decimal         `json:"total_retail_value"`
	TotalCostValue         decimal.Decimal         `json:"total_cost_value"`
	TotalPotentialProfit   decimal.Decimal         `json:"total_potential_profit"`
	MarginPotential        decimal.Decimal         `json:"margin_potential"`
	ActiveInventoryValue   decimal.Decimal         `json:"active_inventory_value"`
	InactiveInventoryValue decimal.Decimal         `json:"inactive_inventory_value"`
	ActiveCostValue        decimal.Decimal         `json:"active_cost_value"`
	InactiveCostValue      decimal.Decimal         `json:"inactive_cost_value"`
	ActiveProducts         int                     `json:"active_products"`
	InactiveProducts       int                     `json:"inactive_products"`
	Categories             []CategoryStockValueDTO `json:"categories"`
	Products               []ProductStockValueDTO  `json:"products"`
}
