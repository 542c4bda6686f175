package reports

import (
	"github.com/jhoicas/retail-analytics-api/internal/domain/finance"
	"github.com/jhoicas/retail-analytics-api/pkg/export"
)

// Encabezados con los nombres de las métricas del reporte.

var cogsDailyColumns = []export.Column[finance.DailyCOGS]{
	{Header: "date", Kind: export.Date, Value: func(d finance.DailyCOGS) any { return d.Date }},
	{Header: "cogs", Kind: export.Money, Value: func(d finance.DailyCOGS) any { return round(d.COGS) }},
	{Header: "revenue", Kind: export.Money, Value: func(d finance.DailyCOGS) any { return round(d.Revenue) }},
	{Header: "profit", Kind: export.Money, Value: func(d finance.DailyCOGS) any { return round(d.Profit) }},
}

var cogsProductColumns = []export.Column[finance.ProductCOGS]{
	{Header: "productId", Kind: export.Text, Value: func(p finance.ProductCOGS) any { return p.ProductID }},
	{Header: "name", Kind: export.Text, Value: func(p finance.ProductCOGS) any { return p.Name }},
	{Header: "category", Kind: export.Text, Value: func(p finance.ProductCOGS) any { return p.Category }},
	{Header: "quantity", Kind: export.Integer, Value: func(p finance.ProductCOGS) any { return p.Quantity }},
	{Header: "cost", Kind: export.Money, Value: func(p finance.ProductCOGS) any { return round(p.Cost) }},
	{Header: "revenue", Kind: export.Money, Value: func(p finance.ProductCOGS) any { return round(p.Revenue) }},
	{Header: "profit", Kind: export.Money, Value: func(p finance.ProductCOGS) any { return round(p.Profit) }},
	{Header: "margin", Kind: export.Percent, Value: func(p finance.ProductCOGS) any { return round(p.Margin) }},
}

var netProfitDailyColumns = []export.Column[finance.DailyNetProfit]{
	{Header: "date", Kind: export.Date, Value: func(d finance.DailyNetProfit) any { return d.Date }},
	{Header: "revenue", Kind: export.Money, Value: func(d finance.DailyNetProfit) any { return round(d.Revenue) }},
	{Header: "cogs", Kind: export.Money, Value: func(d finance.DailyNetProfit) any { return round(d.COGS) }},
	{Header: "grossProfit", Kind: export.Money, Value: func(d finance.DailyNetProfit) any { return round(d.GrossProfit) }},
	{Header: "operatingExpenses", Kind: export.Money, Value: func(d finance.DailyNetProfit) any { return round(d.OperatingExpenses) }},
	{Header: "netProfit", Kind: export.Money, Value: func(d finance.DailyNetProfit) any { return round(d.NetProfit) }},
}

var breakEvenColumns = []export.Column[finance.BreakEvenReport]{
	{Header: "fixedCosts", Kind: export.Money, Value: func(r finance.BreakEvenReport) any { return r.Inputs.FixedCosts }},
	{Header: "variableCostsPerUnit", Kind: export.Money, Value: func(r finance.BreakEvenReport) any { return round(r.Inputs.VariableCostsPerUnit) }},
	{Header: "revenuePerUnit", Kind: export.Money, Value: func(r finance.BreakEvenReport) any { return round(r.Inputs.RevenuePerUnit) }},
	{Header: "contributionMargin", Kind: export.Money, Value: func(r finance.BreakEvenReport) any { return round(r.Formulas.ContributionMargin) }},
	{Header: "contributionMarginRatio", Kind: export.Number, Value: func(r finance.BreakEvenReport) any { return r.Formulas.ContributionMarginRatio.Round(4) }},
	{Header: "breakEvenUnits", Kind: export.Number, Value: func(r finance.BreakEvenReport) any { return roundPtr(r.Formulas.BreakEvenUnits) }},
	{Header: "breakEvenSales", Kind: export.Money, Value: func(r finance.BreakEvenReport) any { return roundPtr(r.Formulas.BreakEvenSales) }},
	{Header: "totalInvestment", Kind: export.Money, Value: func(r finance.BreakEvenReport) any { return r.TotalInvestment }},
	{Header: "cumulativeProfit", Kind: export.Money, Value: func(r finance.BreakEvenReport) any { return r.CumulativeProfit }},
	{Header: "breakEvenPoint", Kind: export.Money, Value: func(r finance.BreakEvenReport) any { return roundPtr(r.BreakEvenPoint) }},
	{Header: "breakEvenPercentage", Kind: export.Percent, Value: func(r finance.BreakEvenReport) any { return round(r.BreakEvenPercentage) }},
	{Header: "averageDailyProfit", Kind: export.Money, Value: func(r finance.BreakEvenReport) any { return round(r.AverageDailyProfit) }},
	{Header: "daysToBreakEven", Kind: export.Integer, Value: func(r finance.BreakEvenReport) any { return r.DaysToBreakEven }},
	{Header: "projectedBreakEvenDate", Kind: export.Date, Value: func(r finance.BreakEvenReport) any { return r.ProjectedDate }},
}

var roiMonthlyColumns = []export.Column[finance.MonthlyROI]{
	{Header: "month", Kind: export.Text, Value: func(m finance.MonthlyROI) any { return m.Month }},
	{Header: "netProfit", Kind: export.Money, Value: func(m finance.MonthlyROI) any { return round(m.NetProfit) }},
	{Header: "investment", Kind: export.Money, Value: func(m finance.MonthlyROI) any { return round(m.Investment) }},
	{Header: "roi", Kind: export.Percent, Value: func(m finance.MonthlyROI) any { return round(m.ROI) }},
}

var stockValueColumns = []export.Column[finance.ProductStockValue]{
	{Header: "name", Kind: export.Text, Value: func(p finance.ProductStockValue) any { return p.Name }},
	{Header: "category", Kind: export.Text, Value: func(p finance.ProductStockValue) any { return p.Category }},
	{Header: "stock", Kind: export.Integer, Value: func(p finance.ProductStockValue) any { return p.Stock }},
	{Header: "price", Kind: export.Money, Value: func(p finance.ProductStockValue) any { return round(p.Price) }},
	{Header: "purchasePrice", Kind: export.Money, Value: func(p finance.ProductStockValue) any { return round(p.PurchasePrice) }},
	{Header: "retailValue", Kind: export.Money, Value: func(p finance.ProductStockValue) any { return round(p.RetailValue) }},
	{Header: "costValue", Kind: export.Money, Value: func(p finance.ProductStockValue) any { return round(p.CostValue) }},
	{Header: "potentialProfit", Kind: export.Money, Value: func(p finance.ProductStockValue) any { return round(p.PotentialProfit) }},
	{Header: "marginPotential", Kind: export.Percent, Value: func(p finance.ProductStockValue) any { return round(p.MarginPotential) }},
	{Header: "active", Kind: export.Text, Value: func(p finance.ProductStockValue) any { return p.HasSales }},
}
