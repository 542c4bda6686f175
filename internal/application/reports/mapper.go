package reports

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/retail-analytics-api/internal/application/dto"
	"github.com/jhoicas/retail-analytics-api/internal/domain/finance"
)

// Los montos aditivos (totales, buckets, líneas) salen exactos para que las sumas
// de la respuesta cuadren; solo los cocientes (márgenes, promedios, ROI) se
// redondean a 2 decimales. El redondeo de montos queda en el formato final.

func round(d decimal.Decimal) decimal.Decimal { return d.Round(2) }

func roundPtr(d *decimal.Decimal) *decimal.Decimal {
	if d == nil {
		return nil
	}
	v := d.Round(2)
	return &v
}


func toPeriodDTO(r finance.DateRange) dto.PeriodDTO {
	return dto.PeriodDTO{
		StartDate: r.From.Format(finance.DayLayout),
		EndDate:   r.To.Format(finance.DayLayout),
		Days:      r.Days(),
	}
}

func toCOGSDTO(rep finance.COGSReport, currency string) *dto.COGSReportDTO {
	out := &dto.COGSReportDTO{
		Period:         toPeriodDTO(rep.Range),
		Currency:       currency,
		TotalCOGS:      rep.TotalCOGS,
		TotalRevenue:   rep.TotalRevenue,
		GrossProfit:    rep.GrossProfit,
		GrossMargin:    round(rep.GrossMargin),
		ItemsSold:      rep.ItemsSold,
		SalesCount:     rep.SalesCount,
		COGSByProduct:  make(map[string]dto.ProductCOGSDTO, len(rep.ByProduct)),
		COGSByCategory: rep.ByCategory,
		DailyData:      make([]dto.DailyCOGSDTO, 0, len(rep.Daily)),
	}
	for id, p := range rep.ByProduct {
		out.COGSByProduct[id] = dto.ProductCOGSDTO{
			Name:     p.Name,
			Category: p.Category,
			Quantity: p.Quantity,
			Cost:     p.Cost,
			Revenue:  p.Revenue,
			Profit:   p.Profit,
			Margin:   round(p.Margin),
		}
	}
	for _, d := range rep.Daily {
		out.DailyData = append(out.DailyData, dto.DailyCOGSDTO{
			Date:    d.Date,
			COGS:    d.COGS,
			Revenue: d.Revenue,
			Profit:  d.Profit,
		})
	}
	return out
}

func toNetProfitDTO(rep finance.NetProfitReport, currency string) *dto.NetProfitReportDTO {
	out := &dto.NetProfitReportDTO{
		Period:                      toPeriodDTO(rep.Range),
		Currency:                    currency,
		TotalRevenue:                rep.TotalRevenue,
		TotalCOGS:                   rep.TotalCOGS,
		GrossProfit:                 rep.GrossProfit,
		GrossMargin:                 round(rep.GrossMargin),
		TotalOperatingExpenses:      rep.TotalOperatingExpenses,
		OperatingExpenses:           make([]dto.ExpenseDTO, 0, len(rep.OperatingExpenses)),
		OperatingExpensesByCategory: rep.OperatingExpensesByCategory,
		NetProfit:                   rep.NetProfit,
		NetMargin:                   round(rep.NetMargin),
		ItemsSold:                   rep.ItemsSold,
		SalesCount:                  rep.SalesCount,
		DailyData:                   make([]dto.DailyNetProfitDTO, 0, len(rep.Daily)),
	}
	for _, e := range rep.OperatingExpenses {
		out.OperatingExpenses = append(out.OperatingExpenses, dto.ExpenseDTO{
			ID:          e.ID,
			Description: e.Description,
			Category:    e.Category,
			Amount:      e.Amount,
			PaymentDate: rep.Range.DayKey(e.PaymentDate),
		})
	}
	for _, d := range rep.Daily {
		out.DailyData = append(out.DailyData, dto.DailyNetProfitDTO{
			Date:              d.Date,
			Revenue:           d.Revenue,
			COGS:              d.COGS,
			GrossProfit:       d.GrossProfit,
			OperatingExpenses: d.OperatingExpenses,
			NetProfit:         d.NetProfit,
		})
	}
	return out
}

func toFormulasDTO(in finance.BreakEvenInputs, f finance.BreakEvenFormulas) dto.BreakEvenFormulasDTO {
	return dto.BreakEvenFormulasDTO{
		FixedCosts:              in.FixedCosts,
		VariableCostsPerUnit:    round(in.VariableCostsPerUnit),
		RevenuePerUnit:          round(in.RevenuePerUnit),
		ContributionMargin:      round(f.ContributionMargin),
		ContributionMarginRatio: f.ContributionMarginRatio.Round(4),
		BreakEvenUnits:          roundPtr(f.BreakEvenUnits),
		BreakEvenSales:          roundPtr(f.BreakEvenSales),
	}
}

func toBreakEvenDTO(rep finance.BreakEvenReport, currency string) *dto.BreakEvenReportDTO {
	out := &dto.BreakEvenReportDTO{
		Period:               toPeriodDTO(rep.Range),
		Currency:             currency,
		TotalInvestment:      rep.TotalInvestment,
		CumulativeProfit:     rep.CumulativeProfit,
		BreakEvenPoint:       roundPtr(rep.BreakEvenPoint),
		BreakEvenPercentage:  round(rep.BreakEvenPercentage),
		AverageDailyProfit:   round(rep.AverageDailyProfit),
		DaysToBreakEven:      rep.DaysToBreakEven,
		BreakEvenFormulasDTO: toFormulasDTO(rep.Inputs, rep.Formulas),
	}
	if rep.ProjectedDate != nil {
		s := rep.ProjectedDate.Format(finance.DayLayout)
		out.ProjectedBreakEvenDate = &s
	}
	return out
}

func toROIDTO(rep finance.ROIReport, currency string) *dto.ROIReportDTO {
	out := &dto.ROIReportDTO{
		Period:                toPeriodDTO(rep.Range),
		Currency:              currency,
		TotalInvestment:       rep.TotalInvestment,
		NetProfit:             rep.NetProfit,
		ROI:                   round(rep.ROI),
		AnnualizedROI:         roundPtr(rep.AnnualizedROI),
		PaybackPeriod:         roundPtr(rep.PaybackPeriod),
		BreakEvenPoint:        rep.BreakEvenMonth,
		ProfitabilityIndex:    roundPtr(rep.ProfitabilityIndex),
		AverageMonthlyProfit:  round(rep.AverageMonthly),
		MonthlyData:           make([]dto.MonthlyROIDTO, 0, len(rep.Monthly)),
		InvestmentsByCategory: rep.ByCategory,
		Investments:           make([]dto.InvestmentDTO, 0, len(rep.Investments)),
	}
	for _, m := range rep.Monthly {
		out.MonthlyData = append(out.MonthlyData, dto.MonthlyROIDTO{
			Month:      m.Month,
			NetProfit:  m.NetProfit,
			Investment: m.Investment,
			ROI:        round(m.ROI),
		})
	}
	for _, inv := range rep.Investments {
		out.Investments = append(out.Investments, dto.InvestmentDTO{
			ID:          inv.ID,
			Description: inv.Description,
			Amount:      inv.Amount,
			Date:        rep.Range.DayKey(inv.Date),
		})
	}
	return out
}

func toStockValueDTO(rep finance.StockValueReport, currency string) *dto.StockValueReportDTO {
	out := &dto.StockValueReportDTO{
		Currency:               currency,
		TotalRetailValue:       rep.TotalRetailValue,
		TotalCostValue:         rep.TotalCostValue,
		TotalPotentialProfit:   rep.TotalPotentialProfit,
		MarginPotential:        round(rep.MarginPotential),
		ActiveInventoryValue:   rep.ActiveInventoryValue,
		InactiveInventoryValue: rep.InactiveInventoryValue,
		ActiveCostValue:        rep.ActiveCostValue,
		InactiveCostValue:      rep.InactiveCostValue,
		ActiveProducts:         rep.ActiveProducts,
		InactiveProducts:       rep.InactiveProducts,
		Categories:             make([]dto.CategoryStockValueDTO, 0, len(rep.Categories)),
		Products:               make([]dto.ProductStockValueDTO, 0, len(rep.Products)),
	}
	for _, c := range rep.Categories {
		out.Categories = append(out.Categories, dto.CategoryStockValueDTO{
			Category:           c.Category,
			ProductCount:       c.ProductCount,
			ActiveCount:        c.ActiveCount,
			InactiveCount:      c.InactiveCount,
			TotalValue:         c.TotalValue,
			ActiveTotalValue:   c.ActiveTotalValue,
			InactiveTotalValue: c.InactiveTotalValue,
			TotalCostValue:     c.TotalCostValue,
		})
	}
	for _, p := range rep.Products {
		out.Products = append(out.Products, dto.ProductStockValueDTO{
			ProductID:       p.ProductID,
			Name:            p.Name,
			Category:        p.Category,
			Stock:           p.Stock,
			Price:           p.Price,
			PurchasePrice:   p.PurchasePrice,
			RetailValue:     p.RetailValue,
			CostValue:       p.CostValue,
			PotentialProfit: p.PotentialProfit,
			MarginPotential: round(p.MarginPotential),
			HasSales:        p.HasSales,
		})
	}
	return out
}

func toProductRankDTO(r finance.ProductRank) dto.ProductRankDTO {
	return dto.ProductRankDTO{
		Rank:             r.Rank,
		ProductID:        r.Product.ProductID,
		ProductName:      r.Product.Name,
		Category:         r.Product.Category,
		UnitsSold:        r.Product.Quantity,
		GrossRevenue:     r.Product.Revenue,
		TotalCOGS:        r.Product.Cost,
		GrossProfit:      r.Product.Profit,
		MarginPct:        round(r.Product.Margin),
		RevenuePct:       round(r.RevenueShare),
		CumulativeRevPct: round(r.CumulativeShare),
		IsTopPareto:      r.IsTopPareto,
	}
}

// sortedProducts lista los productos del COGS por costo descendente (para exportar).
func sortedProducts(byProduct map[string]*finance.ProductCOGS) []finance.ProductCOGS {
	out := make([]finance.ProductCOGS, 0, len(byProduct))
	for _, p := range byProduct {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Cost.Equal(out[j].Cost) {
			return out[i].Cost.GreaterThan(out[j].Cost)
		}
		return out[i].ProductID < out[j].ProductID
	})
	return out
}
