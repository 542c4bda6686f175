package finance

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/retail-analytics-api/internal/domain/entity"
)

// ExpenseLine gasto operativo incluido en el reporte.
type ExpenseLine struct {
	ID          string
	Description string
	Category    string
	Amount      decimal.Decimal
	PaymentDate time.Time
}

// DailyNetProfit bucket diario del reporte de utilidad neta.
type DailyNetProfit struct {
	Date              string
	Revenue           decimal.Decimal
	COGS              decimal.Decimal
	GrossProfit       decimal.Decimal
	OperatingExpenses decimal.Decimal
	NetProfit         decimal.Decimal
}

// NetProfitReport resultado del agregador de utilidad neta.
type NetProfitReport struct {
	Range                       DateRange
	TotalRevenue                decimal.Decimal
	TotalCOGS                   decimal.Decimal
	GrossProfit                 decimal.Decimal
	GrossMargin                 decimal.Decimal
	TotalOperatingExpenses      decimal.Decimal
	OperatingExpenses           []ExpenseLine
	OperatingExpensesByCategory map[string]decimal.Decimal
	NetProfit                   decimal.Decimal
	NetMargin                   decimal.Decimal // NetProfit / TotalRevenue × 100; cero sin ingresos
	ItemsSold                   int
	SalesCount                  int
	Daily                       []DailyNetProfit
}

// ComputeNetProfit deriva la utilidad neta del rango: el COGS sale de ComputeCOGS y
// los gastos operativos se restan aparte, nunca contra el costo del producto.
//
// Daily es una partición exacta del rango, por lo que la suma de Daily[i].NetProfit
// reproduce NetProfit.
func ComputeNetProfit(items []entity.SaleItem, expenses []entity.Expense, r DateRange) NetProfitReport {
	return NetProfitFromCOGS(ComputeCOGS(items, r), expenses)
}

// NetProfitFromCOGS completa un reporte de COGS ya calculado con los gastos
// operativos de su rango.
func NetProfitFromCOGS(cogs COGSReport, expenses []entity.Expense) NetProfitReport {
	r := cogs.Range
	rep := NetProfitReport{
		Range:                       r,
		TotalRevenue:                cogs.TotalRevenue,
		TotalCOGS:                   cogs.TotalCOGS,
		GrossProfit:                 cogs.GrossProfit,
		GrossMargin:                 cogs.GrossMargin,
		OperatingExpenses:           []ExpenseLine{},
		OperatingExpensesByCategory: make(map[string]decimal.Decimal),
		ItemsSold:                   cogs.ItemsSold,
		SalesCount:                  cogs.SalesCount,
		Daily:                       make([]DailyNetProfit, len(cogs.Daily)),
	}

	dayIndex := make(map[string]int, len(cogs.Daily))
	for i, d := range cogs.Daily {
		rep.Daily[i] = DailyNetProfit{
			Date:        d.Date,
			Revenue:     d.Revenue,
			COGS:        d.COGS,
			GrossProfit: d.Profit,
		}
		dayIndex[d.Date] = i
	}

	for _, e := range expenses {
		if !r.Contains(e.PaymentDate) {
			continue
		}
		cat := categoryName(e.Category)
		rep.TotalOperatingExpenses = rep.TotalOperatingExpenses.Add(e.Amount)
		rep.OperatingExpensesByCategory[cat] = rep.OperatingExpensesByCategory[cat].Add(e.Amount)
		rep.OperatingExpenses = append(rep.OperatingExpenses, ExpenseLine{
			ID:          e.ID,
			Description: e.Description,
			Category:    cat,
			Amount:      e.Amount,
			PaymentDate: e.PaymentDate,
		})
		if i, ok := dayIndex[r.DayKey(e.PaymentDate)]; ok {
			rep.Daily[i].OperatingExpenses = rep.Daily[i].OperatingExpenses.Add(e.Amount)
		}
	}
	sort.SliceStable(rep.OperatingExpenses, func(i, j int) bool {
		return rep.OperatingExpenses[i].PaymentDate.Before(rep.OperatingExpenses[j].PaymentDate)
	})

	for i := range rep.Daily {
		d := &rep.Daily[i]
		d.NetProfit = d.GrossProfit.Sub(d.OperatingExpenses)
	}

	rep.NetProfit = rep.GrossProfit.Sub(rep.TotalOperatingExpenses)
	rep.NetMargin = percentOf(rep.NetProfit, rep.TotalRevenue)
	return rep
}

// MonthlyNetProfit utilidad neta de un mes calendario dentro del rango.
type MonthlyNetProfit struct {
	Month             string
	Range             DateRange
	Revenue           decimal.Decimal
	COGS              decimal.Decimal
	OperatingExpenses decimal.Decimal
	NetProfit         decimal.Decimal
}

// ComputeMonthlyNetProfit aplica ComputeNetProfit a cada mes del rango. Las filas
// se reparten por mes en una sola pasada, así cada mes solo recorre las suyas.
func ComputeMonthlyNetProfit(items []entity.SaleItem, expenses []entity.Expense, r DateRange) []MonthlyNetProfit {
	months := r.Months()
	monthItems := make(map[string][]entity.SaleItem, len(months))
	for _, it := range items {
		if r.Contains(it.SoldAt) {
			key := r.MonthKey(it.SoldAt)
			monthItems[key] = append(monthItems[key], it)
		}
	}
	monthExpenses := make(map[string][]entity.Expense, len(months))
	for _, e := range expenses {
		if r.Contains(e.PaymentDate) {
			key := r.MonthKey(e.PaymentDate)
			monthExpenses[key] = append(monthExpenses[key], e)
		}
	}

	out := make([]MonthlyNetProfit, 0, len(months))
	for _, m := range months {
		np := ComputeNetProfit(monthItems[m.Key], monthExpenses[m.Key], m.Range)
		out = append(out, MonthlyNetProfit{
			Month:             m.Key,
			Range:             m.Range,
			Revenue:           np.TotalRevenue,
			COGS:              np.TotalCOGS,
			OperatingExpenses: np.TotalOperatingExpenses,
			NetProfit:         np.NetProfit,
		})
	}
	return out
}
