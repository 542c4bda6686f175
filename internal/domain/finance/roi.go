package finance

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/retail-analytics-api/internal/domain/entity"
)

const daysPerYear = 365

// InvestmentLine inversión considerada en el reporte de ROI.
type InvestmentLine struct {
	ID          string
	Description string
	Amount      decimal.Decimal
	Date        time.Time
}

// MonthlyROI bucket mensual del reporte de ROI.
// Investment es el acumulado de todas las inversiones hasta el fin del mes,
// no la inversión del mes.
type MonthlyROI struct {
	Month      string
	NetProfit  decimal.Decimal
	Investment decimal.Decimal
	ROI        decimal.Decimal
}

// ROIReport resultado del agregador de retorno sobre la inversión.
type ROIReport struct {
	Range              DateRange
	TotalInvestment    decimal.Decimal
	NetProfit          decimal.Decimal
	ROI                decimal.Decimal  // NetProfit / TotalInvestment × 100; cero sin inversión
	AnnualizedROI      *decimal.Decimal // nil si no es representable
	PaybackPeriod      *decimal.Decimal // meses; nil si la utilidad mensual promedio es <= 0
	BreakEvenMonth     *string          // primer mes con utilidad acumulada >= inversión acumulada
	ProfitabilityIndex *decimal.Decimal // (NetProfit + TotalInvestment) / TotalInvestment; nil sin inversión
	AverageMonthly     decimal.Decimal
	Monthly            []MonthlyROI
	ByCategory         map[string]decimal.Decimal
	Investments        []InvestmentLine
}

// ComputeROI calcula el ROI del rango. Se consideran todas las inversiones con
// fecha igual o anterior al fin del rango: el capital invertido hasta ese momento.
func ComputeROI(
	items []entity.SaleItem,
	expenses []entity.Expense,
	investments []entity.InitialInvestment,
	r DateRange,
) ROIReport {
	rep := ROIReport{
		Range:       r,
		ByCategory:  make(map[string]decimal.Decimal),
		Investments: []InvestmentLine{},
	}

	sorted := make([]entity.InitialInvestment, 0, len(investments))
	for _, inv := range investments {
		if inv.InvestmentDate.After(r.To) {
			continue
		}
		sorted = append(sorted, inv)
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].InvestmentDate.Before(sorted[j].InvestmentDate)
	})
	for _, inv := range sorted {
		rep.TotalInvestment = rep.TotalInvestment.Add(inv.Amount)
		key := investmentCategory(inv)
		rep.ByCategory[key] = rep.ByCategory[key].Add(inv.Amount)
		rep.Investments = append(rep.Investments, InvestmentLine{
			ID:          inv.ID,
			Description: inv.Description,
			Amount:      inv.Amount,
			Date:        inv.InvestmentDate,
		})
	}

	rep.NetProfit = ComputeNetProfit(items, expenses, r).NetProfit
	rep.ROI = percentOf(rep.NetProfit, rep.TotalInvestment)
	rep.AnnualizedROI = AnnualizeROI(rep.ROI, r.Days())
	if !rep.TotalInvestment.IsZero() {
		pi := rep.NetProfit.Add(rep.TotalInvestment).Div(rep.TotalInvestment)
		rep.ProfitabilityIndex = &pi
	}

	monthly := ComputeMonthlyNetProfit(items, expenses, r)
	rep.Monthly = make([]MonthlyROI, 0, len(monthly))
	var cumulativeProfit decimal.Decimal
	next := 0
	var cumulativeInvestment decimal.Decimal
	for _, m := range monthly {
		for next < len(sorted) && !sorted[next].InvestmentDate.After(m.Range.To) {
			cumulativeInvestment = cumulativeInvestment.Add(sorted[next].Amount)
			next++
		}
		cumulativeProfit = cumulativeProfit.Add(m.NetProfit)
		rep.Monthly = append(rep.Monthly, MonthlyROI{
			Month:      m.Month,
			NetProfit:  m.NetProfit,
			Investment: cumulativeInvestment,
			ROI:        percentOf(m.NetProfit, cumulativeInvestment),
		})
		if rep.BreakEvenMonth == nil && cumulativeInvestment.IsPositive() &&
			cumulativeProfit.GreaterThanOrEqual(cumulativeInvestment) {
			month := m.Month
			rep.BreakEvenMonth = &month
		}
	}

	if len(monthly) > 0 {
		rep.AverageMonthly = rep.NetProfit.Div(decimal.NewFromInt(int64(len(monthly))))
	}
	if rep.AverageMonthly.IsPositive() {
		payback := rep.TotalInvestment.Div(rep.AverageMonthly)
		rep.PaybackPeriod = &payback
	}
	return rep
}

// AnnualizeROI aplica ((1 + roi/100)^(365/days) − 1) × 100 con los días reales del rango.
// Una pérdida total o mayor (base <= 0) se reporta como −100. Devuelve nil si
// days no es positivo o el resultado no es finito.
func AnnualizeROI(roi decimal.Decimal, days int) *decimal.Decimal {
	if days <= 0 {
		return nil
	}
	base := 1 + roi.InexactFloat64()/100
	if base <= 0 {
		v := decimal.NewFromInt(-100)
		return &v
	}
	f := (math.Pow(base, float64(daysPerYear)/float64(days)) - 1) * 100
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	v := decimal.NewFromFloat(f)
	return &v
}

// investmentCategory las inversiones no tienen categoría propia; se agrupan por descripción.
func investmentCategory(inv entity.InitialInvestment) string {
	d := strings.TrimSpace(inv.Description)
	if d == "" {
		return Uncategorized
	}
	return d
}
