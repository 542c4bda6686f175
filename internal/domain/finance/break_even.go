package finance

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/retail-analytics-api/internal/domain/entity"
)

// BreakEvenInputs variables del modelo costo-volumen-utilidad.
type BreakEvenInputs struct {
	FixedCosts           decimal.Decimal
	VariableCostsPerUnit decimal.Decimal
	RevenuePerUnit       decimal.Decimal
}

// BreakEvenFormulas resultado de las fórmulas estándar de punto de equilibrio.
// BreakEvenUnits y BreakEvenSales son nil cuando el margen de contribución es <= 0:
// con ese margen el equilibrio no se alcanza a ningún volumen.
type BreakEvenFormulas struct {
	ContributionMargin      decimal.Decimal
	ContributionMarginRatio decimal.Decimal
	BreakEvenUnits          *decimal.Decimal
	BreakEvenSales          *decimal.Decimal
}

// Evaluate aplica las fórmulas:
//
//	contributionMargin      = revenuePerUnit − variableCostsPerUnit
//	contributionMarginRatio = contributionMargin / revenuePerUnit
//	breakEvenUnits          = fixedCosts / contributionMargin
//	breakEvenSales          = breakEvenUnits × revenuePerUnit
func (in BreakEvenInputs) Evaluate() BreakEvenFormulas {
	cm := in.RevenuePerUnit.Sub(in.VariableCostsPerUnit)
	out := BreakEvenFormulas{
		ContributionMargin:      cm,
		ContributionMarginRatio: ratio(cm, in.RevenuePerUnit),
	}
	if cm.IsPositive() {
		units := in.FixedCosts.Div(cm)
		sales := units.Mul(in.RevenuePerUnit)
		out.BreakEvenUnits = &units
		out.BreakEvenSales = &sales
	}
	return out
}

// BreakEvenReport resultado del agregador de punto de equilibrio.
type BreakEvenReport struct {
	Range               DateRange
	TotalInvestment     decimal.Decimal
	CumulativeProfit    decimal.Decimal
	BreakEvenPoint      *decimal.Decimal // ingreso necesario para recuperar la inversión al margen neto actual
	BreakEvenPercentage decimal.Decimal  // min(100, CumulativeProfit / TotalInvestment × 100)
	AverageDailyProfit  decimal.Decimal
	DaysToBreakEven     *int
	ProjectedDate       *time.Time
	Inputs              BreakEvenInputs
	Formulas            BreakEvenFormulas
}

// ComputeBreakEven deriva el punto de equilibrio a partir del histórico del rango:
//   - costos fijos = gastos operativos del rango
//   - costo variable y precio por unidad = COGS e ingreso divididos por unidades vendidas
//   - la proyección usa la utilidad diaria promedio del rango
func ComputeBreakEven(
	items []entity.SaleItem,
	expenses []entity.Expense,
	investments []entity.InitialInvestment,
	r DateRange,
) BreakEvenReport {
	np := ComputeNetProfit(items, expenses, r)

	rep := BreakEvenReport{Range: r, CumulativeProfit: np.NetProfit}
	for _, inv := range investments {
		if inv.InvestmentDate.After(r.To) {
			continue
		}
		rep.TotalInvestment = rep.TotalInvestment.Add(inv.Amount)
	}

	units := decimal.NewFromInt(int64(np.ItemsSold))
	rep.Inputs = BreakEvenInputs{
		FixedCosts:           np.TotalOperatingExpenses,
		VariableCostsPerUnit: ratio(np.TotalCOGS, units),
		RevenuePerUnit:       ratio(np.TotalRevenue, units),
	}
	rep.Formulas = rep.Inputs.Evaluate()

	rep.BreakEvenPercentage = decimal.Min(hundred, percentOf(rep.CumulativeProfit, rep.TotalInvestment))
	if np.NetMargin.IsPositive() {
		point := rep.TotalInvestment.Div(np.NetMargin.Div(hundred))
		rep.BreakEvenPoint = &point
	}

	rep.AverageDailyProfit = rep.CumulativeProfit.Div(decimal.NewFromInt(int64(r.Days())))
	rep.DaysToBreakEven, rep.ProjectedDate = projectBreakEven(
		rep.TotalInvestment, rep.CumulativeProfit, rep.AverageDailyProfit, r.EndDate())
	return rep
}

// MaxProjectionDays horizonte de la proyección de equilibrio (100 años).
const MaxProjectionDays = 100 * daysPerYear

// projectBreakEven extrapola (inversión − utilidad acumulada) / utilidad diaria promedio.
// Si ya se alcanzó el equilibrio devuelve cero días y la fecha de corte; más allá
// de MaxProjectionDays no hay proyección.
func projectBreakEven(investment, cumulative, avgDaily decimal.Decimal, asOf time.Time) (*int, *time.Time) {
	remaining := investment.Sub(cumulative)
	if !remaining.IsPositive() {
		days := 0
		return &days, &asOf
	}
	if !avgDaily.IsPositive() {
		return nil, nil
	}
	needed := remaining.Div(avgDaily).Ceil()
	if needed.GreaterThan(decimal.NewFromInt(MaxProjectionDays)) {
		return nil, nil
	}
	days := int(needed.IntPart())
	date := asOf.AddDate(0, 0, days)
	return &days, &date
}
