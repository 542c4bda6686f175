package reports

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/retail-analytics-api/internal/application/dto"
	"github.com/jhoicas/retail-analytics-api/internal/domain"
	"github.com/jhoicas/retail-analytics-api/internal/domain/finance"
	"github.com/jhoicas/retail-analytics-api/internal/domain/repository"
)

// ── COGS ──────────────────────────────────────────────────────────────────────

func (uc *UseCase) computeCOGS(ctx context.Context, req dto.RangeRequest) (finance.COGSReport, string, error) {
	r, err := uc.parseRange(req.StartDate, req.EndDate)
	if err != nil {
		return finance.COGSReport{}, "", err
	}
	ds, err := uc.load(ctx, query{needs: needItems, period: periodOf(r)})
	if err != nil {
		return finance.COGSReport{}, "", fmt.Errorf("cogs: %w", err)
	}
	rep := finance.ComputeCOGS(ds.items, r)
	if ctx.Err() != nil {
		return finance.COGSReport{}, "", interrupted(ctx)
	}
	return rep, ds.currency, nil
}

// COGS reporte de costo de ventas del rango.
func (uc *UseCase) COGS(ctx context.Context, req dto.RangeRequest) (*dto.COGSReportDTO, error) {
	rep, currency, err := uc.computeCOGS(ctx, req)
	if err != nil {
		return nil, err
	}
	return toCOGSDTO(rep, currency), nil
}

// ── Utilidad neta ─────────────────────────────────────────────────────────────

func (uc *UseCase) computeNetProfit(ctx context.Context, req dto.RangeRequest) (finance.NetProfitReport, string, error) {
	r, err := uc.parseRange(req.StartDate, req.EndDate)
	if err != nil {
		return finance.NetProfitReport{}, "", err
	}
	ds, err := uc.load(ctx, query{needs: needItems | needExpenses, period: periodOf(r)})
	if err != nil {
		return finance.NetProfitReport{}, "", fmt.Errorf("utilidad neta: %w", err)
	}
	rep := finance.ComputeNetProfit(ds.items, ds.expenses, r)
	if ctx.Err() != nil {
		return finance.NetProfitReport{}, "", interrupted(ctx)
	}
	return rep, ds.currency, nil
}

// NetProfit reporte de utilidad neta del rango.
func (uc *UseCase) NetProfit(ctx context.Context, req dto.RangeRequest) (*dto.NetProfitReportDTO, error) {
	rep, currency, err := uc.computeNetProfit(ctx, req)
	if err != nil {
		return nil, err
	}
	return toNetProfitDTO(rep, currency), nil
}

// ── Punto de equilibrio ───────────────────────────────────────────────────────

func (uc *UseCase) computeBreakEven(ctx context.Context, start, end string, all bool) (finance.BreakEvenReport, string, error) {
	var (
		r   finance.DateRange
		q   = query{needs: needItems | needExpenses | needInvestments}
		err error
	)
	if all {
		q.period, q.investments = repository.All(), repository.All()
	} else {
		if r, err = uc.parseRange(start, end); err != nil {
			return finance.BreakEvenReport{}, "", err
		}
		q.period, q.investments = periodOf(r), upTo(r)
	}

	ds, err := uc.load(ctx, q)
	if err != nil {
		return finance.BreakEvenReport{}, "", fmt.Errorf("punto de equilibrio: %w", err)
	}
	if all {
		r = uc.historyRange(ds)
	}
	rep := finance.ComputeBreakEven(ds.items, ds.expenses, ds.investments, r)
	if ctx.Err() != nil {
		return finance.BreakEvenReport{}, "", interrupted(ctx)
	}
	return rep, ds.currency, nil
}

// historyRange rango "todo el histórico": desde el primer registro hasta hoy.
func (uc *UseCase) historyRange(ds *dataset) finance.DateRange {
	now := uc.now()
	earliest := now
	for _, it := range ds.items {
		if it.SoldAt.Before(earliest) {
			earliest = it.SoldAt
		}
	}
	for _, e := range ds.expenses {
		if e.PaymentDate.Before(earliest) {
			earliest = e.PaymentDate
		}
	}
	for _, inv := range ds.investments {
		if inv.InvestmentDate.Before(earliest) {
			earliest = inv.InvestmentDate
		}
	}
	return finance.MustDateRange(earliest, now, uc.opts.Location)
}

// BreakEven reporte de punto de equilibrio del rango o de todo el histórico.
func (uc *UseCase) BreakEven(ctx context.Context, req dto.BreakEvenRequest) (*dto.BreakEvenReportDTO, error) {
	rep, currency, err := uc.computeBreakEven(ctx, req.StartDate, req.EndDate, req.All)
	if err != nil {
		return nil, err
	}
	return toBreakEvenDTO(rep, currency), nil
}

// Scenarios recalcula las fórmulas de equilibrio para cada escenario what-if
// a partir de las entradas históricas del rango.
func (uc *UseCase) Scenarios(ctx context.Context, req dto.ScenariosRequest) (*dto.ScenariosReportDTO, error) {
	scenarios, err := toScenarios(req.Scenarios)
	if err != nil {
		return nil, err
	}
	rep, currency, err := uc.computeBreakEven(ctx, req.StartDate, req.EndDate, req.All)
	if err != nil {
		return nil, err
	}
	results := finance.RunScenarios(rep.Inputs, scenarios)

	out := &dto.ScenariosReportDTO{
		Period:    toPeriodDTO(rep.Range),
		Currency:  currency,
		Base:      toFormulasDTO(rep.Inputs, rep.Formulas),
		Scenarios: make([]dto.ScenarioResultDTO, 0, len(results)),
	}
	for _, res := range results {
		out.Scenarios = append(out.Scenarios, dto.ScenarioResultDTO{
			Name:                    res.Scenario.Name,
			FixedCostsMultiplier:    res.Scenario.FixedCostsMultiplier,
			VariableCostsMultiplier: res.Scenario.VariableCostsMultiplier,
			RevenueMultiplier:       res.Scenario.RevenueMultiplier,
			BreakEvenFormulasDTO:    toFormulasDTO(res.Inputs, res.Formulas),
		})
	}
	return out, nil
}

// toScenarios valida los escenarios del request; sin escenarios usa los estándar.
func toScenarios(in []dto.ScenarioDTO) ([]finance.Scenario, error) {
	if len(in) == 0 {
		return finance.DefaultScenarios(), nil
	}
	one := decimal.NewFromInt(1)
	multiplier := func(name, field string, v *decimal.Decimal) (decimal.Decimal, error) {
		if v == nil {
			return one, nil
		}
		if v.IsNegative() {
			return decimal.Zero, fmt.Errorf("%w: escenario %q: %s no puede ser negativo", domain.ErrInvalidInput, name, field)
		}
		return *v, nil
	}

	out := make([]finance.Scenario, 0, len(in))
	for _, s := range in {
		fixed, err := multiplier(s.Name, "fixed_costs_multiplier", s.FixedCostsMultiplier)
		if err != nil {
			return nil, err
		}
		variable, err := multiplier(s.Name, "variable_costs_multiplier", s.VariableCostsMultiplier)
		if err != nil {
			return nil, err
		}
		revenue, err := multiplier(s.Name, "revenue_multiplier", s.RevenueMultiplier)
		if err != nil {
			return nil, err
		}
		out = append(out, finance.Scenario{
			Name:                    s.Name,
			FixedCostsMultiplier:    fixed,
			VariableCostsMultiplier: variable,
			RevenueMultiplier:       revenue,
		})
	}
	return out, nil
}

// ── ROI ───────────────────────────────────────────────────────────────────────

func (uc *UseCase) computeROI(ctx context.Context, req dto.RangeRequest) (finance.ROIReport, string, error) {
	r, err := uc.parseRange(req.StartDate, req.EndDate)
	if err != nil {
		return finance.ROIReport{}, "", err
	}
	ds, err := uc.load(ctx, query{
		needs:       needItems | needExpenses | needInvestments,
		period:      periodOf(r),
		investments: upTo(r),
	})
	if err != nil {
		return finance.ROIReport{}, "", fmt.Errorf("roi: %w", err)
	}
	rep := finance.ComputeROI(ds.items, ds.expenses, ds.investments, r)
	if ctx.Err() != nil {
		return finance.ROIReport{}, "", interrupted(ctx)
	}
	return rep, ds.currency, nil
}

// ROI reporte de retorno sobre la inversión del rango.
func (uc *UseCase) ROI(ctx context.Context, req dto.RangeRequest) (*dto.ROIReportDTO, error) {
	rep, currency, err := uc.computeROI(ctx, req)
	if err != nil {
		return nil, err
	}
	return toROIDTO(rep, currency), nil
}

// ── Valor de inventario ───────────────────────────────────────────────────────

func (uc *UseCase) computeStockValue(ctx context.Context) (finance.StockValueReport, string, error) {
	ds, err := uc.load(ctx, query{needs: needProducts})
	if err != nil {
		return finance.StockValueReport{}, "", fmt.Errorf("valor de inventario: %w", err)
	}
	rep := finance.ComputeStockValue(ds.products)
	if ctx.Err() != nil {
		return finance.StockValueReport{}, "", interrupted(ctx)
	}
	return rep, ds.currency, nil
}

// StockValue valorización del inventario actual (no depende de fechas).
func (uc *UseCase) StockValue(ctx context.Context) (*dto.StockValueReportDTO, error) {
	rep, currency, err := uc.computeStockValue(ctx)
	if err != nil {
		return nil, err
	}
	return toStockValueDTO(rep, currency), nil
}
