package reports

import (
	"context"
	"fmt"

	"github.com/jhoicas/retail-analytics-api/internal/application/dto"
	"github.com/jhoicas/retail-analytics-api/internal/domain/finance"
	"github.com/jhoicas/retail-analytics-api/internal/domain/inventory"
)

const (
	defaultTopN = 20
	maxTopN     = 200

	// lowStockLookbackDays ventana de ventas usada para priorizar la reposición.
	lowStockLookbackDays = 90
)

// ProductRanking ranking de productos por utilidad bruta con el corte Pareto 80/20.
func (uc *UseCase) ProductRanking(ctx context.Context, req dto.RankingRequest) (*dto.ProductRankingDTO, error) {
	topN := req.TopN
	if topN <= 0 {
		topN = defaultTopN
	}
	if topN > maxTopN {
		topN = maxTopN
	}

	rep, currency, err := uc.computeCOGS(ctx, dto.RangeRequest{StartDate: req.StartDate, EndDate: req.EndDate})
	if err != nil {
		return nil, fmt.Errorf("ranking: %w", err)
	}

	full := finance.RankProducts(rep.ByProduct, 0)
	out := &dto.ProductRankingDTO{
		Period:         toPeriodDTO(rep.Range),
		Currency:       currency,
		Ranking:        make([]dto.ProductRankDTO, 0, min(topN, len(full))),
		ParetoProducts: make([]dto.ProductRankDTO, 0),
	}
	for i, r := range full {
		d := toProductRankDTO(r)
		if i < topN {
			out.Ranking = append(out.Ranking, d)
		}
		if r.IsTopPareto {
			out.ParetoProducts = append(out.ParetoProducts, d)
		}
	}
	return out, nil
}

// LowStock productos en o bajo su stock mínimo, priorizados con las ventas de
// los últimos 90 días.
func (uc *UseCase) LowStock(ctx context.Context) (*dto.LowStockReportDTO, error) {
	now := uc.now()
	r := finance.MustDateRange(now.AddDate(0, 0, -(lowStockLookbackDays-1)), now, uc.opts.Location)

	ds, err := uc.load(ctx, query{needs: needProducts | needItems, period: periodOf(r)})
	if err != nil {
		return nil, fmt.Errorf("stock bajo: %w", err)
	}
	sold := finance.ComputeCOGS(ds.items, r)
	suggestions := inventory.LowStock(ds.products, sold.ByProduct)
	if ctx.Err() != nil {
		return nil, interrupted(ctx)
	}

	out := &dto.LowStockReportDTO{
		Period:   toPeriodDTO(r),
		Currency: ds.currency,
		Items:    make([]dto.LowStockItemDTO, 0, len(suggestions)),
	}
	for _, s := range suggestions {
		out.Items = append(out.Items, dto.LowStockItemDTO{
			ProductID:          s.ProductID,
			ProductName:        s.Name,
			Category:           s.Category,
			CurrentStock:       s.Stock,
			MinStock:           s.MinStock,
			IdealStock:         s.IdealStock,
			SuggestedOrderQty:  s.SuggestedQty,
			UnitCost:           round(s.UnitCost),
			EstimatedOrderCost: round(s.EstimatedCost),
			GrossMarginPct:     s.GrossMarginPct,
			UnitsSold:          s.UnitsSold,
			Priority:           s.Priority,
		})
	}
	return out, nil
}
