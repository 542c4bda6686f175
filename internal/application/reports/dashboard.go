package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/retail-analytics-api/internal/application/dto"
	"github.com/jhoicas/retail-analytics-api/internal/domain/finance"
)

const dashboardTopProducts = 5 // número de productos en el widget del dashboard

// Dashboard resumen del día y del mes en curso más el Top-5 productos del mes.
//
// Una sola carga del mes (ventas + gastos) alimenta las tres vistas:
//  1. ComputeCOGS(hoy)            → TodaySales + TodayGrossProfit
//  2. ComputeCOGS(mes)            → TopByRevenue(mes, 5) → TopProducts
//  3. NetProfitFromCOGS(mes)      → MonthlySales + MonthlyNetProfit
func (uc *UseCase) Dashboard(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	now := uc.now()
	loc := uc.opts.Location

	// Hoy: 00:00:00.000 – 23:59:59.999
	today := finance.MustDateRange(now, now, loc)
	// Mes en curso: día 1 a las 00:00 – hoy a las 23:59:59
	month := finance.MustDateRange(time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc), now, loc)

	ds, err := uc.load(ctx, query{needs: needItems | needExpenses, period: periodOf(month)})
	if err != nil {
		return nil, fmt.Errorf("dashboard: %w", err)
	}

	todayRep := finance.ComputeCOGS(ds.items, today)
	monthCOGS := finance.ComputeCOGS(ds.items, month)
	monthRep := finance.NetProfitFromCOGS(monthCOGS, ds.expenses)
	if ctx.Err() != nil {
		return nil, interrupted(ctx)
	}

	top := finance.TopByRevenue(monthCOGS.ByProduct, dashboardTopProducts)
	topDTOs := make([]dto.TopProductDTO, 0, len(top))
	for _, p := range top {
		topDTOs = append(topDTOs, dto.TopProductDTO{
			ProductID:        p.ProductID,
			ProductName:      p.Name,
			QuantitySold:     p.Quantity,
			TotalRevenue:     p.Revenue,
			MarginPercentage: round(p.Margin),
		})
	}

	return &dto.DashboardSummaryDTO{
		Currency:           ds.currency,
		TodaySales:         todayRep.TotalRevenue,
		TodayGrossProfit:   todayRep.GrossProfit,
		TodayMargin:        round(todayRep.GrossMargin),
		MonthlySales:       monthRep.TotalRevenue,
		MonthlyGrossProfit: monthRep.GrossProfit,
		MonthlyMargin:      round(monthRep.GrossMargin),
		MonthlyNetProfit:   monthRep.NetProfit,
		TopProducts:        topDTOs,
		DateLabel:          monthLabel(now),
	}, nil
}

// monthLabel devuelve una etiqueta legible del mes, ej: "Febrero 2026".
func monthLabel(t time.Time) string {
	months := [...]string{
		"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
		"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
	}
	return fmt.Sprintf("%s %d", months[t.Month()-1], t.Year())
}
