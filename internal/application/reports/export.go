package reports

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/retail-analytics-api/internal/application/dto"
	"github.com/jhoicas/retail-analytics-api/internal/domain"
	"github.com/jhoicas/retail-analytics-api/internal/domain/finance"
	"github.com/jhoicas/retail-analytics-api/pkg/export"
)

// Reportes exportables.
const (
	ExportCOGS         = "cogs"
	ExportCOGSProducts = "cogs-products"
	ExportNetProfit    = "net-profit"
	ExportBreakEven    = "break-even"
	ExportROI          = "roi"
	ExportStockValue   = "stock-value"
)

// ExportReports nombres aceptados por Export.
var ExportReports = []string{ExportCOGS, ExportCOGSProducts, ExportNetProfit, ExportBreakEven, ExportROI, ExportStockValue}

// Export genera el archivo descargable de un reporte: una fila por día, mes o
// producto según el reporte; el punto de equilibrio es una sola fila resumen.
// format vacío equivale a csv.
func (uc *UseCase) Export(ctx context.Context, report string, req dto.ExportRequest) (*ExportFile, error) {
	format := strings.ToLower(strings.TrimSpace(req.Format))
	if format == "" {
		format = "csv"
	}
	renderer, ok := uc.renderers[format]
	if !ok {
		return nil, fmt.Errorf("%w: formato de exportación %q no soportado", domain.ErrInvalidInput, req.Format)
	}

	rangeReq := dto.RangeRequest{StartDate: req.StartDate, EndDate: req.EndDate}
	var (
		table    export.Table
		currency string
		period   string
	)
	switch report {
	case ExportCOGS, ExportCOGSProducts:
		rep, cur, err := uc.computeCOGS(ctx, rangeReq)
		if err != nil {
			return nil, err
		}
		if report == ExportCOGS {
			table = export.NewTable("Costo de ventas diario", rep.Daily, cogsDailyColumns)
		} else {
			table = export.NewTable("Costo de ventas por producto", sortedProducts(rep.ByProduct), cogsProductColumns)
		}
		currency, period = cur, periodLabel(rep.Range)
	case ExportNetProfit:
		rep, cur, err := uc.computeNetProfit(ctx, rangeReq)
		if err != nil {
			return nil, err
		}
		table = export.NewTable("Utilidad neta diaria", rep.Daily, netProfitDailyColumns)
		currency, period = cur, periodLabel(rep.Range)
	case ExportBreakEven:
		rep, cur, err := uc.computeBreakEven(ctx, req.StartDate, req.EndDate, req.All)
		if err != nil {
			return nil, err
		}
		table = export.NewTable("Punto de equilibrio", []finance.BreakEvenReport{rep}, breakEvenColumns)
		currency, period = cur, periodLabel(rep.Range)
	case ExportROI:
		rep, cur, err := uc.computeROI(ctx, rangeReq)
		if err != nil {
			return nil, err
		}
		table = export.NewTable("ROI mensual", rep.Monthly, roiMonthlyColumns)
		currency, period = cur, periodLabel(rep.Range)
	case ExportStockValue:
		rep, cur, err := uc.computeStockValue(ctx)
		if err != nil {
			return nil, err
		}
		table = export.NewTable("Valor de inventario", rep.Products, stockValueColumns)
		currency, period = cur, uc.now().Format(finance.DayLayout)
	default:
		return nil, fmt.Errorf("%w: reporte %q", domain.ErrNotFound, report)
	}

	table.Currency = currency
	table.Subtitle = strings.Replace(period, "_", " a ", 1)
	data, err := renderer.Render(table)
	if err != nil {
		return nil, fmt.Errorf("exportar %s como %s: %w", report, format, err)
	}
	return &ExportFile{
		Filename:    fmt.Sprintf("%s_%s.%s", report, period, format),
		ContentType: renderer.ContentType(),
		Data:        data,
	}, nil
}

func periodLabel(r finance.DateRange) string {
	return r.From.Format(finance.DayLayout) + "_" + r.To.Format(finance.DayLayout)
}
