package http

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/retail-analytics-api/internal/application/dto"
	"github.com/jhoicas/retail-analytics-api/internal/application/reports"
	"github.com/jhoicas/retail-analytics-api/pkg/logger"
)

// ReportHandler maneja los endpoints de reportes financieros.
// Cada solicitud corre bajo un Superseder: una nueva solicitud del mismo usuario
// al mismo reporte cancela la anterior, que responde 409.
type ReportHandler struct {
	uc  *reports.UseCase
	sup *reports.Superseder
	log *logger.Logger
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *reports.UseCase, sup *reports.Superseder, log *logger.Logger) *ReportHandler {
	if sup == nil {
		sup = reports.NewSuperseder()
	}
	if log == nil {
		log = logger.Nop()
	}
	return &ReportHandler{uc: uc, sup: sup, log: log}
}

// run ejecuta fn con el contexto de la generación vigente y responde JSON o error.
func run[T any](h *ReportHandler, c *fiber.Ctx, report string, fn func(ctx context.Context) (T, error)) error {
	ctx, done := h.sup.Begin(c.UserContext(), supersedeKey(c, report))
	defer done()

	out, err := fn(ctx)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// supersedeKey usuario + reporte; sin autenticación se usa la IP del cliente.
func supersedeKey(c *fiber.Ctx, report string) string {
	who := GetUserID(c)
	if who == "" {
		who = "ip:" + c.IP()
	}
	return who + ":" + report
}

// GetCOGS godoc
// @Summary      Costo de ventas (COGS)
// @Description  Costo, ingreso y utilidad bruta por producto, por categoría y por día del rango.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        start_date  query  string  false  "Inicio del período (YYYY-MM-DD). Default: primer día del mes."
// @Param        end_date    query  string  false  "Fin del período (YYYY-MM-DD). Default: hoy."
// @Success      200  {object}  dto.COGSReportDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/reports/cogs [get]
func (h *ReportHandler) GetCOGS(c *fiber.Ctx) error {
	var req dto.RangeRequest
	if err := bindQuery(c, &req); err != nil {
		return respondError(c, h.log, err)
	}
	return run(h, c, "cogs", func(ctx context.Context) (*dto.COGSReportDTO, error) {
		return h.uc.COGS(ctx, req)
	})
}

// GetNetProfit godoc
// @Summary      Utilidad neta
// @Description  Utilidad bruta menos gastos operativos, con desglose diario y lista de gastos.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        start_date  query  string  false  "Inicio del período (YYYY-MM-DD)"
// @Param        end_date    query  string  false  "Fin del período (YYYY-MM-DD)"
// @Success      200  {object}  dto.NetProfitReportDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/reports/net-profit [get]
func (h *ReportHandler) GetNetProfit(c *fiber.Ctx) error {
	var req dto.RangeRequest
	if err := bindQuery(c, &req); err != nil {
		return respondError(c, h.log, err)
	}
	return run(h, c, "net-profit", func(ctx context.Context) (*dto.NetProfitReportDTO, error) {
		return h.uc.NetProfit(ctx, req)
	})
}

// GetBreakEven godoc
// @Summary      Punto de equilibrio
// @Description  Avance hacia la recuperación de la inversión, proyección y fórmulas clásicas.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        start_date  query  string  false  "Inicio del período (YYYY-MM-DD)"
// @Param        end_date    query  string  false  "Fin del período (YYYY-MM-DD)"
// @Param        all         query  bool    false  "true = todo el histórico"
// @Success      200  {object}  dto.BreakEvenReportDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/reports/break-even [get]
func (h *ReportHandler) GetBreakEven(c *fiber.Ctx) error {
	var req dto.BreakEvenRequest
	if err := bindQuery(c, &req); err != nil {
		return respondError(c, h.log, err)
	}
	return run(h, c, "break-even", func(ctx context.Context) (*dto.BreakEvenReportDTO, error) {
		return h.uc.BreakEven(ctx, req)
	})
}

// PostScenarios godoc
// @Summary      Escenarios what-if del punto de equilibrio
// @Description  Reevalúa las fórmulas con multiplicadores sobre costos fijos, costos variables e ingresos.
// @Description  Sin escenarios se usan base, optimista y pesimista.
// @Tags         reports
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ScenariosRequest  false  "Rango y escenarios"
// @Success      200  {object}  dto.ScenariosReportDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/reports/break-even/scenarios [post]
func (h *ReportHandler) PostScenarios(c *fiber.Ctx) error {
	var req dto.ScenariosRequest
	if err := bindBody(c, &req); err != nil {
		return respondError(c, h.log, err)
	}
	return run(h, c, "scenarios", func(ctx context.Context) (*dto.ScenariosReportDTO, error) {
		return h.uc.Scenarios(ctx, req)
	})
}

// GetROI godoc
// @Summary      Retorno sobre la inversión
// @Description  ROI del período, anualizado, mensual y mes de recuperación.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        start_date  query  string  false  "Inicio del período (YYYY-MM-DD)"
// @Param        end_date    query  string  false  "Fin del período (YYYY-MM-DD)"
// @Success      200  {object}  dto.ROIReportDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/reports/roi [get]
func (h *ReportHandler) GetROI(c *fiber.Ctx) error {
	var req dto.RangeRequest
	if err := bindQuery(c, &req); err != nil {
		return respondError(c, h.log, err)
	}
	return run(h, c, "roi", func(ctx context.Context) (*dto.ROIReportDTO, error) {
		return h.uc.ROI(ctx, req)
	})
}

// GetStockValue godoc
// @Summary      Valor del inventario
// @Description  Valor a precio de venta y de costo, por producto y por categoría, activo vs. inactivo.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.StockValueReportDTO
// @Failure      409  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/reports/stock-value [get]
func (h *ReportHandler) GetStockValue(c *fiber.Ctx) error {
	return run(h, c, "stock-value", func(ctx context.Context) (*dto.StockValueReportDTO, error) {
		return h.uc.StockValue(ctx)
	})
}

// GetDashboard devuelve el resumen financiero del día y del mes en curso.
// GET /api/reports/dashboard
//
// No requiere parámetros; las fechas se calculan en el servidor.
func (h *ReportHandler) GetDashboard(c *fiber.Ctx) error {
	return run(h, c, "dashboard", func(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
		return h.uc.Dashboard(ctx)
	})
}

// GetProductRanking godoc
// @Summary      Ranking de productos por utilidad (Pareto 80/20)
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        start_date  query  string  false  "Inicio del período (YYYY-MM-DD)"
// @Param        end_date    query  string  false  "Fin del período (YYYY-MM-DD)"
// @Param        top_n       query  int     false  "Máx. productos en el ranking (default 20, max 200)"
// @Success      200  {object}  dto.ProductRankingDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/reports/products/ranking [get]
func (h *ReportHandler) GetProductRanking(c *fiber.Ctx) error {
	var req dto.RankingRequest
	if err := bindQuery(c, &req); err != nil {
		return respondError(c, h.log, err)
	}
	return run(h, c, "ranking", func(ctx context.Context) (*dto.ProductRankingDTO, error) {
		return h.uc.ProductRanking(ctx, req)
	})
}

// GetLowStock productos en o bajo el stock mínimo con la cantidad sugerida de reposición.
// GET /api/reports/inventory/low-stock
func (h *ReportHandler) GetLowStock(c *fiber.Ctx) error {
	return run(h, c, "low-stock", func(ctx context.Context) (*dto.LowStockReportDTO, error) {
		return h.uc.LowStock(ctx)
	})
}

// Export godoc
// @Summary      Exportar un reporte
// @Description  Descarga el reporte como CSV, XLSX o PDF.
// @Tags         reports
// @Security     Bearer
// @Produce      octet-stream
// @Param        report      path   string  true   "cogs | cogs-products | net-profit | break-even | roi | stock-value"
// @Param        format      query  string  false  "csv (default) | xlsx | pdf"
// @Param        start_date  query  string  false  "Inicio del período (YYYY-MM-DD)"
// @Param        end_date    query  string  false  "Fin del período (YYYY-MM-DD)"
// @Param        all         query  bool    false  "Solo break-even: todo el histórico"
// @Success      200  {file}    file
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/reports/{report}/export [get]
func (h *ReportHandler) Export(c *fiber.Ctx) error {
	report := c.Params("report")
	var req dto.ExportRequest
	if err := bindQuery(c, &req); err != nil {
		return respondError(c, h.log, err)
	}

	ctx, done := h.sup.Begin(c.UserContext(), supersedeKey(c, "export:"+report))
	defer done()

	file, err := h.uc.Export(ctx, report, req)
	if err != nil {
		return respondError(c, h.log, err)
	}
	c.Set(fiber.HeaderContentType, file.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", file.Filename))
	return c.Send(file.Data)
}
