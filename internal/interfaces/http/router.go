package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/retail-analytics-api/internal/application/reports"
	"github.com/jhoicas/retail-analytics-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Reports    *reports.UseCase
	Superseder *reports.Superseder
	Logger     *logger.Logger
	JWTSecret  string // vacío = API sin autenticación (despliegue interno)
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Con secreto configurado los reportes requieren Bearer Token; los financieros
	// quedan restringidos a admin y gerente, el cajero solo ve dashboard y stock bajo.
	var (
		anyRole   []fiber.Handler
		financial []fiber.Handler
	)
	if deps.JWTSecret != "" {
		auth := AuthMiddleware(deps.JWTSecret)
		anyRole = []fiber.Handler{auth, RequireRole(RoleAdmin, RoleGerente, RoleCajero)}
		financial = []fiber.Handler{auth, RequireRole(RoleAdmin, RoleGerente)}
	}

	h := NewReportHandler(deps.Reports, deps.Superseder, deps.Logger)

	r := api.Group("/reports")
	r.Get("/dashboard", with(anyRole, h.GetDashboard)...)
	r.Get("/inventory/low-stock", with(anyRole, h.GetLowStock)...)

	r.Get("/cogs", with(financial, h.GetCOGS)...)
	r.Get("/net-profit", with(financial, h.GetNetProfit)...)
	r.Get("/break-even", with(financial, h.GetBreakEven)...)
	r.Post("/break-even/scenarios", with(financial, h.PostScenarios)...)
	r.Get("/roi", with(financial, h.GetROI)...)
	r.Get("/stock-value", with(financial, h.GetStockValue)...)
	r.Get("/products/ranking", with(financial, h.GetProductRanking)...)
	r.Get("/:report/export", with(financial, h.Export)...)
}

func with(middleware []fiber.Handler, h fiber.Handler) []fiber.Handler {
	out := make([]fiber.Handler, 0, len(middleware)+1)
	out = append(out, middleware...)
	return append(out, h)
}
