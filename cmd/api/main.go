package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/retail-analytics-api/docs"
	"github.com/jhoicas/retail-analytics-api/internal/application/reports"
	infrapdf "github.com/jhoicas/retail-analytics-api/internal/infrastructure/pdf"
	"github.com/jhoicas/retail-analytics-api/internal/infrastructure/postgres"
	infraxlsx "github.com/jhoicas/retail-analytics-api/internal/infrastructure/xlsx"
	httpRouter "github.com/jhoicas/retail-analytics-api/internal/interfaces/http"
	"github.com/jhoicas/retail-analytics-api/pkg/config"
	"github.com/jhoicas/retail-analytics-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("timezone", cfg.Report.Timezone).
		Msg("iniciando aplicación")

	loc, err := cfg.Report.Location()
	if err != nil {
		log.Fatal().Err(err).Msg("zona horaria de reportes")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	source := postgres.NewReportDataSource(pool, loc)
	reportsUC := reports.NewUseCase(source, reports.Options{
		Location:        loc,
		DefaultCurrency: cfg.Report.DefaultCurrency,
		MaxRangeDays:    cfg.Report.MaxRangeDays,
	},
		infraxlsx.NewReportRenderer(),
		infrapdf.NewReportRenderer(cfg.Report.Locale),
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 60,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))
	app.Use(cors.New(cors.Config{
		AllowOrigins:  cfg.HTTP.AllowOrigins,
		ExposeHeaders: "Content-Disposition, " + httpRouter.HeaderRequestID,
	}))

	// Swagger UI en local: http://localhost:<port>/docs
	if spec, err := docs.JSON(); err != nil {
		log.Warn().Err(err).Msg("especificación OpenAPI no disponible")
	} else {
		app.Use(swagger.New(swagger.Config{
			BasePath:    "/",
			FilePath:    "swagger.json",
			FileContent: spec,
			Path:        "docs",
			Title:       "Retail Analytics API",
		}))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		pingCtx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := pool.Ping(pingCtx); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "degraded", "service": cfg.App.Name})
		}
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	if cfg.JWT.Secret == "" {
		log.Warn().Msg("JWT_SECRET vacío: los reportes no requieren autenticación")
	}
	httpRouter.Router(app, httpRouter.RouterDeps{
		Reports:    reportsUC,
		Superseder: reports.NewSuperseder(),
		Logger:     log,
		JWTSecret:  cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
