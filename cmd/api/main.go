package main

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"labelprint/docs"
	"labelprint/internal/config"
	"labelprint/internal/database"
	"labelprint/internal/database/migration"
	handlers "labelprint/internal/http/handler"
	"labelprint/internal/http/middleware"
	"labelprint/internal/label"
	"labelprint/internal/otel"
	"labelprint/internal/printer"
	"labelprint/internal/repository/postgres"
	"labelprint/internal/service"
	"labelprint/internal/storage"
)

// @title Label Print API
// @version 1.0
// @BasePath /
func main() {
	ctx := context.Background()

	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	// Tracing: OTLP exporter configured via standard OTEL_* variables
	shutdownTracing, err := otel.Init(ctx, time.Local)
	if err != nil {
		log.Fatalf("failed to initialize tracing: %v", err)
	}
	defer shutdownTracing(context.Background())

	// Initialize PostgreSQL connection (with pooling via database/sql)
	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := migration.EnsureMigrated(ctx, db, time.Local, cfg.Database.Host); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	// Object storage for archived command streams. Jobs still print without
	// it; an empty endpoint selects the noop archive.
	objStore := storage.NewNoop()
	if cfg.MinIO.Endpoint != "" {
		objStore, err = storage.NewMinIO(cfg.MinIO)
		if err != nil {
			log.Fatalf("failed to initialize object storage: %v", err)
		}
	}

	// Printer backend: a file spool watched by the raw print queue
	backend, err := printer.NewFileSpool(cfg.Spool.Dir, cfg.Spool.Printer)
	if err != nil {
		log.Fatalf("failed to initialize printer backend: %v", err)
	}

	// Metrics registry shared by the HTTP middleware and the print pipeline
	registry := prometheus.NewRegistry()
	promMiddleware, err := middleware.NewPrometheusMiddleware(registry)
	if err != nil {
		log.Fatalf("failed to initialize metrics: %v", err)
	}
	svcMetrics, err := service.NewMetrics(registry)
	if err != nil {
		log.Fatalf("failed to initialize metrics: %v", err)
	}

	// Stock geometry comes from configuration; layout defaults match the
	// native resolution of the supported 203 dpi printers.
	geometry := label.Geometry{
		WidthMm:  cfg.Label.WidthMm,
		HeightMm: cfg.Label.HeightMm,
		GapMm:    cfg.Label.GapMm,
		DPI:      cfg.Label.DPI,
	}
	tuning := label.Tuning{Density: cfg.Label.Density, Speed: cfg.Label.Speed, Copies: 1}

	// Initialize repositories and services
	jobRepo := postgres.NewJobPostgres(db)
	printSvc := service.NewPrintService(geometry, label.DefaultLayout(), tuning, backend, objStore, jobRepo, svcMetrics)

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
	})

	// Register global middleware
	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	// JSON Logger middleware for structured request logs
	app.Use(middleware.Logger())
	app.Use(promMiddleware.Handler())
	app.Use(otelfiber.Middleware())

	// Register HTTP routes with injected service
	handlers.RegisterRoutes(app, db, printSvc, map[string]printer.Backend{
		backend.Kind(): backend,
	})

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	addr := ":" + cfg.Port

	if err := app.Listen(addr); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
