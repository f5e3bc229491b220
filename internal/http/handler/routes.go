package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"labelprint/internal/printer"
	"labelprint/internal/service"
)

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// Keep handlers minimal and free of business logic.
func RegisterRoutes(app *fiber.App, db *sql.DB, svc service.PrintService, backends map[string]printer.Backend) {
	// Readiness: checks DB connectivity only.
	app.Get("/health", HealthCheck(db))

	// Simple liveness probe.
	app.Get("/healthz", LivenessProbe())

	api := app.Group("/api/print")

	api.Get("/status", PrinterStatus(backends))
	api.Post("/label", PrintOrderLabel(svc))
	// Kept for clients that still post to the older explicit path.
	api.Post("/label/engineer_order", PrintOrderLabel(svc))
	api.Post("/label_img", PrintImageLabel(svc))

	api.Get("/jobs", ListJobs(svc))
	api.Get("/jobs/:id", GetJob(svc))
}
