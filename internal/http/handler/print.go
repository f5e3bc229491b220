package handler

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"labelprint/internal/model"
	"labelprint/internal/printer"
	"labelprint/internal/service"
)

// HealthCheck reports readiness by pinging the database.
func HealthCheck(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "dependency unavailable")
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
	}
}

// LivenessProbe is a simple liveness endpoint with no dependency checks.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}

// PrinterStatus reports whether the requested printer class can accept jobs.
func PrinterStatus(backends map[string]printer.Backend) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ptype := c.Query("printer_type", "label")
		if ptype != "label" && ptype != "receipt" {
			return writeError(c, fiber.StatusBadRequest, "INVALID_PRINTER_TYPE", "printer_type must be 'label' or 'receipt'")
		}
		b, ok := backends[ptype]
		connected := ok && b.IsAvailable(c.UserContext())
		return c.JSON(fiber.Map{
			"printer_type": ptype,
			"is_connected": connected,
		})
	}
}

// PrintOrderLabel renders an engineering order onto label stock and submits it.
func PrintOrderLabel(svc service.PrintService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req orderRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "request body must be valid JSON")
		}

		job, err := svc.PrintOrder(c.UserContext(), req.toOrder(), req.options())
		if err != nil {
			return printError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(job)
	}
}

// PrintImageLabel rasterizes an uploaded image (multipart field: image) onto
// a single label and submits it.
func PrintImageLabel(svc service.PrintService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile("image")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "IMAGE_REQUIRED", "image file is required")
		}

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "IMAGE_OPEN_ERROR", "cannot open uploaded image")
		}
		defer f.Close()

		data, err := io.ReadAll(f)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "IMAGE_READ_ERROR", "cannot read uploaded image")
		}

		job, err := svc.PrintImage(c.UserContext(), data, optionsFromForm(c))
		if err != nil {
			return printError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(job)
	}
}

// ListJobs returns the print job history with limit & offset.
func ListJobs(svc service.PrintService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limitStr := c.Query("limit", "10")
		offsetStr := c.Query("offset", "0")
		limit, err := strconv.Atoi(limitStr)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_LIMIT", "invalid limit")
		}
		offset, err := strconv.Atoi(offsetStr)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_OFFSET", "invalid offset")
		}

		res, err := svc.List(c.UserContext(), limit, offset)
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(res)
	}
}

// jobResponse augments a stored job with a presigned artifact link when the
// archive is configured.
type jobResponse struct {
	model.PrintJob
	ArtifactURL string `json:"artifact_url,omitempty"`
}

// GetJob returns a single print job by ID.
func GetJob(svc service.PrintService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		job, err := svc.Get(c.UserContext(), id)
		if err != nil {
			if errors.Is(err, service.ErrJobNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "print job not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}

		url, err := svc.ArtifactURL(c.UserContext(), id)
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(jobResponse{PrintJob: *job, ArtifactURL: url})
	}
}
