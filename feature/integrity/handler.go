package integrity

import (
	"errors"

	"booking-sync/core/logger"
	"booking-sync/feature/integrity/checks"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for integrity checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the integrity routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/integrity")
	group.Get("/", h.HandleIntegrityCheck)
	group.Get("/exports", h.HandleExportsCheck)
	group.Get("/storage", h.HandleStorageCheck)
	group.Get("/database", h.HandleDatabaseCheck)
}

// HandleIntegrityCheck runs every check.
// @Summary Run All Integrity Checks
// @Description Checks the export files, the storage bucket and the snapshot table.
// @Tags integrity
// @Produce json
// @Success 200 {object} map[string]interface{} "Combined Report"
// @Router /integrity [get]
func (h *Handler) HandleIntegrityCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Triggering all integrity checks")

	ctx := c.Context()
	report := make(map[string]interface{})

	if files, missing, err := h.service.CheckExports(); err != nil {
		report["exports"] = map[string]interface{}{"status": "error", "error": err.Error()}
	} else {
		report["exports"] = map[string]interface{}{"status": "ok", "files": files, "missing": missing}
	}

	if missing, err := h.service.CheckStorage(ctx); err != nil {
		report["storage"] = map[string]interface{}{"status": "error", "error": err.Error()}
	} else {
		report["storage"] = map[string]interface{}{"status": "ok", "missing": missing}
	}

	if db, err := h.service.CheckDatabase(ctx); err != nil {
		report["database"] = map[string]interface{}{"status": "error", "error": err.Error()}
	} else {
		report["database"] = db
	}

	return c.JSON(report)
}

// HandleExportsCheck checks the export files on disk.
// @Summary Check Exports
// @Description Lists the expected export files with their size and modification time.
// @Tags integrity
// @Produce json
// @Success 200 {object} map[string]interface{} "Exports Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/exports [get]
func (h *Handler) HandleExportsCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	files, missing, err := h.service.CheckExports()
	if err != nil {
		l.Error("Exports check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if len(missing) > 0 {
		l.Warn("Missing export files detected", zap.Strings("missing", missing))
	}

	return c.JSON(fiber.Map{
		"status":  "checked",
		"files":   files,
		"missing": missing,
	})
}

// HandleStorageCheck checks and optionally fixes the export bucket.
// @Summary Check Storage
// @Description Checks that the bucket exists and holds the published exports. Optionally creates the bucket.
// @Tags integrity
// @Produce json
// @Param fix query boolean false "Create the missing bucket"
// @Success 200 {object} map[string]interface{} "Storage Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/storage [get]
func (h *Handler) HandleStorageCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	fix := c.Query("fix") == "true"

	missing, err := h.service.CheckStorage(c.Context())
	if errors.Is(err, checks.ErrBucketMissing) && fix {
		l.Info("Attempting to create the export bucket")
		if err := h.service.FixStorage(c.Context()); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error":   "Failed to create bucket",
				"details": err.Error(),
			})
		}
		return c.JSON(fiber.Map{
			"status": "fixed",
			"fixed":  []string{h.service.storageCfg.Bucket},
		})
	}
	if err != nil {
		l.Error("Storage check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if len(missing) > 0 {
		l.Warn("Missing objects detected", zap.Strings("missing", missing))
	}

	return c.JSON(fiber.Map{
		"status":  "checked",
		"missing": missing,
	})
}

// HandleDatabaseCheck checks the snapshot table.
// @Summary Check Database
// @Description Reports whether the reconciled_slots table exists and its row count.
// @Tags integrity
// @Produce json
// @Success 200 {object} checks.DatabaseReport "Database Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/database [get]
func (h *Handler) HandleDatabaseCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.CheckDatabase(c.Context())
	if err != nil {
		l.Error("Database check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(report)
}
