package schedule

import (
	"bytes"
	"embed"
	"errors"
	"html/template"

	"booking-sync/core/logger"
	"booking-sync/feature/export"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

//go:embed templates/table.html
var templateFS embed.FS

var tableTemplate = template.Must(template.ParseFS(templateFS, "templates/table.html"))

// displayLayout is the instant format of the HTML table.
const displayLayout = "2006-01-02 15:04"

type tableRow struct {
	Occupied bool
	Cells    []string
}

type tablePage struct {
	Title    string
	Columns  []string
	Rows     []tableRow
	Slots    int
	Occupied int
}

// Handler handles HTTP requests for the schedule view.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the schedule routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/", h.HandleTable)
	app.Get("/csv", h.HandleTable)
	app.Get("/api/inscrits", h.HandleRegistrations)
}

// HandleTable renders the dataset as an HTML table.
func (h *Handler) HandleTable(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	records, err := h.service.Records(c.Context())
	if err != nil {
		return h.fail(c, l, err)
	}

	page := tablePage{
		Title:   "Inscriptions",
		Columns: export.Columns,
		Rows:    make([]tableRow, 0, len(records)),
	}
	seen := make(map[int64]struct{}, len(records))
	for _, r := range records {
		page.Rows = append(page.Rows, tableRow{Occupied: r.Occupied, Cells: r.Cells(displayLayout)})

		key := r.Start.UnixNano()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		page.Slots++
		if r.Occupied {
			page.Occupied++
		}
	}

	var buf bytes.Buffer
	if err := tableTemplate.Execute(&buf, page); err != nil {
		l.Error("Failed to render schedule", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	c.Type("html", "utf-8")
	return c.Send(buf.Bytes())
}

// HandleRegistrations returns the dataset as JSON.
// @Summary List registrations
// @Description Returns every slot of the calendar, one record per attendee, with ISO-8601 instants. Booking fields are null on slots without a booking.
// @Tags schedule
// @Produce json
// @Success 200 {array} export.Record "Dataset"
// @Failure 503 {object} map[string]string "Dataset not exported yet"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /api/inscrits [get]
func (h *Handler) HandleRegistrations(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	records, err := h.service.Records(c.Context())
	if err != nil {
		return h.fail(c, l, err)
	}
	return c.JSON(records)
}

func (h *Handler) fail(c *fiber.Ctx, l *zap.Logger, err error) error {
	if errors.Is(err, ErrNoDataset) {
		l.Warn("Dataset requested before the first export")
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": err.Error()})
	}
	l.Error("Failed to load dataset", zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}
