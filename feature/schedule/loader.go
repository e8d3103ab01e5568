package schedule

import (
	"strings"

	"booking-sync/feature/export"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
	enabled bool
}

// NewFeature creates a new schedule feature.
func NewFeature(cfg export.Config, debug bool, logger *zap.Logger) *Feature {
	svc := NewService(cfg, debug, logger)
	enabled := false
	for _, f := range cfg.Formats {
		if strings.EqualFold(strings.TrimSpace(f), export.FormatJSON) {
			enabled = true
		}
	}
	return &Feature{service: svc, handler: NewHandler(svc), enabled: enabled}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "schedule"
}

// IsEnabled reports whether the JSON export backing the view is configured.
func (f *Feature) IsEnabled() bool {
	return f.enabled
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}

// Service exposes the feature's service, used to refresh the view after a run.
func (f *Feature) Service() *Service {
	return f.service
}
