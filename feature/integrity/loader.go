package integrity

import (
	"booking-sync/core/storage"
	"booking-sync/feature/export"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	handler *Handler
}

// NewFeature creates a new integrity feature.
func NewFeature(exportCfg export.Config, debug bool, client storage.Client, storageCfg storage.Config, db *gorm.DB, logger *zap.Logger) *Feature {
	svc := NewService(exportCfg, debug, client, storageCfg, db, logger)
	return &Feature{handler: NewHandler(svc)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "integrity"
}

// IsEnabled returns true if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
