package integrity

import (
	"context"
	"fmt"

	"booking-sync/core/storage"
	"booking-sync/feature/export"
	"booking-sync/feature/integrity/checks"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service inspects the outputs of the last synchronization run.
type Service struct {
	exportCfg  export.Config
	debug      bool
	client     storage.Client
	storageCfg storage.Config
	db         *gorm.DB
	logger     *zap.Logger
}

// NewService creates a new integrity service. client and db may be nil when the
// matching sink is disabled.
func NewService(exportCfg export.Config, debug bool, client storage.Client, storageCfg storage.Config, db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{
		exportCfg:  exportCfg,
		debug:      debug,
		client:     client,
		storageCfg: storageCfg,
		db:         db,
		logger:     logger,
	}
}

// CheckExports returns the expected export files and the formats missing on disk.
func (s *Service) CheckExports() ([]checks.FileStatus, []string, error) {
	return checks.CheckExports(s.exportCfg, s.debug)
}

// CheckStorage returns the expected objects missing from the bucket.
func (s *Service) CheckStorage(ctx context.Context) ([]string, error) {
	if s.client == nil {
		return nil, fmt.Errorf("object storage is not configured")
	}
	return checks.CheckStorage(ctx, s.client, s.storageCfg, checks.ExpectedFiles(s.exportCfg, s.debug))
}

// FixStorage creates the export bucket.
func (s *Service) FixStorage(ctx context.Context) error {
	if s.client == nil {
		return fmt.Errorf("object storage is not configured")
	}
	return checks.FixStorage(ctx, s.client, s.storageCfg)
}

// CheckDatabase reports on the snapshot table.
func (s *Service) CheckDatabase(ctx context.Context) (*checks.DatabaseReport, error) {
	return checks.CheckDatabase(ctx, s.db)
}
