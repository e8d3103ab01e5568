package schedule

import (
	"context"
	"path/filepath"

	"booking-sync/feature/export"

	"go.uber.org/zap"
)

// Service serves the exported dataset.
type Service struct {
	store  *datasetStore
	logger *zap.Logger
}

// NewService creates a new schedule service reading the JSON export of cfg.
func NewService(cfg export.Config, debug bool, logger *zap.Logger) *Service {
	path := filepath.Join(cfg.Dir, cfg.Name(debug)+"."+export.FormatJSON)
	return &Service{
		store:  newDatasetStore(path),
		logger: logger,
	}
}

// Records returns the current dataset.
func (s *Service) Records(ctx context.Context) ([]export.Record, error) {
	ds, err := s.store.Get(ctx)
	if err != nil {
		return nil, err
	}
	return ds.Records, nil
}

// Refresh forces the next read to go back to disk.
func (s *Service) Refresh() {
	s.store.Invalidate()
}
