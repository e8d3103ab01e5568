package sync

import (
	"context"
	"fmt"
	"time"

	"booking-sync/core/calcom"
	"booking-sync/feature/bookings"
	"booking-sync/feature/export"
	"booking-sync/feature/reconcile"
	"booking-sync/feature/slots"

	"go.uber.org/zap"
)

// Report describes one pipeline run.
type Report struct {
	// Bookings is the number of accepted bookings of the event type.
	Bookings int `json:"bookings"`
	// Persons is the number of distinct attendees across those bookings.
	Persons int `json:"persons"`
	// RemoteSlots is the number of slots reported by the provider.
	RemoteSlots int `json:"remote_slots"`
	// Summary holds the reconciliation counts.
	Summary reconcile.Summary `json:"summary"`
	// Export lists what was written.
	Export *export.Result `json:"export"`
	// Duration is the wall time of the run.
	Duration time.Duration `json:"duration"`
}

// Service runs the synchronization pipeline.
type Service struct {
	calcomCfg calcom.Config
	schedule  slots.Config
	client    calcom.Client
	exporter  *export.Exporter
	logger    *zap.Logger
}

// NewService creates a new synchronization service.
func NewService(calcomCfg calcom.Config, schedule slots.Config, client calcom.Client, exporter *export.Exporter, logger *zap.Logger) *Service {
	return &Service{
		calcomCfg: calcomCfg,
		schedule:  schedule,
		client:    client,
		exporter:  exporter,
		logger:    logger,
	}
}

// Run fetches, reconciles and exports the dataset once. Nothing is exported when any stage
// before the export fails. debug selects the debug output names.
func (s *Service) Run(ctx context.Context, debug bool) (*Report, error) {
	began := time.Now()

	if err := s.calcomCfg.Validate(); err != nil {
		return nil, err
	}
	calendar, loc, err := s.schedule.Calendar()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", calcom.ErrConfiguration, err)
	}
	query, err := s.calcomCfg.SlotsQuery(loc.String())
	if err != nil {
		return nil, err
	}

	accepted, err := bookings.NewFetcher(s.calcomCfg, s.client, s.logger).Fetch(ctx)
	if err != nil {
		return nil, err
	}
	rows := bookings.Format(accepted, loc)
	s.logger.Info("Bookings loaded",
		zap.Int("booked_slots", len(accepted)),
		zap.Int("persons", bookings.Persons(rows)),
	)

	remote, err := slots.FetchRemote(ctx, s.client, query, loc)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Calendar ready",
		zap.Int("slots", len(calendar)),
		zap.Int("remote_slots", len(remote)),
	)

	joined, summary := reconcile.Join(calendar, remote, rows)
	if summary.UnmatchedBookings > 0 {
		s.logger.Warn("Bookings outside the calendar were dropped",
			zap.Int("unmatched", summary.UnmatchedBookings),
		)
	}

	result, err := s.exporter.Export(ctx, joined, debug)
	if err != nil {
		return nil, fmt.Errorf("failed to export dataset: %w", err)
	}

	report := &Report{
		Bookings:    len(accepted),
		Persons:     bookings.Persons(rows),
		RemoteSlots: len(remote),
		Summary:     summary,
		Export:      result,
		Duration:    time.Since(began),
	}
	s.logger.Info("Synchronization complete",
		zap.Int("rows", summary.Rows),
		zap.Int("occupied", summary.Occupied),
		zap.Strings("files", result.Files),
		zap.Duration("duration", report.Duration),
	)
	return report, nil
}
