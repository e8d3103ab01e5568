package bookings

import (
	"context"
	"fmt"

	"booking-sync/core/calcom"

	"go.uber.org/zap"
)

// Fetcher retrieves the bookings relevant to one event type.
type Fetcher struct {
	cfg    calcom.Config
	client calcom.Client
	logger *zap.Logger
}

// NewFetcher creates a new booking fetcher.
func NewFetcher(cfg calcom.Config, client calcom.Client, logger *zap.Logger) *Fetcher {
	return &Fetcher{
		cfg:    cfg,
		client: client,
		logger: logger,
	}
}

// Fetch returns the accepted bookings of the configured event type.
func (f *Fetcher) Fetch(ctx context.Context) ([]calcom.Booking, error) {
	if err := f.cfg.Validate(); err != nil {
		return nil, err
	}

	all, err := f.client.ListBookings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	kept := Filter(all, f.cfg.EventTypeID)
	f.logger.Debug("Bookings fetched",
		zap.Int("total", len(all)),
		zap.Int("kept", len(kept)),
		zap.Int("event_type_id", f.cfg.EventTypeID),
	)
	return kept, nil
}

// Filter keeps the ACCEPTED bookings of the given event type, preserving order.
func Filter(all []calcom.Booking, eventTypeID int) []calcom.Booking {
	kept := make([]calcom.Booking, 0, len(all))
	for _, b := range all {
		if b.EventTypeID == eventTypeID && b.Status == calcom.StatusAccepted {
			kept = append(kept, b)
		}
	}
	return kept
}
