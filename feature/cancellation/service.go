package cancellation

import (
	"context"
	"fmt"
	"time"

	"booking-sync/core/calcom"
	"booking-sync/feature/bookings"

	"go.uber.org/zap"
)

// Service cancels the accepted bookings of the configured event type.
type Service struct {
	cfg     Config
	fetcher *bookings.Fetcher
	client  calcom.Client
	logger  *zap.Logger
	wait    func(ctx context.Context, d time.Duration) error
}

// NewService creates a new cancellation service.
func NewService(cfg Config, calcomCfg calcom.Config, client calcom.Client, logger *zap.Logger) *Service {
	return &Service{
		cfg:     cfg,
		fetcher: bookings.NewFetcher(calcomCfg, client, logger),
		client:  client,
		logger:  logger,
		wait:    sleep,
	}
}

// Plan fetches the bookings that a run would cancel. It never mutates anything.
func (s *Service) Plan(ctx context.Context, loc *time.Location) (*Plan, error) {
	accepted, err := s.fetcher.Fetch(ctx)
	if err != nil {
		return nil, err
	}

	plan := &Plan{Actions: make([]Action, 0, len(accepted))}
	for _, b := range accepted {
		names := make([]string, 0, len(b.Attendees))
		for _, a := range b.Attendees {
			names = append(names, bookings.NormalizeName(a.Name))
		}
		plan.Actions = append(plan.Actions, Action{
			BookingID: b.ID,
			Start:     b.StartTime.In(loc),
			Attendees: names,
		})
		plan.Attendees += len(names)
	}
	return plan, nil
}

// Apply cancels every booking of the plan, pausing Config.Delay between calls.
// Requires opts.Confirmed=true and opts.DryRun=false to actually execute.
// The first provider error stops the run; outcomes gathered so far are returned with it.
func (s *Service) Apply(ctx context.Context, plan *Plan, opts Options) ([]Outcome, error) {
	if !opts.Confirmed || opts.DryRun {
		return nil, nil
	}

	outcomes := make([]Outcome, 0, len(plan.Actions))
	for i, action := range plan.Actions {
		if i > 0 {
			if err := s.wait(ctx, s.cfg.Delay); err != nil {
				return outcomes, err
			}
		}

		res, err := s.client.CancelBooking(ctx, action.BookingID, s.cfg.Reason)
		if err != nil {
			return outcomes, fmt.Errorf("failed to cancel booking %d: %w", action.BookingID, err)
		}

		outcomes = append(outcomes, Outcome{BookingID: action.BookingID, Message: res.Message})
		s.logger.Info("Booking cancelled",
			zap.Int("booking_id", action.BookingID),
			zap.String("message", res.Message),
		)
	}
	return outcomes, nil
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
