package mocks

import (
	"context"

	"booking-sync/core/calcom"

	"github.com/stretchr/testify/mock"
)

// Client is a mock implementation of calcom.Client
type Client struct {
	mock.Mock
}

func (m *Client) ListBookings(ctx context.Context) ([]calcom.Booking, error) {
	args := m.Called(ctx)
	if b, ok := args.Get(0).([]calcom.Booking); ok {
		return b, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) ListSlots(ctx context.Context, query calcom.SlotsQuery) (calcom.Availability, error) {
	args := m.Called(ctx, query)
	if a, ok := args.Get(0).(calcom.Availability); ok {
		return a, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) CancelBooking(ctx context.Context, bookingID int, reason string) (*calcom.CancelResult, error) {
	args := m.Called(ctx, bookingID, reason)
	if r, ok := args.Get(0).(*calcom.CancelResult); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}
