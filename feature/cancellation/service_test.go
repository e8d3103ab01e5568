package cancellation

import (
	"context"
	"errors"
	"testing"
	"time"

	"booking-sync/core/calcom"
	"booking-sync/core/calcom/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var testCalcom = calcom.Config{APIKey: "cal_test", EventTypeID: 974519}

func testBookings() []calcom.Booking {
	start := time.Date(2024, 8, 19, 7, 0, 0, 0, time.UTC)
	return []calcom.Booking{
		{ID: 10, EventTypeID: 974519, Status: calcom.StatusAccepted, StartTime: start, Attendees: []calcom.Attendee{{Name: " Jean  Dupont"}, {Name: "Marie"}}},
		{ID: 11, EventTypeID: 974519, Status: calcom.StatusCancelled, StartTime: start},
		{ID: 12, EventTypeID: 974519, Status: calcom.StatusAccepted, StartTime: start.Add(90 * time.Minute), Attendees: []calcom.Attendee{{Name: "Paul"}}},
		{ID: 13, EventTypeID: 5, Status: calcom.StatusAccepted, StartTime: start},
	}
}

func newTestService(client calcom.Client, waits *[]time.Duration) *Service {
	s := NewService(Config{Delay: 3 * time.Second, Reason: "rescheduled"}, testCalcom, client, zap.NewNop())
	s.wait = func(_ context.Context, d time.Duration) error {
		*waits = append(*waits, d)
		return nil
	}
	return s
}

func TestPlan(t *testing.T) {
	client := new(mocks.Client)
	client.On("ListBookings", mock.Anything).Return(testBookings(), nil)
	var waits []time.Duration

	loc, err := time.LoadLocation("Europe/Paris")
	require.NoError(t, err)

	plan, err := newTestService(client, &waits).Plan(context.Background(), loc)
	require.NoError(t, err)

	require.Len(t, plan.Actions, 2)
	assert.Equal(t, 10, plan.Actions[0].BookingID)
	assert.Equal(t, []string{"Jean Dupont", "Marie"}, plan.Actions[0].Attendees)
	assert.Equal(t, "2024-08-19T09:00:00+02:00", plan.Actions[0].Start.Format(time.RFC3339))
	assert.Equal(t, 12, plan.Actions[1].BookingID)
	assert.Equal(t, 3, plan.Attendees)
	client.AssertNotCalled(t, "CancelBooking", mock.Anything, mock.Anything, mock.Anything)
}

func TestApply_RequiresConfirmation(t *testing.T) {
	plan := &Plan{Actions: []Action{{BookingID: 10}}}

	tests := []struct {
		name string
		opts Options
	}{
		{"NotConfirmed", Options{}},
		{"DryRun", Options{DryRun: true, Confirmed: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := new(mocks.Client)
			var waits []time.Duration

			outcomes, err := newTestService(client, &waits).Apply(context.Background(), plan, tt.opts)
			assert.NoError(t, err)
			assert.Empty(t, outcomes)
			client.AssertNotCalled(t, "CancelBooking", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestApply_CancelsWithDelay(t *testing.T) {
	client := new(mocks.Client)
	client.On("CancelBooking", mock.Anything, 10, "rescheduled").Return(&calcom.CancelResult{BookingID: 10, Message: "Booking successfully cancelled."}, nil)
	client.On("CancelBooking", mock.Anything, 12, "rescheduled").Return(&calcom.CancelResult{BookingID: 12, Message: "Booking successfully cancelled."}, nil)
	var waits []time.Duration

	plan := &Plan{Actions: []Action{{BookingID: 10}, {BookingID: 12}}}
	outcomes, err := newTestService(client, &waits).Apply(context.Background(), plan, Options{Confirmed: true})
	require.NoError(t, err)

	assert.Equal(t, []Outcome{
		{BookingID: 10, Message: "Booking successfully cancelled."},
		{BookingID: 12, Message: "Booking successfully cancelled."},
	}, outcomes)
	assert.Equal(t, []time.Duration{3 * time.Second}, waits)
	client.AssertExpectations(t)
}

func TestApply_StopsOnProviderError(t *testing.T) {
	client := new(mocks.Client)
	client.On("CancelBooking", mock.Anything, 10, "rescheduled").Return(&calcom.CancelResult{Message: "ok"}, nil)
	client.On("CancelBooking", mock.Anything, 12, "rescheduled").Return(nil, errors.Join(calcom.ErrRemoteFetch, errors.New("status 404")))
	var waits []time.Duration

	plan := &Plan{Actions: []Action{{BookingID: 10}, {BookingID: 12}, {BookingID: 14}}}
	outcomes, err := newTestService(client, &waits).Apply(context.Background(), plan, Options{Confirmed: true})

	assert.ErrorIs(t, err, calcom.ErrRemoteFetch)
	assert.Len(t, outcomes, 1)
	client.AssertNotCalled(t, "CancelBooking", mock.Anything, 14, mock.Anything)
}

func TestSleep_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, sleep(ctx, time.Hour), context.Canceled)
	assert.NoError(t, sleep(context.Background(), 0))
}
