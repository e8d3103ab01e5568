package bookings

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

func testConfig() calcom.Config {
	return calcom.Config{APIKey: "cal_test", EventTypeID: 974519}
}

func booking(id, eventType int, status calcom.BookingStatus) calcom.Booking {
	start := time.Date(2024, 8, 26, 7, 0, 0, 0, time.UTC)
	return calcom.Booking{
		ID:          id,
		EventTypeID: eventType,
		Status:      status,
		StartTime:   start,
		EndTime:     start.Add(90 * time.Minute),
	}
}

func TestFetch_FiltersStatusAndEventType(t *testing.T) {
	client := new(mocks.Client)
	client.On("ListBookings", mock.Anything).Return([]calcom.Booking{
		booking(1, 974519, calcom.StatusAccepted),
		booking(2, 974519, calcom.StatusCancelled),
		booking(3, 974519, calcom.StatusPending),
		booking(4, 111111, calcom.StatusAccepted),
		booking(5, 974519, calcom.StatusAccepted),
	}, nil)

	f := NewFetcher(testConfig(), client, zap.NewNop())
	got, err := f.Fetch(context.Background())
	require.NoError(t, err)

	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].ID)
	assert.Equal(t, 5, got[1].ID)
	client.AssertExpectations(t)
}

func TestFetch_ConfigurationErrorBeforeClient(t *testing.T) {
	tests := []struct {
		name string
		cfg  calcom.Config
	}{
		{"MissingAPIKey", calcom.Config{EventTypeID: 974519}},
		{"MissingEventType", calcom.Config{APIKey: "cal_test"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// No expectations: any call on the client fails the test.
			client := new(mocks.Client)

			f := NewFetcher(tt.cfg, client, zap.NewNop())
			_, err := f.Fetch(context.Background())
			assert.ErrorIs(t, err, calcom.ErrConfiguration)
			client.AssertNotCalled(t, "ListBookings", mock.Anything)
		})
	}
}

func TestFetch_ClientError(t *testing.T) {
	client := new(mocks.Client)
	client.On("ListBookings", mock.Anything).Return(nil, errors.Join(calcom.ErrRemoteFetch, errors.New("status 502")))

	f := NewFetcher(testConfig(), client, zap.NewNop())
	_, err := f.Fetch(context.Background())
	assert.ErrorIs(t, err, calcom.ErrRemoteFetch)
}

func TestFilter_Empty(t *testing.T) {
	assert.Empty(t, Filter(nil, 974519))
}
