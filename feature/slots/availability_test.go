package slots_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"booking-sync/core/calcom"
	"booking-sync/core/calcom/mocks"
	"booking-sync/feature/slots"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestFromRemote(t *testing.T) {
	loc := paris(t)
	availability := calcom.Availability{
		"2024-08-27": {
			{Time: time.Date(2024, 8, 27, 7, 0, 0, 0, time.UTC), Attendees: intPtr(0)},
		},
		"2024-08-26": {
			{Time: time.Date(2024, 8, 26, 7, 0, 0, 0, time.UTC)},
			{Time: time.Date(2024, 8, 26, 8, 30, 0, 0, time.UTC), Attendees: intPtr(3)},
		},
	}

	got := slots.FromRemote(availability, loc)
	require.Len(t, got, 3)

	assert.Equal(t, "2024-08-26T09:00:00+02:00", got[0].Start.Format(time.RFC3339))
	assert.False(t, got[0].Occupied, "missing attendees means empty")
	assert.Equal(t, "2024-08-26T10:30:00+02:00", got[1].Start.Format(time.RFC3339))
	assert.True(t, got[1].Occupied)
	assert.Equal(t, "2024-08-27T09:00:00+02:00", got[2].Start.Format(time.RFC3339))
	assert.False(t, got[2].Occupied, "zero attendees means empty")
}

func TestFromRemote_WinterOffset(t *testing.T) {
	loc := paris(t)
	availability := calcom.Availability{
		"2024-10-27": {
			{Time: time.Date(2024, 10, 26, 23, 30, 0, 0, time.UTC)},
			{Time: time.Date(2024, 10, 27, 1, 0, 0, 0, time.UTC)},
		},
	}

	got := slots.FromRemote(availability, loc)
	require.Len(t, got, 2)
	assert.Equal(t, "2024-10-27T01:30:00+02:00", got[0].Start.Format(time.RFC3339))
	assert.Equal(t, "2024-10-27T02:00:00+01:00", got[1].Start.Format(time.RFC3339))
}

func TestFetchRemote(t *testing.T) {
	loc := paris(t)
	query := calcom.SlotsQuery{EventTypeID: 974519, TimeZone: "Europe/Paris"}

	t.Run("Success", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("ListSlots", mock.Anything, query).Return(calcom.Availability{
			"2024-08-26": {{Time: time.Date(2024, 8, 26, 7, 0, 0, 0, time.UTC), Attendees: intPtr(1)}},
		}, nil)

		got, err := slots.FetchRemote(context.Background(), client, query, loc)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.True(t, got[0].Occupied)
		client.AssertExpectations(t)
	})

	t.Run("Failure", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("ListSlots", mock.Anything, query).Return(nil, errors.Join(calcom.ErrRemoteFetch, errors.New("status 500")))

		_, err := slots.FetchRemote(context.Background(), client, query, loc)
		assert.ErrorIs(t, err, calcom.ErrRemoteFetch)
	})
}
