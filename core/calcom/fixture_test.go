package calcom_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"booking-sync/core/calcom"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFixtureClient_JSON(t *testing.T) {
	client, err := calcom.NewFixtureClient(calcom.Config{
		BookingsFixture: writeFile(t, "dump_bookings.json", bookingsBody),
		SlotsFixture:    writeFile(t, "dump_available_slots.json", slotsBody),
	})
	require.NoError(t, err)

	bookings, err := client.ListBookings(context.Background())
	require.NoError(t, err)
	assert.Len(t, bookings, 1)

	availability, err := client.ListSlots(context.Background(), calcom.SlotsQuery{})
	require.NoError(t, err)
	assert.Len(t, availability["2024-08-26"], 2)
}

func TestFixtureClient_YAML(t *testing.T) {
	yamlBookings := `
bookings:
  - id: 7
    eventTypeId: 974519
    status: ACCEPTED
    startTime: "2024-08-26T07:00:00Z"
    endTime: "2024-08-26T08:30:00Z"
    attendees:
      - name: Marie Curie
        email: marie@example.com
        timeZone: Europe/Paris
`
	client, err := calcom.NewFixtureClient(calcom.Config{
		BookingsFixture: writeFile(t, "dump_bookings.yaml", yamlBookings),
	})
	require.NoError(t, err)

	bookings, err := client.ListBookings(context.Background())
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, 7, bookings[0].ID)
	assert.Equal(t, "Marie Curie", bookings[0].Attendees[0].Name)
}

func TestFixtureClient_Errors(t *testing.T) {
	t.Run("MissingFile", func(t *testing.T) {
		client, err := calcom.NewFixtureClient(calcom.Config{BookingsFixture: filepath.Join(t.TempDir(), "nope.json")})
		require.NoError(t, err)

		_, err = client.ListBookings(context.Background())
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("MissingSlotsKey", func(t *testing.T) {
		client, err := calcom.NewFixtureClient(calcom.Config{SlotsFixture: writeFile(t, "slots.json", `{}`)})
		require.NoError(t, err)

		_, err = client.ListSlots(context.Background(), calcom.SlotsQuery{})
		assert.ErrorIs(t, err, calcom.ErrDataShape)
	})

	t.Run("CancelIsOffline", func(t *testing.T) {
		client, err := calcom.NewFixtureClient(calcom.Config{})
		require.NoError(t, err)

		_, err = client.CancelBooking(context.Background(), 1, "reason")
		assert.ErrorIs(t, err, calcom.ErrOffline)
	})
}
