package calcom

import (
	"fmt"
	"time"
)

// Config holds configuration for the Cal.com provider.
type Config struct {
	// BaseURL is the root of the v1 API.
	BaseURL string `mapstructure:"base_url" default:"https://api.cal.com/v1"`
	// APIKey authenticates every call. Also read from CAL_API_KEY.
	APIKey string `mapstructure:"api_key" default:""`
	// EventTypeID is the single event type this pipeline targets. Also read from EVENT_TYPE_ID.
	EventTypeID int `mapstructure:"event_type_id" default:"0"`
	// TimeoutSeconds bounds each outbound request.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"10"`
	// BookingsFixture is the bookings dump read in offline mode.
	BookingsFixture string `mapstructure:"bookings_fixture" default:"dump_bookings.json"`
	// SlotsFixture is the availability dump read in offline mode.
	SlotsFixture string `mapstructure:"slots_fixture" default:"dump_available_slots.json"`
	// SlotsStart is the beginning of the availability window sent to the provider (RFC3339).
	SlotsStart string `mapstructure:"slots_start" default:"2024-08-19T00:00:00Z"`
	// SlotsEnd is the end of the availability window sent to the provider (RFC3339).
	SlotsEnd string `mapstructure:"slots_end" default:"2024-12-04T23:59:59Z"`
}

// Validate reports a configuration error when credentials or the event type are missing.
func (c Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("%w: api key not set", ErrConfiguration)
	}
	if c.EventTypeID == 0 {
		return fmt.Errorf("%w: event type id not set", ErrConfiguration)
	}
	return nil
}

// Timeout returns the per-request timeout, defaulting to 10 seconds.
func (c Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// SlotsQuery builds the availability query for the configured window.
func (c Config) SlotsQuery(timeZone string) (SlotsQuery, error) {
	start, err := time.Parse(time.RFC3339, c.SlotsStart)
	if err != nil {
		return SlotsQuery{}, fmt.Errorf("%w: invalid slots_start: %v", ErrConfiguration, err)
	}
	end, err := time.Parse(time.RFC3339, c.SlotsEnd)
	if err != nil {
		return SlotsQuery{}, fmt.Errorf("%w: invalid slots_end: %v", ErrConfiguration, err)
	}
	return SlotsQuery{
		EventTypeID: c.EventTypeID,
		Start:       start,
		End:         end,
		TimeZone:    timeZone,
	}, nil
}
