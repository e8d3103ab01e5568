package slots

import (
	"fmt"
	"time"
)

// Config holds the calendar definition.
type Config struct {
	// Start is the first calendar bound (YYYY-MM-DD or YYYY-MM-DDThh:mm, inclusive).
	Start string `mapstructure:"start" default:"2024-08-26"`
	// End is the last calendar bound, same layouts, exclusive.
	End string `mapstructure:"end" default:"2024-09-23"`
	// Interval is the slot length.
	Interval time.Duration `mapstructure:"interval" default:"90m"`
	// TimeZone is the IANA location every instant is normalized to.
	TimeZone string `mapstructure:"timezone" default:"Europe/Paris"`
}

// Location loads the configured time zone.
func (c Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("invalid schedule timezone %q: %w", c.TimeZone, err)
	}
	return loc, nil
}

// Calendar generates the configured slots.
func (c Config) Calendar() ([]Slot, *time.Location, error) {
	loc, err := c.Location()
	if err != nil {
		return nil, nil, err
	}
	if c.Interval <= 0 {
		return nil, nil, fmt.Errorf("invalid schedule interval %s", c.Interval)
	}
	start, end, err := Window(c.Start, c.End, loc)
	if err != nil {
		return nil, nil, err
	}
	return Generate(start, end, c.Interval, loc), loc, nil
}
