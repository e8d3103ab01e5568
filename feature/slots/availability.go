package slots

import (
	"context"
	"fmt"
	"sort"
	"time"

	"booking-sync/core/calcom"
)

// FromRemote reshapes the provider's availability map into slots expressed in loc.
// Dates are visited in ascending order; within a date the provider's order is kept.
// A slot is occupied when it reports at least one attendee; a missing count means empty.
func FromRemote(availability calcom.Availability, loc *time.Location) []Slot {
	dates := make([]string, 0, len(availability))
	for date := range availability {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	out := make([]Slot, 0)
	for _, date := range dates {
		for _, rs := range availability[date] {
			out = append(out, Slot{
				Start:    rs.Time.In(loc),
				Occupied: rs.Attendees != nil && *rs.Attendees > 0,
			})
		}
	}
	return out
}

// FetchRemote retrieves the provider's availability for the query and reshapes it.
func FetchRemote(ctx context.Context, client calcom.Client, query calcom.SlotsQuery, loc *time.Location) ([]Slot, error) {
	availability, err := client.ListSlots(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch remote availability: %w", err)
	}
	return FromRemote(availability, loc), nil
}
