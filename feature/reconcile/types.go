package reconcile

import (
	"time"

	"booking-sync/feature/bookings"
)

// Signal is an optional occupancy value contributed by one source.
type Signal struct {
	// Present is false when the source has nothing to say about the slot.
	Present bool
	// Value is the occupancy reported by the source.
	Value bool
}

// Absent is the signal of a source that has no entry for the slot.
var Absent = Signal{}

// Of returns a present signal carrying v.
func Of(v bool) Signal {
	return Signal{Present: true, Value: v}
}

// Row is one line of the reconciled dataset.
type Row struct {
	// SlotStart is the calendar slot start in the target location.
	SlotStart time.Time `json:"slot_start"`

	// Occupied is the resolved occupancy of the slot.
	Occupied bool `json:"occupied"`

	// Booking holds the attendee fields when a booking matched the slot, nil otherwise.
	Booking *bookings.Row `json:"booking,omitempty"`
}

// Summary provides aggregate counts for a join.
type Summary struct {
	// Slots is the number of calendar slots.
	Slots int `json:"slots"`

	// Rows is the number of output rows after fan-out.
	Rows int `json:"rows"`

	// Occupied counts calendar slots resolved as occupied.
	Occupied int `json:"occupied"`

	// MatchedBookings counts booking rows attached to a calendar slot.
	MatchedBookings int `json:"matched_bookings"`

	// UnmatchedBookings counts booking rows whose start matches no calendar slot.
	UnmatchedBookings int `json:"unmatched_bookings"`
}
