package calcom

import "time"

// BookingStatus is the provider's booking lifecycle state.
type BookingStatus string

const (
	StatusAccepted  BookingStatus = "ACCEPTED"
	StatusCancelled BookingStatus = "CANCELLED"
	StatusPending   BookingStatus = "PENDING"
	StatusRejected  BookingStatus = "REJECTED"
)

// Attendee is a person registered on a booking.
type Attendee struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	TimeZone string `json:"timeZone"`
}

// Booking is a reservation as reported by the provider.
type Booking struct {
	ID          int           `json:"id"`
	EventTypeID int           `json:"eventTypeId"`
	Status      BookingStatus `json:"status"`
	StartTime   time.Time     `json:"startTime"`
	EndTime     time.Time     `json:"endTime"`
	Attendees   []Attendee    `json:"attendees"`
}

// RemoteSlot is one entry of the provider's availability map.
// Attendees is nil when the provider omits the field, which means the slot is empty.
type RemoteSlot struct {
	Time      time.Time `json:"time"`
	Attendees *int      `json:"attendees,omitempty"`
}

// Availability maps a calendar date (YYYY-MM-DD) to the slots of that day.
type Availability map[string][]RemoteSlot

// SlotsQuery holds the parameters of an availability request.
type SlotsQuery struct {
	EventTypeID int
	Start       time.Time
	End         time.Time
	TimeZone    string
}

// CancelResult is the provider acknowledgement of a cancellation.
type CancelResult struct {
	BookingID int    `json:"-"`
	Message   string `json:"message"`
}

type bookingsResponse struct {
	Bookings []Booking `json:"bookings"`
}

type slotsResponse struct {
	Slots Availability `json:"slots"`
}
