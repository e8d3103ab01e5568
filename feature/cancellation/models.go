package cancellation

import "time"

// Options controls whether a plan is executed.
type Options struct {
	// DryRun prevents any cancellation if true.
	DryRun bool

	// Confirmed indicates the operator accepted the plan.
	// If false, nothing is cancelled regardless of DryRun.
	Confirmed bool
}

// Action is one planned cancellation.
type Action struct {
	BookingID int       `json:"booking_id"`
	Start     time.Time `json:"start"`
	Attendees []string  `json:"attendees"`
}

// Plan lists the bookings that would be cancelled.
type Plan struct {
	Actions []Action `json:"actions"`
	// Attendees is the number of people notified if the plan runs.
	Attendees int `json:"attendees"`
}

// Outcome is the provider acknowledgement of one cancellation.
type Outcome struct {
	BookingID int    `json:"booking_id"`
	Message   string `json:"message"`
}
