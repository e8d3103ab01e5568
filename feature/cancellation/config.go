package cancellation

import "time"

// Config holds configuration for the cancellation workflow.
type Config struct {
	// Delay is the pause between two cancellation calls.
	Delay time.Duration `mapstructure:"delay" default:"3s"`
	// Reason is sent to the provider and forwarded to every attendee.
	Reason string `mapstructure:"reason" default:"This session has been rescheduled. Please register again with the new link."`
}
