// Package cancellation cancels every accepted booking of the event type, for instance after
// the event was moved to a new booking link.
//
// The workflow has two steps. Plan lists the bookings and attendees concerned without side
// effects. Apply then cancels them one by one through the provider, with the configured reason,
// pausing between calls. Apply does nothing unless the options are confirmed and not a dry run.
package cancellation
