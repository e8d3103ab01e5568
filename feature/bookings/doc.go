// Package bookings retrieves accepted bookings from Cal.com and flattens them into one row
// per attendee.
//
// # Fetching
//
// Fetcher validates the provider configuration before touching the client, so a missing API key
// or event type id fails with calcom.ErrConfiguration and no request or file read happens. The
// client is either the live HTTP client or the fixture client used in offline mode.
//
// Only bookings of the configured event type with status ACCEPTED are kept, in source order.
//
// # Formatting
//
// Format emits one Row per (booking, attendee) pair. Every row of a booking shares the booking's
// start and end, converted to the target location. Attendee names go through NormalizeName.
package bookings
