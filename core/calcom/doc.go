// Package calcom is the boundary with the Cal.com scheduling provider (API v1).
//
// Every payload crossing this boundary is validated against a JSON Schema and decoded
// into the typed entities of this package (Booking, Attendee, RemoteSlot), so callers
// never handle untyped maps.
//
// # Clients
//
//   - NewClient: live HTTP client with a bounded per-request timeout.
//   - NewFixtureClient: offline client reading dump files (JSON or YAML).
//
// # Errors
//
//   - ErrConfiguration: missing API key / event type id, invalid window.
//   - ErrRemoteFetch: transport failure or non-2xx answer. No retry is attempted.
//   - ErrDataShape: payload does not match the expected schema.
//
// The API key travels as a query parameter and is stripped from any returned error.
package calcom
