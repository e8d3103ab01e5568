// Package slots produces the slot calendar and the provider's view of it.
//
// Generate builds the canonical calendar: a fixed cadence over a date window, every
// slot unoccupied. FromRemote and FetchRemote turn the provider's availability map into
// the same Slot shape so the reconcile package can join both on the start instant.
package slots
