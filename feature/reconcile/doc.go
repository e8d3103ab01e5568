// Package reconcile joins the generated calendar with the provider's occupancy signals.
//
// The join is a left join keyed on the slot start instant: every calendar slot appears in the
// output, in calendar order, and keys present only on the remote or booking side are dropped.
//
// # Signals
//
// Each source contributes at most one Signal per slot. Remote duplicates collapse with a logical
// OR and every booking row at a slot is a present, true signal. Resolve combines two signals:
//
//	left     right    result
//	absent   absent   false
//	absent   v        v
//	v        absent   v
//	a        b        a || b
//
// # Fan-out
//
// A calendar slot matched by N booking rows produces N output rows, one per attendee, each
// carrying that attendee's fields. Booking rows whose start matches no calendar slot are counted
// in Summary.UnmatchedBookings.
package reconcile
