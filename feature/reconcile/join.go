package reconcile

import (
	"booking-sync/feature/bookings"
	"booking-sync/feature/slots"
)

// Resolve combines two occupancy signals: OR when both are present, the present one otherwise,
// false when neither is.
func Resolve(left, right Signal) bool {
	switch {
	case left.Present && right.Present:
		return left.Value || right.Value
	case left.Present:
		return left.Value
	case right.Present:
		return right.Value
	default:
		return false
	}
}

// Join left-joins the calendar with the remote availability and the booking rows.
// The output follows calendar order; rows sharing a slot keep their input order.
func Join(calendar []slots.Slot, remote []slots.Slot, rows []bookings.Row) ([]Row, Summary) {
	remoteIndex := buildRemoteIndex(remote)
	bookingIndex := buildBookingIndex(rows)

	summary := Summary{Slots: len(calendar)}
	out := make([]Row, 0, len(calendar)+len(rows))
	matched := make(map[int64]struct{}, len(calendar))

	for _, slot := range calendar {
		key := slot.Key()
		occupied := Resolve(Of(slot.Occupied), remoteSignal(remoteIndex, key))

		attached, ok := bookingIndex[key]
		if !ok {
			out = append(out, Row{SlotStart: slot.Start, Occupied: occupied})
			if occupied {
				summary.Occupied++
			}
			continue
		}

		// Every attendee row is a present, true signal.
		occupied = Resolve(Of(occupied), Of(true))
		summary.Occupied++
		if _, seen := matched[key]; !seen {
			matched[key] = struct{}{}
			summary.MatchedBookings += len(attached)
		}
		for i := range attached {
			b := attached[i]
			out = append(out, Row{SlotStart: slot.Start, Occupied: occupied, Booking: &b})
		}
	}

	summary.Rows = len(out)
	summary.UnmatchedBookings = len(rows) - summary.MatchedBookings
	return out, summary
}

// buildRemoteIndex collapses the remote slots by key with a logical OR.
func buildRemoteIndex(remote []slots.Slot) map[int64]bool {
	index := make(map[int64]bool, len(remote))
	for _, s := range remote {
		index[s.Key()] = index[s.Key()] || s.Occupied
	}
	return index
}

// buildBookingIndex groups booking rows by key, keeping input order within a key.
func buildBookingIndex(rows []bookings.Row) map[int64][]bookings.Row {
	index := make(map[int64][]bookings.Row)
	for _, r := range rows {
		index[r.Key()] = append(index[r.Key()], r)
	}
	return index
}

func remoteSignal(index map[int64]bool, key int64) Signal {
	v, ok := index[key]
	if !ok {
		return Absent
	}
	return Of(v)
}
