package bookings

import (
	"strings"
	"time"

	"booking-sync/core/calcom"
)

// Row is one attendee of one booking.
type Row struct {
	SlotStart time.Time
	SlotEnd   time.Time
	TimeZone  string
	Name      string
	Email     string
}

// Key returns the join key of the row, the start instant.
func (r Row) Key() int64 {
	return r.SlotStart.UnixNano()
}

// Format flattens bookings into rows, booking order first then attendee order.
// A booking without attendees produces no row.
func Format(list []calcom.Booking, loc *time.Location) []Row {
	var rows []Row
	for _, b := range list {
		start := b.StartTime.In(loc)
		end := b.EndTime.In(loc)
		for _, a := range b.Attendees {
			rows = append(rows, Row{
				SlotStart: start,
				SlotEnd:   end,
				TimeZone:  a.TimeZone,
				Name:      NormalizeName(a.Name),
				Email:     a.Email,
			})
		}
	}
	return rows
}

// NormalizeName trims the name and collapses double spaces in a single pass.
// Three consecutive spaces therefore leave two.
func NormalizeName(s string) string {
	return strings.ReplaceAll(strings.TrimSpace(s), "  ", " ")
}

// Persons counts the distinct attendee emails across rows.
func Persons(rows []Row) int {
	seen := make(map[string]struct{}, len(rows))
	for _, r := range rows {
		seen[strings.ToLower(r.Email)] = struct{}{}
	}
	return len(seen)
}
