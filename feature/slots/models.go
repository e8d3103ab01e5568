package slots

import "time"

// Slot is a bookable time window identified by its start instant.
type Slot struct {
	Start    time.Time
	Occupied bool
}

// Key returns the join key of the slot: its instant, independent of location.
func (s Slot) Key() int64 {
	return s.Start.UnixNano()
}
