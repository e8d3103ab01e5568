package slots

import (
	"fmt"
	"time"
)

// DateLayout is the layout of the schedule window bounds.
const DateLayout = "2006-01-02"

// windowLayouts are the accepted bound layouts, a plain date meaning midnight.
var windowLayouts = []string{DateLayout, "2006-01-02T15:04", "2006-01-02 15:04"}

// Generate returns the slots starting at start and every interval after it, up to but
// excluding end. Steps are absolute durations, so across a DST change the wall-clock
// labels shift by the offset difference. All slots are expressed in loc and unoccupied.
func Generate(start, end time.Time, interval time.Duration, loc *time.Location) []Slot {
	if interval <= 0 || !start.Before(end) {
		return []Slot{}
	}
	if loc == nil {
		loc = start.Location()
	}

	span := end.Sub(start)
	count := int(span / interval)
	if span%interval != 0 {
		count++
	}

	out := make([]Slot, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, Slot{
			Start: start.Add(time.Duration(i) * interval).In(loc),
		})
	}
	return out
}

// Window parses the calendar bounds in loc. A bound is either a YYYY-MM-DD date, read as
// midnight, or a date with an hh:mm wall-clock time.
func Window(startDate, endDate string, loc *time.Location) (time.Time, time.Time, error) {
	start, err := parseBound(startDate, loc)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid start date %q: %w", startDate, err)
	}
	end, err := parseBound(endDate, loc)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid end date %q: %w", endDate, err)
	}
	if !start.Before(end) {
		return time.Time{}, time.Time{}, fmt.Errorf("start date %s is not before end date %s", startDate, endDate)
	}
	return start, end, nil
}

func parseBound(value string, loc *time.Location) (time.Time, error) {
	var err error
	for _, layout := range windowLayouts {
		var t time.Time
		if t, err = time.ParseInLocation(layout, value, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}
