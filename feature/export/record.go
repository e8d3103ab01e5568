package export

import (
	"time"

	"booking-sync/feature/reconcile"
)

// Column names of the exported dataset, shared by every format and the web view.
const (
	ColumnStart    = "Creneau"
	ColumnEnd      = "Fin"
	ColumnTimeZone = "Fuseau Horaire"
	ColumnName     = "Nom Prenom"
	ColumnEmail    = "Email"
	ColumnOccupied = "Occupe"
)

// Columns lists the dataset columns in export order.
var Columns = []string{ColumnStart, ColumnEnd, ColumnTimeZone, ColumnName, ColumnEmail, ColumnOccupied}

// TimeLayout is the instant format of the CSV and XLSX exports.
const TimeLayout = "2006-01-02 15:04:05-07:00"

// Record is one exported line. Booking fields are nil when no booking matched the slot.
type Record struct {
	Start    time.Time  `json:"Creneau"`
	End      *time.Time `json:"Fin"`
	TimeZone *string    `json:"Fuseau Horaire"`
	Name     *string    `json:"Nom Prenom"`
	Email    *string    `json:"Email"`
	Occupied bool       `json:"Occupe"`
}

// Records converts reconciled rows into export records.
func Records(rows []reconcile.Row) []Record {
	out := make([]Record, 0, len(rows))
	for _, r := range rows {
		rec := Record{Start: r.SlotStart, Occupied: r.Occupied}
		if b := r.Booking; b != nil {
			end := b.SlotEnd
			tz, name, email := b.TimeZone, b.Name, b.Email
			rec.End = &end
			rec.TimeZone = &tz
			rec.Name = &name
			rec.Email = &email
		}
		out = append(out, rec)
	}
	return out
}

// Cells returns the record as display strings in column order.
// Absent booking fields are empty strings.
func (r Record) Cells(layout string) []string {
	end := ""
	if r.End != nil {
		end = r.End.Format(layout)
	}
	occupied := "False"
	if r.Occupied {
		occupied = "True"
	}
	return []string{
		r.Start.Format(layout),
		end,
		deref(r.TimeZone),
		deref(r.Name),
		deref(r.Email),
		occupied,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
