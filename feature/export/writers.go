package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"github.com/xuri/excelize/v2"

	ical "github.com/arran4/golang-ical"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// SheetName is the worksheet holding the XLSX export.
const SheetName = "Creneaux"

// writeFunc serializes the records of one format.
type writeFunc func(w io.Writer, records []Record) error

func writeCSV(w io.Writer, records []Record) error {
	cw := csv.NewWriter(w)
	cw.Comma = ';'
	if err := cw.Write(Columns); err != nil {
		return err
	}
	for _, r := range records {
		if err := cw.Write(r.Cells(TimeLayout)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func writeJSON(w io.Writer, records []Record) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}

func writeXLSX(w io.Writer, records []Record) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return err
	}

	header := make([]interface{}, len(Columns))
	for i, c := range Columns {
		header[i] = c
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return err
	}

	for i, r := range records {
		cells := r.Cells(TimeLayout)
		row := make([]interface{}, 0, len(cells))
		for _, c := range cells[:len(cells)-1] {
			row = append(row, c)
		}
		row = append(row, r.Occupied)

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return err
		}
	}

	_, err := f.WriteTo(w)
	return err
}

// icsNamespace seeds the deterministic event UIDs.
var icsNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://cal.com/booking-sync"))

// icsWriter emits one event per occupied slot.
type icsWriter struct {
	slotLength time.Duration
	now        func() time.Time
}

func (iw icsWriter) write(w io.Writer, records []Record) error {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId("-//booking-sync//EN")

	stamp := iw.now()
	for _, slot := range occupiedSlots(records) {
		end := slot.start.Add(iw.slotLength)
		if slot.end != nil {
			end = *slot.end
		}

		uid := uuid.NewSHA1(icsNamespace, []byte(slot.start.UTC().Format(time.RFC3339)))
		event := cal.AddEvent(uid.String())
		event.SetDtStampTime(stamp)
		event.SetStartAt(slot.start)
		event.SetEndAt(end)
		event.SetSummary(fmt.Sprintf("Occupied (%d)", len(slot.names)))
		if len(slot.names) > 0 {
			event.SetDescription(strings.Join(slot.names, ", "))
		}
	}

	_, err := io.WriteString(w, cal.Serialize())
	return err
}

type occupiedSlot struct {
	start time.Time
	end   *time.Time
	names []string
}

// occupiedSlots groups consecutive records of the same occupied slot.
func occupiedSlots(records []Record) []occupiedSlot {
	var out []occupiedSlot
	for _, r := range records {
		if !r.Occupied {
			continue
		}
		if n := len(out); n == 0 || !out[n-1].start.Equal(r.Start) {
			out = append(out, occupiedSlot{start: r.Start})
		}
		last := &out[len(out)-1]
		if r.End != nil && last.end == nil {
			last.end = r.End
		}
		if r.Name != nil && *r.Name != "" {
			last.names = append(last.names, *r.Name)
		}
	}
	return out
}
