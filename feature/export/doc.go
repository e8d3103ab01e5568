// Package export serializes the reconciled dataset.
//
// Each configured format is written to <dir>/<basename>.<format>, or debug_<basename> for
// offline runs. Files are written to a temporary name and renamed into place, so a reader
// never sees a partial file.
//
// # Formats
//
//   - csv: semicolon separated, header row, instants as 2006-01-02 15:04:05-07:00.
//   - json: array of records keyed by column name, RFC3339 instants, null booking fields
//     on unmatched slots.
//   - xlsx: a single "Creneaux" sheet with the CSV columns.
//   - ics: one event per occupied slot, attendee names in the description.
//
// # Sinks
//
// When enabled, the written files are uploaded to object storage under the configured prefix
// and the reconciled_slots table is replaced with the dataset in one transaction.
package export
