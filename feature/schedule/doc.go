// Package schedule serves the last exported dataset over HTTP.
//
// # Routes
//
//   - GET /: HTML table of the dataset.
//   - GET /csv: same table, kept for existing links.
//   - GET /api/inscrits: JSON array of records with ISO-8601 instants.
//
// The view reads the JSON export written by the sync pipeline. The parsed file is cached and
// read again only when its modification time changes; concurrent requests share one read.
// Until a first export exists the routes answer 503.
package schedule
