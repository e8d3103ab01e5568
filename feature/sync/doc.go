// Package sync wires the pipeline: fetch bookings, format them, generate the calendar, fetch
// the remote availability, reconcile and export.
//
// Every run recomputes the whole dataset. Configuration errors surface before any request,
// and any fetch or decode failure aborts the run before a file is touched.
//
// # Usage
//
//	client, _ := calcom.Open(cfg.Calcom, offline)
//	exporter := export.NewExporter(cfg.Export, cfg.Schedule.Interval, logg)
//	report, err := sync.NewService(cfg.Calcom, cfg.Schedule, client, exporter, logg).Run(ctx, offline)
package sync
