package cmd

import (
	"fmt"

	"booking-sync/core/calcom"
	"booking-sync/core/config"
	"booking-sync/core/database"
	"booking-sync/core/storage"
	"booking-sync/feature/export"
	"booking-sync/feature/sync"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var offlineSync bool

// syncCmd runs the pipeline once.
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Fetch, reconcile and export the bookings once",
	Long: `Fetches the accepted bookings and the availability of the configured event type,
reconciles them with the generated calendar and writes the configured exports.

Examples:
  # Live run against the Cal.com API
  sync

  # Offline run from dump_bookings.json and dump_available_slots.json,
  # writing debug_bookings.* files
  sync --offline`,
	RunE: runSync,
}

func init() {
	syncCmd.Flags().BoolVar(&offlineSync, "offline", false, "Read provider fixtures instead of calling the API and write debug_ outputs")
	syncCmd.Flags().BoolVar(&offlineSync, "debug", false, "Alias of --offline")
	RootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, args []string) error {
	cfg, l, err := bootstrap()
	if err != nil {
		return err
	}
	defer l.Sync()

	out, err := openSinks(cfg)
	if err != nil {
		return err
	}

	svc, err := newSyncService(cfg, l, offlineSync, out)
	if err != nil {
		return err
	}

	report, err := svc.Run(cmd.Context(), offlineSync)
	if err != nil {
		return err
	}

	printSyncReport(report)
	return nil
}

// sinks holds the optional export destinations. Fields are nil when disabled.
type sinks struct {
	store storage.Client
	db    *gorm.DB
}

// openSinks connects the object storage and the database enabled in the export configuration.
func openSinks(cfg *config.Config) (*sinks, error) {
	out := &sinks{}

	if cfg.Export.Upload {
		store, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to storage: %w", err)
		}
		out.store = store
	}

	if cfg.Export.Database {
		db, err := database.Connect(cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := export.Migrate(db); err != nil {
			return nil, err
		}
		out.db = db
	}

	return out, nil
}

// newSyncService wires the provider client and the exporter with its sinks.
func newSyncService(cfg *config.Config, l *zap.Logger, offline bool, out *sinks) (*sync.Service, error) {
	client, err := calcom.Open(cfg.Calcom, offline)
	if err != nil {
		return nil, fmt.Errorf("failed to create provider client: %w", err)
	}

	exporter := export.NewExporter(cfg.Export, cfg.Schedule.Interval, l)
	if out.store != nil {
		exporter.WithStorage(out.store, cfg.Storage)
	}
	if out.db != nil {
		exporter.WithDatabase(out.db)
	}

	return sync.NewService(cfg.Calcom, cfg.Schedule, client, exporter, l), nil
}

func printSyncReport(r *sync.Report) {
	s := r.Summary
	fmt.Println(color.GreenString("Booked slots: %d", r.Bookings))
	fmt.Println(color.GreenString("Registered persons: %d", r.Persons))
	fmt.Println(color.WhiteString("Slots: %d (%d occupied)", s.Slots, s.Occupied))
	if s.UnmatchedBookings > 0 {
		fmt.Println(color.YellowString("Bookings outside the calendar: %d", s.UnmatchedBookings))
	}
	for _, f := range r.Export.Files {
		fmt.Println(color.CyanString("  %s", f))
	}
	for _, o := range r.Export.Objects {
		fmt.Println(color.CyanString("  %s (uploaded)", o))
	}
}
