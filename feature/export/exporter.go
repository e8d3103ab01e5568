package export

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"booking-sync/core/storage"
	"booking-sync/feature/reconcile"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Result describes what an export produced.
type Result struct {
	// Files are the paths written on disk, in format order.
	Files []string `json:"files"`
	// Objects are the uploaded object names, empty when upload is disabled.
	Objects []string `json:"objects,omitempty"`
	// DatabaseRows is the size of the snapshot table after the run, zero when disabled.
	DatabaseRows int `json:"database_rows,omitempty"`
}

// Exporter writes the reconciled dataset to its destinations.
type Exporter struct {
	cfg        Config
	slotLength time.Duration
	logger     *zap.Logger
	now        func() time.Time

	store      storage.Client
	storageCfg storage.Config
	db         *gorm.DB
}

// NewExporter creates a new exporter. slotLength is the event duration of unbooked
// occupied slots in the calendar export.
func NewExporter(cfg Config, slotLength time.Duration, logger *zap.Logger) *Exporter {
	return &Exporter{
		cfg:        cfg,
		slotLength: slotLength,
		logger:     logger,
		now:        time.Now,
	}
}

// WithStorage sets the object storage used when upload is enabled.
func (e *Exporter) WithStorage(client storage.Client, cfg storage.Config) *Exporter {
	e.store = client
	e.storageCfg = cfg
	return e
}

// WithDatabase sets the database used when the snapshot table is enabled.
func (e *Exporter) WithDatabase(db *gorm.DB) *Exporter {
	e.db = db
	return e
}

// Export writes every configured format, then runs the optional upload and database sinks.
// Nothing is written when the configuration is invalid.
func (e *Exporter) Export(ctx context.Context, rows []reconcile.Row, debug bool) (*Result, error) {
	writers, err := e.writers()
	if err != nil {
		return nil, err
	}
	if e.cfg.Upload && e.store == nil {
		return nil, fmt.Errorf("export upload enabled without a storage client")
	}
	if e.cfg.Database && e.db == nil {
		return nil, fmt.Errorf("export database enabled without a database connection")
	}

	records := Records(rows)
	base := filepath.Join(e.cfg.Dir, e.cfg.Name(debug))
	result := &Result{}

	for _, w := range writers {
		path := base + "." + w.format
		if err := writeFile(path, func(out io.Writer) error { return w.write(out, records) }); err != nil {
			return result, err
		}
		result.Files = append(result.Files, path)
		e.logger.Debug("Export written", zap.String("format", w.format), zap.String("path", path))
	}

	if e.cfg.Upload {
		objects, err := upload(ctx, e.store, e.storageCfg.Bucket, e.storageCfg.Prefix, e.storageCfg.Region, result.Files)
		result.Objects = objects
		if err != nil {
			return result, err
		}
		e.logger.Info("Export uploaded",
			zap.String("bucket", e.storageCfg.Bucket),
			zap.Int("objects", len(objects)),
		)
	}

	if e.cfg.Database {
		if err := ReplaceSnapshot(ctx, e.db, records); err != nil {
			return result, err
		}
		result.DatabaseRows = len(records)
		e.logger.Info("Snapshot table replaced", zap.Int("rows", len(records)))
	}

	return result, nil
}

type namedWriter struct {
	format string
	write  writeFunc
}

// writers resolves the configured formats, rejecting unknown or duplicate names.
func (e *Exporter) writers() ([]namedWriter, error) {
	if len(e.cfg.Formats) == 0 {
		return nil, fmt.Errorf("no export format configured")
	}

	seen := make(map[string]bool, len(e.cfg.Formats))
	out := make([]namedWriter, 0, len(e.cfg.Formats))
	for _, raw := range e.cfg.Formats {
		format := strings.ToLower(strings.TrimSpace(raw))
		if seen[format] {
			continue
		}
		seen[format] = true

		var fn writeFunc
		switch format {
		case FormatCSV:
			fn = writeCSV
		case FormatJSON:
			fn = writeJSON
		case FormatXLSX:
			fn = writeXLSX
		case FormatICS:
			fn = icsWriter{slotLength: e.slotLength, now: e.now}.write
		default:
			return nil, fmt.Errorf("unknown export format %q", raw)
		}
		out = append(out, namedWriter{format: format, write: fn})
	}
	return out, nil
}
