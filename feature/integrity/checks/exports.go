package checks

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"booking-sync/feature/export"
)

// FileStatus describes one expected export file.
type FileStatus struct {
	Format  string     `json:"format"`
	Path    string     `json:"path"`
	Present bool       `json:"present"`
	Size    int64      `json:"size,omitempty"`
	ModTime *time.Time `json:"mod_time,omitempty"`
}

// ExpectedFiles lists the files a run writes for cfg, in format order.
func ExpectedFiles(cfg export.Config, debug bool) []FileStatus {
	base := filepath.Join(cfg.Dir, cfg.Name(debug))
	seen := make(map[string]bool, len(cfg.Formats))
	out := make([]FileStatus, 0, len(cfg.Formats))
	for _, raw := range cfg.Formats {
		format := strings.ToLower(strings.TrimSpace(raw))
		if format == "" || seen[format] {
			continue
		}
		seen[format] = true
		out = append(out, FileStatus{Format: format, Path: base + "." + format})
	}
	return out
}

// CheckExports stats every expected export file. It returns their status and the
// formats whose file is missing.
func CheckExports(cfg export.Config, debug bool) ([]FileStatus, []string, error) {
	files := ExpectedFiles(cfg, debug)
	var missing []string
	for i := range files {
		info, err := os.Stat(files[i].Path)
		if errors.Is(err, os.ErrNotExist) {
			missing = append(missing, files[i].Format)
			continue
		}
		if err != nil {
			return nil, nil, fmt.Errorf("failed to stat %s: %w", files[i].Path, err)
		}
		mod := info.ModTime()
		files[i].Present = true
		files[i].Size = info.Size()
		files[i].ModTime = &mod
	}
	return files, missing, nil
}
