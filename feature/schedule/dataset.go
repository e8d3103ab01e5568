package schedule

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"booking-sync/feature/export"

	jsoniter "github.com/json-iterator/go"
	"golang.org/x/sync/singleflight"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrNoDataset is returned when no export has been written yet.
var ErrNoDataset = errors.New("dataset not exported yet")

// Dataset is a parsed export file.
type Dataset struct {
	// Records holds the exported rows in file order.
	Records []export.Record

	// ModTime is the modification time of the file the records were read from.
	ModTime time.Time

	// Loaded is the timestamp when the file was read.
	Loaded time.Time
}

// datasetStore caches the parsed export and reloads it when the file changes.
type datasetStore struct {
	path string

	mu      sync.RWMutex
	current *Dataset
	sf      singleflight.Group
}

func newDatasetStore(path string) *datasetStore {
	return &datasetStore{path: path}
}

// Get returns the cached dataset, reading the file again when its modification time moved.
// Concurrent callers share a single read.
func (s *datasetStore) Get(ctx context.Context) (*Dataset, error) {
	info, err := os.Stat(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNoDataset
		}
		return nil, fmt.Errorf("failed to stat dataset: %w", err)
	}

	// Fast path: cached and fresh
	if ds := s.cached(info.ModTime()); ds != nil {
		return ds, nil
	}

	result, err, _ := s.sf.Do(s.path, func() (interface{}, error) {
		if ds := s.cached(info.ModTime()); ds != nil {
			return ds, nil
		}

		ds, err := s.load(ctx, info.ModTime())
		if err != nil {
			return nil, err
		}

		s.mu.Lock()
		s.current = ds
		s.mu.Unlock()
		return ds, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*Dataset), nil
}

// Invalidate drops the cached dataset.
func (s *datasetStore) Invalidate() {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()
}

func (s *datasetStore) cached(modTime time.Time) *Dataset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current != nil && s.current.ModTime.Equal(modTime) {
		return s.current
	}
	return nil
}

func (s *datasetStore) load(ctx context.Context, modTime time.Time) (*Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset: %w", err)
	}

	var records []export.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse dataset %s: %w", s.path, err)
	}
	return &Dataset{Records: records, ModTime: modTime, Loaded: time.Now()}, nil
}
