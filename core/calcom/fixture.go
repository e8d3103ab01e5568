package calcom

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// NewFixtureClient creates a client that reads provider dumps from disk instead of the network.
// Files ending in .yaml or .yml are accepted and must carry the same shape as the JSON dumps.
func NewFixtureClient(cfg Config) (Client, error) {
	s, err := compileSchemas()
	if err != nil {
		return nil, err
	}
	return &fixtureClient{
		bookingsPath: cfg.BookingsFixture,
		slotsPath:    cfg.SlotsFixture,
		schemas:      s,
	}, nil
}

type fixtureClient struct {
	bookingsPath string
	slotsPath    string
	schemas      *schemas
}

func (f *fixtureClient) ListBookings(_ context.Context) ([]Booking, error) {
	body, err := readFixture(f.bookingsPath)
	if err != nil {
		return nil, err
	}
	return decodeBookings(f.schemas, body)
}

func (f *fixtureClient) ListSlots(_ context.Context, _ SlotsQuery) (Availability, error) {
	body, err := readFixture(f.slotsPath)
	if err != nil {
		return nil, err
	}
	return decodeSlots(f.schemas, body)
}

func (f *fixtureClient) CancelBooking(_ context.Context, bookingID int, _ string) (*CancelResult, error) {
	return nil, fmt.Errorf("cancel booking %d: %w", bookingID, ErrOffline)
}

// readFixture returns the fixture content as JSON, converting YAML files on the way.
func readFixture(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		var doc any
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("%w: fixture %s: %v", ErrDataShape, path, err)
		}
		out, err := json.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("%w: fixture %s: %v", ErrDataShape, path, err)
		}
		return out, nil
	default:
		return data, nil
	}
}

// Open returns the fixture client in offline mode and the HTTP client otherwise.
func Open(cfg Config, offline bool) (Client, error) {
	if offline {
		return NewFixtureClient(cfg)
	}
	return NewClient(cfg)
}
