package checks

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"booking-sync/core/database"
	"booking-sync/core/storage"
	"booking-sync/core/storage/mocks"
	"booking-sync/feature/export"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestExpectedFiles(t *testing.T) {
	cfg := export.Config{Dir: "out", Basename: "bookings", Formats: []string{"csv", " JSON ", "csv", ""}}

	files := ExpectedFiles(cfg, true)
	require.Len(t, files, 2)
	assert.Equal(t, "csv", files[0].Format)
	assert.Equal(t, filepath.Join("out", "debug_bookings.csv"), files[0].Path)
	assert.Equal(t, filepath.Join("out", "debug_bookings.json"), files[1].Path)
}

func TestCheckExports(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bookings.csv"), []byte("Creneau;Fin\n"), 0o644))
	cfg := export.Config{Dir: dir, Basename: "bookings", Formats: []string{"csv", "json"}}

	files, missing, err := CheckExports(cfg, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"json"}, missing)
	require.Len(t, files, 2)
	assert.True(t, files[0].Present)
	assert.Equal(t, int64(12), files[0].Size)
	assert.NotNil(t, files[0].ModTime)
	assert.False(t, files[1].Present)
	assert.Nil(t, files[1].ModTime)
}

func TestCheckStorage(t *testing.T) {
	cfg := storage.Config{Bucket: "bookings", Prefix: "exports/"}
	files := []FileStatus{{Format: "csv", Path: "/tmp/bookings.csv"}, {Format: "json", Path: "/tmp/bookings.json"}}

	t.Run("reports missing objects", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "bookings").Return(true, nil)
		client.On("StatObject", mock.Anything, "bookings", "exports/bookings.csv", mock.Anything).
			Return(minio.ObjectInfo{Key: "exports/bookings.csv"}, nil)
		client.On("StatObject", mock.Anything, "bookings", "exports/bookings.json", mock.Anything).
			Return(minio.ObjectInfo{}, minio.ErrorResponse{Code: "NoSuchKey"})

		missing, err := CheckStorage(context.Background(), client, cfg, files)
		require.NoError(t, err)
		assert.Equal(t, []string{"exports/bookings.json"}, missing)
		client.AssertExpectations(t)
	})

	t.Run("missing bucket", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "bookings").Return(false, nil)

		_, err := CheckStorage(context.Background(), client, cfg, files)
		assert.ErrorIs(t, err, ErrBucketMissing)
	})

	t.Run("stat failure", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "bookings").Return(true, nil)
		client.On("StatObject", mock.Anything, "bookings", mock.Anything, mock.Anything).
			Return(minio.ObjectInfo{}, errors.New("access denied"))

		_, err := CheckStorage(context.Background(), client, cfg, files)
		assert.ErrorContains(t, err, "access denied")
	})
}

func TestFixStorage(t *testing.T) {
	client := new(mocks.Client)
	cfg := storage.Config{Bucket: "bookings", Region: "eu-west-3"}
	client.On("BucketExists", mock.Anything, "bookings").Return(false, nil)
	client.On("MakeBucket", mock.Anything, "bookings", minio.MakeBucketOptions{Region: "eu-west-3"}).Return(nil)

	require.NoError(t, FixStorage(context.Background(), client, cfg))
	client.AssertExpectations(t)
}

func TestCheckDatabase(t *testing.T) {
	t.Run("not configured", func(t *testing.T) {
		_, err := CheckDatabase(context.Background(), nil)
		assert.Error(t, err)
	})

	t.Run("table missing then populated", func(t *testing.T) {
		db, err := database.Connect(database.Config{Driver: "sqlite", Name: filepath.Join(t.TempDir(), "sync.db")})
		require.NoError(t, err)

		report, err := CheckDatabase(context.Background(), db)
		require.NoError(t, err)
		assert.Equal(t, "reconciled_slots", report.Table)
		assert.False(t, report.Present)

		require.NoError(t, export.Migrate(db))
		start := time.Date(2024, 8, 26, 0, 0, 0, 0, time.UTC)
		require.NoError(t, db.Create(&[]export.SlotRecord{
			{SlotStart: start, Occupied: true},
			{SlotStart: start.Add(90 * time.Minute)},
		}).Error)

		report, err = CheckDatabase(context.Background(), db)
		require.NoError(t, err)
		assert.True(t, report.Present)
		assert.Equal(t, int64(2), report.Rows)
	})
}
