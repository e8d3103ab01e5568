package checks

import (
	"context"
	"errors"
	"fmt"
	"path"
	"path/filepath"

	"booking-sync/core/storage"

	"github.com/minio/minio-go/v7"
)

// ErrBucketMissing is returned when the export bucket does not exist.
var ErrBucketMissing = errors.New("bucket does not exist")

// CheckStorage verifies the bucket exists and returns the published objects it lacks.
func CheckStorage(ctx context.Context, client storage.Client, cfg storage.Config, files []FileStatus) ([]string, error) {
	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrBucketMissing, cfg.Bucket)
	}

	var missing []string
	for _, f := range files {
		object := path.Join(cfg.Prefix, filepath.Base(f.Path))
		_, err := client.StatObject(ctx, cfg.Bucket, object, minio.StatObjectOptions{})
		if err == nil {
			continue
		}
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			missing = append(missing, object)
			continue
		}
		return nil, fmt.Errorf("failed to stat %s: %w", object, err)
	}
	return missing, nil
}

// FixStorage creates the bucket when it is missing.
func FixStorage(ctx context.Context, client storage.Client, cfg storage.Config) error {
	return storage.EnsureBucket(ctx, client, cfg.Bucket, cfg.Region)
}
