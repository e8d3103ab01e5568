package export

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path"
	"path/filepath"

	"booking-sync/core/storage"

	"github.com/minio/minio-go/v7"
)

// contentTypes covers the formats whose extension is unknown to the mime package on some systems.
var contentTypes = map[string]string{
	".csv":  "text/csv; charset=utf-8",
	".json": "application/json",
	".xlsx": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	".ics":  "text/calendar; charset=utf-8",
}

// upload publishes the files under prefix in the bucket and returns the object names.
func upload(ctx context.Context, client storage.Client, bucket, prefix, region string, files []string) ([]string, error) {
	if err := storage.EnsureBucket(ctx, client, bucket, region); err != nil {
		return nil, err
	}

	objects := make([]string, 0, len(files))
	for _, file := range files {
		name := path.Join(prefix, filepath.Base(file))
		if err := putFile(ctx, client, bucket, name, file); err != nil {
			return objects, err
		}
		objects = append(objects, name)
	}
	return objects, nil
}

func putFile(ctx context.Context, client storage.Client, bucket, object, file string) error {
	f, err := os.Open(file)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", file, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", file, err)
	}

	_, err = client.PutObject(ctx, bucket, object, f, info.Size(), minio.PutObjectOptions{
		ContentType: contentType(file),
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", object, err)
	}
	return nil
}

func contentType(file string) string {
	ext := filepath.Ext(file)
	if ct, ok := contentTypes[ext]; ok {
		return ct
	}
	if ct := mime.TypeByExtension(ext); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
