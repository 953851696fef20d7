package publish

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"

	"icon-curator/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// FolderKey returns the object key of the folder marker for style.
func FolderKey(prefix, style string) string {
	key := path.Join(prefix, style)
	if !strings.HasSuffix(key, "/") {
		key += "/"
	}
	return key
}

// CheckStructure returns the styles whose folder is missing in the bucket.
func CheckStructure(ctx context.Context, client storage.Client, bucket, prefix string, styles []string) ([]string, error) {
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("bucket %s does not exist", bucket)
	}

	var missing []string
	for _, style := range styles {
		opts := minio.ListObjectsOptions{
			Prefix:    FolderKey(prefix, style),
			Recursive: false,
			MaxKeys:   1,
		}

		found := false
		for obj := range client.ListObjects(ctx, bucket, opts) {
			if obj.Err != nil {
				return nil, fmt.Errorf("failed to list %s: %w", opts.Prefix, obj.Err)
			}
			found = true
			break
		}

		if !found {
			missing = append(missing, style)
		}
	}

	return missing, nil
}

// FixStructure creates the folder markers of the missing styles.
func FixStructure(ctx context.Context, client storage.Client, bucket, prefix string, logger *zap.Logger, missing []string) error {
	for _, style := range missing {
		key := FolderKey(prefix, style)
		_, err := client.PutObject(ctx, bucket, key, bytes.NewReader([]byte{}), 0, minio.PutObjectOptions{})
		if err != nil {
			logger.Error("Failed to create folder", zap.String("folder", key), zap.Error(err))
			return fmt.Errorf("failed to create folder %s: %w", key, err)
		}
		logger.Info("Created missing folder", zap.String("folder", key))
	}
	return nil
}
