package publish

import (
	"context"
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"icon-curator/core/filesystem"
	"icon-curator/core/storage"
	"icon-curator/feature/curation"

	"github.com/minio/minio-go/v7"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// ContentType returns the content type used for an uploaded file.
func ContentType(name string) string {
	switch {
	case strings.EqualFold(filepath.Ext(name), curation.AssetExtension):
		return "image/svg+xml"
	case strings.EqualFold(filepath.Ext(name), ".yaml"), strings.EqualFold(filepath.Ext(name), ".yml"):
		return "application/x-yaml"
	}
	return "application/octet-stream"
}

// Upload copies every file of the output tree under prefix and returns the uploaded
// object keys in walk order. The first failure stops the upload.
func Upload(ctx context.Context, client storage.Client, fsys *filesystem.FS, root, bucket, prefix string, logger *zap.Logger) ([]string, error) {
	entries, err := fsys.Walk(root, 2)
	if err != nil {
		return nil, err
	}

	var keys []string
	for _, e := range entries {
		if !e.IsFile {
			continue
		}
		if err := ctx.Err(); err != nil {
			return keys, err
		}

		rel, err := filepath.Rel(root, e.Path)
		if err != nil {
			return keys, fmt.Errorf("failed to resolve %s: %w", e.Path, err)
		}
		key := path.Join(prefix, filepath.ToSlash(rel))

		if err := putFile(ctx, client, fsys, e.Path, bucket, key); err != nil {
			return keys, err
		}
		logger.Debug("Uploaded object", zap.String("key", key))
		keys = append(keys, key)
	}
	return keys, nil
}

func putFile(ctx context.Context, client storage.Client, fsys *filesystem.FS, src, bucket, key string) error {
	f, err := fsys.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", src, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", src, err)
	}

	_, err = client.PutObject(ctx, bucket, key, f, info.Size(), minio.PutObjectOptions{
		ContentType: ContentType(src),
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", key, err)
	}
	return nil
}

// Prune removes the objects under prefix that are not in keep. Folder markers stay.
// It returns the keys it tried to remove.
func Prune(ctx context.Context, client storage.Client, bucket, prefix string, keep []string) ([]string, error) {
	wanted := make(map[string]struct{}, len(keep))
	for _, k := range keep {
		wanted[k] = struct{}{}
	}

	var stale []minio.ObjectInfo
	listPrefix := strings.TrimSuffix(prefix, "/")
	if listPrefix != "" {
		listPrefix += "/"
	}
	opts := minio.ListObjectsOptions{Prefix: listPrefix, Recursive: true}
	for obj := range client.ListObjects(ctx, bucket, opts) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list %s: %w", opts.Prefix, obj.Err)
		}
		if strings.HasSuffix(obj.Key, "/") {
			continue
		}
		if _, ok := wanted[obj.Key]; !ok {
			stale = append(stale, obj)
		}
	}
	if len(stale) == 0 {
		return nil, nil
	}

	objectsCh := make(chan minio.ObjectInfo, len(stale))
	removed := make([]string, 0, len(stale))
	for _, obj := range stale {
		objectsCh <- obj
		removed = append(removed, obj.Key)
	}
	close(objectsCh)

	var errs error
	for rerr := range client.RemoveObjects(ctx, bucket, objectsCh, minio.RemoveObjectsOptions{}) {
		if rerr.Err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", rerr.ObjectName, rerr.Err))
		}
	}
	if errs != nil {
		return removed, fmt.Errorf("batch delete had %d errors: %w", len(multierr.Errors(errs)), errs)
	}
	return removed, nil
}
