package publish

import (
	"context"

	"icon-curator/core/filesystem"
	"icon-curator/core/storage"

	"go.uber.org/zap"
)

// Options controls a publish run.
type Options struct {
	// Fix creates missing style folders before uploading.
	Fix bool
	// Prune removes objects that no longer exist in the output tree.
	Prune bool
}

// Result summarizes a publish run.
type Result struct {
	CreatedBucket  bool     `json:"created_bucket"`
	MissingFolders []string `json:"missing_folders"`
	Uploaded       int      `json:"uploaded"`
	Pruned         []string `json:"pruned"`
}

// Service publishes output trees to one bucket.
type Service struct {
	client storage.Client
	fsys   *filesystem.FS
	cfg    storage.Config
	logger *zap.Logger
}

// NewService creates a publish service.
func NewService(client storage.Client, fsys *filesystem.FS, cfg storage.Config, logger *zap.Logger) *Service {
	return &Service{client: client, fsys: fsys, cfg: cfg, logger: logger}
}

// Publish mirrors root into the configured bucket and prefix.
func (s *Service) Publish(ctx context.Context, root string, opts Options) (*Result, error) {
	result := &Result{}
	l := s.logger.With(zap.String("bucket", s.cfg.Bucket), zap.String("prefix", s.cfg.Prefix))

	created, err := storage.EnsureBucket(ctx, s.client, s.cfg.Bucket, s.cfg.Region)
	if err != nil {
		return nil, err
	}
	result.CreatedBucket = created
	if created {
		l.Info("Created bucket")
	}

	styles, err := s.fsys.ListDirs(root)
	if err != nil {
		return nil, err
	}

	missing, err := CheckStructure(ctx, s.client, s.cfg.Bucket, s.cfg.Prefix, styles)
	if err != nil {
		return nil, err
	}
	result.MissingFolders = missing
	if len(missing) > 0 {
		l.Warn("Missing folders detected", zap.Strings("missing", missing))
		if opts.Fix {
			if err := FixStructure(ctx, s.client, s.cfg.Bucket, s.cfg.Prefix, l, missing); err != nil {
				return result, err
			}
		}
	}

	l.Info("Uploading output tree", zap.String("root", root))
	keys, err := Upload(ctx, s.client, s.fsys, root, s.cfg.Bucket, s.cfg.Prefix, l)
	result.Uploaded = len(keys)
	if err != nil {
		return result, err
	}

	if opts.Prune {
		pruned, err := Prune(ctx, s.client, s.cfg.Bucket, s.cfg.Prefix, keys)
		result.Pruned = pruned
		if err != nil {
			return result, err
		}
		if len(pruned) > 0 {
			l.Info("Pruned stale objects", zap.Int("count", len(pruned)))
		}
	}

	l.Info("Published", zap.Int("uploaded", result.Uploaded))
	return result, nil
}
