package curation

import (
	"context"
	"fmt"
	"path/filepath"

	"icon-curator/core/filesystem"

	"go.uber.org/zap"
)

// CopyOptions configures the copy engine.
type CopyOptions struct {
	// OutputRoot is the directory receiving one subdirectory per style.
	OutputRoot string
	// Styles are the style subdirectories to create.
	Styles []string
	// UseOriginalName keeps source filenames.
	UseOriginalName bool
	// Overwrite replaces existing destination files.
	Overwrite bool
}

// Materialize creates the output root and its style directories, then copies every
// curated key into its style directory. Any failure stops the run. Files already copied
// are left in place.
func Materialize(ctx context.Context, fsys *filesystem.FS, index AssetIndex, curated CuratedSet, opts CopyOptions, logger *zap.Logger) (*CopyResult, error) {
	result := &CopyResult{}

	dirs := append([]string{opts.OutputRoot}, styleDirs(opts.OutputRoot, opts.Styles)...)
	for _, dir := range dirs {
		created, err := fsys.EnsureDir(dir)
		if err != nil {
			return result, fmt.Errorf("could not create output directory %s: %w", dir, err)
		}
		if created {
			logger.Info("Created output directory", zap.String("dir", dir))
			result.CreatedDirs = append(result.CreatedDirs, dir)
		} else {
			logger.Info("Using existing output directory", zap.String("dir", dir))
			result.ReusedDirs = append(result.ReusedDirs, dir)
		}
	}

	targeted := toSet(opts.Styles)
	for _, key := range curated.Keys {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		if _, ok := targeted[key.Style]; !ok {
			continue
		}

		source, ok := index[key]
		if !ok {
			return result, fmt.Errorf("curated key %s is not in the index", key)
		}

		name := key.OutputName()
		if opts.UseOriginalName {
			name = filepath.Base(source)
		}
		target := filepath.Join(opts.OutputRoot, key.Style, name)

		if err := fsys.Copy(source, target, opts.Overwrite); err != nil {
			return result, err
		}

		result.Entries = append(result.Entries, OutputEntry{
			Style:  key.Style,
			File:   name,
			Icon:   key.Icon,
			Size:   key.Size,
			Source: source,
		})
	}

	logger.Info("Copied curated icons", zap.Int("files", len(result.Entries)))
	return result, nil
}

func styleDirs(root string, styles []string) []string {
	dirs := make([]string, 0, len(styles))
	for _, s := range styles {
		dirs = append(dirs, filepath.Join(root, s))
	}
	return dirs
}
