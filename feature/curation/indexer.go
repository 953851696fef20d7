package curation

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"icon-curator/core/filesystem"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// AssetIndex maps every indexed key to the source path of its file.
type AssetIndex map[IconKey]string

// Keys returns the index keys in IconKey order.
func (idx AssetIndex) Keys() []IconKey {
	keys := make([]IconKey, 0, len(idx))
	for k := range idx {
		keys = append(keys, k)
	}
	sortKeys(keys)
	return keys
}

func sortKeys(keys []IconKey) {
	sort.Slice(keys, func(i, j int) bool { return keys[i].Less(keys[j]) })
}

// BuildIndex walks root down to maxDepth and parses every asset file into an IconKey.
//
// Every filename outside the grammar is collected and returned together as an
// InventoryError. No partial index is returned in that case. Walk failures are
// returned as soon as they happen.
func BuildIndex(ctx context.Context, fsys *filesystem.FS, root string, maxDepth int, logger *zap.Logger) (AssetIndex, error) {
	entries, err := fsys.Walk(root, maxDepth)
	if err != nil {
		return nil, fmt.Errorf("could not read data: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	index := make(AssetIndex)
	var problems error

	for _, entry := range entries {
		if !entry.IsFile {
			continue
		}
		name := filepath.Base(entry.Path)
		if !strings.HasSuffix(name, AssetExtension) {
			continue
		}

		key, ok := ParseFileName(name)
		if !ok {
			logger.Warn("No match for asset filename", zap.String("file", name), zap.String("path", entry.Path))
			problems = multierr.Append(problems, fmt.Errorf("%w: %s", ErrMalformedName, name))
			continue
		}

		if prev, exists := index[key]; exists {
			problems = multierr.Append(problems, fmt.Errorf("%w: %s at %s and %s", ErrDuplicateKey, key, prev, entry.Path))
			continue
		}
		index[key] = entry.Path
	}

	if problems != nil {
		return nil, newInventoryError("indexing", problems)
	}

	logger.Debug("Indexed source tree", zap.String("root", root), zap.Int("assets", len(index)))
	return index, nil
}
