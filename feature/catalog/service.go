package catalog

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"icon-curator/core/filesystem"
	"icon-curator/core/reconcile"
	"icon-curator/feature/curation"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

const treeCacheKey = "output-tree"

var (
	// ErrInvalidName is returned for style or file names that would leave the output tree.
	ErrInvalidName = errors.New("invalid name")
	// ErrNotFound is returned when a style or file is not in the output tree.
	ErrNotFound = errors.New("not found")
)

// StyleSummary describes one style directory of the output tree.
type StyleSummary struct {
	Style string `json:"style"`
	Files int    `json:"files"`
}

// Service answers catalog queries against an output tree and an optional store.
type Service struct {
	fsys   *filesystem.FS
	root   string
	store  *Store
	cache  *reconcile.Cache
	ttl    time.Duration
	logger *zap.Logger
}

// NewService creates a catalog service. store may be nil, in which case entries are
// read from the manifest or the tree itself.
func NewService(fsys *filesystem.FS, root string, store *Store, cfg Config, logger *zap.Logger) *Service {
	return &Service{
		fsys:   fsys,
		root:   root,
		store:  store,
		cache:  reconcile.NewCache(),
		ttl:    time.Duration(cfg.CacheTTLSeconds) * time.Second,
		logger: logger,
	}
}

// Refresh drops the cached listing.
func (s *Service) Refresh() {
	s.cache.Invalidate(treeCacheKey)
}

func (s *Service) tree(ctx context.Context) ([]reconcile.Source, error) {
	snap, err := s.cache.GetOrBuild(ctx, treeCacheKey, s.ttl, func(ctx context.Context) ([]reconcile.Source, error) {
		s.logger.Debug("Listing output tree", zap.String("root", s.root))
		styles, err := s.fsys.ListDirs(s.root)
		if err != nil {
			return nil, err
		}
		sources := make([]reconcile.Source, 0, len(styles))
		for _, style := range styles {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			files, err := s.fsys.ListFilenames(filepath.Join(s.root, style))
			if err != nil {
				return nil, err
			}
			sources = append(sources, reconcile.NewSource(style, files))
		}
		return sources, nil
	})
	if err != nil {
		return nil, err
	}
	return snap.Sources, nil
}

// Styles lists the style directories of the output tree with their file counts.
func (s *Service) Styles(ctx context.Context) ([]StyleSummary, error) {
	sources, err := s.tree(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]StyleSummary, 0, len(sources))
	for _, src := range sources {
		out = append(out, StyleSummary{Style: src.Name, Files: len(src.Keys)})
	}
	return out, nil
}

// Icons lists the catalog entries, optionally restricted to one style. Entries come
// from the store when one is configured, else from the manifest, else from the tree.
func (s *Service) Icons(ctx context.Context, style string) ([]Entry, error) {
	if style != "" {
		if err := validName(style); err != nil {
			return nil, err
		}
	}

	if s.store != nil {
		return s.store.List(ctx, style)
	}

	if m, err := curation.ReadManifest(s.fsys, s.root); err == nil {
		var entries []Entry
		for _, f := range m.Files {
			if style == "" || f.Style == style {
				entries = append(entries, FromOutputEntry(f))
			}
		}
		return entries, nil
	}

	sources, err := s.tree(ctx)
	if err != nil {
		return nil, err
	}
	var entries []Entry
	for _, src := range sources {
		if style != "" && src.Name != style {
			continue
		}
		for _, file := range reconcile.Union([]reconcile.Source{src}) {
			entry := Entry{Style: src.Name, FileName: file}
			if key, ok := curation.ParseFileName(file); ok {
				entry.Icon = key.Icon
				entry.Size = key.Size
			} else {
				entry.Icon = strings.TrimSuffix(file, curation.AssetExtension)
			}
			entries = append(entries, entry)
		}
	}
	return entries, nil
}

// Open opens style/file from the output tree.
func (s *Service) Open(ctx context.Context, style, file string) (afero.File, error) {
	if err := validName(style); err != nil {
		return nil, err
	}
	if err := validName(file); err != nil {
		return nil, err
	}

	sources, err := s.tree(ctx)
	if err != nil {
		return nil, err
	}
	found := false
	for _, src := range sources {
		if src.Name == style {
			_, found = src.Keys[file]
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("%s/%s: %w", style, file, ErrNotFound)
	}

	f, err := s.fsys.Open(filepath.Join(s.root, style, file))
	if errors.Is(err, os.ErrNotExist) {
		// Removed since the listing was cached.
		s.Refresh()
		return nil, fmt.Errorf("%s/%s: %w", style, file, ErrNotFound)
	}
	return f, err
}

func validName(name string) error {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("%q: %w", name, ErrInvalidName)
	}
	return nil
}
