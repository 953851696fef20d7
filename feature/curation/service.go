package curation

import (
	"context"
	"fmt"
	"os"

	"icon-curator/core/filesystem"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service runs the curation pipeline: index, analyze, select, copy, cross-fill.
type Service struct {
	fsys   *filesystem.FS
	cfg    Config
	logger *zap.Logger
	newID  func() string
}

// NewService creates a new curation service.
func NewService(fsys *filesystem.FS, cfg Config, logger *zap.Logger) *Service {
	return &Service{
		fsys:   fsys,
		cfg:    cfg,
		logger: logger,
		newID:  uuid.NewString,
	}
}

// Config returns the service settings.
func (s *Service) Config() Config {
	return s.cfg
}

// Inspect runs the read-only stages (index, analyze, select) and reports the selection
// without touching the output tree.
func (s *Service) Inspect(ctx context.Context) (*Report, error) {
	report, _, err := s.prepare(ctx, s.newID())
	if report != nil {
		report.DryRun = true
	}
	return report, err
}

// Run executes the whole pipeline and returns its report. The report is returned
// alongside an error whenever some stages already completed.
func (s *Service) Run(ctx context.Context) (*Report, error) {
	runID := s.newID()
	report, index, err := s.prepare(ctx, runID)
	if err != nil {
		return report, err
	}
	logger := s.logger.With(zap.String("run_id", runID))

	if !s.cfg.Staging {
		if err := s.materialize(ctx, s.cfg.Output, index, report, logger); err != nil {
			return report, err
		}
		logger.Info("Done")
		return report, nil
	}

	// The swap would move a regular file at the output path aside and delete it.
	if info, err := s.fsys.Stat(s.cfg.Output); err == nil && !info.IsDir() {
		return report, fmt.Errorf("could not create output directory %s: %w", s.cfg.Output, filesystem.ErrNotDirectory)
	} else if err != nil && !os.IsNotExist(err) {
		return report, fmt.Errorf("failed to stat %s: %w", s.cfg.Output, err)
	}

	dirs := newStagingDirs(s.cfg.Output, runID)
	logger.Info("Staging output", zap.String("staging", dirs.staging))
	report.Staged = true

	if err := s.materialize(ctx, dirs.staging, index, report, logger); err != nil {
		dirs.discard(s.fsys, logger)
		return report, err
	}
	if err := dirs.swap(s.fsys, logger); err != nil {
		dirs.discard(s.fsys, logger)
		return report, err
	}

	logger.Info("Done")
	return report, nil
}

func (s *Service) prepare(ctx context.Context, runID string) (*Report, AssetIndex, error) {
	if err := s.cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid configuration: %w", err)
	}
	logger := s.logger.With(zap.String("run_id", runID))
	report := &Report{RunID: runID, Source: s.cfg.Source, Output: s.cfg.Output}

	logger.Info("Reading data...", zap.String("source", s.cfg.Source))
	index, err := BuildIndex(ctx, s.fsys, s.cfg.Source, s.cfg.MaxDepth, logger)
	if err != nil {
		return report, nil, err
	}

	logger.Info("Analyzing...")
	inv, err := Analyze(s.fsys, s.cfg.Source, index, s.cfg, logger)
	report.Inventory = inv
	if err != nil {
		return report, nil, err
	}

	logger.Info("Curating icons...")
	curated := Select(index, s.cfg.Styles(), s.cfg.DefaultSize)
	report.Curated = curated
	report.CountByStyle = curated.CountByStyle()

	logger.Info("Curated icons", zap.Int("curated", curated.Len()))
	for _, style := range s.cfg.Styles() {
		logger.Info("Icons of style", zap.String("style", style), zap.Int("count", report.CountByStyle[style]))
	}

	return report, index, nil
}

func (s *Service) materialize(ctx context.Context, root string, index AssetIndex, report *Report, logger *zap.Logger) error {
	logger.Info("Copying resources...", zap.String("output", root))
	copied, err := Materialize(ctx, s.fsys, index, report.Curated, CopyOptions{
		OutputRoot:      root,
		Styles:          s.cfg.Styles(),
		UseOriginalName: s.cfg.UseOriginalName,
		Overwrite:       s.cfg.Overwrite,
	}, logger)
	report.Copy = copied
	if err != nil {
		return err
	}

	filled, err := CrossFill(ctx, s.fsys, root, s.cfg.Styles(), s.cfg.ReconcileMode, indexEntries(copied.Entries), logger)
	report.CrossFill = filled
	if err != nil {
		return err
	}

	if s.cfg.Manifest {
		if err := WriteManifest(s.fsys, root, NewManifest(report, s.cfg)); err != nil {
			return err
		}
	}
	return nil
}
