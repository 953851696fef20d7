package curation

import (
	"fmt"
	"path/filepath"

	"icon-curator/core/filesystem"

	"go.uber.org/zap"
)

// stagingDirs names the sibling directories used while staging a run.
type stagingDirs struct {
	output   string
	staging  string
	previous string
}

func newStagingDirs(output, runID string) stagingDirs {
	output = filepath.Clean(output)
	return stagingDirs{
		output:   output,
		staging:  output + ".staging-" + runID,
		previous: output + ".previous-" + runID,
	}
}

// swap moves the staged tree into place. An existing output tree is moved aside first
// and removed once the staged tree is in place.
func (d stagingDirs) swap(fsys *filesystem.FS, logger *zap.Logger) error {
	exists, err := fsys.Exists(d.output)
	if err != nil {
		return fmt.Errorf("failed to check output directory: %w", err)
	}

	if exists {
		if err := fsys.Rename(d.output, d.previous); err != nil {
			return err
		}
	}

	if err := fsys.Rename(d.staging, d.output); err != nil {
		if exists {
			if restoreErr := fsys.Rename(d.previous, d.output); restoreErr != nil {
				logger.Error("Failed to restore previous output", zap.String("previous", d.previous), zap.Error(restoreErr))
			}
		}
		return err
	}

	if exists {
		if err := fsys.RemoveAll(d.previous); err != nil {
			logger.Warn("Failed to remove previous output", zap.String("previous", d.previous), zap.Error(err))
		}
	}

	logger.Info("Swapped staged output into place", zap.String("output", d.output))
	return nil
}

// discard removes the staging tree after a failed run.
func (d stagingDirs) discard(fsys *filesystem.FS, logger *zap.Logger) {
	if err := fsys.RemoveAll(d.staging); err != nil {
		logger.Warn("Failed to remove staging directory", zap.String("staging", d.staging), zap.Error(err))
	}
}
