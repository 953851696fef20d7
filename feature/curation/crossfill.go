package curation

import (
	"context"
	"path/filepath"

	"icon-curator/core/filesystem"
	"icon-curator/core/reconcile"

	"go.uber.org/zap"
)

// CrossFill equalizes the filename sets of the style directories under root.
//
// Any filename present in one style directory but absent from another is copied into
// the other directory under the same name. The copied file keeps the donor style's
// rendering, so a filled file does not visually match its directory's style. In strict
// mode the same fills are planned and reported but not executed.
//
// known maps "style/file" to the entry written by the copy engine. It is used to
// annotate filled entries.
func CrossFill(ctx context.Context, fsys *filesystem.FS, root string, styles []string, mode ReconcileMode, known map[string]OutputEntry, logger *zap.Logger) (*CrossFillResult, error) {
	sources := make([]reconcile.Source, 0, len(styles))
	for _, style := range styles {
		names, err := fsys.ListFilenames(filepath.Join(root, style))
		if err != nil {
			return nil, err
		}
		sources = append(sources, reconcile.NewSource(style, names))
	}

	plan := reconcile.BuildPlan(sources)
	result := &CrossFillResult{Mode: mode, Plan: plan}

	filler := reconcile.FillerFunc(func(ctx context.Context, action reconcile.Action) error {
		src := filepath.Join(root, action.From, action.Key)
		dst := filepath.Join(root, action.To, action.Key)
		if err := fsys.Copy(src, dst, false); err != nil {
			return err
		}

		entry := OutputEntry{Style: action.To, File: action.Key, FilledFrom: action.From, Source: src}
		if donor, ok := known[entryKey(action.From, action.Key)]; ok {
			entry.Icon = donor.Icon
			entry.Size = donor.Size
			entry.Source = donor.Source
		}
		result.Entries = append(result.Entries, entry)

		logger.Debug("Filled missing file",
			zap.String("file", action.Key),
			zap.String("from", action.From),
			zap.String("to", action.To),
		)
		return nil
	})

	executed, err := reconcile.ApplyPlan(ctx, plan, filler, reconcile.Options{DryRun: mode == ReconcileStrict})
	result.Executed = executed
	if err != nil {
		return result, err
	}

	if mode == ReconcileStrict && len(plan.Actions) > 0 {
		logger.Warn("Style directories differ; gaps left unfilled in strict mode",
			zap.Int("gaps", len(plan.Actions)),
			zap.Int("incomplete_files", plan.Summary.Incomplete),
		)
	} else {
		logger.Info("Reconciled style directories",
			zap.Int("files", plan.Summary.TotalKeys),
			zap.Int("filled", executed),
		)
	}

	return result, nil
}

func entryKey(style, file string) string {
	return style + "/" + file
}

func indexEntries(entries []OutputEntry) map[string]OutputEntry {
	m := make(map[string]OutputEntry, len(entries))
	for _, e := range entries {
		m[entryKey(e.Style, e.File)] = e
	}
	return m
}
