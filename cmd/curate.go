package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"icon-curator/core/config"
	"icon-curator/core/database"
	"icon-curator/core/filesystem"
	"icon-curator/feature/catalog"
	"icon-curator/feature/curation"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// curateCmd runs the whole curation pipeline.
var curateCmd = &cobra.Command{
	Use:   "curate",
	Short: "Build the curated icon tree",
	Long: `Indexes the source tree, validates the inventory, copies one asset per icon and
style into the output tree and fills gaps between style directories.

Examples:
  # Defaults from .env or environment
  icon-curator curate

  # Explicit paths, fail on gaps instead of filling them
  icon-curator curate -s ./assets -o ./fluentui --reconcile-mode strict

  # Build in a staging directory and record the catalog
  icon-curator curate --staging --record`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logg, err := setup(cmd)
		if err != nil {
			return err
		}
		defer logg.Sync()

		svc := curation.NewService(filesystem.NewOS(), cfg.Curation, logg)
		report, err := svc.Run(cmd.Context())
		if err != nil {
			return err
		}

		if cfg.Catalog.Record {
			if err := recordCatalog(cmd.Context(), cfg, report, logg); err != nil {
				return err
			}
		}

		if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
			return printJSON(cmd.OutOrStdout(), report)
		}
		printSummary(cmd.OutOrStdout(), report)
		return nil
	},
}

func recordCatalog(ctx context.Context, cfg *config.Config, report *curation.Report, logg *zap.Logger) error {
	db, err := database.Connect(cfg.Database)
	if err != nil {
		return err
	}

	store := catalog.NewStore(db)
	if err := store.Migrate(); err != nil {
		return err
	}
	entries := catalog.EntriesFromReport(report)
	if err := store.Replace(ctx, entries); err != nil {
		return err
	}
	logg.Info("Recorded catalog", zap.Int("entries", len(entries)))
	return nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printSummary(w io.Writer, report *curation.Report) {
	fmt.Fprintf(w, "Output: %s\n", report.Output)
	if inv := report.Inventory; inv != nil {
		fmt.Fprintf(w, "Icons: %d, assets: %d, styles: %v, sizes: %v\n", inv.IconCount, inv.AssetCount, inv.Styles, inv.Sizes)
	}
	fmt.Fprintf(w, "Curated: %d\n", report.Curated.Len())
	styles := make([]string, 0, len(report.CountByStyle))
	for style := range report.CountByStyle {
		styles = append(styles, style)
	}
	sort.Strings(styles)
	for _, style := range styles {
		fmt.Fprintf(w, "  %-10s %d\n", style, report.CountByStyle[style])
	}
	if cf := report.CrossFill; cf != nil {
		fmt.Fprintf(w, "Cross-filled: %d, gaps: %d\n", cf.Executed, len(cf.Gaps()))
	}
}

func init() {
	flags := curateCmd.Flags()
	addCurationFlags(flags)
	flags.Bool("use-original-name", false, "keep source filenames")
	flags.Bool("overwrite", false, "replace existing output files")
	flags.String("reconcile-mode", "", "fill or strict")
	flags.Bool("staging", false, "build in a sibling directory and swap it into place")
	flags.Bool("manifest", true, "write curation.yaml at the output root")
	flags.Bool("record", false, "record the catalog in the database")
	flags.Bool("json", false, "print the report as JSON")

	bindFlag(flags, "use-original-name", "curation.use_original_name")
	bindFlag(flags, "overwrite", "curation.overwrite")
	bindFlag(flags, "reconcile-mode", "curation.reconcile_mode")
	bindFlag(flags, "staging", "curation.staging")
	bindFlag(flags, "manifest", "curation.manifest")
	bindFlag(flags, "record", "catalog.record")

	RootCmd.AddCommand(curateCmd)
}
