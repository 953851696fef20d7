package cmd

import (
	"icon-curator/core/filesystem"
	"icon-curator/feature/curation"

	"github.com/spf13/cobra"
)

// inspectCmd reports what curate would select without writing anything.
var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Analyze the source tree without writing output",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logg, err := setup(cmd)
		if err != nil {
			return err
		}
		defer logg.Sync()

		svc := curation.NewService(filesystem.NewOS(), cfg.Curation, logg)
		report, err := svc.Inspect(cmd.Context())
		if err != nil {
			return err
		}

		if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
			return printJSON(cmd.OutOrStdout(), report)
		}
		printSummary(cmd.OutOrStdout(), report)
		return nil
	},
}

func init() {
	addCurationFlags(inspectCmd.Flags())
	inspectCmd.Flags().Bool("json", false, "print the report as JSON")
	RootCmd.AddCommand(inspectCmd)
}
