package cmd

import (
	"fmt"

	"icon-curator/core/filesystem"
	"icon-curator/core/storage"
	"icon-curator/feature/publish"

	"github.com/spf13/cobra"
)

// publishCmd uploads the curated tree to object storage.
var publishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Upload the curated tree to object storage",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logg, err := setup(cmd)
		if err != nil {
			return err
		}
		defer logg.Sync()

		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to create storage client: %w", err)
		}

		fix, _ := cmd.Flags().GetBool("fix")
		prune, _ := cmd.Flags().GetBool("prune")

		svc := publish.NewService(client, filesystem.NewOS(), cfg.Storage, logg)
		result, err := svc.Publish(cmd.Context(), cfg.Curation.Output, publish.Options{Fix: fix, Prune: prune})
		if err != nil {
			return err
		}

		if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
			return printJSON(cmd.OutOrStdout(), result)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Uploaded: %d, pruned: %d, missing folders: %v\n", result.Uploaded, len(result.Pruned), result.MissingFolders)
		return nil
	},
}

func init() {
	flags := publishCmd.Flags()
	flags.StringP("output", "o", "", "curated output tree")
	flags.String("bucket", "", "target bucket")
	flags.String("prefix", "", "object key prefix")
	flags.Bool("fix", true, "create missing style folders")
	flags.Bool("prune", false, "remove objects no longer in the output tree")
	flags.Bool("json", false, "print the result as JSON")

	bindFlag(flags, "output", "curation.output")
	bindFlag(flags, "bucket", "storage.bucket")
	bindFlag(flags, "prefix", "storage.prefix")

	RootCmd.AddCommand(publishCmd)
}
