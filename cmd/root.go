package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"icon-curator/core/config"
	"icon-curator/core/logger"
	"icon-curator/feature/curation"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "icon-curator",
	Short: "Fluent UI icon curator",
	Long: `Icon Curator builds a curated icon tree from the Fluent UI System Icons repository.
It keeps one size per icon and style, fills gaps between styles, and can publish or
serve the result.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command. Any error is logged and the process exits with status 1.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, RootCmd)
	stop()
	if code != 0 {
		os.Exit(code)
	}
}

// run executes root and logs any error. It returns the process exit status.
func run(ctx context.Context, root *cobra.Command) int {
	err := root.ExecuteContext(ctx)
	if err == nil {
		return 0
	}

	// Debug level gives ISO8601 timestamps on the console.
	l, logErr := logger.New(&logger.Config{Level: "debug", Format: "console"})
	if logErr != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	var invErr *curation.InventoryError
	if errors.As(err, &invErr) {
		for _, p := range invErr.Problems() {
			l.Error("inventory problem", zap.String("stage", invErr.Stage), zap.Error(p))
		}
	}
	l.Error("command failed", zap.Error(err))
	_ = l.Sync()
	return 1
}

// bindFlag marks a flag as overriding the configuration key.
func bindFlag(flags *pflag.FlagSet, name, key string) {
	if err := flags.SetAnnotation(name, config.FlagKeyAnnotation, []string{key}); err != nil {
		panic(err)
	}
}

// setup loads the configuration with the command's flags applied and builds the logger.
func setup(cmd *cobra.Command) (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(".", cmd.Flags())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	zap.ReplaceGlobals(logg)
	return cfg, logg, nil
}

// addCurationFlags registers the flags shared by curate and inspect.
func addCurationFlags(flags *pflag.FlagSet) {
	flags.StringP("source", "s", "", "source asset tree")
	flags.StringP("output", "o", "", "curated output tree")
	flags.Int("default-size", 0, "preferred icon size")
	flags.StringSlice("styles", nil, "styles written to the output tree")
	flags.Int("max-depth", 0, "maximum depth of the source walk")

	bindFlag(flags, "source", "curation.source")
	bindFlag(flags, "output", "curation.output")
	bindFlag(flags, "default-size", "curation.default_size")
	bindFlag(flags, "styles", "curation.default_styles")
	bindFlag(flags, "max-depth", "curation.max_depth")
}
