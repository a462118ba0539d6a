package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/linkboard/linkboard/internal/build"
	"github.com/linkboard/linkboard/internal/config"
	"github.com/linkboard/linkboard/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "linkboard [config.yaml]",
	Short: "Generate a static project dashboard from a YAML file",
	Long: `linkboard reads a YAML file describing your projects and their links
and renders a single self-contained index.html with favicons, tags,
and client-side search.

With no argument it looks for ` + build.DefaultConfigFile + ` in the current
directory and creates a starter file if none exists.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runBuild,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	log := logger.New(cfg.LogLevel, cfg.PrettyLog)
	defer func() { _ = log.Sync() }()

	out, err := build.New(buildOptions(cfg, args), log).Run()
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

// buildOptions translates process settings and the optional positional
// path into pipeline options.
func buildOptions(cfg *config.Config, args []string) build.Options {
	opts := build.Options{
		FaviconService: cfg.FaviconService,
		UnsafeHTML:     cfg.UnsafeHTML,
	}
	if len(args) > 0 {
		opts.ConfigPath = args[0]
		opts.Explicit = true
	}
	return opts
}
