package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/linkboard/linkboard/internal/build"
	"github.com/linkboard/linkboard/internal/config"
	"github.com/linkboard/linkboard/internal/logger"
	"github.com/linkboard/linkboard/internal/server"
)

var servePort int

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "Port for the preview server (overrides LINKBOARD_LISTEN_ADDR)")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve [config.yaml]",
	Short: "Build the dashboard and preview it with live reload",
	Long: `Build the dashboard, serve it locally, and rebuild whenever the
config file changes. Connected browsers reload automatically.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	log := logger.New(cfg.LogLevel, cfg.PrettyLog)
	defer func() { _ = log.Sync() }()

	addr := cfg.ListenAddr
	if servePort != 0 {
		addr = fmt.Sprintf(":%d", servePort)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pipeline := build.New(buildOptions(cfg, args), log)
	return server.New(addr, pipeline, log).Run(ctx)
}
