package cli

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"recruitads/internal/config"
	"recruitads/internal/config/configs"
)

type app struct {
	cfg    config.Config
	logger *slog.Logger
}

// NewRootCommand builds the recruitads command tree around a loaded
// configuration.
func NewRootCommand(cfg config.Config, logger *slog.Logger) *cobra.Command {
	a := &app{cfg: cfg, logger: logger}
	root := &cobra.Command{
		Use:   "recruitads",
		Short: "Recommends recruitment ad channels and budgets from campaign history",
		Long: `recruitads matches a job role against historical recruitment campaigns,
ranks advertising platforms for it and suggests budget tiers.`,
		SilenceUsage: true,
	}
	root.AddCommand(a.serveCmd(), a.migrateCmd(), a.seedCmd(), a.importCmd())
	return root
}

// Execute runs the command tree with ctx, which is cancelled on shutdown
// signals.
func Execute(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	return NewRootCommand(cfg, logger).ExecuteContext(ctx)
}

// NewLogger builds the structured logger described by cfg.
func NewLogger(cfg configs.Logger) *slog.Logger {
	var handler slog.Handler
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel(), AddSource: cfg.Source}
	switch cfg.SlogFormat() {
	case "json":
		handler = slog.NewJSONHandler(os.Stdout, opts)
	default:
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	return slog.New(handler)
}
