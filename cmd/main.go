package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"recruitads/internal/cli"
	"recruitads/internal/config"
)

// main is the entry point of recruitads. It loads configuration, builds the
// structured logger and hands control to the command tree. The context passed
// down is cancelled on SIGINT or SIGTERM so the server can shut down
// gracefully.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}
	logger := cli.NewLogger(cfg.Log)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err = cli.Execute(ctx, cfg, logger); err != nil {
		logger.Error("command failed", slog.Any("error", err))
		return
	}
	exitCode = 0
}
