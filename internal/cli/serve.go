package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/spf13/cobra"

	httpadapter "recruitads/internal/adapter/http"
)

func (a *app) serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Long: `Start the HTTP API.

Available endpoints:
- POST /api/v1/recommendations: recommend channels and budgets for a role
- GET  /api/v1/stats: per-platform statistics
- GET  /api/v1/roles, /api/v1/industries: catalog browsing
- POST /api/v1/admin/reindex: rebuild the role index
- GET  /healthz, /metrics`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.serve(cmd.Context())
		},
	}
}

func (a *app) serve(ctx context.Context) error {
	log := a.logger
	eng, err := a.buildEngine(ctx)
	if err != nil {
		return err
	}
	defer eng.Close()

	if err = eng.usecase.Reindex(ctx); err != nil {
		log.Warn("initial role index build failed, serving global averages until reindex", slog.Any("error", err))
	}
	if path := a.cfg.Industry.RulesPath; path != "" && a.cfg.Industry.Watch {
		if err = eng.resolver.Watch(ctx, path); err != nil {
			log.Warn("industry rules will not be reloaded", slog.Any("error", err))
		}
	}

	handler := httpadapter.NewHandler(eng.usecase, log, httpadapter.Options{
		AllowedOrigins: a.cfg.HTTP.AllowedOrigins,
		RatePerSecond:  a.cfg.HTTP.RatePerSecond,
		Burst:          a.cfg.HTTP.Burst,
		Metrics:        eng.metrics,
	})
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", a.cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	errc := make(chan error, 1)
	go func() {
		log.Info("server listening", slog.Int("port", int(a.cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err = <-errc:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	sctx, cancel := context.WithTimeout(context.Background(), a.cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err = srv.Shutdown(sctx); err != nil {
		log.Error("server shutdown error", slog.Any("error", err))
		return err
	}
	log.Info("server gracefully stopped")
	return nil
}
