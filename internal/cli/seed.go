package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"recruitads/internal/adapter/postgres"
	"recruitads/internal/db"
)

func (a *app) seedCmd() *cobra.Command {
	var count int
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert anonymised demo campaigns",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			pool, err := db.NewPostgresPool(ctx, a.cfg.Psql)
			if err != nil {
				return err
			}
			defer pool.Close()

			n, err := db.Seed(ctx, postgres.NewCampaignRepository(pool), count)
			if err != nil {
				return err
			}
			a.logger.Info("demo campaigns seeded", slog.Int64("inserted", n), slog.Int("generated", count))
			return nil
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 100, "number of demo campaigns to generate")
	return cmd
}
