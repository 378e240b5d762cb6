package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"recruitads/internal/adapter/csvimport"
	"recruitads/internal/adapter/postgres"
	"recruitads/internal/db"
	"recruitads/internal/engine/industry"
)

func (a *app) importCmd() *cobra.Command {
	var dryRun bool
	cmd := &cobra.Command{
		Use:   "import <file|s3://bucket/key>...",
		Short: "Import campaign exports from CSV",
		Long: `Import reads campaign exports in CSV form. Missing roles are derived from
the campaign name and missing industries from the keyword rules.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			rules, err := loadRules(a.cfg.Industry)
			if err != nil {
				return err
			}
			importer := csvimport.NewImporter(industry.NewResolver(rules, nil, nil, 0, a.logger, nil), a.logger)
			opener, err := csvimport.NewOpener(ctx, a.cfg.S3)
			if err != nil {
				return err
			}

			var repo *postgres.CampaignRepository
			if !dryRun {
				pool, err := db.NewPostgresPool(ctx, a.cfg.Psql)
				if err != nil {
					return err
				}
				defer pool.Close()
				repo = postgres.NewCampaignRepository(pool)
			}

			for _, loc := range args {
				rc, err := opener.Open(ctx, loc)
				if err != nil {
					return err
				}
				rows, rep, err := importer.Import(ctx, rc)
				rc.Close()
				if err != nil {
					return fmt.Errorf("import %s: %w", loc, err)
				}

				var saved int64
				if repo != nil {
					if saved, err = repo.SaveCampaigns(ctx, rows); err != nil {
						return fmt.Errorf("save %s: %w", loc, err)
					}
				}
				a.logger.Info("campaign export imported",
					slog.String("source", loc),
					slog.Int("rows", rep.Rows),
					slog.Int("accepted", rep.Accepted),
					slog.Int("skipped", rep.Skipped),
					slog.Int64("inserted", saved))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "parse and report without writing to the database")
	return cmd
}
