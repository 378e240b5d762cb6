package cli

import (
	"github.com/spf13/cobra"

	"recruitads/internal/db"
)

func (a *app) migrateCmd() *cobra.Command {
	var down bool
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			addr := a.cfg.Psql.Addr.String()
			if down {
				if err := db.Rollback(addr); err != nil {
					return err
				}
				a.logger.Info("migrations rolled back")
				return nil
			}
			if err := db.Migrate(addr); err != nil {
				return err
			}
			a.logger.Info("migrations applied successfully")
			return nil
		},
	}
	cmd.Flags().BoolVar(&down, "down", false, "revert all migrations")
	return cmd
}
