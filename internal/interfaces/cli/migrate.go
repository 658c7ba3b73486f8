package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pharmindex/repurpose/internal/infrastructure/database/postgres"
)

func newMigrateCmd(app *appContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage database schema migrations",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			RunE: func(cmd *cobra.Command, args []string) error {
				return postgres.RunMigrations(postgres.BuildDSN(app.cfg.Database), app.cfg.Database.MigrationPath)
			},
		},
		func() *cobra.Command {
			var steps int
			down := &cobra.Command{
				Use:   "down",
				Short: "Roll back migrations",
				RunE: func(cmd *cobra.Command, args []string) error {
					return postgres.RollbackMigration(postgres.BuildDSN(app.cfg.Database), app.cfg.Database.MigrationPath, steps)
				},
			}
			down.Flags().IntVar(&steps, "steps", 1, "number of migrations to roll back")
			return down
		}(),
		&cobra.Command{
			Use:   "status",
			Short: "Show the current migration version",
			RunE: func(cmd *cobra.Command, args []string) error {
				version, dirty, err := postgres.MigrationStatus(postgres.BuildDSN(app.cfg.Database), app.cfg.Database.MigrationPath)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "version: %d dirty: %v\n", version, dirty)
				return nil
			},
		},
	)
	return cmd
}
