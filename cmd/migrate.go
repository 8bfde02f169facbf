package main

import (
	"database/sql"
	root "travelcatalog"
	"travelcatalog/pkg/logger"

	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// migrateCommand constructs the 'migrate' subcommand that applies database
// migrations to the latest version using goose.
func migrateCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Migrates database to the latest version",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := cmd.Context()

			strg, closeStrg := getPostgres(ctx, a.cfg)
			defer closeStrg()

			goose.SetBaseFS(root.Migrations)
			goose.SetLogger(zap.NewStdLog(logger.Get(ctx)))

			if err := goose.SetDialect("postgres"); err != nil {
				logger.Fatal(ctx, "could not set goose dialect to postgres", zap.Error(err))
			}
			if err := goose.UpContext(ctx, strg.DB.(*sql.DB), "migrations"); err != nil {
				logger.Fatal(ctx, "could not migrate pgsql", zap.Error(err))
			}

			version, err := goose.GetDBVersionContext(ctx, strg.DB.(*sql.DB))
			if err != nil {
				logger.Fatal(ctx, "could not read migration version", zap.Error(err))
			}
			logger.Info(ctx, "database migrated", zap.Int64("version", version))
		},
	}

	return cmd
}
