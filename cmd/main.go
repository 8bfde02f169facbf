// Package main provides the CLI entrypoint for the travel package catalog.
// It wires subcommands (serve, migrate), loads configuration, and initializes logging.
package main

import (
	"context"
	"fmt"
	"os"
	"travelcatalog/internal/config"
	"travelcatalog/pkg/logger"
	"travelcatalog/pkg/storage/postgres"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app carries state shared by all subcommands. cfg is populated before any
// subcommand runs.
type app struct {
	configPath string
	cfg        *config.Config
}

// getPostgres creates a PostgreSQL client using configuration values and returns it
// along with a cleanup function to close the connection pool.
func getPostgres(ctx context.Context, cfg *config.Config) (*postgres.PgSQL, func()) {
	pgsql, err := postgres.New(ctx, postgres.Options{
		Username:           cfg.Database.Username,
		Password:           cfg.Database.Password,
		Host:               cfg.Database.Host,
		Port:               cfg.Database.Port,
		Database:           cfg.Database.DatabaseName,
		ConnMaxLifetime:    cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime:    cfg.Database.ConnMaxIdleTime,
		MaxOpenConnections: cfg.Database.MaxOpenConnections,
		MaxIdleConnections: cfg.Database.MaxIdleConnections,
		SslMode:            cfg.Database.SslMode,
	})
	if err != nil {
		logger.Fatal(ctx, "could not create postgres storage", zap.Error(err))
	}

	return pgsql, func() {
		logger.Info(ctx, "closing postgres client...")
		if err = pgsql.Close(); err != nil {
			logger.Warn(ctx, "could not close postgres connection", zap.Error(err))
		}
	}
}

// setup loads the configuration file (plus an optional .env file) and
// initializes the global logger.
func (a *app) setup(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath, ".env")
	if err != nil {
		return err //nolint: wrapcheck
	}

	if err = logger.Setup(cfg.Environment, cfg.LogLevel); err != nil {
		return fmt.Errorf("could not setup logger: %w", err)
	}
	a.cfg = cfg

	return nil
}

// main sets up the root Cobra command and registers subcommands before
// executing the CLI.
func main() {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:               "catalog",
		Short:             "Travel package catalog service",
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}
	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "config.yml", "Config File Path")

	ctx := context.Background()

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			logger.Sync(ctx)

			panic(p)
		}
	}()

	rootCmd.AddCommand(
		migrateCommand(a),
		serveCommand(a),
	)

	err := rootCmd.Execute()
	logger.Sync(ctx)
	if err != nil {
		os.Exit(1) //nolint: gocritic
	}
}
