package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"travelcatalog/internal/api"
	"travelcatalog/internal/api/handler/cataloghandler"
	"travelcatalog/internal/catalog"
	"travelcatalog/internal/config"
	"travelcatalog/pkg/logger"
	"travelcatalog/pkg/storage"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func setupServer(ctx context.Context, cfg *config.Config, strg storage.Storage) func(ctx context.Context) {
	server, err := api.NewServer(api.Deps{
		Deps: cataloghandler.Deps{
			Catalog: catalog.New(strg),
			Pinger:  strg,
		},
	}, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", cfg.HTTP.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

func serveCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts the catalog API server",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			strg, closeStrg := getPostgres(ctx, a.cfg)
			defer closeStrg()

			stopWebserver := setupServer(ctx, a.cfg, strg)

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)
		},
	}

	return cmd
}
