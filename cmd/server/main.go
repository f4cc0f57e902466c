package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"

	"progress-tracker/internal/config"
	"progress-tracker/internal/constants"
	fxmodules "progress-tracker/internal/fx"
	"progress-tracker/internal/loader"
	"progress-tracker/internal/middleware"
	"progress-tracker/internal/server"
	"progress-tracker/internal/web"

	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

func main() {
	fx.New(
		fxmodules.Module,
		fx.Invoke(runServer),
	).Run()
}

func runServer(
	lc fx.Lifecycle,
	progressServer *server.ProgressServer,
	dashboard *web.DashboardHandler,
	datasetLoader *loader.Loader,
	cfg *config.Config,
	db *sql.DB,
	logger zerolog.Logger,
) {
	mux := http.NewServeMux()

	c := cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"*"},
	})

	path, handler := progressServer.Handler()
	mux.Handle(path, c.Handler(handler))
	dashboard.Register(mux)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.ServerPort),
		Handler: middleware.RequestID(logger)(mux),
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			datasetLoader.Start()
			go func() {
				logger.Info().Str("addr", srv.Addr).Msg("server starting")
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Fatal().Err(err).Msg("server failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info().Msg("shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
			defer cancel()

			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.Error().Err(err).Msg("server shutdown failed")
				return err
			}

			if err := db.Close(); err != nil {
				logger.Warn().Err(err).Msg("error closing database connection")
			}

			logger.Info().Msg("server stopped gracefully")
			return nil
		},
	})
}
