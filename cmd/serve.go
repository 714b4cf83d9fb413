package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"tally/internal/api"
	"tally/internal/api/handler/v1handler"
	"tally/internal/catalog"
	"tally/internal/config"
	"tally/internal/exporter"
	"tally/internal/jury"
	"tally/internal/results"
	"tally/internal/voting"
	"tally/internal/worker"
	"tally/pkg/logger"
	"tally/pkg/metrics"
	"tally/pkg/storage/postgres"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// buildDeps constructs the services behind the v1 API on top of strg.
func buildDeps(strg *postgres.PgSQL, cfg *config.Config) (v1handler.Deps, error) {
	tracker, err := voting.New(strg, voting.NewOptions(cfg))
	if err != nil {
		return v1handler.Deps{}, fmt.Errorf("could not create vote tracker: %w", err)
	}
	res, err := results.New(strg)
	if err != nil {
		return v1handler.Deps{}, fmt.Errorf("could not create results service: %w", err)
	}

	return v1handler.Deps{
		Tracker:  tracker,
		Catalog:  catalog.New(strg),
		Jury:     jury.New(strg),
		Results:  res,
		Exporter: exporter.New(strg, res, exporter.NewOptions(cfg)),
	}, nil
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server and background export workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			mp, err := metrics.NewMeterProvider(prometheus.DefaultRegisterer)
			if err != nil {
				logger.Fatal(ctx, "could not create meter provider", zap.Error(err))
			}
			otel.SetMeterProvider(mp)

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			deps, err := buildDeps(strg, cfg)
			if err != nil {
				logger.Fatal(ctx, "could not build services", zap.Error(err))
			}

			riverClient, err := worker.Start(ctx, strg.Pool, deps.Exporter, worker.NewOptions(cfg))
			if err != nil {
				logger.Fatal(ctx, "could not start export workers", zap.Error(err))
			}

			server, err := api.NewServer(api.Deps{Deps: deps}, api.NewOptions(cfg))
			if err != nil {
				logger.Fatal(ctx, "could not create webserver", zap.Error(err))
			}

			g, gCtx := errgroup.WithContext(ctx)
			g.Go(func() error {
				logger.Info(ctx, "starting webserver...", zap.String("addr", server.Addr))
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					return fmt.Errorf("could not start webserver: %w", err)
				}

				return nil
			})
			g.Go(func() error {
				// wait for interrupt or a failed listener
				<-gCtx.Done()
				shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
				defer cancel()

				logger.Info(ctx, "stopping webserver...")
				if err := server.Shutdown(shutdownCtx); err != nil {
					logger.Error(ctx, "could not stop webserver", zap.Error(err))
				}

				logger.Info(ctx, "stopping export workers...")
				if err := riverClient.Stop(shutdownCtx); err != nil {
					logger.Error(ctx, "could not stop export workers", zap.Error(err))
				}

				if err := mp.Shutdown(shutdownCtx); err != nil {
					logger.Warn(ctx, "could not shutdown meter provider", zap.Error(err))
				}

				return nil
			})

			if err := g.Wait(); err != nil {
				logger.Error(ctx, "server exited", zap.Error(err))
			}
		},
	}

	return cmd
}
