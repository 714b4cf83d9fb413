package worker

import (
	"context"
	"fmt"
	"log/slog"
	"tally/internal/config"
	"tally/internal/exporter"
	"tally/pkg/logger"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"go.uber.org/zap/exp/zapslog"
)

// Options configure the job queue client.
type Options struct {
	// Workers is the number of jobs processed concurrently.
	Workers int
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{Workers: cfg.Exporter.Workers}
}

// Start registers the export worker and starts processing the default queue.
func Start(ctx context.Context,
	dbPool *pgxpool.Pool,
	exporter exporter.Exporter,
	options Options) (*river.Client[pgx.Tx], error) {
	if options.Workers <= 0 {
		options.Workers = 1
	}

	workers := river.NewWorkers()
	river.AddWorker(workers, NewExportWorker(exporter))

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: options.Workers},
		},
		Workers: workers,
		Logger:  slog.New(zapslog.NewHandler(logger.Get(ctx).Core())),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	return riverClient, nil
}
