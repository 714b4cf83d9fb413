package main

import (
	"context"
	"database/sql"
	"fmt"
	root "tally"
	"tally/internal/config"
	"tally/pkg/logger"

	"github.com/pressly/goose/v3"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivermigrate"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// migrateSchema applies the embedded goose migrations.
func migrateSchema(db *sql.DB) error {
	goose.SetBaseFS(root.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("could not set goose dialect: %w", err)
	}
	if err := goose.Up(db, "migrations"); err != nil {
		return fmt.Errorf("could not apply schema migrations: %w", err)
	}

	return nil
}

// migrateQueue brings the river job tables to the latest version. It
// returns the version the queue schema ends up at.
func migrateQueue(ctx context.Context, db *sql.DB) (int, error) {
	migrator, err := rivermigrate.New(riverdatabasesql.New(db), nil)
	if err != nil {
		return 0, fmt.Errorf("could not create river migrator: %w", err)
	}

	res, err := migrator.Migrate(ctx, rivermigrate.DirectionUp, nil)
	if err != nil {
		return 0, fmt.Errorf("could not migrate river tables: %w", err)
	}

	existing, err := migrator.ExistingVersions(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not list river migrations: %w", err)
	}
	if len(existing) == 0 {
		return 0, nil
	}
	logger.Debug(ctx, "river migrations applied", zap.Int("count", len(res.Versions)))

	return existing[len(existing)-1].Version, nil
}

// migrateCommand constructs the 'migrate' subcommand that brings both the
// application schema and the job queue tables to their latest version.
func migrateCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Migrates database to the latest version",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := cmd.Context()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			db, ok := strg.DB.(*sql.DB)
			if !ok {
				logger.Fatal(ctx, "postgres storage is not backed by *sql.DB")
			}

			if err := migrateSchema(db); err != nil {
				logger.Fatal(ctx, "could not migrate pgsql", zap.Error(err))
			}

			version, err := migrateQueue(ctx, db)
			if err != nil {
				logger.Fatal(ctx, "could not migrate river queue", zap.Error(err))
			}

			logger.Info(ctx, "database migrated", zap.Int("riverVersion", version))
		},
	}
}
