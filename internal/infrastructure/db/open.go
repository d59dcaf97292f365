package db

import (
	"context"
	"fmt"

	"portfolio/internal/domain/repositories"
	infrarepo "portfolio/internal/infrastructure/repositories"
	"portfolio/internal/pkg/config"

	"go.uber.org/zap"
)

// OpenRegistry connects to the configured store and returns its repositories
// with a close func. Postgres schemas come from goose when RUN_AUTO_MIGRATION
// is set, sqlite is always auto-migrated.
func OpenRegistry(ctx context.Context, cfg config.DatabaseConfig, logger *zap.Logger) (*repositories.Registry, func(), error) {
	noop := func() {}

	switch cfg.Driver {
	case "postgres", "":
		database, err := NewPostgresDB(cfg)
		if err != nil {
			return nil, noop, err
		}
		if cfg.AutoMigrate {
			if err := RunMigrations(ctx, database, "."); err != nil {
				return nil, noop, err
			}
			logger.Info("migrations applied")
		}
		return infrarepo.NewGormRegistry(database), closer(database, logger), nil

	case "sqlite":
		database, err := NewSQLiteDB(cfg.SQLitePath)
		if err != nil {
			return nil, noop, err
		}
		if err := AutoMigrate(database); err != nil {
			return nil, noop, fmt.Errorf("sqlite migrate: %w", err)
		}
		return infrarepo.NewGormRegistry(database), closer(database, logger), nil

	case "mongo":
		client, database, err := NewMongoDB(ctx, cfg)
		if err != nil {
			return nil, noop, err
		}
		return infrarepo.NewMongoRegistry(database), func() {
			if err := client.Disconnect(context.Background()); err != nil {
				logger.Warn("mongo disconnect failed", zap.Error(err))
			}
		}, nil

	case "memory":
		return infrarepo.NewInMemoryRegistry(), noop, nil
	}
	return nil, noop, fmt.Errorf("bilinmeyen DB_DRIVER: %q", cfg.Driver)
}
