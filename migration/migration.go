package migration

import (
	"context"
	"embed"
	"errors"
	"fmt"

	"github.com/Gthulhu/priosim/config"
	"github.com/Gthulhu/priosim/pkg/logger"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/mongodb"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/*.json
var migrationFS embed.FS

// RunMongoMigration brings the run history database up to the latest schema. It is a no-op
// when MongoDB is disabled.
func RunMongoMigration(cfg config.MongoDBConfig) error {
	if !cfg.Enable {
		return nil
	}
	ctx := context.Background()

	src, err := iofs.New(migrationFS, "migrations")
	if err != nil {
		return fmt.Errorf("open embedded migrations: %w", err)
	}
	m, err := migrate.NewWithSourceInstance("iofs", src, cfg.URI(cfg.Database))
	if err != nil {
		return fmt.Errorf("init mongodb migration: %w", err)
	}
	defer m.Close()

	err = m.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		logger.Logger(ctx).Debug().Msg("mongodb schema is up to date")
		return nil
	}
	if err != nil {
		return fmt.Errorf("apply mongodb migration: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil {
		return fmt.Errorf("read mongodb migration version: %w", err)
	}
	logger.Logger(ctx).Info().Uint("version", version).Bool("dirty", dirty).Msg("mongodb migration applied")
	return nil
}
