package postgres

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5" // драйвер pgx5://
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"go.uber.org/zap"

	"notetaking/pkg/logger"
)

// Константы для сообщений об ошибках миграций.
const (
	ErrOpenMigrationSource     = "failed to open migration source"
	ErrCreateMigrationInstance = "failed to create migration instance"
	ErrApplyMigrations         = "failed to apply migrations"
)

// MigrateDSN применяет миграции из fsys (каталог dir) к базе по dsn.
func MigrateDSN(ctx context.Context, dsn string, fsys fs.FS, dir string) error {
	log := logger.Log(ctx)

	src, err := iofs.New(fsys, dir)
	if err != nil {
		log.Error(ctx, ErrOpenMigrationSource, zap.Error(err), zap.String("path", dir))
		return fmt.Errorf("%s: %w", ErrOpenMigrationSource, err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, MigrationURL(dsn))
	if err != nil {
		log.Error(ctx, ErrCreateMigrationInstance, zap.Error(err))
		return fmt.Errorf("%s: %w", ErrCreateMigrationInstance, err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		log.Error(ctx, ErrApplyMigrations, zap.Error(err))
		return fmt.Errorf("%s: %w", ErrApplyMigrations, err)
	}

	log.Info(ctx, LogMigrationsApplied)
	return nil
}

// MigrationURL переводит postgres DSN в схему драйвера миграций pgx5.
func MigrationURL(dsn string) string {
	for _, prefix := range []string{"postgresql://", "postgres://"} {
		if strings.HasPrefix(dsn, prefix) {
			return "pgx5://" + strings.TrimPrefix(dsn, prefix)
		}
	}
	return dsn
}
