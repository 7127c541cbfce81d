// Package postgres предоставляет пул соединений и миграции для PostgreSQL.
package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"notetaking/pkg/logger"
)

// Константы для сообщений logger.
const (
	LogConnecting        = "connecting to Postgres database"
	LogConnected         = "successfully connected to Postgres"
	LogConnectRetry      = "postgres connection attempt failed, retrying"
	LogClosing           = "closing Postgres connection pool"
	LogMigrationsApplied = "database migrations successfully applied"
)

// Константы для сообщений об ошибках.
const (
	ErrParseConfig  = "failed to parse connection config"
	ErrCreatePool   = "failed to create connection pool"
	ErrPingDatabase = "failed to ping database"
	ErrConnect      = "failed to connect to database"
)

// Options задает параметры пула и повторных попыток подключения.
type Options struct {
	MinConns    int
	MaxConns    int
	Attempts    uint
	RetryDelay  time.Duration
	PingTimeout time.Duration
}

// Database представляет соединение с Postgres.
type Database struct {
	pool *pgxpool.Pool
}

// New создает новое соединение с базой данных Postgres.
func New(ctx context.Context, dsn string, minConn, maxConn int) (*Database, error) {
	log := logger.Log(ctx)

	log.Info(ctx, LogConnecting)

	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Error(ctx, ErrParseConfig, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrParseConfig, err)
	}

	if minConn > 0 {
		poolCfg.MinConns = int32(minConn)
	}
	if maxConn > 0 {
		poolCfg.MaxConns = int32(maxConn)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		log.Error(ctx, ErrCreatePool, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrCreatePool, err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		log.Error(ctx, ErrPingDatabase, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrPingDatabase, err)
	}

	log.Info(ctx, LogConnected)
	return &Database{pool: pool}, nil
}

// Connect подключается к базе, повторяя попытки при старте сервиса.
// Ошибка разбора DSN не повторяется.
func Connect(ctx context.Context, dsn string, opts Options) (*Database, error) {
	if _, err := pgxpool.ParseConfig(dsn); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrParseConfig, err)
	}

	attempts := opts.Attempts
	if attempts == 0 {
		attempts = 1
	}

	log := logger.Log(ctx)

	db, err := retry.DoWithData(
		func() (*Database, error) {
			attemptCtx := ctx
			if opts.PingTimeout > 0 {
				var cancel context.CancelFunc
				attemptCtx, cancel = context.WithTimeout(ctx, opts.PingTimeout)
				defer cancel()
			}
			return New(attemptCtx, dsn, opts.MinConns, opts.MaxConns)
		},
		retry.Context(ctx),
		retry.Attempts(attempts),
		retry.Delay(opts.RetryDelay),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			log.Warn(ctx, LogConnectRetry, zap.Uint("attempt", n+1), zap.Error(err))
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrConnect, err)
	}
	return db, nil
}

// Pool возвращает подключение к пулу соединений.
func (db *Database) Pool() *pgxpool.Pool {
	return db.pool
}

// Close закрывает соединение с базой данных.
func (db *Database) Close(ctx context.Context) {
	logger.Log(ctx).Info(ctx, LogClosing)
	db.pool.Close()
}

// Ping проверяет доступность базы данных.
func (db *Database) Ping(ctx context.Context) error {
	return db.pool.Ping(ctx)
}
