// Package config содержит конфигурацию сервиса заметок.
package config

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	pkgconfig "notetaking/pkg/config"
	"notetaking/pkg/logger"
)

// Константы ошибок и сообщений для конфигурации.
const (
	ServiceName         = "notetaking"
	LogConfigSummary    = "service configuration"
	ErrFailedLoadConfig = "failed to load configuration"
)

// DefaultEnvFiles - файлы окружения, которые читаются при наличии.
var DefaultEnvFiles = []string{".env", "deploy/.env"}

// Config представляет полную конфигурацию сервиса.
type Config struct {
	HTTP      HTTPConfig
	CORS      CORSConfig
	Postgres  PostgresConfig
	JWT       JWTConfig
	Storage   StorageConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
	Upload    UploadConfig
	Logging   LoggingConfig
	Shutdown  ShutdownConfig
}

// Load загружает конфигурацию из .env файлов и переменных окружения.
func Load(ctx context.Context, envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = DefaultEnvFiles
	}

	cfg, err := pkgconfig.Load[Config](ctx, ServiceName, envFiles...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrFailedLoadConfig, err)
	}

	logger.Log(ctx).Info(ctx, LogConfigSummary,
		zap.String("http_address", cfg.HTTP.GetAddress()),
		zap.Duration("request_timeout", cfg.HTTP.RequestTimeout),
		zap.String("frontend_url", cfg.CORS.FrontendURL),
		zap.String("postgres_host", cfg.Postgres.Host),
		zap.String("postgres_db", cfg.Postgres.Database),
		zap.String("storage_bucket", cfg.Storage.Bucket),
		zap.String("storage_endpoint", cfg.Storage.Endpoint),
		zap.Bool("rate_limit_enabled", cfg.RateLimit.Enabled),
		zap.Bool("upload_require_auth", cfg.Upload.RequireAuth),
		zap.String("log_level", cfg.Logging.Level),
		zap.String("log_mode", cfg.Logging.Mode))

	return cfg, nil
}

// Usage возвращает описание всех переменных окружения.
func Usage() string {
	return pkgconfig.Usage[Config]("Environment variables:")
}
