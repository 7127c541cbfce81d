// Package config предоставляет функциональность для загрузки конфигурации из переменных окружения.
package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"notetaking/pkg/logger"
)

const (
	msgLoadingConfiguration    = "loading configuration"
	msgConfigurationLoaded     = "configuration loaded successfully"
	msgFailedLoadConfiguration = "failed to load configuration"
	msgDotEnvLoaded            = "dotenv file loaded"

	errFailedLoadDotEnv        = "failed to load dotenv file"
	errFailedLoadConfiguration = "failed to load configuration"

	attrService = "service"
	attrPath    = "path"
)

// Load читает .env файлы (если они существуют) и заполняет T из переменных окружения.
// Уже заданные переменные окружения имеют приоритет над значениями из файлов.
func Load[T any](ctx context.Context, serviceName string, envFiles ...string) (*T, error) {
	log := logger.Log(ctx).With(zap.String(attrService, serviceName))

	log.Info(ctx, msgLoadingConfiguration)

	for _, path := range envFiles {
		if err := godotenv.Load(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			log.Error(ctx, errFailedLoadDotEnv, zap.String(attrPath, path), zap.Error(err))
			return nil, fmt.Errorf("%s %s: %w", errFailedLoadDotEnv, path, err)
		}
		log.Debug(ctx, msgDotEnvLoaded, zap.String(attrPath, path))
	}

	var cfg T
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Error(ctx, msgFailedLoadConfiguration, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errFailedLoadConfiguration, err)
	}

	log.Info(ctx, msgConfigurationLoaded)
	return &cfg, nil
}

// Usage возвращает описание переменных окружения для T.
func Usage[T any](header string) string {
	var cfg T
	text, err := cleanenv.GetDescription(&cfg, &header)
	if err != nil {
		return header
	}
	return text
}

// LookupEnv возвращает значение переменной или запасное значение.
func LookupEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
