package config

import (
	"time"

	"notetaking/pkg/logger"
)

// LoggingConfig представляет конфигурацию логирования.
type LoggingConfig struct {
	Level string `env:"LOGGER_LEVEL" env-default:"info"`
	Mode  string `env:"LOGGER_MODE" env-default:"production"`
}

// GetEnvironment возвращает режим работы логгера.
func (c *LoggingConfig) GetEnvironment() logger.Environment {
	if c.Mode == "development" {
		return logger.Development
	}
	return logger.Production
}

// ShutdownConfig представляет конфигурацию для корректного завершения работы.
type ShutdownConfig struct {
	Timeout time.Duration `env:"SHUTDOWN_TIMEOUT" env-default:"10s"`
}
