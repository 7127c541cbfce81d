// Package redis предоставляет общую реализацию клиента Redis.
package redis

import "time"

// DefaultValues содержит значения по умолчанию для Redis.
const (
	DefaultHost     = "localhost"
	DefaultPort     = 6379
	DefaultPassword = ""
	DefaultDB       = 0
	DefaultPoolSize = 10
	DefaultTimeout  = 5 * time.Second
)

// Config содержит настройки подключения к Redis.
type Config struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
	Timeout  time.Duration
}

// DefaultConfig возвращает конфигурацию Redis по умолчанию.
func DefaultConfig() *Config {
	return &Config{
		Host:     DefaultHost,
		Port:     DefaultPort,
		Password: DefaultPassword,
		DB:       DefaultDB,
		PoolSize: DefaultPoolSize,
		Timeout:  DefaultTimeout,
	}
}

// Source описывает конфигурацию сервиса, из которой можно получить настройки Redis.
type Source interface {
	GetHost() string
	GetPort() int
	GetPassword() string
	GetDB() int
	GetPoolSize() int
	GetTimeout() time.Duration
}

// NewConfig создает конфигурацию Redis из конфигурации сервиса.
func NewConfig(src Source) *Config {
	cfg := &Config{
		Host:     src.GetHost(),
		Port:     src.GetPort(),
		Password: src.GetPassword(),
		DB:       src.GetDB(),
		PoolSize: src.GetPoolSize(),
		Timeout:  src.GetTimeout(),
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	return cfg
}
