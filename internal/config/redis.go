package config

import "time"

// RedisConfig содержит настройки подключения к Redis.
type RedisConfig struct {
	Host     string        `env:"REDIS_HOST" env-default:"localhost"`
	Port     int           `env:"REDIS_PORT" env-default:"6379"`
	Password string        `env:"REDIS_PASSWORD"`
	DB       int           `env:"REDIS_DB" env-default:"0"`
	PoolSize int           `env:"REDIS_POOL_SIZE" env-default:"10"`
	Timeout  time.Duration `env:"REDIS_TIMEOUT" env-default:"3s"`
}

// GetHost возвращает хост Redis.
func (c RedisConfig) GetHost() string { return c.Host }

// GetPort возвращает порт Redis.
func (c RedisConfig) GetPort() int { return c.Port }

// GetPassword возвращает пароль Redis.
func (c RedisConfig) GetPassword() string { return c.Password }

// GetDB возвращает номер базы Redis.
func (c RedisConfig) GetDB() int { return c.DB }

// GetPoolSize возвращает размер пула соединений.
func (c RedisConfig) GetPoolSize() int { return c.PoolSize }

// GetTimeout возвращает таймаут операций.
func (c RedisConfig) GetTimeout() time.Duration { return c.Timeout }

// RateLimitConfig задает ограничение частоты запросов к /api/auth.
type RateLimitConfig struct {
	Enabled bool          `env:"AUTH_RATE_LIMIT_ENABLED" env-default:"true"`
	Max     int           `env:"AUTH_RATE_LIMIT_MAX" env-default:"20"`
	Window  time.Duration `env:"AUTH_RATE_LIMIT_WINDOW" env-default:"1m"`
}
