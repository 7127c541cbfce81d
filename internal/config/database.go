package config

import (
	"net/url"
	"strconv"
	"time"
)

// PostgresConfig содержит настройки подключения к базе данных.
type PostgresConfig struct {
	Host           string        `env:"POSTGRES_HOST" env-default:"localhost"`
	Port           int           `env:"POSTGRES_PORT" env-default:"5432"`
	User           string        `env:"POSTGRES_USER" env-default:"postgres"`
	Password       string        `env:"POSTGRES_PASSWORD" env-default:"postgres"`
	Database       string        `env:"POSTGRES_DB" env-default:"notetaking"`
	SSLMode        string        `env:"POSTGRES_SSLMODE" env-default:"disable"`
	MinConn        int           `env:"POSTGRES_MIN_CONN" env-default:"1"`
	MaxConn        int           `env:"POSTGRES_MAX_CONN" env-default:"10"`
	ConnectRetries uint          `env:"POSTGRES_CONNECT_RETRIES" env-default:"5"`
	RetryDelay     time.Duration `env:"POSTGRES_RETRY_DELAY" env-default:"2s"`
}

// GetConnectionURL возвращает URL-строку подключения.
func (p *PostgresConfig) GetConnectionURL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(p.User, p.Password),
		Host:     p.Host + ":" + strconv.Itoa(p.Port),
		Path:     "/" + p.Database,
		RawQuery: url.Values{"sslmode": []string{p.SSLMode}}.Encode(),
	}
	return u.String()
}
