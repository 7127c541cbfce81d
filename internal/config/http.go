package config

import (
	"net"
	"strconv"
	"time"
)

// HTTPConfig представляет конфигурацию HTTP сервера.
type HTTPConfig struct {
	Host           string        `env:"HTTP_HOST" env-default:"0.0.0.0" env-description:"listen host"`
	Port           int           `env:"PORT" env-default:"8080" env-description:"listen port"`
	ReadTimeout    time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"10s"`
	WriteTimeout   time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"10s"`
	RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"5s" env-description:"deadline for database and storage calls of one request"`
	BodyLimit      int           `env:"HTTP_BODY_LIMIT" env-default:"1048576"`

	// ProxyHeader учитывается только для запросов от TrustedProxies.
	ProxyHeader    string   `env:"HTTP_PROXY_HEADER" env-description:"client IP header set by a reverse proxy, e.g. X-Forwarded-For"`
	TrustedProxies []string `env:"HTTP_TRUSTED_PROXIES" env-description:"comma separated IPs or CIDRs allowed to set HTTP_PROXY_HEADER"`
}

// GetAddress возвращает адрес HTTP сервера.
func (c *HTTPConfig) GetAddress() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// CORSConfig задает разрешенный источник фронтенда.
type CORSConfig struct {
	FrontendURL string `env:"FRONTEND_URL" env-default:"http://localhost:3000"`
}
