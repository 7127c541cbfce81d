package config

import "time"

// JWTConfig содержит настройки выпуска токенов и хэширования паролей.
type JWTConfig struct {
	Secret     string        `env:"JWT_SECRET" env-required:"true"`
	TokenTTL   time.Duration `env:"JWT_TOKEN_TTL" env-default:"24h"`
	BcryptCost int           `env:"BCRYPT_COST" env-default:"12"`
}
