package services

import (
	"errors"
	"time"
)

// Ошибки JWT.
var (
	ErrInvalidJWTToken    = errors.New("invalid JWT token")
	ErrExpiredJWTToken    = errors.New("JWT token has expired")
	ErrGeneratingJWTToken = errors.New("failed to generate JWT token")
)

// DefaultTokenTTL - срок жизни токена по умолчанию.
const DefaultTokenTTL = 24 * time.Hour

// JWTConfig содержит настройки для JWT сервиса.
type JWTConfig struct {
	SecretKey []byte
	TokenTTL  time.Duration
}

// JWTClaims определяет полезную нагрузку токена.
type JWTClaims struct {
	ID        string
	Email     string
	IssuedAt  time.Time
	ExpiresAt time.Time
}
