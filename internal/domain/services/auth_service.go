// Package services содержит доменные ошибки и типы сервисного слоя.
package services

import "errors"

// Ошибки домена аутентификации.
var (
	ErrEmailAlreadyExists = errors.New("user with this email already exists")
	ErrUnauthorized       = errors.New("unauthorized")
)

// Identity - аутентифицированный пользователь, извлеченный из токена.
type Identity struct {
	ID    string
	Email string
}
