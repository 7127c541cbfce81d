// Package entities содержит доменные сущности сервиса заметок.
package entities

import (
	"errors"
	"time"
)

// Ошибки домена пользователя.
var (
	ErrUserNotFound = errors.New("user not found")
)

// User представляет зарегистрированного пользователя.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
