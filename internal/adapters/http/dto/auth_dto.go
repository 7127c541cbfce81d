// Package dto содержит объекты передачи данных HTTP API.
package dto

import (
	"strings"
	"time"

	"notetaking/internal/domain/entities"
)

// RegisterRequest содержит данные для регистрации пользователя.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,max=254,email"`
	Password string `json:"password" validate:"required,min=6,maxbytes=72"`
}

// Normalize приводит email к каноническому виду.
func (r *RegisterRequest) Normalize() {
	r.Email = normalizeEmail(r.Email)
}

// LoginRequest содержит данные для входа пользователя.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Normalize приводит email к каноническому виду.
func (r *LoginRequest) Normalize() {
	r.Email = normalizeEmail(r.Email)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// UserResponse содержит публичные данные пользователя.
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// AuthResponse возвращается после регистрации и входа.
type AuthResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
	Token   string       `json:"token"`
}

// NewAuthResponse собирает ответ без хеша пароля.
func NewAuthResponse(message string, user *entities.User, token string) AuthResponse {
	return AuthResponse{
		Message: message,
		User: UserResponse{
			ID:        user.ID,
			Email:     user.Email,
			CreatedAt: user.CreatedAt,
		},
		Token: token,
	}
}

// MessageResponse - ответ с одним сообщением.
type MessageResponse struct {
	Message string `json:"message"`
}
