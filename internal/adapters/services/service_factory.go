// Package services предоставляет реализации сервисов работы с паролями и JWT токенами
// и фабрику для доступа к ним.
package services

import (
	"time"

	"notetaking/internal/ports/services"
)

// ServiceFactory создает все необходимые сервисы для аутентификации.
type ServiceFactory struct {
	passwordService services.PasswordService
	tokenService    services.TokenService
}

// NewServiceFactory создает новую фабрику сервисов.
func NewServiceFactory(jwtSecretKey string, tokenTTL time.Duration, bcryptCost int) *ServiceFactory {
	return &ServiceFactory{
		passwordService: NewBcrypt(bcryptCost),
		tokenService:    NewJWT(jwtSecretKey, tokenTTL),
	}
}

// PasswordService возвращает сервис для работы с паролями.
func (f *ServiceFactory) PasswordService() services.PasswordService {
	return f.passwordService
}

// TokenService возвращает сервис для работы с токенами.
func (f *ServiceFactory) TokenService() services.TokenService {
	return f.tokenService
}
