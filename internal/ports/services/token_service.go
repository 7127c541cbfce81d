package services

import (
	"context"
	"time"

	"notetaking/internal/domain/services"
)

// TokenService выпускает и проверяет bearer токены.
type TokenService interface {
	GenerateToken(ctx context.Context, userID, email string) (string, time.Time, error)

	ValidateToken(ctx context.Context, token string) (*services.Identity, error)
}
