package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"notetaking/internal/domain/services"
	svc "notetaking/internal/ports/services"
	"notetaking/pkg/logger"
)

// Константы для работы с JWT.
const (
	methodGenerateToken = "GenerateToken"
	methodValidateToken = "ValidateToken"
	msgGeneratingToken  = "generating token"
	msgValidatingToken  = "validating token"
	msgTokenGenerated   = "token generated successfully"
	msgTokenValidated   = "token validated successfully"
	msgInvalidToken     = "invalid token"
	msgTokenExpired     = "token has expired"
	//nolint:gosec
	errSigningToken       = "error signing token"
	errCtxGeneratingToken = "generating token"
	errCtxValidatingToken = "validating token"
)

// ErrInvalidAlgorithm представляет статическую ошибку неверного алгоритма подписи.
var ErrInvalidAlgorithm = errors.New("invalid signing algorithm")

// Claims используется для адаптации между доменной моделью и библиотекой JWT.
type Claims struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// ServiceJWT реализует интерфейс TokenService.
type ServiceJWT struct {
	config services.JWTConfig
	now    func() time.Time
}

// NewJWT создает новый экземпляр сервиса JWT.
func NewJWT(secretKey string, tokenTTL time.Duration) svc.TokenService {
	if tokenTTL <= 0 {
		tokenTTL = services.DefaultTokenTTL
	}
	return &ServiceJWT{
		config: services.JWTConfig{
			SecretKey: []byte(secretKey),
			TokenTTL:  tokenTTL,
		},
		now: time.Now,
	}
}

// domainToJWTClaims преобразует доменные claims в формат библиотеки JWT.
func domainToJWTClaims(claims services.JWTClaims) Claims {
	return Claims{
		ID:    claims.ID,
		Email: claims.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(claims.ExpiresAt),
			IssuedAt:  jwt.NewNumericDate(claims.IssuedAt),
		},
	}
}

// GenerateToken выпускает токен с полезной нагрузкой {id, email}.
func (s *ServiceJWT) GenerateToken(ctx context.Context, userID, email string) (string, time.Time, error) {
	log := logger.Log(ctx).With(
		zap.String("method", methodGenerateToken),
		zap.String("userID", userID),
	)
	log.Debug(ctx, msgGeneratingToken)

	if len(s.config.SecretKey) == 0 {
		log.Error(ctx, "empty secret key provided")
		return "", time.Time{}, fmt.Errorf("%s: %w: empty secret key", errCtxGeneratingToken, services.ErrGeneratingJWTToken)
	}

	now := s.now()
	expiresAt := now.Add(s.config.TokenTTL)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, domainToJWTClaims(services.JWTClaims{
		ID:        userID,
		Email:     email,
		IssuedAt:  now,
		ExpiresAt: expiresAt,
	}))

	tokenString, err := token.SignedString(s.config.SecretKey)
	if err != nil {
		log.Error(ctx, errSigningToken, zap.Error(err))
		return "", time.Time{}, fmt.Errorf("%s: %w: %w", errCtxGeneratingToken, services.ErrGeneratingJWTToken, err)
	}

	log.Debug(ctx, msgTokenGenerated, zap.Time("expiresAt", expiresAt))
	return tokenString, expiresAt, nil
}

// ValidateToken проверяет подпись, алгоритм и срок действия токена.
func (s *ServiceJWT) ValidateToken(ctx context.Context, tokenString string) (*services.Identity, error) {
	log := logger.Log(ctx).With(zap.String("method", methodValidateToken))
	log.Debug(ctx, msgValidatingToken)

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAlgorithm, token.Header["alg"])
		}
		return s.config.SecretKey, nil
	},
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			log.Debug(ctx, msgTokenExpired)
			return nil, fmt.Errorf("%s: %w", errCtxValidatingToken, services.ErrExpiredJWTToken)
		}
		log.Debug(ctx, msgInvalidToken, zap.Error(err))
		return nil, fmt.Errorf("%s: %w: %w", errCtxValidatingToken, services.ErrInvalidJWTToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		log.Debug(ctx, msgInvalidToken)
		return nil, fmt.Errorf("%s: %w", errCtxValidatingToken, services.ErrInvalidJWTToken)
	}

	if claims.ID == "" {
		log.Debug(ctx, "id claim is empty")
		return nil, fmt.Errorf("%s: %w: empty id", errCtxValidatingToken, services.ErrInvalidJWTToken)
	}

	log.Debug(ctx, msgTokenValidated, zap.String("userID", claims.ID))
	return &services.Identity{ID: claims.ID, Email: claims.Email}, nil
}
