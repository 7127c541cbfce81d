package middleware

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"notetaking/internal/adapters/http/dto"
	"notetaking/internal/domain/services"
	svc "notetaking/internal/ports/services"
	"notetaking/pkg/logger"
)

// Константы для логирования и ответов.
const (
	LogAuthMiddleware = "auth middleware"

	MsgAccessTokenRequired = "Access token required"
	MsgInvalidToken        = "Invalid token"
)

type identityKey struct{}

// NewAuthMiddleware проверяет bearer токен и кладет личность пользователя
// в Locals и в context.Context запроса. База данных не используется.
func NewAuthMiddleware(tokens svc.TokenService) fiber.Handler {
	return func(ctx fiber.Ctx) error {
		requestCtx := ctx.Context()
		log := logger.Log(requestCtx).With(zap.String("middleware", "auth"))
		log.Debug(requestCtx, LogAuthMiddleware)

		token := bearerToken(ctx.Get(fiber.HeaderAuthorization))
		if token == "" {
			log.Debug(requestCtx, "no bearer token provided")
			return ctx.Status(fiber.StatusUnauthorized).JSON(dto.MessageResponse{Message: MsgAccessTokenRequired})
		}

		identity, err := tokens.ValidateToken(requestCtx, token)
		if err != nil {
			log.Debug(requestCtx, "token rejected", zap.Error(err))
			return ctx.Status(fiber.StatusForbidden).JSON(dto.MessageResponse{Message: MsgInvalidToken})
		}

		ctx.Locals(identityKey{}, identity)
		ctx.SetContext(WithIdentity(requestCtx, identity))
		return ctx.Next()
	}
}

func bearerToken(header string) string {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

// WithIdentity кладет личность пользователя в контекст.
func WithIdentity(ctx context.Context, identity *services.Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, identity)
}

// IdentityFromContext извлекает личность пользователя из контекста.
func IdentityFromContext(ctx context.Context) (*services.Identity, bool) {
	identity, ok := ctx.Value(identityKey{}).(*services.Identity)
	return identity, ok && identity != nil
}

// IdentityFrom извлекает личность пользователя из запроса.
func IdentityFrom(ctx fiber.Ctx) (*services.Identity, bool) {
	if identity, ok := ctx.Locals(identityKey{}).(*services.Identity); ok && identity != nil {
		return identity, true
	}
	return IdentityFromContext(ctx.Context())
}
