package middleware

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/helmet"
)

// NewSecurityHeadersMiddleware выставляет стандартные заголовки безопасности.
func NewSecurityHeadersMiddleware() fiber.Handler {
	return helmet.New()
}

// NewCORSMiddleware разрешает кросс-доменные запросы только с фронтенда.
// Для "*" cookies и авторизационные заголовки не передаются.
func NewCORSMiddleware(frontendURL string) fiber.Handler {
	cfg := cors.Config{
		AllowOrigins: []string{frontendURL},
		AllowMethods: []string{
			fiber.MethodGet,
			fiber.MethodPost,
			fiber.MethodPut,
			fiber.MethodDelete,
			fiber.MethodOptions,
		},
		AllowHeaders:     []string{fiber.HeaderOrigin, fiber.HeaderContentType, fiber.HeaderAccept, fiber.HeaderAuthorization},
		ExposeHeaders:    []string{HeaderRequestID},
		AllowCredentials: frontendURL != "*",
	}
	if frontendURL == "" {
		cfg.AllowOrigins = []string{"*"}
		cfg.AllowCredentials = false
	}
	return cors.New(cfg)
}
