// Package http содержит компоненты для HTTP сервера.
package http

import (
	"time"

	"github.com/gofiber/fiber/v3"

	"notetaking/internal/adapters/http/auth"
	"notetaking/internal/adapters/http/dto"
	"notetaking/internal/adapters/http/health"
	"notetaking/internal/adapters/http/middleware"
	"notetaking/internal/adapters/http/notes"
	"notetaking/internal/adapters/http/upload"
	"notetaking/internal/ports/api"
	svc "notetaking/internal/ports/services"
)

// MsgRouteNotFound - ответ для несуществующих маршрутов.
const MsgRouteNotFound = "Route not found"

// Options задает поведение HTTP слоя.
type Options struct {
	AppName        string
	FrontendURL    string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	RequestTimeout time.Duration
	BodyLimit      int

	// ProxyHeader задает заголовок с IP клиента. Он учитывается только для
	// запросов от TrustedProxies, иначе используется адрес соединения.
	ProxyHeader    string
	TrustedProxies []string

	// UploadRequireAuth закрывает маршруты загрузки проверкой токена.
	UploadRequireAuth bool

	// RateLimiter == nil отключает ограничение частоты для /api/auth.
	RateLimiter     svc.RateLimiter
	RateLimitMax    int
	RateLimitWindow time.Duration
}

// Services - зависимости обработчиков.
type Services struct {
	Auth      api.AuthUseCase
	Users     api.UserUseCase
	Notes     api.NoteUseCase
	Uploads   api.UploadUseCase
	Passwords svc.PasswordService
	Tokens    svc.TokenService
}

// NewApp создает приложение Fiber с общим обработчиком ошибок и маршрутами.
func NewApp(opts Options, services Services) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:            opts.AppName,
		ErrorHandler:       middleware.NewErrorHandler(),
		ReadTimeout:        opts.ReadTimeout,
		WriteTimeout:       opts.WriteTimeout,
		BodyLimit:          opts.BodyLimit,
		ProxyHeader:        opts.ProxyHeader,
		TrustProxy:         opts.ProxyHeader != "",
		TrustProxyConfig:   fiber.TrustProxyConfig{Proxies: opts.TrustedProxies},
		EnableIPValidation: opts.ProxyHeader != "",
	})
	SetupRouter(app, opts, services)
	return app
}

// SetupRouter настраивает маршрутизацию для HTTP сервера.
func SetupRouter(app *fiber.App, opts Options, services Services) {
	authHandler := auth.NewHandler(services.Auth, services.Users, services.Passwords, services.Tokens)
	notesHandler := notes.NewHandler(services.Notes)
	uploadHandler := upload.NewHandler(services.Uploads)
	healthHandler := health.NewHandler(nil)
	requireAuth := middleware.NewAuthMiddleware(services.Tokens)

	// Middleware для всех запросов.
	app.Use(middleware.NewRequestIDMiddleware())
	app.Use(middleware.NewLoggerMiddleware())
	app.Use(middleware.NewRecoveryMiddleware())
	app.Use(middleware.NewSecurityHeadersMiddleware())
	app.Use(middleware.NewCORSMiddleware(opts.FrontendURL))
	app.Use(middleware.NewDeadlineMiddleware(opts.RequestTimeout))

	app.Get("/hc", healthHandler.Check)
	app.Get("/health", healthHandler.Check)

	apiGroup := app.Group("/api")

	// Auth routes (публичные).
	authRoutes := apiGroup.Group("/auth")
	if opts.RateLimiter != nil {
		authRoutes.Use(middleware.NewRateLimitMiddleware(opts.RateLimiter, middleware.RateLimitOptions{
			Scope:  "auth",
			Max:    opts.RateLimitMax,
			Window: opts.RateLimitWindow,
		}))
	}
	authRoutes.Post("/register", authHandler.Register, middleware.ValidateBody[dto.RegisterRequest]())
	authRoutes.Post("/login", authHandler.Login, middleware.ValidateBody[dto.LoginRequest]())

	// Защищенные маршруты.
	noteRoutes := apiGroup.Group("/notes", requireAuth)
	noteRoutes.Get("/", notesHandler.ListNotes)
	noteRoutes.Post("/", notesHandler.CreateNote, middleware.ValidateBody[dto.NoteRequest]())
	noteRoutes.Get("/:id", notesHandler.GetNote)
	noteRoutes.Put("/:id", notesHandler.UpdateNote, middleware.ValidateBody[dto.NoteRequest]())
	noteRoutes.Delete("/:id", notesHandler.DeleteNote)

	uploadRoutes := apiGroup.Group("/upload")
	if opts.UploadRequireAuth {
		uploadRoutes.Use(requireAuth)
	}
	uploadRoutes.Post("/image", uploadHandler.CreateUploadURL, middleware.ValidateBody[dto.UploadRequest]())
	uploadRoutes.Get("/image", uploadHandler.GetImageURL)

	// Обработчик для несуществующих маршрутов.
	app.Use(func(c fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(dto.MessageResponse{Message: MsgRouteNotFound})
	})
}
