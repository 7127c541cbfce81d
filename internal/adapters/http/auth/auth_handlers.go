// Package auth содержит HTTP-обработчики регистрации и входа.
package auth

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"notetaking/internal/adapters/http/dto"
	"notetaking/internal/adapters/http/middleware"
	"notetaking/internal/domain/entities"
	"notetaking/internal/domain/services"
	"notetaking/internal/ports/api"
	svc "notetaking/internal/ports/services"
	"notetaking/pkg/logger"
)

// Константы сообщений для логирования и ответов.
const (
	LogHandlerRegister = "handling register request"
	LogHandlerLogin    = "handling login request"

	MsgUserCreated         = "User created successfully"
	MsgLoginSuccessful     = "Login successful"
	MsgEmailAlreadyExisted = "Email already existed"
	MsgInvalidCredentials  = "Invalid credentials"
)

// Handler обрабатывает запросы аутентификации.
type Handler struct {
	auth      api.AuthUseCase
	users     api.UserUseCase
	passwords svc.PasswordService
	tokens    svc.TokenService
}

// NewHandler создает новый экземпляр обработчика аутентификации.
func NewHandler(auth api.AuthUseCase, users api.UserUseCase, passwords svc.PasswordService, tokens svc.TokenService) *Handler {
	return &Handler{
		auth:      auth,
		users:     users,
		passwords: passwords,
		tokens:    tokens,
	}
}

// Register создает пользователя и сразу выдает ему токен.
func (h *Handler) Register(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.Register"))
	log.Debug(requestCtx, LogHandlerRegister)

	req, ok := middleware.Body[dto.RegisterRequest](ctx)
	if !ok {
		return fmt.Errorf("register: %w", fiber.ErrBadRequest)
	}

	hash, err := h.passwords.Hash(requestCtx, req.Password)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}

	user, err := h.auth.Register(requestCtx, req.Email, hash)
	if err != nil {
		if errors.Is(err, services.ErrEmailAlreadyExists) {
			log.Info(requestCtx, "email already registered")
			return ctx.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{Message: MsgEmailAlreadyExisted})
		}
		return fmt.Errorf("registering user: %w", err)
	}

	return h.respondWithToken(ctx, fiber.StatusCreated, MsgUserCreated, user)
}

// Login проверяет учетные данные. Неизвестный email и неверный пароль
// дают одинаковый ответ.
func (h *Handler) Login(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.Login"))
	log.Debug(requestCtx, LogHandlerLogin)

	req, ok := middleware.Body[dto.LoginRequest](ctx)
	if !ok {
		return fmt.Errorf("login: %w", fiber.ErrBadRequest)
	}

	user, err := h.users.FindByEmail(requestCtx, req.Email)
	if err != nil {
		return fmt.Errorf("finding user: %w", err)
	}
	if user == nil {
		log.Info(requestCtx, "login rejected", zap.String("reason", "unknown email"))
		return invalidCredentials(ctx)
	}

	valid, err := h.passwords.Verify(requestCtx, req.Password, user.PasswordHash)
	if err != nil {
		return fmt.Errorf("verifying password: %w", err)
	}
	if !valid {
		log.Info(requestCtx, "login rejected", zap.String("reason", "wrong password"))
		return invalidCredentials(ctx)
	}

	return h.respondWithToken(ctx, fiber.StatusOK, MsgLoginSuccessful, user)
}

func (h *Handler) respondWithToken(ctx fiber.Ctx, status int, message string, user *entities.User) error {
	token, _, err := h.tokens.GenerateToken(ctx.Context(), user.ID, user.Email)
	if err != nil {
		return fmt.Errorf("generating token: %w", err)
	}

	if err := ctx.Status(status).JSON(dto.NewAuthResponse(message, user, token)); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

func invalidCredentials(ctx fiber.Ctx) error {
	if err := ctx.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{Message: MsgInvalidCredentials}); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}
