// Package middleware содержит промежуточное ПО для HTTP обработчиков.
package middleware

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/requestid"

	"notetaking/pkg/logger"
)

// HeaderRequestID - заголовок с идентификатором запроса.
const HeaderRequestID = fiber.HeaderXRequestID

// NewRequestIDMiddleware выдает запросу идентификатор и возвращает его в X-Request-ID.
// Входящий заголовок сохраняется, если проходит logger.ValidRequestID, иначе
// генерируется новый.
func NewRequestIDMiddleware() fiber.Handler {
	assign := requestid.New(requestid.Config{
		Header:    HeaderRequestID,
		Generator: logger.NewRequestID,
	})
	return func(ctx fiber.Ctx) error {
		if id := ctx.Get(HeaderRequestID); id != "" && !logger.ValidRequestID(id) {
			ctx.Request().Header.Del(HeaderRequestID)
		}
		return assign(ctx)
	}
}
