package logger

import (
	"context"

	"github.com/google/uuid"
)

// MaxRequestIDLength ограничивает идентификатор, пришедший от клиента.
const MaxRequestIDLength = 64

type requestIDKeyType struct{}

// ContextWithRequestID сохраняет идентификатор запроса в контексте, Logger
// добавляет его к каждой записи. Пустой или некорректный идентификатор
// заменяется новым.
func ContextWithRequestID(ctx context.Context, requestID string) context.Context {
	if !ValidRequestID(requestID) {
		requestID = NewRequestID()
	}
	return context.WithValue(ctx, requestIDKeyType{}, requestID)
}

// RequestIDFromContext возвращает идентификатор запроса из контекста.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDKeyType{}).(string)
	return id, ok
}

// NewRequestID генерирует идентификатор запроса.
func NewRequestID() string {
	return uuid.NewString()
}

// ValidRequestID допускает непустые идентификаторы до MaxRequestIDLength
// символов из букв, цифр и "-_.:".
func ValidRequestID(id string) bool {
	if id == "" || len(id) > MaxRequestIDLength {
		return false
	}
	for i := 0; i < len(id); i++ {
		switch c := id[i]; {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case c == '-', c == '_', c == '.', c == ':':
		default:
			return false
		}
	}
	return true
}
