package middleware

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
)

// Сообщения валидации.
const (
	MsgValidationFailed = "Validation failed"
	MsgMalformedJSON    = "request body must be a valid JSON object"
)

// Normalizer приводит поля запроса к каноническому виду до проверки.
type Normalizer interface {
	Normalize()
}

// FieldError описывает нарушение одного правила.
type FieldError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

// ValidationError возвращается при некорректном теле запроса.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// TagMaxBytes ограничивает длину строки в байтах, а не в символах.
const TagMaxBytes = "maxbytes"

type bodyKey struct{}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})
	if err := v.RegisterValidation(TagMaxBytes, maxBytes); err != nil {
		panic(fmt.Sprintf("registering %s validation: %v", TagMaxBytes, err))
	}
	return v
}

func maxBytes(fl validator.FieldLevel) bool {
	limit, err := strconv.Atoi(fl.Param())
	if err != nil {
		panic(fmt.Sprintf("bad %s parameter %q: %v", TagMaxBytes, fl.Param(), err))
	}
	field := fl.Field()
	if field.Kind() != reflect.String {
		return false
	}
	return len(field.String()) <= limit
}

// ValidateBody разбирает JSON тело в T, нормализует его, проверяет теги validate
// и сохраняет результат для обработчика (см. Body).
func ValidateBody[T any]() fiber.Handler {
	return func(ctx fiber.Ctx) error {
		body := new(T)
		if err := ctx.Bind().WithoutAutoHandling().JSON(body); err != nil {
			return &ValidationError{Fields: []FieldError{{
				Field:   "body",
				Tag:     "json",
				Message: MsgMalformedJSON,
			}}}
		}

		if n, ok := any(body).(Normalizer); ok {
			n.Normalize()
		}

		if err := Validate(body); err != nil {
			return err
		}

		ctx.Locals(bodyKey{}, body)
		return ctx.Next()
	}
}

// Body возвращает тело, сохраненное ValidateBody.
func Body[T any](ctx fiber.Ctx) (*T, bool) {
	body, ok := ctx.Locals(bodyKey{}).(*T)
	return body, ok
}

// Validate проверяет структуру и превращает ошибки валидатора в ValidationError.
func Validate(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validating request: %w", err)
	}

	out := &ValidationError{Fields: make([]FieldError, 0, len(fieldErrs))}
	for _, fe := range fieldErrs {
		out.Fields = append(out.Fields, FieldError{
			Field:   fe.Field(),
			Tag:     fe.Tag(),
			Message: fieldMessage(fe),
		})
	}
	return out
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "email":
		return fe.Field() + " must be a valid email address"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	case TagMaxBytes:
		return fmt.Sprintf("%s must be at most %s bytes", fe.Field(), fe.Param())
	default:
		return fe.Field() + " is invalid"
	}
}
