package app

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"notetaking/internal/domain/services"
	"notetaking/internal/ports/api"
	svc "notetaking/internal/ports/services"
	"notetaking/pkg/logger"
)

const (
	methodCreateUploadURL   = "CreateUploadURL"
	methodCreateDownloadURL = "CreateDownloadURL"

	msgSigningUpload   = "signing upload url"
	msgSigningDownload = "signing download url"
	msgURLSigned       = "url signed"

	msgErrSigningURL = "failed to sign url"

	errCtxSigningUpload   = "signing upload url"
	errCtxSigningDownload = "signing download url"

	// DefaultKeyPrefix - префикс ключей объектов по умолчанию.
	DefaultKeyPrefix = "notetaking"
)

// UploadUseCaseImpl реализует интерфейс UploadUseCase.
type UploadUseCaseImpl struct {
	signer    svc.URLSigner
	keyPrefix string
	now       func() time.Time
}

// UploadOption настраивает UploadUseCaseImpl.
type UploadOption func(*UploadUseCaseImpl)

// WithKeyPrefix задает префикс ключей объектов.
func WithKeyPrefix(prefix string) UploadOption {
	return func(u *UploadUseCaseImpl) {
		if p := strings.Trim(prefix, "/"); p != "" {
			u.keyPrefix = p
		}
	}
}

// WithClock подменяет источник времени.
func WithClock(now func() time.Time) UploadOption {
	return func(u *UploadUseCaseImpl) {
		u.now = now
	}
}

// NewUploadUseCase создает сервис выдачи ссылок на изображения.
func NewUploadUseCase(signer svc.URLSigner, opts ...UploadOption) api.UploadUseCase {
	u := &UploadUseCaseImpl{
		signer:    signer,
		keyPrefix: DefaultKeyPrefix,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// CreateUploadURL строит ключ "<prefix>/<unix ms>-<filename>" и подписывает ссылку на запись.
func (u *UploadUseCaseImpl) CreateUploadURL(ctx context.Context, filename, contentType string) (*services.UploadTicket, error) {
	key := u.objectKey(filename)

	log := logger.Log(ctx).With(zap.String("method", methodCreateUploadURL), zap.String("key", key))
	log.Debug(ctx, msgSigningUpload, zap.String("contentType", contentType))

	url, err := u.signer.SignUpload(ctx, key, contentType, services.UploadURLTTL)
	if err != nil {
		log.Error(ctx, msgErrSigningURL, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxSigningUpload, err)
	}

	log.Debug(ctx, msgURLSigned)
	return &services.UploadTicket{SignedURL: url, ObjectKey: key}, nil
}

// CreateDownloadURL подписывает ссылку на чтение объекта.
func (u *UploadUseCaseImpl) CreateDownloadURL(ctx context.Context, objectKey string) (string, error) {
	log := logger.Log(ctx).With(zap.String("method", methodCreateDownloadURL), zap.String("key", objectKey))
	log.Debug(ctx, msgSigningDownload)

	if strings.TrimSpace(objectKey) == "" {
		return "", fmt.Errorf("%s: %w", errCtxSigningDownload, services.ErrEmptyObjectKey)
	}

	url, err := u.signer.SignDownload(ctx, objectKey, services.DownloadURLTTL)
	if err != nil {
		log.Error(ctx, msgErrSigningURL, zap.Error(err))
		return "", fmt.Errorf("%s: %w", errCtxSigningDownload, err)
	}

	log.Debug(ctx, msgURLSigned)
	return url, nil
}

func (u *UploadUseCaseImpl) objectKey(filename string) string {
	return u.keyPrefix + "/" + strconv.FormatInt(u.now().UnixMilli(), 10) + "-" + filename
}
