package api

import (
	"context"

	"notetaking/internal/domain/services"
)

// UploadUseCase выдает ссылки для загрузки и чтения изображений.
type UploadUseCase interface {
	CreateUploadURL(ctx context.Context, filename, contentType string) (*services.UploadTicket, error)

	CreateDownloadURL(ctx context.Context, objectKey string) (string, error)
}
