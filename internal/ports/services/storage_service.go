package services

import (
	"context"
	"time"
)

// URLSigner выдает подписанные ссылки объектного хранилища.
type URLSigner interface {
	SignUpload(ctx context.Context, key, contentType string, ttl time.Duration) (string, error)

	SignDownload(ctx context.Context, key string, ttl time.Duration) (string, error)
}
