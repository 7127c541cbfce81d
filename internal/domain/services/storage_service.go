package services

import (
	"errors"
	"time"
)

// Сроки действия подписанных ссылок.
const (
	UploadURLTTL   = 15 * time.Minute
	DownloadURLTTL = 10 * time.Minute
)

// Ошибки работы с объектным хранилищем.
var (
	ErrEmptyObjectKey = errors.New("object key is empty")
	ErrSigningURL     = errors.New("failed to sign URL")
)

// UploadTicket - ссылка на загрузку и ключ будущего объекта.
type UploadTicket struct {
	SignedURL string
	ObjectKey string
}
