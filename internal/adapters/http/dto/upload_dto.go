package dto

import "strings"

// UploadRequest запрашивает ссылку на загрузку изображения.
type UploadRequest struct {
	Filename    string `json:"filename" validate:"required"`
	ContentType string `json:"contentType"`
}

// Normalize обрезает пробелы по краям.
func (r *UploadRequest) Normalize() {
	r.Filename = strings.TrimSpace(r.Filename)
	r.ContentType = strings.TrimSpace(r.ContentType)
}

// UploadResponse содержит ссылку на загрузку и ключ объекта.
type UploadResponse struct {
	SignedURL     string `json:"signedUrl"`
	FilenameInGCS string `json:"filenameInGCS"`
}

// ImageURLResponse содержит ссылку на чтение.
type ImageURLResponse struct {
	ImageURL string `json:"imageUrl"`
}

// HealthResponse - ответ проверки состояния.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}
