package config

// StorageConfig содержит настройки объектного хранилища.
type StorageConfig struct {
	Bucket    string `env:"STORAGE_BUCKET" env-required:"true"`
	Endpoint  string `env:"STORAGE_ENDPOINT" env-default:"https://storage.googleapis.com"`
	Region    string `env:"STORAGE_REGION" env-default:"auto"`
	AccessKey string `env:"STORAGE_ACCESS_KEY"`
	SecretKey string `env:"STORAGE_SECRET_KEY"`
	KeyPrefix string `env:"STORAGE_KEY_PREFIX" env-default:"notetaking"`
}

// UploadConfig управляет доступом к выдаче ссылок.
type UploadConfig struct {
	RequireAuth bool `env:"UPLOAD_REQUIRE_AUTH" env-default:"false"`
}
