// Package storage выдает подписанные ссылки на объекты в S3-совместимом хранилище
// (GCS через XML API interop, MinIO, S3).
package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go/middleware"
	smithyhttp "github.com/aws/smithy-go/transport/http"
	"go.uber.org/zap"

	"notetaking/internal/domain/services"
	svc "notetaking/internal/ports/services"
	"notetaking/pkg/logger"
)

const (
	methodSignUpload   = "S3Signer.SignUpload"
	methodSignDownload = "S3Signer.SignDownload"

	msgURLSigned     = "presigned url issued"
	msgErrPresigning = "failed to presign request"

	errCtxLoadConfig = "loading storage config"

	signedContentTypeID = "SignedContentType"
)

// ErrEmptyBucket возвращается, если не задан бакет.
var ErrEmptyBucket = errors.New("storage bucket is empty")

// Options описывает подключение к хранилищу.
type Options struct {
	Bucket    string
	Endpoint  string
	Region    string
	AccessKey string
	SecretKey string
}

// S3Signer подписывает PUT/GET запросы к объектам одного бакета.
type S3Signer struct {
	bucket  string
	presign *s3.PresignClient
}

// NewS3Signer создает клиент подписи. Без ключей используется стандартная
// цепочка учетных данных AWS SDK.
func NewS3Signer(ctx context.Context, opts Options) (svc.URLSigner, error) {
	if opts.Bucket == "" {
		return nil, ErrEmptyBucket
	}

	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(opts.Region),
	}
	if opts.AccessKey != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.AccessKey, opts.SecretKey, ""),
		))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxLoadConfig, err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
		}
		o.UsePathStyle = true
	})

	return &S3Signer{bucket: opts.Bucket, presign: s3.NewPresignClient(client)}, nil
}

// SignUpload подписывает PUT объекта key с заданным Content-Type.
func (s *S3Signer) SignUpload(ctx context.Context, key, contentType string, ttl time.Duration) (string, error) {
	log := logger.Log(ctx).With(zap.String("method", methodSignUpload), zap.String("key", key))

	input := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}
	presignOpts := []func(*s3.PresignOptions){s3.WithPresignExpires(ttl)}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
		presignOpts = append(presignOpts, withSignedContentType(contentType))
	}

	req, err := s.presign.PresignPutObject(ctx, input, presignOpts...)
	if err != nil {
		log.Error(ctx, msgErrPresigning, zap.Error(err))
		return "", fmt.Errorf("%w: %w", services.ErrSigningURL, err)
	}

	log.Debug(ctx, msgURLSigned, zap.Duration("ttl", ttl))
	return req.URL, nil
}

// SignDownload подписывает GET объекта key.
func (s *S3Signer) SignDownload(ctx context.Context, key string, ttl time.Duration) (string, error) {
	log := logger.Log(ctx).With(zap.String("method", methodSignDownload), zap.String("key", key))

	req, err := s.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(ttl))
	if err != nil {
		log.Error(ctx, msgErrPresigning, zap.Error(err))
		return "", fmt.Errorf("%w: %w", services.ErrSigningURL, err)
	}

	log.Debug(ctx, msgURLSigned, zap.Duration("ttl", ttl))
	return req.URL, nil
}

// withSignedContentType возвращает Content-Type в подписываемый запрос.
// Presign для PUT без тела удаляет заголовок на шаге Build, и без него
// клиент мог бы загрузить объект с любым типом.
func withSignedContentType(contentType string) func(*s3.PresignOptions) {
	return func(po *s3.PresignOptions) {
		po.ClientOptions = append(po.ClientOptions, func(o *s3.Options) {
			o.APIOptions = append(o.APIOptions, func(stack *middleware.Stack) error {
				return stack.Build.Add(middleware.BuildMiddlewareFunc(signedContentTypeID,
					func(ctx context.Context, in middleware.BuildInput, next middleware.BuildHandler) (
						middleware.BuildOutput, middleware.Metadata, error,
					) {
						if req, ok := in.Request.(*smithyhttp.Request); ok {
							req.Header.Set("Content-Type", contentType)
						}
						return next.HandleBuild(ctx, in)
					}), middleware.After)
			})
		})
	}
}
