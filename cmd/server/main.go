// Package main реализует точку входа HTTP сервиса заметок.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"notetaking/internal/adapters/cache"
	httpadapter "notetaking/internal/adapters/http"
	"notetaking/internal/adapters/postgres"
	"notetaking/internal/adapters/services"
	"notetaking/internal/adapters/storage"
	"notetaking/internal/app"
	"notetaking/internal/config"
	svc "notetaking/internal/ports/services"
	"notetaking/migrations"
	pgdb "notetaking/pkg/db/postgres"
	redisdb "notetaking/pkg/db/redis"
	"notetaking/pkg/logger"
	"notetaking/pkg/shutdown"
)

// Константы для переменных окружения.
const (
	EnvLoggerMode  = "LOGGER_MODE"
	EnvLoggerLevel = "LOGGER_LEVEL"
)

// Константы для сообщений об ошибках.
const (
	ErrInitLogger           = "failed to initialize logger"
	ErrSyncLogger           = "failed to sync logger"
	ErrLoadConfig           = "failed to load configuration"
	ErrInitLoggerWithConfig = "failed to initialize logger with configuration settings"
	ErrInitDB               = "failed to initialize database"
	ErrMigrateDB            = "failed to apply database migrations"
	ErrInitStorage          = "failed to initialize object storage signer"
	ErrConnectRedis         = "redis unavailable, auth rate limiting disabled"
	ErrServe                = "HTTP server stopped with error"
	ErrShutdown             = "graceful shutdown finished with errors"
)

// Константы для игнорируемых ошибок.
const (
	ErrSyncStderr = "sync /dev/stderr: invalid argument"
	ErrSyncStdout = "sync /dev/stdout: invalid argument"
)

// Константы для сообщений сервиса.
const (
	LogServiceStarted      = "notetaking service started"
	LogServiceShutdownDone = "notetaking service shutdown complete"
	LogClosingDB           = "closing database connections"
	LogClosingRedis        = "closing redis client"
	LogStoppingHTTP        = "stopping HTTP server"
	LogInitRepo            = "initializing repositories"
	LogInitServices        = "initializing services"
	LogInitUseCases        = "initializing use cases"
	LogInitHTTP            = "initializing HTTP server"
	LogStartingHTTP        = "starting HTTP server"
)

const redisConnectAttempts = 3

func main() {
	if len(os.Args) > 1 && (os.Args[1] == "-h" || os.Args[1] == "--help") {
		fmt.Println(config.Usage())
		return
	}

	env := logger.Development
	if strings.ToLower(os.Getenv(EnvLoggerMode)) == "production" {
		env = logger.Production
	}

	log, err := logger.NewLogger(env, os.Getenv(EnvLoggerLevel))
	if err != nil {
		panic(ErrInitLogger + ": " + err.Error())
	}

	logger.SetGlobalLogger(log)

	ctx := logger.ContextWithRequestID(context.Background(), "")

	var exitCode int

	func() {
		defer func() {
			if err := logger.Log(ctx).Sync(); err != nil {
				errMsg := err.Error()
				if strings.Contains(errMsg, ErrSyncStderr) || strings.Contains(errMsg, ErrSyncStdout) {
					return
				}
				if _, writeErr := fmt.Fprintf(os.Stderr, "%s: %v\n", ErrSyncLogger, err); writeErr != nil {
					panic(writeErr)
				}
			}
		}()

		if err := run(ctx); err != nil {
			logger.Log(ctx).Error(ctx, "service failed", zap.Error(err))
			exitCode = 1
		}
	}()

	if exitCode != 0 {
		os.Exit(exitCode)
	}
}

func run(ctx context.Context) error {
	log := logger.Log(ctx)

	cfg, err := config.Load(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrLoadConfig, err)
	}

	finalLogger, err := logger.NewLogger(cfg.Logging.GetEnvironment(), cfg.Logging.Level)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrInitLoggerWithConfig, err)
	}
	logger.SetGlobalLogger(finalLogger)
	log = finalLogger

	signalCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dsn := cfg.Postgres.GetConnectionURL()
	database, err := pgdb.Connect(signalCtx, dsn, pgdb.Options{
		MinConns:    cfg.Postgres.MinConn,
		MaxConns:    cfg.Postgres.MaxConn,
		Attempts:    cfg.Postgres.ConnectRetries,
		RetryDelay:  cfg.Postgres.RetryDelay,
		PingTimeout: cfg.HTTP.RequestTimeout,
	})
	if err != nil {
		return fmt.Errorf("%s: %w", ErrInitDB, err)
	}

	hooks := []shutdown.Hook{
		func(ctx context.Context) error {
			log.Info(ctx, LogClosingDB)
			database.Close(ctx)
			return nil
		},
	}

	if err := pgdb.MigrateDSN(signalCtx, dsn, migrations.FS, migrations.Dir); err != nil {
		database.Close(ctx)
		return fmt.Errorf("%s: %w", ErrMigrateDB, err)
	}

	log.Info(ctx, LogInitRepo)
	repoFactory := postgres.NewRepositoryFactory(database.Pool())

	log.Info(ctx, LogInitServices)
	serviceFactory := services.NewServiceFactory(cfg.JWT.Secret, cfg.JWT.TokenTTL, cfg.JWT.BcryptCost)

	signer, err := storage.NewS3Signer(signalCtx, storage.Options{
		Bucket:    cfg.Storage.Bucket,
		Endpoint:  cfg.Storage.Endpoint,
		Region:    cfg.Storage.Region,
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
	})
	if err != nil {
		database.Close(ctx)
		return fmt.Errorf("%s: %w", ErrInitStorage, err)
	}

	var limiter svc.RateLimiter
	if cfg.RateLimit.Enabled {
		client, err := connectRedis(signalCtx, cfg.Redis)
		if err != nil {
			log.Error(ctx, ErrConnectRedis, zap.Error(err))
		} else {
			limiter = cache.NewRedisRateLimiter(client.RawClient(), cache.DefaultKeyPrefix)
			hooks = append(hooks, func(ctx context.Context) error {
				log.Info(ctx, LogClosingRedis)
				return client.Close()
			})
		}
	}

	log.Info(ctx, LogInitUseCases)
	userRepo := repoFactory.UserRepository()
	appServices := httpadapter.Services{
		Auth:      app.NewAuthUseCase(userRepo),
		Users:     app.NewUserUseCase(userRepo),
		Notes:     app.NewNoteUseCase(repoFactory.NoteRepository()),
		Uploads:   app.NewUploadUseCase(signer, app.WithKeyPrefix(cfg.Storage.KeyPrefix)),
		Passwords: serviceFactory.PasswordService(),
		Tokens:    serviceFactory.TokenService(),
	}

	log.Info(ctx, LogInitHTTP)
	server := httpadapter.NewApp(httpadapter.Options{
		AppName:           config.ServiceName,
		FrontendURL:       cfg.CORS.FrontendURL,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		RequestTimeout:    cfg.HTTP.RequestTimeout,
		BodyLimit:         cfg.HTTP.BodyLimit,
		ProxyHeader:       cfg.HTTP.ProxyHeader,
		TrustedProxies:    cfg.HTTP.TrustedProxies,
		UploadRequireAuth: cfg.Upload.RequireAuth,
		RateLimiter:       limiter,
		RateLimitMax:      cfg.RateLimit.Max,
		RateLimitWindow:   cfg.RateLimit.Window,
	}, appServices)

	// HTTP сервер останавливается первым, затем освобождаются его зависимости.
	stopHTTP := func(ctx context.Context) error {
		log.Info(ctx, LogStoppingHTTP)
		return server.ShutdownWithContext(ctx)
	}

	group, groupCtx := errgroup.WithContext(signalCtx)

	group.Go(func() error {
		log.Info(ctx, LogStartingHTTP, zap.String("address", cfg.HTTP.GetAddress()))
		if err := server.Listen(cfg.HTTP.GetAddress(), fiber.ListenConfig{DisableStartupMessage: true}); err != nil {
			return fmt.Errorf("%s: %w", ErrServe, err)
		}
		return nil
	})

	group.Go(func() error {
		httpErr := shutdown.Wait(groupCtx, cfg.Shutdown.Timeout, stopHTTP)
		resourcesErr := shutdown.Wait(closedContext(), cfg.Shutdown.Timeout, hooks...)
		if err := errors.Join(httpErr, resourcesErr); err != nil {
			return fmt.Errorf("%s: %w", ErrShutdown, err)
		}
		return nil
	})

	log.Info(ctx, LogServiceStarted,
		zap.String("environment", string(cfg.Logging.GetEnvironment())),
		zap.String("log_level", cfg.Logging.Level),
		zap.Bool("rate_limit", limiter != nil),
		zap.String("startup_time", time.Now().Format(time.RFC3339)))

	err = group.Wait()
	log.Info(ctx, LogServiceShutdownDone)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func connectRedis(ctx context.Context, cfg config.RedisConfig) (*redisdb.Client, error) {
	client, err := retry.DoWithData(
		func() (*redisdb.Client, error) {
			return redisdb.NewClient(ctx, redisdb.NewConfig(cfg))
		},
		retry.Context(ctx),
		retry.Attempts(redisConnectAttempts),
		retry.Delay(time.Second),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		return nil, fmt.Errorf("connecting to redis: %w", err)
	}
	return client, nil
}

func closedContext() context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	return ctx
}
