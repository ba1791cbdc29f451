package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"github.com/maynagashev/nextflix/internal/config"
	"github.com/maynagashev/nextflix/internal/handlers"
	"github.com/maynagashev/nextflix/internal/repository"
	"github.com/maynagashev/nextflix/internal/services"
	"github.com/maynagashev/nextflix/internal/storage"
)

const (
	defaultReadTimeout     = 10 * time.Second
	defaultWriteTimeout    = 30 * time.Second
	defaultIdleTimeout     = 60 * time.Second
	defaultShutdownTimeout = 15 * time.Second
	defaultConnectTimeout  = 15 * time.Second
)

// Структура для хранения инициализированных зависимостей.
type dependencies struct {
	users    repository.UserRepository
	movies   repository.MovieRepository
	files    storage.FileStorage     // nil, если MinIO не настроен
	denylist services.TokenDenylist // nil, если Redis не настроен
	closers  []func(context.Context) error
}

// close освобождает ресурсы в обратном порядке.
func (d *dependencies) close(ctx context.Context, log *zap.Logger) {
	for i := len(d.closers) - 1; i >= 0; i-- {
		if err := d.closers[i](ctx); err != nil {
			log.Warn("Ошибка освобождения ресурса", zap.Error(err))
		}
	}
}

// run содержит основную логику запуска сервера и возвращает ошибку.
func run(ctx context.Context, cfg *config.Config, log *zap.Logger) error {
	log.Info("Запуск сервера Nextflix...",
		zap.String("env", cfg.AppEnv), zap.String("storage", cfg.Storage), zap.Int("port", cfg.Port))

	connectCtx, cancel := context.WithTimeout(ctx, defaultConnectTimeout)
	deps, err := setupDependencies(connectCtx, cfg, log)
	cancel()
	if err != nil {
		return fmt.Errorf("ошибка инициализации зависимостей: %w", err)
	}
	// Отложенное закрытие соединений выполнится при выходе из run()
	defer func() {
		closeCtx, closeCancel := context.WithTimeout(context.Background(), defaultShutdownTimeout)
		defer closeCancel()
		deps.close(closeCtx, log)
	}()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	app, err := buildApp(cfg, deps, log)
	if err != nil {
		return err
	}
	r := setupRouter(cfg, app, registry, log)

	server := &http.Server{
		Addr:         ":" + strconv.Itoa(cfg.Port),
		Handler:      r,
		ReadTimeout:  defaultReadTimeout,
		WriteTimeout: defaultWriteTimeout,
		IdleTimeout:  defaultIdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("HTTP-сервер слушает", zap.String("addr", server.Addr), zap.String("prefix", cfg.APIPrefix))
		if serveErr := server.ListenAndServe(); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			errCh <- serveErr
		}
		close(errCh)
	}()

	select {
	case err = <-errCh:
		if err != nil {
			return fmt.Errorf("ошибка запуска HTTP-сервера: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("Получен сигнал завершения, останавливаем сервер")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), defaultShutdownTimeout)
	defer shutdownCancel()
	if err = server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("ошибка остановки HTTP-сервера: %w", err)
	}
	log.Info("Сервер остановлен")
	return nil
}

// setupDependencies подключает хранилища согласно конфигурации.
func setupDependencies(ctx context.Context, cfg *config.Config, log *zap.Logger) (*dependencies, error) {
	deps := &dependencies{}

	fail := func(err error) (*dependencies, error) {
		deps.close(context.Background(), log)
		return nil, err
	}

	// 1. Основное хранилище
	switch cfg.Storage {
	case config.StorageMongo:
		client, err := repository.NewMongoClient(ctx, cfg.MongoURI, log)
		if err != nil {
			return fail(err)
		}
		deps.closers = append(deps.closers, client.Disconnect)
		db := client.Database(cfg.MongoDB)
		if err = repository.EnsureMongoIndexes(ctx, db); err != nil {
			return fail(err)
		}
		deps.users = repository.NewMongoUserRepository(db, log)
		deps.movies = repository.NewMongoMovieRepository(db, log)

	case config.StoragePostgres:
		db, err := repository.NewPostgresDB(ctx, cfg.DatabaseDSN, log)
		if err != nil {
			return fail(err)
		}
		deps.closers = append(deps.closers, func(context.Context) error { return db.Close() })
		if err = repository.Migrate(ctx, db, log); err != nil {
			return fail(err)
		}
		deps.users = repository.NewPostgresUserRepository(db, log)
		deps.movies = repository.NewPostgresMovieRepository(db, log)

	case config.StorageMemory:
		log.Warn("Используется хранилище в памяти, данные не переживут перезапуск")
		deps.users = repository.NewMemoryUserRepository()
		deps.movies = repository.NewMemoryMovieRepository()

	default:
		return fail(fmt.Errorf("неизвестный драйвер хранилища: %q", cfg.Storage))
	}

	// 2. Хранилище постеров (опционально)
	if cfg.PostersEnabled() {
		minioClient, err := storage.NewMinioClient(ctx, storage.MinioConfig{
			Endpoint:        cfg.MinioEndpoint,
			AccessKeyID:     cfg.MinioUser,
			SecretAccessKey: cfg.MinioPassword,
			UseSSL:          cfg.MinioUseSSL,
			BucketName:      cfg.MinioBucket,
			PublicURL:       cfg.MinioPublicURL,
		}, log)
		if err != nil {
			return fail(err)
		}
		deps.files = minioClient
	} else {
		log.Info("MinIO не настроен, загрузка постеров отключена")
	}

	// 3. Отзыв токенов (опционально)
	if cfg.RedisURL != "" {
		client, err := repository.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			return fail(err)
		}
		deps.closers = append(deps.closers, func(context.Context) error { return client.Close() })
		deps.denylist = repository.NewRedisTokenDenylist(client)
		log.Info("Отзыв токенов при выходе включен")
	}

	return deps, nil
}

// app объединяет обработчики и проверку токенов.
type app struct {
	tokens  *services.TokenManager
	auth    *handlers.AuthHandler
	movies  *handlers.MovieHandler
	lists   *handlers.ListHandler
	users   *handlers.UserHandler
	posters *handlers.PosterHandler
}

// buildApp создает сервисы и обработчики поверх подключенных хранилищ.
func buildApp(cfg *config.Config, deps *dependencies, log *zap.Logger) (*app, error) {
	hasher, err := services.NewBcryptHasher(cfg.BcryptCost)
	if err != nil {
		return nil, err
	}

	var opts []services.TokenOption
	if deps.denylist != nil {
		opts = append(opts, services.WithDenylist(deps.denylist))
	}
	tokens, err := services.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL, opts...)
	if err != nil {
		return nil, err
	}

	authService := services.NewAuthService(deps.users, hasher, tokens, log)
	catalog := services.NewCatalogService(deps.movies, deps.files, log)
	membership := services.NewMembershipService(deps.users, catalog, log)
	userService := services.NewUserService(deps.users)
	posterService := services.NewPosterService(deps.files, log)

	cookie := handlers.CookieConfig{
		Name:   cfg.CookieName,
		TTL:    tokens.TTL(),
		Secure: cfg.IsProduction(),
	}

	return &app{
		tokens:  tokens,
		auth:    handlers.NewAuthHandler(authService, cookie, log),
		movies:  handlers.NewMovieHandler(catalog, log),
		lists:   handlers.NewListHandler(membership, log),
		users:   handlers.NewUserHandler(userService, log),
		posters: handlers.NewPosterHandler(posterService, log),
	}, nil
}
