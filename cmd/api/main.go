// @title Pet Adoption API
// @version 1.0
// @description Usuarios, avisos de adopción, visitas e historial de mascotas.
// @BasePath /
package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pet-adoption/internal/adapters/auth/jwtauth"
	"pet-adoption/internal/adapters/images/disk"
	"pet-adoption/internal/adapters/images/miniostore"
	pg "pet-adoption/internal/adapters/storage/postgres"
	"pet-adoption/internal/domain/users"
	"pet-adoption/internal/platform/config"
	"pet-adoption/internal/platform/logger"
	"pet-adoption/internal/platform/metrics"
	"pet-adoption/internal/platform/ratelimit"
	"pet-adoption/internal/ports/images"
	"pet-adoption/internal/router"

	"github.com/redis/go-redis/v9"
)

func main() {
	configPath := flag.String("config", "", "ruta al config.yaml (default CONFIG_PATH o ./config.yaml)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.NewFromEnv().Error("invalid config", map[string]any{"err": err})
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})

	err = run(cfg, log)
	if err != nil {
		log.Error("server stopped with error", map[string]any{"err": err})
	}
	if s, ok := log.(interface{ Sync() error }); ok {
		_ = s.Sync()
	}
	if err != nil {
		os.Exit(1)
	}
}

func run(cfg config.Config, log logger.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var db *sql.DB
	if cfg.DBDSN != "" {
		opened, err := pg.Open(cfg.DBDSN)
		if err != nil {
			return err
		}
		defer opened.Close()
		if err := pg.Apply(ctx, opened); err != nil {
			return err
		}
		db = opened
		log.Info("using postgres storage", nil)
	} else {
		log.Warn("DB_DSN not set, using in-memory storage", nil)
	}

	store, imageDir, err := openImageStore(ctx, cfg)
	if err != nil {
		return err
	}

	tokens, err := jwtauth.NewService(cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		return err
	}

	limiter, closeLimiter, err := openAuthLimiter(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeLimiter()

	var m *metrics.Metrics
	if cfg.MetricsEnabled {
		m = metrics.New()
	}

	handler := router.NewRouter(router.Options{
		Log:          log,
		AuthVerifier: tokens,
		Tokens:       tokens,
		DB:           db,
		Images:       store,
		ImageDir:     imageDir,
		Hasher:       users.NewBcryptHasher(cfg.BcryptCost),
		PhoneRegion:  cfg.PhoneRegion,
		Metrics:      m,
		AuthLimiter:  limiter,
		CORSOrigin:   cfg.CORSOrigin,
	})

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{"addr": srv.Addr})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// openImageStore devuelve el store y, si es en disco, el directorio a servir.
func openImageStore(ctx context.Context, cfg config.Config) (images.Store, string, error) {
	if cfg.ImageStore == config.ImageStoreMinio {
		s, err := miniostore.New(ctx, miniostore.Options{
			Endpoint:  cfg.MinioEndpoint,
			AccessKey: cfg.MinioAccessKey,
			SecretKey: cfg.MinioSecretKey,
			Bucket:    cfg.MinioBucket,
			UseSSL:    cfg.MinioUseSSL,
		})
		return s, "", err
	}
	s, err := disk.New(cfg.ImageDir)
	if err != nil {
		return nil, "", err
	}
	return s, s.Root(), nil
}

// openAuthLimiter: Redis si hay REDIS_ADDR, si no uno local por proceso.
// Sin límite configurado devuelve nil.
func openAuthLimiter(ctx context.Context, cfg config.Config, log logger.Logger) (ratelimit.Limiter, func(), error) {
	noop := func() {}
	if cfg.AuthRateLimitPerMinute <= 0 {
		return nil, noop, nil
	}

	if cfg.RedisAddr == "" {
		l, err := ratelimit.NewLocal(cfg.AuthRateLimitPerMinute)
		if err != nil {
			return nil, noop, err
		}
		log.Info("auth rate limit: in-process", map[string]any{"per_minute": cfg.AuthRateLimitPerMinute})
		return l, noop, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, noop, err
	}

	l, err := ratelimit.NewRedisFixedWindow(client, "", cfg.AuthRateLimitPerMinute, time.Minute)
	if err != nil {
		_ = client.Close()
		return nil, noop, err
	}
	log.Info("auth rate limit: redis", map[string]any{"addr": cfg.RedisAddr, "per_minute": cfg.AuthRateLimitPerMinute})
	return l, func() { _ = client.Close() }, nil
}
