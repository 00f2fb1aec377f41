// AngelaMos | 2026
// main.go

package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/angelamos/accounts-api/internal/admin"
	"github.com/angelamos/accounts-api/internal/auth"
	"github.com/angelamos/accounts-api/internal/config"
	"github.com/angelamos/accounts-api/internal/core"
	"github.com/angelamos/accounts-api/internal/events"
	"github.com/angelamos/accounts-api/internal/health"
	"github.com/angelamos/accounts-api/internal/i18n"
	"github.com/angelamos/accounts-api/internal/jobs"
	"github.com/angelamos/accounts-api/internal/mailer"
	"github.com/angelamos/accounts-api/internal/middleware"
	"github.com/angelamos/accounts-api/internal/server"
	"github.com/angelamos/accounts-api/internal/system"
	"github.com/angelamos/accounts-api/internal/user"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	genKeys := flag.Bool("genkeys", false, "generate a JWT keypair and exit")
	flag.Parse()

	if err := run(*configPath, *genKeys); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

//nolint:funlen // bootstrap code is inherently verbose
func run(configPath string, genKeys bool) error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
	)
	defer stop()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	if genKeys {
		return auth.GenerateKeyPair(
			cfg.JWT.PrivateKeyPath,
			cfg.JWT.PublicKeyPath,
		)
	}

	logger := setupLogger(cfg.Log)
	slog.SetDefault(logger)

	logger.Info("starting application",
		"name", cfg.App.Name,
		"version", cfg.App.Version,
		"environment", cfg.App.Environment,
	)

	var telemetry *core.Telemetry
	if cfg.Otel.Enabled {
		tel, telErr := core.NewTelemetry(ctx, cfg.Otel, cfg.App)
		if telErr != nil {
			logger.Warn("failed to initialize telemetry", "error", telErr)
		} else {
			telemetry = tel
			logger.Info("OpenTelemetry tracer initialized",
				"endpoint", cfg.Otel.Endpoint,
			)
		}
	}

	db, err := core.NewDatabase(ctx, cfg.Database)
	if err != nil {
		return err
	}
	logger.Info("database connected",
		"max_open_conns", cfg.Database.MaxOpenConns,
		"max_idle_conns", cfg.Database.MaxIdleConns,
	)

	redis, err := core.NewRedis(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	logger.Info("redis connected",
		"pool_size", cfg.Redis.PoolSize,
	)

	jwtManager, err := auth.NewJWTManager(cfg.JWT)
	if err != nil {
		return err
	}
	logger.Info("JWT manager initialized",
		"algorithm", "ES256",
		"key_id", jwtManager.GetKeyID(),
	)

	queue, err := jobs.NewClient(cfg.Redis.URL)
	if err != nil {
		return err
	}

	smtp := mailer.NewSMTPSender(cfg.Mail)
	emitter := events.NewRedisEmitter(redis.Client, logger)

	adminRepo := admin.NewRepository(db.DB)
	adminSvc := admin.NewService(
		adminRepo, jwtManager, smtp, emitter, queue, cfg, logger,
	)
	adminHandler := admin.NewHandler(adminSvc)

	userRepo := user.NewRepository(db.DB)
	userSvc := user.NewService(
		userRepo, jwtManager, smtp, emitter, queue, cfg, logger,
	)
	userHandler := user.NewHandler(userSvc)

	healthHandler := health.NewHandler(db, redis)

	systemHandler := system.NewHandler(system.HandlerConfig{
		DBStats:    db.Stats,
		RedisStats: redis.PoolStats,
		DBPing:     db.Ping,
		RedisPing:  redis.Ping,
	})

	shutdownState := middleware.NewShutdownState()

	srv := server.New(server.Config{
		ServerConfig:  cfg.Server,
		HealthHandler: healthHandler,
		ShutdownState: shutdownState,
		Logger:        logger,
	})

	router := srv.Router()

	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(logger))
	router.Use(middleware.Recoverer)
	router.Use(middleware.ShutdownGuard(shutdownState))
	router.Use(
		middleware.NewRateLimiter(redis.Client, middleware.RateLimitConfig{
			Limit: middleware.PerMinute(
				cfg.RateLimit.Requests,
				cfg.RateLimit.Burst,
			),
			FailOpen: true,
		}).Handler,
	)
	router.Use(middleware.SecurityHeaders(cfg.IsProduction()))
	router.Use(middleware.CORS(cfg.CORS))
	router.Use(i18n.Middleware)

	healthHandler.RegisterRoutes(router)

	router.Get("/.well-known/jwks.json", jwtManager.GetJWKSHandler())

	adminAuth := middleware.Authenticator(
		jwtManager,
		middleware.NamespaceAdmin,
		func(ctx context.Context, id string) (any, error) {
			return adminRepo.GetByID(ctx, id)
		},
	)
	userAuth := middleware.Authenticator(
		jwtManager,
		middleware.NamespaceUser,
		func(ctx context.Context, id string) (any, error) {
			return userRepo.GetByID(ctx, id)
		},
	)

	router.Route("/v1", func(r chi.Router) {
		adminHandler.RegisterRoutes(r, adminAuth)
		userHandler.RegisterRoutes(r, userAuth)
		systemHandler.RegisterRoutes(r, adminAuth)
	})

	// Every dependency is wired; open the readiness gate.
	healthHandler.SetReady(true)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		cfg.Server.ShutdownTimeout+cfg.Server.DrainDelay+5*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx, cfg.Server.DrainDelay); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	if telemetry != nil {
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			logger.Error("telemetry shutdown error", "error", err)
		}
	}

	if err := queue.Close(); err != nil {
		logger.Error("queue close error", "error", err)
	}

	if err := redis.Close(); err != nil {
		logger.Error("redis close error", "error", err)
	}

	if err := db.Close(); err != nil {
		logger.Error("database close error", "error", err)
	}

	logger.Info("application stopped")
	return nil
}

func setupLogger(cfg config.LogConfig) *slog.Logger {
	var handler slog.Handler

	level := slog.LevelInfo
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}

	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}
