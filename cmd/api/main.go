package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	httptransport "github.com/lawfirm/site-api/internal/api/http"
	"github.com/lawfirm/site-api/internal/api/http/handlers"
	"github.com/lawfirm/site-api/internal/auth"
	"github.com/lawfirm/site-api/internal/config"
	"github.com/lawfirm/site-api/internal/events"
	"github.com/lawfirm/site-api/internal/observability"
	"github.com/lawfirm/site-api/internal/persistence"
	"github.com/lawfirm/site-api/internal/repository"
	"github.com/lawfirm/site-api/internal/service"
	"github.com/lawfirm/site-api/internal/validation"
	"github.com/lawfirm/site-api/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.App, cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if pg.Enabled() && cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), cfg.Postgres.MigrationsDir, logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	var (
		contactRepo repository.ContactRepository
		faqRepo     repository.FAQRepository
		credRepo    repository.AdminCredentialRepository
	)
	if pg.Enabled() {
		pool := pg.PoolHandle()
		contactRepo = repository.NewContactRepository(pool)
		faqRepo = repository.NewFAQRepository(pool)
		credRepo = repository.NewAdminCredentialRepository(pool)
	} else {
		contactRepo = repository.NewMemoryContactRepository()
		faqRepo = repository.NewMemoryFAQRepository()
		credRepo = repository.NewMemoryAdminCredentialRepository()
	}

	var sessions auth.SessionStore
	if redis.Enabled() {
		sessions = auth.NewRedisSessionStore(redis.Client)
	} else {
		sessions = auth.NewMemorySessionStore(nil)
	}

	var contactLimiter fiber.Handler
	if perMinute := cfg.RateLimit.ContactPerMinute; perMinute > 0 {
		var limiter httptransport.RateLimiter
		if redis.Enabled() {
			limiter = httptransport.NewRedisRateLimiter(redis.Client, perMinute)
		} else {
			limiter = httptransport.NewMemoryRateLimiter(perMinute, nil)
		}
		contactLimiter = httptransport.RateLimit(limiter, "contact", logger)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := observability.NewMetrics(registry)

	dispatcher := events.NewInMemoryDispatcher(logger)
	worker.StartNotificationWorker(service.NewNotificationService(dispatcher, logger, cfg.Notification), logger)

	v := validation.New()
	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret)
	authService := service.NewAuthService(cfg.Auth, service.AuthDependencies{
		CredentialRepo: credRepo,
		Sessions:       sessions,
		Tokens:         tokens,
		Validator:      v,
		Logger:         logger,
	})
	if err := authService.SeedAdmin(ctx, cfg.Admin); err != nil {
		logger.Fatal("failed to seed admin credential", zap.Error(err))
	}

	contactService := service.NewContactService(service.ContactDependencies{
		ContactRepo: contactRepo,
		Validator:   v,
		Dispatcher:  dispatcher,
	})
	faqService := service.NewFAQService(service.FAQDependencies{
		FAQRepo:    faqRepo,
		Validator:  v,
		Dispatcher: dispatcher,
	})

	gate := auth.NewGate(auth.NewSessionVerifier(tokens, sessions, credRepo, logger), cfg.Auth.CookieName)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  cfg.App.RequestTimeout(),
		WriteTimeout: cfg.App.RequestTimeout(),
	})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health: handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, map[string]handlers.Pinger{
			"postgres": pg,
			"redis":    redis,
		}),
		Contacts:       handlers.NewContactsHandler(contactService),
		FAQs:           handlers.NewFAQsHandler(faqService),
		Auth:           handlers.NewAuthHandler(authService, gate, cfg.Auth.SecureCookies),
		Gate:           gate,
		ContactLimiter: contactLimiter,
		Gatherer:       registry,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		logger.Warn("shutdown", zap.Error(err))
	}
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
