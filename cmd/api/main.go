package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-contact-backend/config"
	_ "go-contact-backend/docs" // Important for Swagger
	v1 "go-contact-backend/internal/delivery/http/v1"
	"go-contact-backend/internal/usecase"
	"go-contact-backend/pkg/logger"
	"go-contact-backend/pkg/mailer"
	"go-contact-backend/pkg/ratelimit"
	"go-contact-backend/pkg/redis"
)

// @title           Contact Backend API
// @version         1.0
// @description     Contact form submission backend for groenv8.com.
// @host            localhost:8080
// @BasePath        /api
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Init()
		logger.Log.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting contact backend", "port", cfg.Port, "env", cfg.AppEnv)

	// 3. Setup Redis (optional; rate limiting falls back to in-memory)
	if err := redis.Initialize(redis.Config{
		URL:      cfg.UpstashRedisURL,
		Password: cfg.UpstashRedisPassword,
	}); err != nil {
		logger.Log.Warn("Redis unavailable, rate limiting runs in-memory", "error", err)
	}
	defer redis.Close()

	// 4. Setup Mail Transport
	var sender mailer.Sender
	switch cfg.MailProvider {
	case "resend":
		sender = mailer.NewResendSender(cfg.ResendAPIKey)
	default:
		sender = mailer.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword)
	}
	if !sender.IsConfigured() {
		logger.Log.Warn("Mail transport not fully configured - contact form will be unavailable")
	}

	// 5. Setup Rate Limiter
	var store ratelimit.Store
	if client := redis.Client(); client != nil {
		store = ratelimit.NewRedisStore(client, "rl:contact:")
	}
	limiter := ratelimit.New(cfg.RateLimitMax, time.Duration(cfg.RateLimitWindowMinutes)*time.Minute, store)
	defer limiter.Close()

	// 6. Setup UseCases
	renderer := mailer.NewRenderer(cfg.RenderTimezone)
	contactUC := usecase.NewContactUsecase(sender, renderer, cfg.FromEmail, cfg.ContactEmailTo, cfg.AutoReply)
	healthUC := usecase.NewHealthUsecase()

	// 7. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ContactUC: contactUC,
		HealthUC:  healthUC,
		Limiter:   limiter,
		Config:    cfg,
	})

	// 8. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
