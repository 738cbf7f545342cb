package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-screening-backend/config"
	"go-screening-backend/internal/captcha"
	v1 "go-screening-backend/internal/delivery/http/v1"
	"go-screening-backend/internal/domain"
	"go-screening-backend/internal/mailer"
	"go-screening-backend/internal/ratelimit"
	"go-screening-backend/internal/usecase"
	"go-screening-backend/pkg/logger"
)

func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting screening outreach backend", "port", cfg.Port)

	// 3. Setup Mail Dispatcher
	sender := mailer.NewSender(cfg)
	dispatcher := mailer.NewDispatcher(cfg, sender)
	if !dispatcher.IsConfigured() {
		logger.Log.Warn("No email backend configured - contact form will be unavailable")
	}

	// 4. Setup Rate Limiter
	limiter := ratelimit.NewLimiter(
		time.Duration(cfg.RateLimitCooldownSeconds)*time.Second,
		time.Duration(cfg.RateLimitTTLSeconds)*time.Second,
	)

	// 5. Setup Captcha Verifier (optional)
	var verifier domain.CaptchaVerifier
	if v := captcha.NewVerifier(cfg.TurnstileSecretKey, time.Duration(cfg.HTTPTimeoutSeconds)*time.Second); v != nil {
		verifier = v
	}

	// 6. Setup UseCase
	contactUC := usecase.NewContactUsecase(dispatcher, limiter, verifier)

	// 7. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ContactUC: contactUC,
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
