package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/csrf"
	"golang.org/x/crypto/bcrypt"

	"eventadmin/config"
	"eventadmin/internal/adapters/auth"
	"eventadmin/internal/adapters/email"
	delivery "eventadmin/internal/delivery/http"
	"eventadmin/internal/delivery/http/controllers"
	"eventadmin/internal/delivery/http/views"
	"eventadmin/internal/domain"
	"eventadmin/internal/repository/postgres"
	"eventadmin/internal/services"
)

const sessionPurgeInterval = 10 * time.Minute

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Exit(1)
	}
	logger := config.NewLogger(cfg.Environment)
	logger.Info("starting event admin", "env", cfg.Environment, "port", cfg.Port)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	db, err := postgres.Open(ctx, cfg.DBUrl)
	cancel()
	if err != nil {
		logger.Error("failed to open database", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	eventRepo := postgres.NewEventRepository(db)
	userRepo := postgres.NewUserRepository(db)
	sessionRepo := postgres.NewSessionRepository(db)

	hasher := auth.NewBcryptHasher(bcrypt.DefaultCost)
	codec := auth.NewJWTSessionCodec(cfg.SessionSecret)

	var emailService domain.EmailService
	if cfg.Mailer.AdminEmail != "" {
		mailer, err := email.NewMailer(cfg.Mailer, logger)
		if err != nil {
			logger.Error("failed to set up mailer", "err", err)
			os.Exit(1)
		}
		emailService = services.NewEmailService(mailer, email.NewTemplateRenderer(), cfg.Mailer.AdminEmail, logger)
	} else {
		logger.Info("ADMIN_EMAIL not set; registration notices disabled")
	}

	eventService := services.NewEventService(eventRepo)
	userService := services.NewUserService(userRepo, hasher, emailService, logger)
	authService := services.NewAuthService(userRepo, sessionRepo, hasher, codec, codec, cfg.SessionTTL)

	renderer, err := views.NewRenderer(logger)
	if err != nil {
		logger.Error("failed to set up views", "err", err)
		os.Exit(1)
	}

	secureCookies := cfg.Environment == "production"
	eventController := controllers.NewEventController(logger, eventService, renderer)
	userController := controllers.NewUserController(logger, userService, renderer)
	authController := controllers.NewAuthController(logger, authService, renderer, cfg.SessionTTL, secureCookies)

	router := delivery.NewRouter(logger, renderer, authService, eventController, userController, authController)
	handler := csrf.Protect(
		[]byte(cfg.CSRFKey),
		csrf.Secure(secureCookies),
		csrf.Path("/"),
	)(router)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT, os.Interrupt)

	go func() {
		ticker := time.NewTicker(sessionPurgeInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				purgeCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				n, err := authService.PurgeExpiredSessions(purgeCtx)
				cancel()
				if err != nil {
					logger.Error("failed to purge expired sessions", "err", err)
				} else if n > 0 {
					logger.Info("purged expired sessions", "count", n)
				}
			case <-stop:
				return
			}
		}
	}()

	go func() {
		logger.Info("listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "err", err)
			stop <- syscall.SIGTERM
		}
	}()

	sig := <-stop
	logger.Info("shutting down", "signal", sig.String())

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("failed to shut down server", "err", err)
	}
	logger.Info("stopped")
}
