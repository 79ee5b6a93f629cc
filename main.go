package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"circuithouse-backend/config"
	"circuithouse-backend/controllers"
	"circuithouse-backend/repository"
	"circuithouse-backend/routes"
	"circuithouse-backend/services"
	"circuithouse-backend/utils"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	if err := godotenv.Load(); err != nil {
		logger.Warn().Msg(".env not found or couldn't load it; continuing with environment variables")
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		logger.Fatal().Msg("JWT_SECRET environment variable is not set")
	}

	if err := config.ConnectDatabase(); err != nil {
		logger.Fatal().Err(err).Msg("database connect failed")
	}
	db := config.DB
	if err := config.SeedDatabase(); err != nil {
		logger.Fatal().Err(err).Msg("database seeding failed")
	}
	logger.Info().Msg("database connected and migrations applied")

	mailer := utils.NewMailer(utils.SMTPConfig{
		Host:     os.Getenv("SMTP_HOST"),
		Port:     config.EnvOrDefault("SMTP_PORT", "587"),
		Username: os.Getenv("SMTP_USER"),
		Password: os.Getenv("SMTP_PASS"),
		FromName: config.EnvOrDefault("SMTP_FROM_NAME", "Circuit House Front Desk"),
	}, config.EnvOrDefault("HOTEL_NAME", "Circuit House"), logger)

	dispatcher := services.NewNotificationDispatcher(mailer, services.RetryPolicy{}, logger)
	dispatcher.Start()

	store := repository.NewGormStore(db)

	lifecycleService := services.NewLifecycleService(store, dispatcher, logger)
	roomService := services.NewRoomService(store)
	pricingService := services.NewPricingService(db)
	billingService := services.NewBillingService(db)
	authService := services.NewAuthService(db, jwtSecret, 0)

	router := routes.SetupRouter(
		controllers.NewRoomController(roomService),
		controllers.NewPricingController(pricingService),
		controllers.NewBookingController(lifecycleService),
		controllers.NewCheckoutController(lifecycleService),
		controllers.NewBillingController(billingService),
		controllers.NewAuthController(authService),
		controllers.NewAdminController(authService),
		controllers.NewSettingsController(db),
		jwtSecret,
		logger,
	)

	addr := ":" + config.EnvOrDefault("PORT", "8080")
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info().Str("addr", addr).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("listen and serve failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logger.Info().Msg("shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal().Err(err).Msg("server forced to shutdown")
	}

	// Flush pending confirmation emails before exiting.
	dispatcher.Stop()

	logger.Info().Msg("server stopped gracefully")
}
