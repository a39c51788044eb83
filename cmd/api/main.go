package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"bistro-api/internal/auth"
	"bistro-api/internal/client"
	"bistro-api/internal/config"
	"bistro-api/internal/logger"
	"bistro-api/internal/repository"
	"bistro-api/internal/server"
	"bistro-api/internal/service"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

func main() {
	// load .env into os.Environ
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found (ok in prod)")
	}

	cfg := &config.Config{}
	if err := env.Parse(cfg); err != nil {
		fmt.Printf("Failed to parse config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Service: "bistro-api",
		Env:     cfg.Environment.Name,
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
	})

	db, err := client.InitMysqlClient(cfg.DatabaseURL)
	if err != nil {
		log.Error("init database client", "error", err)
		os.Exit(1)
	}
	defer client.CloseDB(db)

	var gateway client.PaymentGateway
	switch cfg.Payment.Provider {
	case "braintree":
		gateway = client.NewBraintreeClient(&cfg.BrainTree)
	default:
		gateway = client.NewStripeClient(&cfg.Stripe)
	}

	tokens := auth.NewTokenManager(cfg.Auth.TokenSecret, cfg.Auth.TokenTTL)

	userRepo := repository.NewUserRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	cartRepo := repository.NewCartRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)

	userService := service.NewUserService(userRepo)
	menuService := service.NewMenuService(menuRepo)
	cartService := service.NewCartService(cartRepo)
	paymentService := service.NewPaymentService(gateway, paymentRepo, cartRepo)
	statsService := service.NewStatsService(userRepo, menuRepo, paymentRepo)

	serverAddr := cfg.HTTP.Host + ":" + cfg.HTTP.Port

	srv := server.NewServer(
		tokens,
		userService,
		menuService,
		cartService,
		paymentService,
		statsService,
	)

	log.Info("starting http server", "addr", serverAddr, "payment_provider", cfg.Payment.Provider)
	go func() {
		if err := srv.Start(serverAddr); err != nil && err != http.ErrServerClosed {
			slog.Error("http server error", "error", err)
			os.Exit(1)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	<-sigChan
	log.Info("signal received, starting graceful shutdown")

	if err := srv.Shutdown(); err != nil {
		log.Error("http server shutdown error", "error", err)
		os.Exit(1)
	}
}
