package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"webapp-auth/internal/config"
	"webapp-auth/internal/db"
	apihttp "webapp-auth/internal/http"
	"webapp-auth/internal/repository"
	"webapp-auth/internal/service"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	if cfg.TokenSecret == config.DefaultTokenSecret {
		logger.Warn("TOKEN_SECRET not configured, using predictable fallback secret")
	}

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		logger.Fatal("db connect", zap.Error(err))
	}
	defer pool.Close()

	userRepo := repository.NewPgUserRepository(pool)
	tokenSvc := service.NewTokenService(cfg.TokenSecret, time.Duration(cfg.TokenTTLMinutes)*time.Minute)
	authSvc := service.NewAuthService(logger, userRepo, tokenSvc)
	authHandler := apihttp.NewAuthHandler(logger, authSvc)
	userHandler := apihttp.NewUserHandler(logger)
	router := apihttp.NewRouter(logger, authSvc, authHandler, userHandler, pool)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server", zap.String("port", cfg.HTTPPort))

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
