package main

import (
	"context"
	"log"
	"time"

	"webapp-auth/internal/config"
	"webapp-auth/internal/db"
	"webapp-auth/internal/domain"
	"webapp-auth/internal/repository"
	"webapp-auth/internal/service"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id TEXT PRIMARY KEY,
	username TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	first_name TEXT NOT NULL,
	last_name TEXT NOT NULL,
	email TEXT NOT NULL,
	dob DATE NOT NULL,
	created_at TIMESTAMPTZ NOT NULL
)`

// El seed deja la base en un estado conocido: tabla creada, sin
// usuarios previos y con un único usuario demo.
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

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		logger.Fatal("db connect", zap.Error(err))
	}
	defer pool.Close()

	if _, err := pool.Exec(ctx, schema); err != nil {
		logger.Fatal("create users table", zap.Error(err))
	}

	userRepo := repository.NewPgUserRepository(pool)
	if err := userRepo.DeleteAll(ctx); err != nil {
		logger.Fatal("clear users", zap.Error(err))
	}
	logger.Info("users cleared")

	passwordHash, err := service.HashPassword("password")
	if err != nil {
		logger.Fatal("hash password", zap.Error(err))
	}

	user := domain.User{
		ID:           uuid.NewString(),
		Username:     "username",
		PasswordHash: passwordHash,
		FirstName:    "John",
		LastName:     "Doe",
		Email:        "johndoe@example.com",
		DOB:          time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC),
		CreatedAt:    time.Now().UTC(),
	}
	if err := userRepo.Create(ctx, user); err != nil {
		logger.Fatal("create demo user", zap.Error(err))
	}

	logger.Info("user added",
		zap.String("id", user.ID),
		zap.String("username", user.Username),
	)
}
