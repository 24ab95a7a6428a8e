// @title         identity-service API
// @version       1.0
// @description   Minimal identity service: account registration with hashed credentials, login and bearer-token access to the profile.
// @BasePath      /api/v1
// @schemes       http
// @host          localhost:8080
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Authorization token. Supported formats: "Bearer <JWT>" or "<JWT>".
package main

import (
	"context"
	"os"
	"time"

	_ "github.com/artem13815/identity/docs"
	"github.com/gofiber/fiber/v2"
	swagger "github.com/gofiber/swagger"

	// internal imports
	"github.com/artem13815/identity/api/http"
	"github.com/artem13815/identity/api/http/handlers"
	"github.com/artem13815/identity/pkg/auth"
	"github.com/artem13815/identity/pkg/config"
	"github.com/artem13815/identity/pkg/health"
	healthpg "github.com/artem13815/identity/pkg/health/checkers"
	"github.com/artem13815/identity/pkg/logger"
	pgrepo "github.com/artem13815/identity/pkg/repository/postgres"
	"github.com/artem13815/identity/pkg/security/jwt"
	"github.com/artem13815/identity/pkg/security/password"
	"github.com/artem13815/identity/pkg/storage/postgres"
)

func main() {
	// Load configuration from env/.env; missing DATABASE_URL or JWT_SECRET
	// aborts startup.
	cfg, err := config.Load()
	if err != nil {
		logger.New("text").Error("config", "error", err)
		os.Exit(1)
	}
	log := logger.New(cfg.LogFormat)

	// Connect to PostgreSQL
	pool, err := postgres.Connect(context.Background(), cfg.DatabaseURL)
	if err != nil {
		log.Error("postgres connect", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	// Wire dependencies (Clean Architecture)
	userRepo, err := pgrepo.NewUserRepository(pool)
	if err != nil {
		log.Error("init user repo", "error", err)
		os.Exit(1)
	}

	// Token generator/verifier share the process-wide signing secret;
	// rotating it invalidates all previously issued tokens.
	ttl := time.Duration(cfg.JWTTTLHours) * time.Hour
	jwtGen := jwt.NewGenerator(cfg.JWTSecret, cfg.JWTIssuer, ttl)
	verifier := jwt.NewVerifier(cfg.JWTSecret, cfg.JWTIssuer)

	hasher := password.NewBcryptHasher()
	authUC := auth.NewAuthService(userRepo, hasher, jwtGen)
	authHandler := handlers.NewAuthHandler(authUC)
	profileHandler := handlers.NewProfileHandler(authUC)

	// Health service: compose checkers
	readiness := health.NewService(healthpg.NewPostgresChecker(pool))
	healthHandler := handlers.NewHealthHandler(readiness)

	// JWT auth middleware for protected routes
	authMW := jwt.NewAuthMiddleware(verifier)

	app := fiber.New()

	// Register routes
	http.Register(app, authHandler, profileHandler, healthHandler, authMW)

	// Swagger UI
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Start server
	log.Info("HTTP server listening", "port", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
