package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	gommonlog "github.com/labstack/gommon/log"

	_ "portfolioai/docs" // swagger docs

	"portfolioai/internal/auth"
	"portfolioai/internal/cache"
	"portfolioai/internal/config"
	"portfolioai/internal/db"
	"portfolioai/internal/enhance"
	"portfolioai/internal/extract"
	"portfolioai/internal/handler"
	"portfolioai/internal/repository"
	"portfolioai/internal/router"
	"portfolioai/internal/service"
)

// @title Portfolio Enhancer API
// @version 1.0
// @description Resume and portfolio rewriting with Gemini, plus per-user portfolio storage behind bearer tokens.
// @host localhost:8000
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("Warning: could not read .env: %v", err)
	}

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.Logger.SetLevel(gommonlog.INFO)

	gormDB, err := db.Open(cfg.DBDriver, cfg.DBDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}
	if err := db.Migrate(gormDB); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB, "portfolioai:")
	defer cacheClient.Close()
	if cacheClient.Enabled() {
		pingCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		if err := cacheClient.Ping(pingCtx); err != nil {
			log.Printf("Warning: redis unreachable, token revocation is disabled until it recovers: %v", err)
		}
		cancel()
	} else {
		log.Println("REDIS_ADDR not set, token revocation is disabled")
	}

	// Initialize auth components
	jwtService, err := auth.NewJWTService(cfg.JWTSecret)
	if err != nil {
		log.Fatalf("jwt: %v", err)
	}
	tokenStore := auth.NewTokenStore(cacheClient)

	// Initialize the model client
	generator, err := enhance.NewGeminiGenerator(context.Background(), cfg.GoogleAPIKey, cfg.GeminiModel)
	if err != nil {
		log.Fatalf("genai: %v", err)
	}
	enhancer := enhance.NewService(generator, enhance.Config{
		Timeout:     cfg.EnhanceTimeout,
		Concurrency: cfg.EnhanceConcurrency,
	})

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	portfolioRepo := repository.NewPortfolioRepository(gormDB)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService, tokenStore, cfg.TokenTTL)
	portfolioService := service.NewPortfolioService(portfolioRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	portfolioHandler := handler.NewPortfolioHandler(enhancer, portfolioService)
	resumeHandler := handler.NewResumeHandler(extract.NewExtractor(), enhancer)

	// Register routes
	router.Register(
		e,
		cfg,
		authService,
		authHandler,
		portfolioHandler,
		resumeHandler,
	)

	swaggerURL := "http://localhost:" + cfg.ServerPort + "/swagger/index.html"
	if cfg.SwaggerHost != "" {
		host := cfg.SwaggerHost
		if !strings.HasPrefix(host, "http://") && !strings.HasPrefix(host, "https://") {
			host = "http://" + host
		}
		swaggerURL = host + "/swagger/index.html"
	}
	log.Printf("Swagger documentation available at: %s", swaggerURL)

	e.Server = &http.Server{
		Addr:              ":" + cfg.ServerPort,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		// model round-trips for a whole portfolio can take a while
		WriteTimeout: cfg.EnhanceTimeout*4 + 30*time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		if err := e.Start(e.Server.Addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server start: %v", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	log.Println("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown: %v", err)
	}
}
