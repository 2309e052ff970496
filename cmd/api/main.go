package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"portfoliotracker/internal/cache"
	"portfoliotracker/internal/config"
	"portfoliotracker/internal/database"
	"portfoliotracker/internal/logger"
	"portfoliotracker/internal/middleware"
	"portfoliotracker/internal/server"
	"portfoliotracker/internal/validator"
)

// @title           Portfolio Tracker API
// @version         1.0
// @description     Track assets, their BUY/SELL/DIVIDEND transactions and portfolio-level insights.

// @host      localhost:8080
// @BasePath  /api/v1

func main() {
	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger.Init(appConfig.Env, appConfig.LogLevel)
	defer logger.Sync()
	log := logger.Get()

	if appConfig.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	validator.Register()

	dbManager, err := database.NewManager(database.NewConfig(appConfig))
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	defer func() {
		if err := dbManager.Close(); err != nil {
			log.Warnw("failed to close database", "error", err)
		}
	}()

	if err := dbManager.Migrate(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeCache, err := cache.Open(ctx, appConfig.RedisURL, appConfig.CacheTTL)
	if err != nil {
		return fmt.Errorf("failed to connect insight cache: %w", err)
	}
	defer func() {
		if err := closeCache(); err != nil {
			log.Warnw("failed to close insight cache", "error", err)
		}
	}()
	if appConfig.RedisURL != "" {
		log.Infow("insight cache enabled", "ttl", appConfig.CacheTTL.String())
	}

	router := server.NewRouter(server.NewServices(dbManager.DB(), store))

	srv := &http.Server{
		Addr:              ":" + appConfig.Port,
		Handler:           middleware.CORS(appConfig.CORSAllowedOrigins, router),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infof("Starting portfolio tracker on port %s", appConfig.Port)
		log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
