package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/receptkylen/backend/config"
	"github.com/receptkylen/backend/internal/api"
	"github.com/receptkylen/backend/internal/database"
	"github.com/receptkylen/backend/internal/recipe"
	"github.com/receptkylen/backend/internal/recipesource"
	"github.com/receptkylen/backend/internal/server"
	"github.com/receptkylen/backend/internal/service"
	"github.com/receptkylen/backend/internal/session"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// The detail cache is optional; without Redis every detail lookup goes
	// straight to the API.
	var sourceOpts []recipesource.Option
	if cfg.CacheEnabled() {
		rdb, err := database.NewRedisClient(cfg)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		sourceOpts = append(sourceOpts, recipesource.WithDetailCache(recipesource.NewDetailCache(rdb)))
	}

	source := recipesource.NewClient(cfg.APIKey, sourceOpts...)
	sessions := session.NewManager(cfg.CookieSecret)

	handler := api.New(
		recipe.NewService(source),
		service.NewAuthService(db),
		service.NewFavoriteService(db),
		sessions,
	)

	srv := server.New(cfg, handler, sessions)

	errChan := make(chan error, 1)
	go func() {
		log.Println("Starting server...")
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-quit:
		log.Printf("Received signal: %v", sig)
	}

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")
}
