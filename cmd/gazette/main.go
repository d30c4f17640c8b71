// Package main is the entrypoint for the Gazette API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/mgrundel/gazette/internal/articles"
	"github.com/mgrundel/gazette/internal/comments"
	"github.com/mgrundel/gazette/internal/config"
	"github.com/mgrundel/gazette/internal/database"
	"github.com/mgrundel/gazette/internal/server"
	"github.com/mgrundel/gazette/internal/topics"
	"github.com/mgrundel/gazette/internal/users"
)

func main() {
	// A missing .env is fine; the environment may be set directly.
	_ = godotenv.Load()

	cfg := config.Load()

	// --- Set up structured logging ---
	logLevel := slog.LevelInfo
	if cfg.DevMode {
		logLevel = slog.LevelDebug
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	slog.Info("starting Gazette",
		"port", cfg.Port,
		"dev_mode", cfg.DevMode,
	)

	// --- Connect to database ---
	if cfg.DatabaseURL == "" {
		slog.Error("GAZETTE_DATABASE_URL is required")
		os.Exit(1)
	}

	dbCtx, dbCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer dbCancel()

	db, err := database.New(dbCtx, cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	slog.Info("database connected")

	// --- Run migrations ---
	if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("migrations applied")

	// --- Load the API descriptor ---
	endpoints, err := server.LoadEndpoints()
	if err != nil {
		slog.Error("failed to load endpoints descriptor", "error", err)
		os.Exit(1)
	}

	// --- Wire stores, services, and handlers ---
	pool := db.Pool()

	articleHandler := articles.NewHandler(articles.NewService(articles.NewStore(pool)))
	commentHandler := comments.NewHandler(comments.NewService(comments.NewStore(pool)))
	topicHandler := topics.NewHandler(topics.NewStore(pool))
	userHandler := users.NewHandler(users.NewStore(pool))

	deps := server.Dependencies{
		Articles:  articleHandler,
		Comments:  commentHandler,
		Topics:    topicHandler,
		Users:     userHandler,
		Endpoints: endpoints,
		DevMode:   cfg.DevMode,
	}

	router := server.NewRouter(deps)
	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := server.New(addr, router)

	// Start server in a goroutine.
	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", addr)
		errCh <- srv.Start()
	}()

	// --- Graceful shutdown on SIGINT/SIGTERM ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		slog.Info("received shutdown signal", "signal", sig.String())
	case err := <-errCh:
		if err != nil {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	slog.Info("shutting down server (30s timeout)...")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown error", "error", err)
		os.Exit(1)
	}

	slog.Info("Gazette stopped")
}
