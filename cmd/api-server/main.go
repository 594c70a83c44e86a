package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"newscheck/internal/config"
	"newscheck/internal/database"
	"newscheck/internal/handler"
	"newscheck/internal/repository"
	"newscheck/internal/service"
	"newscheck/internal/storage"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not load config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}

	log := newLogger(cfg)

	db, err := database.ConnectDB(cfg, log)
	if err != nil {
		log.Error("could not connect to database", "error", err)
		os.Exit(1)
	}

	store, err := storage.NewMinIOStore(cfg)
	if err != nil {
		log.Error("could not initialize file storage", "error", err)
		os.Exit(1)
	}
	bucketCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := store.EnsureBucket(bucketCtx); err != nil {
		log.Warn("could not ensure upload bucket, uploads may fail", "error", err)
	}
	cancel()

	// Repositories
	userRepo := repository.NewUserRepository(db)
	newsRepo := repository.NewNewsRepository(db)
	voteRepo := repository.NewVoteRepository(db)
	commentRepo := repository.NewCommentRepository(db)

	// Services
	authService := service.NewAuthService(userRepo, cfg)
	newsService := service.NewNewsService(newsRepo, voteRepo, commentRepo)
	voteService := service.NewVoteService(voteRepo, newsRepo)
	commentService := service.NewCommentService(commentRepo, newsRepo)
	userService := service.NewUserService(userRepo)

	router := handler.NewRouter(cfg, authService, handler.Handlers{
		Auth:    handler.NewAuthHandler(authService, log),
		News:    handler.NewNewsHandler(newsService, log),
		Vote:    handler.NewVoteHandler(voteService, log),
		Comment: handler.NewCommentHandler(commentService, log),
		User:    handler.NewUserHandler(userService, log),
		Upload:  handler.NewUploadHandler(store, cfg.MaxUploadSize, log),
	})

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler: router,
	}

	go func() {
		log.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("forced shutdown", "error", err)
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var h slog.Handler
	if cfg.LogFormat == "json" {
		h = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		h = slog.NewTextHandler(os.Stdout, opts)
	}
	return slog.New(h)
}
