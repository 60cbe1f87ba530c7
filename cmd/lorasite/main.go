// Package main is the entry point for the Lorasite server. It loads
// configuration, connects to services, wires the handler groups, and
// starts the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lorasite/internal/auth"
	"lorasite/internal/cache"
	"lorasite/internal/config"
	"lorasite/internal/database"
	"lorasite/internal/handlers"
	"lorasite/internal/mailer"
	"lorasite/internal/middleware"
	"lorasite/internal/render"
	"lorasite/internal/router"
	"lorasite/internal/storage"
	"lorasite/internal/store"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}
	slog.Info("configuration loaded", "env", cfg.Env, "addr", cfg.Addr())

	// PostgreSQL.
	db, err := database.Connect(cfg.DSN())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Provision the default admin once when the users table is empty.
	if err := database.EnsureDefaultAdmin(db); err != nil {
		slog.Error("failed to ensure default admin", "error", err)
		os.Exit(1)
	}

	// Valkey page cache.
	valkeyClient, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
	if err != nil {
		slog.Error("failed to connect to valkey", "error", err)
		os.Exit(1)
	}
	defer valkeyClient.Close()
	pageCache := cache.NewPageCache(valkeyClient, cache.DefaultPageTTL)

	// Data stores.
	userStore := store.NewUserStore(db)
	contentStore := store.NewContentStore(db)
	categoryStore := store.NewCategoryStore(db)
	componentStore := store.NewComponentStore(db)
	menuStore := store.NewMenuStore(db)
	mediaStore := store.NewMediaStore(db)
	settingsStore := store.NewSettingsStore(db)
	homepageStore := store.NewHomepageStore(db)
	resetCodeStore := store.NewResetCodeStore(db)

	// Media storage: local disk by default, S3 when configured.
	var backend storage.Backend
	s3Backend, err := storage.NewS3(cfg.S3Endpoint, cfg.S3Region, cfg.S3AccessKey, cfg.S3SecretKey, cfg.S3Bucket, cfg.S3PublicURL)
	if err != nil {
		slog.Error("failed to initialize s3 storage", "error", err)
		os.Exit(1)
	}
	if s3Backend != nil {
		slog.Info("s3 storage connected", "endpoint", cfg.S3Endpoint, "bucket", cfg.S3Bucket)
		backend = s3Backend
	} else {
		local, err := storage.NewLocal(cfg.UploadsDir)
		if err != nil {
			slog.Error("failed to initialize uploads dir", "dir", cfg.UploadsDir, "error", err)
			os.Exit(1)
		}
		backend = local
	}

	// Public site renderer.
	engine, err := render.New(contentStore, componentStore, categoryStore, menuStore, settingsStore, homepageStore, render.Fallbacks{
		GoogleVerification: cfg.GoogleVerification,
		BingVerification:   cfg.BingVerification,
	})
	if err != nil {
		slog.Error("failed to initialize renderer", "error", err)
		os.Exit(1)
	}

	tokens := auth.NewTokens(cfg.JWTSecret)
	mail := mailer.New(mailer.Config{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUser,
		Password: cfg.SMTPPassword,
		From:     cfg.SMTPFrom,
	}, settingsStore)

	rateLimiter := middleware.NewRateLimiter(20, time.Minute)
	defer rateLimiter.Stop()

	rs := &handlers.Responder{Dev: cfg.IsDev()}
	r := router.New(router.Deps{
		Tokens:      tokens,
		RateLimiter: rateLimiter,
		UploadsDir:  cfg.UploadsDir,

		Auth:       handlers.NewAuth(rs, db, userStore, resetCodeStore, tokens, mail),
		Content:    handlers.NewContent(rs, contentStore, pageCache),
		Categories: handlers.NewCategory(rs, categoryStore, pageCache),
		Components: handlers.NewComponent(rs, componentStore, pageCache),
		Menus:      handlers.NewMenu(rs, menuStore, pageCache),
		Media:      handlers.NewMedia(rs, mediaStore, backend),
		Users:      handlers.NewUsers(rs, userStore),
		Settings:   handlers.NewSettings(rs, settingsStore, pageCache),
		Homepage:   handlers.NewHomepage(rs, homepageStore, pageCache),
		Public:     handlers.NewPublic(rs, engine, contentStore, componentStore, menuStore, pageCache, cfg.BaseURL),
	})

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
