package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"entgo.io/ent/dialect"

	"github.com/ketabio/bookserver/api"
	"github.com/ketabio/bookserver/api/handler"
	"github.com/ketabio/bookserver/cache"
	"github.com/ketabio/bookserver/config"
	"github.com/ketabio/bookserver/ent"
	"github.com/ketabio/bookserver/ent/migrate"

	_ "github.com/lib/pq"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	client, err := ent.Open(dialect.Postgres, cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to open database connection", "error", err)
		os.Exit(1)
	}
	defer func() { _ = client.Close() }()

	if err := client.Schema.Create(
		context.Background(),
		migrate.WithGlobalUniqueID(true),
	); err != nil {
		slog.Error("failed to run schema migration", "error", err)
		os.Exit(1)
	}

	api.SeedInitialAdmin(context.Background(), client, cfg)

	hub := handler.NewEventHub()

	mgr := cache.NewManager(client, cfg)
	resolver := cache.NewAccessResolver(client, cfg)

	prop := cache.NewPropagator(client, mgr, cfg, hub)
	prop.Start(context.Background())

	warmer := cache.NewWarmer(client, mgr, cfg, hub)
	warmer.Start(context.Background())

	sessionCleaner := api.NewSessionCleaner(client, cfg)
	sessionCleaner.Start(context.Background())

	h := api.NewRouter(cfg, api.Deps{
		DB:       client,
		Manager:  mgr,
		Resolver: resolver,
		Prop:     prop,
		Warmer:   warmer,
		Hub:      hub,
	})

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 20, // 1 MiB
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("bookserver listening", "addr", cfg.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt or SIGTERM (e.g. from container orchestration).
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	slog.Info("shutting down server...")

	hub.Shutdown()
	warmer.Stop()
	prop.Stop()
	sessionCleaner.Stop()
	resolver.Close()
	mgr.Close()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
	}
	slog.Info("server stopped")
}
