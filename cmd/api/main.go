package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"air-store/internal/cart"
	"air-store/internal/catalog"
	"air-store/internal/config"
	"air-store/internal/handler"
	"air-store/internal/orders"
	"air-store/internal/router"
	"air-store/internal/storage"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load .env when present; real environments set variables directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting air-store API server")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Cart snapshot store: a single fixed slot, file or redis backed.
	var snapshots storage.SnapshotStore
	switch cfg.Storage.Backend {
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Storage.RedisAddr,
			Password: cfg.Storage.RedisPassword,
			DB:       cfg.Storage.RedisDB,
		})
		defer client.Close()

		snapshots, err = storage.NewRedisStore(ctx, client, cfg.Storage.CartKey, logger)
		if err != nil {
			return fmt.Errorf("failed to initialize redis snapshot store: %w", err)
		}
		logger.Info().Str("addr", cfg.Storage.RedisAddr).Msg("using redis cart persistence")
	default:
		snapshots, err = storage.NewFileStore(cfg.Storage.FilePath, logger)
		if err != nil {
			return fmt.Errorf("failed to initialize file snapshot store: %w", err)
		}
		logger.Info().Str("path", cfg.Storage.FilePath).Msg("using file cart persistence")
	}

	// The cart store is constructed once and shared by every consumer;
	// it hydrates from the snapshot here and persists after each
	// mutation from now on.
	cartStore := cart.NewStore(ctx, snapshots, logger)

	productCatalog := catalog.New(logger)

	submitter := orders.NewClient(
		cfg.Orders.BaseURL,
		time.Duration(cfg.Orders.TimeoutSeconds)*time.Second,
		logger,
	)

	productHandler := handler.NewProductHandler(productCatalog, logger)
	cartHandler := handler.NewCartHandler(cartStore, productCatalog, logger)
	checkoutHandler := handler.NewCheckoutHandler(cartStore, submitter, logger)

	mux := router.New(productHandler, cartHandler, checkoutHandler, logger)

	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErrors := make(chan error, 1)

	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}
