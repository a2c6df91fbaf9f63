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
	"github.com/phuslu/log"

	"musicpass-backend/catalog"
	"musicpass-backend/config"
	"musicpass-backend/handlers"
	"musicpass-backend/locale"
	"musicpass-backend/logging"
	"musicpass-backend/marketplace"
	"musicpass-backend/monitoring"
	"musicpass-backend/session"
)

// loadCatalog reads a snapshot from Postgres when a DSN is configured and
// falls back to the built-in catalog otherwise.
func loadCatalog(ctx context.Context, cfg *config.Config, logger *log.Logger) (*catalog.Catalog, error) {
	if cfg.DatabaseURL == "" {
		logger.Info().Msg("DATABASE_URL not set, using built-in catalog")
		return catalog.Default(), nil
	}

	pool, err := catalog.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	defer pool.Close()

	cat, err := catalog.LoadFromPostgres(ctx, pool, catalog.DefaultData())
	if err != nil {
		return nil, fmt.Errorf("load catalog snapshot: %w", err)
	}

	logger.Info().Int("tickets", len(cat.Tickets())).Int("events", len(cat.Events())).Int("nfts", len(cat.NFTs())).Msg("catalog snapshot loaded")
	return cat, nil
}

func sessionSecret(cfg *config.Config, logger *log.Logger) (string, error) {
	if cfg.JWTSecret != "" {
		return cfg.JWTSecret, nil
	}
	secret, err := session.GenerateSecret()
	if err != nil {
		return "", err
	}
	logger.Warn().Msg("JWT_SECRET was not set, using a generated secret; tokens will not survive a restart")
	return secret, nil
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := logging.New(cfg.LogLevel)
	gin.SetMode(cfg.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	loadCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	cat, err := loadCatalog(loadCtx, cfg, logger)
	cancel()
	if err != nil {
		return err
	}

	locales, err := locale.NewBundle(cfg.DefaultLocale)
	if err != nil {
		return err
	}

	secret, err := sessionSecret(cfg, logger)
	if err != nil {
		return err
	}

	store := session.NewStore()
	sweeper := session.NewSweeper(store, cfg.SessionSweepInterval, cfg.SessionTTL, logger, monitoring.SetActiveSessions)
	go sweeper.Start(ctx)

	router := handlers.NewRouter(handlers.Dependencies{
		Catalog:        cat,
		Store:          store,
		Issuer:         session.NewIssuer(secret, cfg.SessionTTL),
		Market:         marketplace.Unavailable{},
		Locales:        locales,
		Logger:         logger,
		AllowedOrigins: cfg.AllowedOrigins,
	})

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", server.Addr).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info().Msg("shutdown signal received")
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	logger.Info().Msg("server stopped")
	return nil
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "musicpass: %v\n", err)
		os.Exit(1)
	}
}
