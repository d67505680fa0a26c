package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	httpadapter "betterbrand/internal/adapters/http"
	"betterbrand/internal/metrics"
	"betterbrand/internal/ports"
	"betterbrand/internal/services/catalog"
	"betterbrand/internal/services/logos"
	"betterbrand/internal/taxonomy"
	"betterbrand/internal/workers/logowarmer"
)

var migrateOnStart bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the catalog pages and JSON API",
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(cmd.Context())
	},
}

func serve(ctx context.Context) error {
	db, err := connect(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	if migrateOnStart {
		if err := db.Migrate(ctx); err != nil {
			return err
		}
	}

	m, err := metrics.New()
	if err != nil {
		return err
	}

	// Wire repositories to services (ports)
	var _ ports.CatalogStore = db

	cat := catalog.New(db, taxonomy.Default(), logger).WithMetrics(m)
	logoClient := logos.NewClient(logos.Config{
		APIKey:   cfg.Brandfetch.APIKey,
		BaseURL:  cfg.Brandfetch.BaseURL,
		Timeout:  cfg.Brandfetch.Timeout,
		CacheTTL: cfg.Brandfetch.CacheTTL,
	}, logger, m)

	srv, err := httpadapter.New(cat, logoClient, httpadapter.Options{
		Development: cfg.IsDevelopment(),
		Logger:      logger,
		Metrics:     m,
	})
	if err != nil {
		return err
	}

	if n := cfg.Brandfetch.WarmWorkers; n > 0 && cfg.Brandfetch.APIKey != "" {
		go func() {
			if _, err := logowarmer.Run(ctx, cat, logoClient, n, logger); err != nil {
				logger.Warn("logo warm-up stopped", zap.Error(err))
			}
		}()
	}

	httpServer := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           srv.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- httpServer.ListenAndServe() }()
	logger.Info("listening", zap.String("addr", cfg.ListenAddr), zap.String("env", cfg.Env))

	select {
	case <-ctx.Done():
		logger.Info("shutting down", zap.Duration("timeout", cfg.ShutdownTimeout))
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
