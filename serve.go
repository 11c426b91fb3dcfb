package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"signal-dashboard/client"
	"signal-dashboard/dashboard"
	"signal-dashboard/database"
	"signal-dashboard/handlers"
	"signal-dashboard/repositories"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API and dashboard server",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		gin.SetMode(cfg.GinMode)

		db, err := database.Open(cfg.DatabasePath)
		if err != nil {
			return err
		}
		defer database.Close(db) //nolint:errcheck // best-effort close

		repo := repositories.NewSignalRepository(db, cfg.ImportBatchSize)
		if err := importOnStart(cmd.Context(), repo, cfg.DataFile); err != nil {
			return err
		}

		store := dashboard.NewStore(client.New(cfg.APIURL()))
		router, err := handlers.NewRouter(handlers.NewAPIHandler(repo), handlers.NewDashboardHandler(store))
		if err != nil {
			return err
		}

		srv := &http.Server{
			Addr:              cfg.ListenAddr,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		}
		return run(cmd.Context(), srv)
	},
}

// importOnStart loads the data file when it exists. A missing file leaves
// whatever the database already holds.
func importOnStart(ctx context.Context, repo repositories.SignalRepository, path string) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			slog.Warn("data file not found, serving stored signals", "path", path)
			return nil
		}
		return fmt.Errorf("failed to stat data file: %w", err)
	}

	n, err := importFile(ctx, repo, path)
	if err != nil {
		return err
	}
	slog.Info("imported signals", "path", path, "count", n)
	return nil
}

// run serves until SIGINT/SIGTERM, then shuts down gracefully.
func run(ctx context.Context, srv *http.Server) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		slog.Info("starting signal dashboard", "addr", srv.Addr, "dashboard", cfg.APIURL()+"/dashboard")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("shutdown signal received, stopping")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	slog.Info("server stopped")
	return nil
}
