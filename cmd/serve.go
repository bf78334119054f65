package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/killallgit/feedcast/api"
	"github.com/killallgit/feedcast/api/types"
	"github.com/killallgit/feedcast/internal/database"
	"github.com/killallgit/feedcast/pkg/config"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the catalog server",
		Long: `Fetch and parse the configured feed, then serve the catalog.

The feed is read once at startup. A feed that cannot be obtained stops
the server before it starts listening.

Example:
  feedcast serve
  feedcast serve --port 9090
  feedcast serve --feed ./testdata/feed.xml --host 127.0.0.1`,
		RunE: runServer,
	}

	cmd.Flags().String("feed", "", "feed URL or file path (overrides config)")
	cmd.Flags().String("host", "", "server host (overrides config)")
	cmd.Flags().Int("port", 0, "server port (overrides config)")

	return cmd
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, map[string]string{
		"feed": "feed.url",
		"host": "server.host",
		"port": "server.port",
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	catalog, err := loadCatalog(ctx, cfg)
	if err != nil {
		log.WithError(err).WithField("feed", cfg.Feed.URL).Error("Failed to load feed")
		return err
	}

	db := openArchive(cfg)
	if db != nil {
		defer db.Close()
	}

	server := api.NewServer(cfg, &types.Dependencies{
		Catalog:    catalog,
		DB:         db,
		FeedTitle:  cfg.Feed.Title,
		FeedSource: cfg.Feed.URL,
		Build:      buildInfo(),
	})
	server.Initialize()

	// Channel to receive server errors
	serverErr := make(chan error, 1)

	go func() {
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	log.WithFields(log.Fields{
		"address":  server.Addr(),
		"episodes": catalog.Len(),
	}).Info("Server is ready to handle requests")

	// Wait for interrupt signal or server error
	var runErr error
	select {
	case <-ctx.Done():
		log.Info("Shutting down server...")
	case runErr = <-serverErr:
		log.WithError(runErr).Error("Server error, shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Server forced to shutdown")
		return err
	}

	log.Info("Server gracefully stopped")
	return runErr
}

// openArchive opens the archive database for health reporting.
// The server runs without it when it cannot be opened.
func openArchive(cfg *config.Config) *database.DB {
	if cfg.Database.Path == "" {
		return nil
	}

	db, err := database.Initialize(cfg.Database.Path, cfg.Database.Verbose)
	if err != nil {
		log.WithError(err).WithField("path", cfg.Database.Path).Warn("Archive database unavailable")
		return nil
	}
	return db
}
