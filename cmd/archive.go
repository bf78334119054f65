package cmd

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/killallgit/feedcast/internal/database"
	"github.com/killallgit/feedcast/internal/models"
	"github.com/killallgit/feedcast/internal/services/archive"
)

func newArchiveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "archive",
		Short: "Parse the feed and store its episodes in SQLite",
		Long: `Fetch and parse a feed, then replace its stored episodes in the
archive database. The schema is migrated first.

Example:
  feedcast archive
  feedcast archive --feed ./feed.xml --db ./data/archive.db`,
		RunE: runArchive,
	}

	cmd.Flags().String("feed", "", "feed URL or file path (overrides config)")
	cmd.Flags().String("db", "", "archive database path (overrides config)")

	return cmd
}

func runArchive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, map[string]string{
		"feed": "feed.url",
		"db":   "database.path",
	})
	if err != nil {
		return err
	}

	catalog, err := loadCatalog(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	db, err := database.Initialize(cfg.Database.Path, cfg.Database.Verbose)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.AutoMigrate(models.All()...); err != nil {
		return err
	}

	repo := archive.NewRepository(db.DB)
	stored, err := repo.ReplaceFeed(cmd.Context(), cfg.Feed.URL, catalog.All())
	if err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"feed":     cfg.Feed.URL,
		"database": cfg.Database.Path,
		"episodes": stored,
	}).Info("Feed archived")
	fmt.Fprintf(cmd.OutOrStdout(), "Archived %d episodes from %s\n", stored, cfg.Feed.URL)
	return nil
}
