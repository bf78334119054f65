package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gorm.io/gorm/schema"

	"github.com/killallgit/feedcast/internal/database"
	"github.com/killallgit/feedcast/internal/models"
)

func newMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create or upgrade the archive schema",
		Long: `Run GORM auto migration against the archive database.

Tables are created when missing and columns added when the models gained
fields. Existing data is kept.`,
		RunE: runMigrate,
	}

	cmd.Flags().Bool("dry-run", false, "show what would be done without making changes")
	cmd.Flags().String("db", "", "archive database path (overrides config)")

	return cmd
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, map[string]string{"db": "database.path"})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	if dryRun {
		fmt.Fprintln(out, "Dry run mode - no changes will be made")
		for _, model := range models.All() {
			if tabler, ok := model.(schema.Tabler); ok {
				fmt.Fprintf(out, "  would migrate table %s\n", tabler.TableName())
			}
		}
		return nil
	}

	db, err := database.Initialize(cfg.Database.Path, cfg.Database.Verbose)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.AutoMigrate(models.All()...); err != nil {
		return err
	}

	fmt.Fprintf(out, "Archive schema up to date (%s)\n", cfg.Database.Path)
	return nil
}
