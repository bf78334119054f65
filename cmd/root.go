package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/killallgit/feedcast/pkg/config"
	"github.com/killallgit/feedcast/pkg/logging"
)

// Execute builds the command tree and runs it.
// This is called by main.main().
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// NewRootCmd creates a fresh root command with every subcommand attached
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "feedcast",
		Short: "Podcast feed catalog server",
		Long: `feedcast - parse a podcast feed and serve its episodes

feedcast reads an RSS feed once, turns every <item> into an episode
record and serves the resulting catalog as HTML pages and a JSON API.

Features:
  • Streaming, error tolerant feed parsing
  • HTML index and per-episode pages with an audio player
  • JSON API with Swagger documentation
  • SQLite archive of parsed catalogs`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if skipsConfig(cmd) {
				return nil
			}
			return initConfigAndLogging(cmd)
		},
	}

	// Logging flags override the logging.* config section
	rootCmd.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("json-logs", false, "enable JSON formatted logs")

	rootCmd.AddCommand(
		newServeCmd(),
		newParseCmd(),
		newArchiveCmd(),
		newMigrateCmd(),
		newVersionCmd(),
	)

	return rootCmd
}

// skipsConfig reports whether cmd runs without loading configuration
func skipsConfig(cmd *cobra.Command) bool {
	switch cmd.Name() {
	case "version", "help", "feedcast":
		return true
	}
	return false
}

func initConfigAndLogging(cmd *cobra.Command) error {
	if err := config.Init(); err != nil {
		return err
	}

	level := config.GetString("logging.level")
	if flag := cmd.Flags().Lookup("log-level"); flag != nil && flag.Changed {
		level = flag.Value.String()
	}
	jsonLogs := config.GetString("logging.format") == "json"
	if flag := cmd.Flags().Lookup("json-logs"); flag != nil && flag.Changed {
		jsonLogs, _ = cmd.Flags().GetBool("json-logs")
	}

	return logging.Setup(logging.Options{
		Level:  level,
		JSON:   jsonLogs,
		Output: cmd.ErrOrStderr(),
	})
}
