package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/killallgit/feedcast/internal/feed"
	"github.com/killallgit/feedcast/internal/services/feeds"
	"github.com/killallgit/feedcast/pkg/config"
)

// loadConfig applies flag overrides and returns the resulting configuration.
// overrides maps flag names to config keys; only flags set on the command line apply.
func loadConfig(cmd *cobra.Command, overrides map[string]string) (*config.Config, error) {
	for flagName, key := range overrides {
		flag := cmd.Flags().Lookup(flagName)
		if flag == nil || !flag.Changed {
			continue
		}
		switch flag.Value.Type() {
		case "int":
			value, _ := cmd.Flags().GetInt(flagName)
			config.Set(key, value)
		default:
			config.Set(key, flag.Value.String())
		}
	}

	cfg, err := config.GetConfig()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadCatalog fetches and parses the configured feed
func loadCatalog(ctx context.Context, cfg *config.Config) (*feed.Catalog, error) {
	fetcher, err := feeds.NewFetcher(cfg.Feed)
	if err != nil {
		return nil, err
	}

	var parserOpts []feed.ParserOption
	if cfg.Feed.TitleFormat != "" {
		parserOpts = append(parserOpts, feed.WithTitleFormat(cfg.Feed.TitleFormat))
	}

	service := feeds.NewService(fetcher, feeds.WithParserOptions(parserOpts...))
	return service.Load(ctx, cfg.Feed.URL)
}
