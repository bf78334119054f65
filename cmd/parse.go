package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/killallgit/feedcast/api/types"
	"github.com/killallgit/feedcast/internal/feed"
)

const descriptionWidth = 60

func newParseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse",
		Short: "Parse the feed and print its episodes",
		Long: `Fetch and parse a feed, then print the resulting catalog.

Example:
  feedcast parse
  feedcast parse --feed https://nav.al/feed --json
  feedcast parse --feed ./feed.xml`,
		RunE: runParse,
	}

	cmd.Flags().String("feed", "", "feed URL or file path (overrides config)")
	cmd.Flags().Bool("json", false, "print the catalog as JSON")

	return cmd
}

func runParse(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, map[string]string{"feed": "feed.url"})
	if err != nil {
		return err
	}

	catalog, err := loadCatalog(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	episodes := lo.Map(catalog.All(), func(ep feed.Episode, i int) types.Episode {
		return types.FromFeedEpisode(i, ep)
	})

	asJSON, _ := cmd.Flags().GetBool("json")
	if asJSON {
		return writeJSON(cmd.OutOrStdout(), episodes)
	}

	fmt.Fprintln(cmd.OutOrStdout(), renderEpisodes(episodes))
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func renderEpisodes(episodes []types.Episode) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.Style().Format.Header = text.FormatDefault
	tw.Style().Format.Footer = text.FormatDefault
	tw.AppendHeader(table.Row{"ID", "Title", "Audio", "Description"})

	for _, ep := range episodes {
		audio := ep.AudioURL
		if !ep.HasAudio {
			audio = "-"
		}
		tw.AppendRow(table.Row{
			strconv.Itoa(ep.ID),
			ep.Title,
			audio,
			lo.Elipse(flatten(ep.Description), descriptionWidth),
		})
	}
	tw.AppendFooter(table.Row{"", fmt.Sprintf("%d episodes", len(episodes)), "", ""})

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})

	return tw.Render()
}

// flatten collapses description whitespace so each row stays on one line
func flatten(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
