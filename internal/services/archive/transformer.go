package archive

import (
	"github.com/samber/mo"

	"github.com/killallgit/feedcast/internal/feed"
	"github.com/killallgit/feedcast/internal/models"
)

// ToModel converts a catalog episode into its archive row
func ToModel(feedURL string, position int, ep feed.Episode) models.ArchivedEpisode {
	return models.ArchivedEpisode{
		FeedURL:     feedURL,
		Position:    position,
		Title:       ep.Title,
		Description: ep.Description,
		AudioURL:    audioPointer(ep.AudioURL),
	}
}

// FromModel converts an archive row back into a catalog episode
func FromModel(row models.ArchivedEpisode) feed.Episode {
	return feed.Episode{
		Title:       row.Title,
		Description: row.Description,
		AudioURL:    audioOption(row.AudioURL),
	}
}

func audioPointer(url mo.Option[string]) *string {
	if value, ok := url.Get(); ok {
		return &value
	}
	return nil
}

func audioOption(url *string) mo.Option[string] {
	if url == nil {
		return mo.None[string]()
	}
	return mo.Some(*url)
}
