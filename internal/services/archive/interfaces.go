package archive

import (
	"context"

	"github.com/killallgit/feedcast/internal/feed"
	"github.com/killallgit/feedcast/internal/models"
)

// EpisodeArchive stores parsed catalogs keyed by feed
type EpisodeArchive interface {
	ReplaceFeed(ctx context.Context, feedURL string, episodes []feed.Episode) (int, error)
	ListByFeed(ctx context.Context, feedURL string) ([]models.ArchivedEpisode, error)
	CountByFeed(ctx context.Context, feedURL string) (int64, error)
}
