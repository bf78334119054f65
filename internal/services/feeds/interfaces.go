package feeds

import (
	"context"

	"github.com/killallgit/feedcast/internal/feed"
)

// FeedFetcher retrieves the raw bytes of a feed
type FeedFetcher interface {
	Fetch(ctx context.Context, source string) ([]byte, error)
}

// FeedLoader fetches and parses a feed into a catalog
type FeedLoader interface {
	Load(ctx context.Context, source string) (*feed.Catalog, error)
}
