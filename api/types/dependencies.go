package types

import (
	"github.com/killallgit/feedcast/internal/database"
	"github.com/killallgit/feedcast/internal/feed"
)

// Dependencies holds all the dependencies needed by handlers
type Dependencies struct {
	Catalog    *feed.Catalog
	DB         *database.DB
	FeedTitle  string
	FeedSource string
	Build      BuildInfo
}

// BuildInfo describes the running binary
type BuildInfo struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// EpisodeCount returns the catalog size, zero when no catalog is loaded
func (d *Dependencies) EpisodeCount() int {
	if d == nil {
		return 0
	}
	return d.Catalog.Len()
}
