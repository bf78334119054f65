package types

import "github.com/killallgit/feedcast/internal/feed"

// Episode is the API representation of a catalog episode
type Episode struct {
	ID          int    `json:"id"` // Position in the catalog
	Title       string `json:"title"`
	Description string `json:"description"`
	AudioURL    string `json:"audioUrl,omitempty"`
	HasAudio    bool   `json:"hasAudio"`
}

// FromFeedEpisode converts a catalog entry at position id into its API form
func FromFeedEpisode(id int, ep feed.Episode) Episode {
	return Episode{
		ID:          id,
		Title:       ep.Title,
		Description: ep.Description,
		AudioURL:    ep.AudioURL.OrEmpty(),
		HasAudio:    ep.HasAudio(),
	}
}
