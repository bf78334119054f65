package models

import (
	"gorm.io/gorm"
)

// ArchivedEpisode is a parsed feed episode stored for offline inspection.
// Position is the episode's index in the feed it was parsed from.
type ArchivedEpisode struct {
	gorm.Model
	FeedURL     string  `json:"feed_url" gorm:"not null;uniqueIndex:idx_feed_position"`
	Position    int     `json:"position" gorm:"not null;uniqueIndex:idx_feed_position"`
	Title       string  `json:"title" gorm:"not null"`
	Description string  `json:"description" gorm:"type:text"`
	AudioURL    *string `json:"audio_url" gorm:"column:audio_url"`
}

// TableName specifies the table name for GORM
func (ArchivedEpisode) TableName() string {
	return "archived_episodes"
}

// All returns every model the archive schema is made of
func All() []any {
	return []any{&ArchivedEpisode{}}
}
