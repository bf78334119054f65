package archive

import (
	"context"
	"fmt"

	"github.com/samber/lo"
	"gorm.io/gorm"

	"github.com/killallgit/feedcast/internal/feed"
	"github.com/killallgit/feedcast/internal/models"
	apperrors "github.com/killallgit/feedcast/pkg/errors"
)

// Repository persists archived episodes with gorm
type Repository struct {
	db *gorm.DB
}

// Ensure Repository implements EpisodeArchive interface
var _ EpisodeArchive = (*Repository)(nil)

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ReplaceFeed swaps every stored episode of feedURL for the given list in one
// transaction. Positions follow the catalog order.
func (r *Repository) ReplaceFeed(ctx context.Context, feedURL string, episodes []feed.Episode) (int, error) {
	rows := lo.Map(episodes, func(ep feed.Episode, i int) models.ArchivedEpisode {
		return ToModel(feedURL, i, ep)
	})

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Hard delete so the (feed_url, position) unique index can be reused
		if err := tx.Unscoped().Where("feed_url = ?", feedURL).Delete(&models.ArchivedEpisode{}).Error; err != nil {
			return fmt.Errorf("deleting archived episodes: %w", err)
		}
		if len(rows) == 0 {
			return nil
		}
		if err := tx.CreateInBatches(rows, 100).Error; err != nil {
			return fmt.Errorf("inserting archived episodes: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, apperrors.DatabaseError("replace feed", err).WithDetail("feed_url", feedURL)
	}

	return len(rows), nil
}

// ListByFeed returns the archived episodes of a feed in catalog order
func (r *Repository) ListByFeed(ctx context.Context, feedURL string) ([]models.ArchivedEpisode, error) {
	var rows []models.ArchivedEpisode
	if err := r.db.WithContext(ctx).
		Where("feed_url = ?", feedURL).
		Order("position ASC").
		Find(&rows).Error; err != nil {
		return nil, apperrors.DatabaseError("list episodes", err).WithDetail("feed_url", feedURL)
	}
	return rows, nil
}

// CountByFeed returns how many episodes are archived for a feed
func (r *Repository) CountByFeed(ctx context.Context, feedURL string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.ArchivedEpisode{}).
		Where("feed_url = ?", feedURL).
		Count(&count).Error; err != nil {
		return 0, apperrors.DatabaseError("count episodes", err).WithDetail("feed_url", feedURL)
	}
	return count, nil
}
