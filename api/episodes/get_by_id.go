package episodes

import (
	"github.com/gin-gonic/gin"

	"github.com/killallgit/feedcast/api/types"
	apperrors "github.com/killallgit/feedcast/pkg/errors"
)

// GetByID returns a single episode by its catalog position
// @Summary      Get episode
// @Description  Returns the episode at the given zero-based catalog position
// @Tags         episodes
// @Produce      json
// @Param        id path int true "Catalog position"
// @Success      200 {object} types.SingleEpisodeResponse "Episode"
// @Failure      400 {object} types.ErrorResponse "Invalid id"
// @Failure      404 {object} types.ErrorResponse "Episode not found"
// @Router       /api/v1/episodes/{id} [get]
func GetByID(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseIDParam(c, "id")
		if !ok {
			return
		}

		ep, found := deps.Catalog.Get(id)
		if !found {
			types.SendAppError(c, apperrors.NotFound("episode", id))
			return
		}

		episode := types.FromFeedEpisode(id, ep)
		types.SendSuccess(c, types.SingleEpisodeResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Episode:      &episode,
		})
	}
}
