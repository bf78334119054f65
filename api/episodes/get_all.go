package episodes

import (
	"github.com/gin-gonic/gin"

	"github.com/killallgit/feedcast/api/types"
)

// GetAll returns every catalog episode in feed order
// @Summary      List episodes
// @Description  Returns the episodes parsed from the configured feed, in document order
// @Tags         episodes
// @Produce      json
// @Success      200 {object} types.EpisodesResponse "Catalog episodes"
// @Router       /api/v1/episodes [get]
func GetAll(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		episodes := collectEpisodes(deps)
		types.SendSuccess(c, types.EpisodesResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Episodes:     episodes,
			Count:        len(episodes),
		})
	}
}
