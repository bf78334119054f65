package version

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/killallgit/feedcast/api/types"
)

// Get handles version requests
// @Summary      Version
// @Description  Build information of the running server
// @Tags         version
// @Produce      json
// @Success      200 {object} map[string]string
// @Router       /version [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		build := types.BuildInfo{Version: "dev"}
		if deps != nil && deps.Build.Version != "" {
			build = deps.Build
		}

		c.JSON(http.StatusOK, gin.H{
			"name":        "feedcast",
			"version":     build.Version,
			"commit":      build.Commit,
			"date":        build.Date,
			"description": "Podcast feed catalog server",
			"status":      "running",
		})
	}
}
