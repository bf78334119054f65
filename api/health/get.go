package health

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/killallgit/feedcast/api/types"
)

// Get handles health check requests
// @Summary      Health check
// @Description  Reports catalog size and archive database status
// @Tags         health
// @Produce      json
// @Success      200 {object} types.HealthResponse
// @Failure      503 {object} types.HealthResponse
// @Router       /health [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		response := types.HealthResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Timestamp:    time.Now().UTC().Format(time.RFC3339),
			Feed:         feedSource(deps),
			Episodes:     deps.EpisodeCount(),
			Database:     getDatabaseStatus(deps),
		}

		status := http.StatusOK
		if response.Database["status"] == "unhealthy" {
			response.Status = types.StatusError
			status = http.StatusServiceUnavailable
		}

		c.JSON(status, response)
	}
}

func feedSource(deps *types.Dependencies) string {
	if deps == nil {
		return ""
	}
	return deps.FeedSource
}

// getDatabaseStatus returns the database connection status
func getDatabaseStatus(deps *types.Dependencies) map[string]any {
	if deps == nil || deps.DB == nil || deps.DB.DB == nil {
		return map[string]any{"status": "not configured"}
	}

	if err := deps.DB.HealthCheck(); err != nil {
		return map[string]any{"status": "unhealthy", "error": err.Error()}
	}

	return map[string]any{"status": "healthy"}
}
