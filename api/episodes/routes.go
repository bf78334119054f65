package episodes

import (
	"github.com/gin-gonic/gin"

	"github.com/killallgit/feedcast/api/types"
)

// RegisterRoutes registers the JSON episode routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	// GET /api/v1/episodes - List catalog episodes
	router.GET("", GetAll(deps))

	// GET /api/v1/episodes/:id - Get episode details
	router.GET("/:id", GetByID(deps))
}

// RegisterPageRoutes registers the HTML pages at the site root
func RegisterPageRoutes(router gin.IRoutes, deps *types.Dependencies) {
	router.GET("/", Index(deps))
	router.GET("/:id", Detail(deps))
}
